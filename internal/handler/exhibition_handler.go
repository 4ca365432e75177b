package handler

import (
	"net/http"
	"strings"

	"github.com/exhibitions/internal/db"
	"github.com/exhibitions/internal/service"
	"github.com/gin-gonic/gin"
)

type exhibitionPayload struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	DetailDescription *string `json:"detail_description"`
	Location          *string `json:"location"`
	StartDate         *string `json:"startDate"`
	EndDate           *string `json:"endDate"`
	Image             *string `json:"image"`
	Category          *string `json:"category"`
	Organizer         *string `json:"organizer"`
}

// dates parses the date fields. Malformed values come back as rejected
// fields so the service reports them with every other violation.
func (p exhibitionPayload) dates() (start, end *db.Date, rejected []service.FieldError) {
	start = parseDateField("startDate", p.StartDate, &rejected)
	end = parseDateField("endDate", p.EndDate, &rejected)
	return start, end, rejected
}

func (p exhibitionPayload) toInput() service.ExhibitionInput {
	start, end, rejected := p.dates()

	input := service.ExhibitionInput{
		Title:             deref(p.Title),
		Description:       deref(p.Description),
		DetailDescription: p.DetailDescription,
		Location:          deref(p.Location),
		Image:             p.Image,
		Category:          deref(p.Category),
		Organizer:         deref(p.Organizer),
		Rejected:          rejected,
	}
	if start != nil {
		input.StartDate = *start
	}
	if end != nil {
		input.EndDate = *end
	}
	return input
}

func (p exhibitionPayload) toPatch() service.ExhibitionPatch {
	start, end, rejected := p.dates()

	return service.ExhibitionPatch{
		Title:             p.Title,
		Description:       p.Description,
		DetailDescription: p.DetailDescription,
		Location:          p.Location,
		StartDate:         start,
		EndDate:           end,
		Image:             p.Image,
		Category:          p.Category,
		Organizer:         p.Organizer,
		Rejected:          rejected,
	}
}

// exhibitionResponse is the single-exhibition representation. Artworks is
// only set when they were requested, so an empty gallery still shows as [].
type exhibitionResponse struct {
	db.Exhibition
	DetailDescriptionHTML string                   `json:"detailDescriptionHtml,omitempty"`
	Status                service.ExhibitionStatus `json:"status"`
	Artworks              any                      `json:"artworks,omitempty"`
}

func (a *API) newExhibitionResponse(detail *service.ExhibitionDetail) exhibitionResponse {
	resp := exhibitionResponse{
		Exhibition: detail.Exhibition,
		Status:     detail.Status,
	}
	if md := detail.Exhibition.DetailDescription; md != nil {
		html, err := renderMarkdown(*md)
		if err != nil {
			a.logger.Warn().Err(err).Uint("exhibitionId", detail.Exhibition.ID).Msg("failed to render detail description")
		} else {
			resp.DetailDescriptionHTML = html
		}
	}
	if detail.Artworks != nil {
		resp.Artworks = detail.Artworks
	}
	return resp
}

// ListExhibitions returns one page of exhibitions.
func (a *API) ListExhibitions(c *gin.Context) {
	result, err := a.exhibitions.List(c.Request.Context(), service.ExhibitionFilter{
		Request:   listRequest(c),
		Category:  c.Query("category"),
		Organizer: c.Query("organizer"),
		Search:    c.Query("search"),
		Status:    c.Query("status"),
	})
	if err != nil {
		a.respondServiceError(c, err)
		return
	}

	respondPage(c, result.Items, result.Pagination)
}

// GetExhibition returns one exhibition with its status, optionally with artworks.
func (a *API) GetExhibition(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid exhibition id")
		return
	}

	includeArtworks := strings.EqualFold(strings.TrimSpace(c.Query("includeArtworks")), "true")
	detail, found, err := a.exhibitions.Get(c.Request.Context(), id, includeArtworks)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "exhibition not found")
		return
	}

	respondData(c, http.StatusOK, a.newExhibitionResponse(detail))
}

// CreateExhibition validates and stores a new exhibition.
func (a *API) CreateExhibition(c *gin.Context) {
	var payload exhibitionPayload
	if !bindJSON(c, &payload) {
		return
	}
	item, err := a.exhibitions.Create(c.Request.Context(), payload.toInput())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, item)
}

// UpdateExhibition applies a partial update.
func (a *API) UpdateExhibition(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid exhibition id")
		return
	}

	var payload exhibitionPayload
	if !bindJSON(c, &payload) {
		return
	}
	item, found, err := a.exhibitions.Update(c.Request.Context(), id, payload.toPatch())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "exhibition not found")
		return
	}

	respondData(c, http.StatusOK, item)
}

// DeleteExhibition removes an exhibition and its artworks.
func (a *API) DeleteExhibition(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid exhibition id")
		return
	}

	found, err := a.exhibitions.Delete(c.Request.Context(), id)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "exhibition not found")
		return
	}

	respondMessage(c, "exhibition deleted")
}

// ExhibitionStats returns totals per status and category.
func (a *API) ExhibitionStats(c *gin.Context) {
	stats, err := a.exhibitions.Stats(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, stats)
}

// ExhibitionCategories returns the allowed category labels.
func (a *API) ExhibitionCategories(c *gin.Context) {
	respondData(c, http.StatusOK, a.exhibitions.Categories())
}

// ExhibitionOrganizers returns the distinct organizers.
func (a *API) ExhibitionOrganizers(c *gin.Context) {
	organizers, err := a.exhibitions.Organizers(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, organizers)
}

// SearchExhibitions matches q across the text fields of every exhibition.
// A missing or blank q returns the whole catalogue ordered by start date.
func (a *API) SearchExhibitions(c *gin.Context) {
	items, err := a.exhibitions.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, items)
}
