package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/exhibitions/internal/query"
	"github.com/exhibitions/internal/service"
	"github.com/gin-gonic/gin"
)

type artworkPayload struct {
	Title       *string `json:"title"`
	Artist      *string `json:"artist"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

func (p artworkPayload) toInput() service.ArtworkInput {
	return service.ArtworkInput{
		Title:       deref(p.Title),
		Artist:      deref(p.Artist),
		Description: p.Description,
		ImageURL:    deref(p.ImageURL),
	}
}

func (p artworkPayload) toPatch() service.ArtworkPatch {
	return service.ArtworkPatch{
		Title:       p.Title,
		Artist:      p.Artist,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}

// ListExhibitionArtworks returns the artworks of one exhibition, oldest first.
func (a *API) ListExhibitionArtworks(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid exhibition id")
		return
	}

	items, err := a.gallery.ListForExhibition(c.Request.Context(), id)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// AddArtwork stores a new artwork under an existing exhibition.
func (a *API) AddArtwork(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid exhibition id")
		return
	}

	var payload artworkPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.gallery.Add(c.Request.Context(), id, payload.toInput())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, item)
}

// ListArtworks returns one page of artworks across exhibitions.
func (a *API) ListArtworks(c *gin.Context) {
	filter := service.GalleryFilter{
		Request: listRequest(c),
		Search:  c.Query("search"),
	}
	if raw := strings.TrimSpace(c.Query("exhibitionId")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			a.respondServiceError(c, fmt.Errorf("%w: exhibitionId must be a positive integer", query.ErrInvalidFilter))
			return
		}
		filter.ExhibitionID = uint(id)
	}

	result, err := a.gallery.List(c.Request.Context(), filter)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	respondPage(c, result.Items, result.Pagination)
}

// GetArtwork returns one artwork with its exhibition reference.
func (a *API) GetArtwork(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid artwork id")
		return
	}

	item, found, err := a.gallery.Get(c.Request.Context(), id)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "artwork not found")
		return
	}
	respondData(c, http.StatusOK, item)
}

// UpdateArtwork applies a partial update to an artwork.
func (a *API) UpdateArtwork(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid artwork id")
		return
	}

	var payload artworkPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, found, err := a.gallery.Update(c.Request.Context(), id, payload.toPatch())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "artwork not found")
		return
	}
	respondData(c, http.StatusOK, item)
}

// DeleteArtwork removes an artwork.
func (a *API) DeleteArtwork(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid artwork id")
		return
	}

	found, err := a.gallery.Remove(c.Request.Context(), id)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "artwork not found")
		return
	}
	respondMessage(c, "artwork deleted")
}
