package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/exhibitions/internal/db"
	"github.com/exhibitions/internal/query"
	"gorm.io/gorm"
)

// ExhibitionService handles exhibition CRUD and the aggregate views.
type ExhibitionService struct {
	db      *gorm.DB
	builder *query.Builder
	opts    options
}

// ExhibitionFilter describes filters for listing exhibitions.
type ExhibitionFilter struct {
	query.Request
	Category  string
	Organizer string
	Search    string
	Status    string
}

// ExhibitionListResult aggregates paginated exhibition results.
type ExhibitionListResult struct {
	Items      []db.Exhibition
	Pagination query.Pagination
}

// ExhibitionDetail is an exhibition with its derived status and, on request,
// its artworks. Artworks is nil unless they were asked for.
type ExhibitionDetail struct {
	Exhibition db.Exhibition
	Status     ExhibitionStatus
	Artworks   []db.Artwork
}

// ExhibitionInput represents the fields accepted when creating an exhibition.
type ExhibitionInput struct {
	Title             string
	Description       string
	DetailDescription *string
	Location          string
	StartDate         db.Date
	EndDate           db.Date
	Image             *string
	Category          string
	Organizer         string
	// Rejected lists fields the caller could not decode. They are reported
	// together with every other violation.
	Rejected          []FieldError
}

// ExhibitionPatch holds the fields to change; nil means keep.
type ExhibitionPatch struct {
	Title             *string
	Description       *string
	DetailDescription *string
	Location          *string
	StartDate         *db.Date
	EndDate           *db.Date
	Image             *string
	Category          *string
	Organizer         *string
	// Rejected lists fields the caller could not decode.
	Rejected          []FieldError
}

// ExhibitionStats summarises the catalogue by status and category.
type ExhibitionStats struct {
	Total      int64            `json:"total"`
	Active     int64            `json:"active"`
	Upcoming   int64            `json:"upcoming"`
	Past       int64            `json:"past"`
	ByCategory map[string]int64 `json:"byCategory"`
}

// NewExhibitionService creates an ExhibitionService instance.
func NewExhibitionService(gdb *gorm.DB, opts ...Option) *ExhibitionService {
	o := newOptions(opts)
	return &ExhibitionService{
		db:      gdb,
		builder: mustBuilder(&db.Exhibition{}, "startDate", o.maxPageSize),
		opts:    o,
	}
}

// List returns one page of exhibitions matching the filter.
func (s *ExhibitionService) List(ctx context.Context, filter ExhibitionFilter) (ExhibitionListResult, error) {
	var filters []query.Filter
	if category := strings.TrimSpace(filter.Category); category != "" {
		filters = append(filters, query.Equals{Field: "category", Value: category})
	}
	if organizer := strings.TrimSpace(filter.Organizer); organizer != "" {
		filters = append(filters, query.Contains{Fields: []string{"organizer"}, Term: organizer})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		filters = append(filters, query.Contains{Fields: []string{"title", "description"}, Term: search})
	}
	if status := strings.TrimSpace(filter.Status); status != "" {
		statusFilter, ok := statusFilters(status, s.opts.today())
		if ok {
			filters = append(filters, statusFilter...)
		} else {
			s.opts.logger.Debug().Str("status", status).Msg("ignoring unknown exhibition status filter")
		}
	}

	var result ExhibitionListResult
	pagination, err := s.builder.Find(s.db.WithContext(ctx), filter.Request, filters, &result.Items)
	if err != nil {
		return ExhibitionListResult{}, s.opts.storageError("failed to list exhibitions", err)
	}
	if result.Items == nil {
		result.Items = []db.Exhibition{}
	}
	result.Pagination = pagination
	return result, nil
}

// Get fetches an exhibition by id. found is false when no row exists.
func (s *ExhibitionService) Get(ctx context.Context, id uint, includeArtworks bool) (*ExhibitionDetail, bool, error) {
	tx := s.db.WithContext(ctx)

	var item db.Exhibition
	if err := tx.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, s.opts.storageError("failed to load exhibition", err)
	}

	detail := &ExhibitionDetail{
		Exhibition: item,
		Status:     StatusOf(item, s.opts.today()),
	}
	if includeArtworks {
		artworks, err := artworksOf(tx, id)
		if err != nil {
			return nil, false, s.opts.storageError("failed to load exhibition artworks", err)
		}
		detail.Artworks = artworks
	}
	return detail, true, nil
}

// Create validates and inserts a new exhibition.
func (s *ExhibitionService) Create(ctx context.Context, input ExhibitionInput) (*db.Exhibition, error) {
	record := exhibitionRecord{
		Title:             strings.TrimSpace(input.Title),
		Description:       strings.TrimSpace(input.Description),
		DetailDescription: trimPtr(input.DetailDescription),
		Location:          strings.TrimSpace(input.Location),
		StartDate:         input.StartDate.Time(),
		EndDate:           input.EndDate.Time(),
		Image:             trimPtr(input.Image),
		Category:          strings.TrimSpace(input.Category),
		Organizer:         strings.TrimSpace(input.Organizer),
	}
	if err := validateRecord(record, input.Rejected...); err != nil {
		return nil, err
	}

	var item db.Exhibition
	applyExhibitionRecord(&item, record)
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, s.opts.storageError("failed to create exhibition", err)
	}
	return &item, nil
}

// Update merges patch into the stored exhibition and validates the result as
// a whole before saving. found is false when no row exists.
func (s *ExhibitionService) Update(ctx context.Context, id uint, patch ExhibitionPatch) (*db.Exhibition, bool, error) {
	tx := s.db.WithContext(ctx)

	var item db.Exhibition
	if err := tx.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, s.opts.storageError("failed to load exhibition", err)
	}

	record := exhibitionRecord{
		Title:             item.Title,
		Description:       item.Description,
		DetailDescription: item.DetailDescription,
		Location:          item.Location,
		StartDate:         item.StartDate.Time(),
		EndDate:           item.EndDate.Time(),
		Image:             item.Image,
		Category:          item.Category,
		Organizer:         item.Organizer,
	}
	if patch.Title != nil {
		record.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		record.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.DetailDescription != nil {
		record.DetailDescription = trimPtr(patch.DetailDescription)
	}
	if patch.Location != nil {
		record.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.StartDate != nil {
		record.StartDate = patch.StartDate.Time()
	}
	if patch.EndDate != nil {
		record.EndDate = patch.EndDate.Time()
	}
	if patch.Image != nil {
		record.Image = trimPtr(patch.Image)
	}
	if patch.Category != nil {
		record.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Organizer != nil {
		record.Organizer = strings.TrimSpace(*patch.Organizer)
	}
	if err := validateRecord(record, patch.Rejected...); err != nil {
		return nil, true, err
	}

	applyExhibitionRecord(&item, record)
	if err := tx.Save(&item).Error; err != nil {
		return nil, true, s.opts.storageError("failed to update exhibition", err)
	}
	return &item, true, nil
}

// Delete removes an exhibition together with its artworks in one
// transaction. It reports false when no row exists.
func (s *ExhibitionService) Delete(ctx context.Context, id uint) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item db.Exhibition
		if err := tx.Select("id").First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("exhibition_id = ?", id).Delete(&db.Artwork{}).Error; err != nil {
			return fmt.Errorf("delete artworks: %w", err)
		}
		if err := tx.Delete(&db.Exhibition{}, id).Error; err != nil {
			return fmt.Errorf("delete exhibition: %w", err)
		}
		found = true
		return nil
	})
	if err != nil {
		return false, s.opts.storageError("failed to delete exhibition", err)
	}
	return found, nil
}

// Stats counts exhibitions per status and per category. The status counts
// use the same date predicates as the list status filter.
func (s *ExhibitionService) Stats(ctx context.Context) (ExhibitionStats, error) {
	tx := s.db.WithContext(ctx)
	today := s.opts.today()
	stats := ExhibitionStats{ByCategory: map[string]int64{}}

	if err := tx.Model(&db.Exhibition{}).Count(&stats.Total).Error; err != nil {
		return ExhibitionStats{}, s.opts.storageError("failed to compute statistics", err)
	}

	counts := []struct {
		status string
		dest   *int64
	}{
		{StatusActive, &stats.Active},
		{StatusUpcoming, &stats.Upcoming},
		{StatusPast, &stats.Past},
	}
	for _, c := range counts {
		filters, _ := statusFilters(c.status, today)
		q, err := s.builder.Where(tx.Model(&db.Exhibition{}), filters)
		if err != nil {
			return ExhibitionStats{}, s.opts.storageError("failed to compute statistics", err)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return ExhibitionStats{}, s.opts.storageError("failed to compute statistics", err)
		}
	}

	var rows []struct {
		Category string
		Count    int64
	}
	if err := tx.Model(&db.Exhibition{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error; err != nil {
		return ExhibitionStats{}, s.opts.storageError("failed to compute statistics", err)
	}
	for _, row := range rows {
		stats.ByCategory[row.Category] = row.Count
	}
	return stats, nil
}

// Categories returns the allowed category labels in their canonical order.
func (s *ExhibitionService) Categories() []string {
	out := make([]string, len(db.Categories))
	copy(out, db.Categories)
	return out
}

// Organizers returns the distinct organizer values, sorted ascending.
func (s *ExhibitionService) Organizers(ctx context.Context) ([]string, error) {
	organizers := []string{}
	if err := s.db.WithContext(ctx).Model(&db.Exhibition{}).
		Distinct("organizer").
		Order("organizer asc").
		Pluck("organizer", &organizers).Error; err != nil {
		return nil, s.opts.storageError("failed to list organizers", err)
	}
	return organizers, nil
}

// Search matches term against the text fields of every exhibition and
// returns all hits ordered by start date. A blank term matches every
// exhibition, the same way an empty list search does.
func (s *ExhibitionService) Search(ctx context.Context, term string) ([]db.Exhibition, error) {
	tx, err := s.builder.Where(s.db.WithContext(ctx).Model(&db.Exhibition{}), []query.Filter{
		query.Contains{
			Fields: []string{"title", "description", "location", "organizer", "category"},
			Term:   strings.TrimSpace(term),
		},
	})
	if err != nil {
		return nil, s.opts.storageError("failed to search exhibitions", err)
	}

	items := []db.Exhibition{}
	if err := tx.Order("start_date asc").Order("id asc").Find(&items).Error; err != nil {
		return nil, s.opts.storageError("failed to search exhibitions", err)
	}
	return items, nil
}

func applyExhibitionRecord(item *db.Exhibition, record exhibitionRecord) {
	item.Title = record.Title
	item.Description = record.Description
	item.DetailDescription = record.DetailDescription
	item.Location = record.Location
	item.StartDate = db.NewDate(record.StartDate)
	item.EndDate = db.NewDate(record.EndDate)
	item.Image = record.Image
	item.Category = record.Category
	item.Organizer = record.Organizer
}

// artworksOf lists the artworks of one exhibition, oldest first.
func artworksOf(tx *gorm.DB, exhibitionID uint) ([]db.Artwork, error) {
	artworks := []db.Artwork{}
	if err := tx.Where("exhibition_id = ?", exhibitionID).
		Order("created_at asc").
		Order("id asc").
		Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}
