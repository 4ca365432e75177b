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

// GalleryService handles artwork CRUD.
type GalleryService struct {
	db      *gorm.DB
	builder *query.Builder
	opts    options
}

// GalleryFilter describes filters for listing artworks across exhibitions.
type GalleryFilter struct {
	query.Request
	ExhibitionID uint
	Search       string
}

// GalleryListResult aggregates paginated artwork results.
type GalleryListResult struct {
	Items      []ArtworkView
	Pagination query.Pagination
}

// ExhibitionRef is the part of an exhibition shown next to its artworks.
type ExhibitionRef struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

// ArtworkView is an artwork with a reference to its exhibition.
type ArtworkView struct {
	db.Artwork
	Exhibition *ExhibitionRef `json:"exhibition"`
}

// ArtworkInput represents fields accepted when adding an artwork.
type ArtworkInput struct {
	Title       string
	Artist      string
	Description *string
	ImageURL    string
}

// ArtworkPatch holds the artwork fields to change; nil means keep.
type ArtworkPatch struct {
	Title       *string
	Artist      *string
	Description *string
	ImageURL    *string
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB, opts ...Option) *GalleryService {
	o := newOptions(opts)
	return &GalleryService{
		db:      gdb,
		builder: mustBuilder(&db.Artwork{}, "createdAt", o.maxPageSize),
		opts:    o,
	}
}

// Add inserts an artwork into an existing exhibition.
func (s *GalleryService) Add(ctx context.Context, exhibitionID uint, input ArtworkInput) (*db.Artwork, error) {
	tx := s.db.WithContext(ctx)

	var exhibition db.Exhibition
	if err := tx.Select("id").First(&exhibition, exhibitionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrExhibitionNotExists, exhibitionID)
		}
		return nil, s.opts.storageError("failed to load exhibition", err)
	}

	record := artworkRecord{
		Title:       strings.TrimSpace(input.Title),
		Artist:      strings.TrimSpace(input.Artist),
		Description: trimPtr(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
	}
	if err := validateRecord(record); err != nil {
		return nil, err
	}

	item := db.Artwork{ExhibitionID: exhibitionID}
	applyArtworkRecord(&item, record)
	if err := tx.Create(&item).Error; err != nil {
		return nil, s.opts.storageError("failed to create artwork", err)
	}
	return &item, nil
}

// ListForExhibition returns the artworks of one exhibition, oldest first.
// Unknown exhibition ids yield an empty list.
func (s *GalleryService) ListForExhibition(ctx context.Context, exhibitionID uint) ([]db.Artwork, error) {
	items, err := artworksOf(s.db.WithContext(ctx), exhibitionID)
	if err != nil {
		return nil, s.opts.storageError("failed to list artworks", err)
	}
	return items, nil
}

// Get fetches an artwork with its exhibition reference. found is false when
// no row exists.
func (s *GalleryService) Get(ctx context.Context, id uint) (*ArtworkView, bool, error) {
	var item db.Artwork
	if err := s.db.WithContext(ctx).Scopes(preloadExhibitionRef).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, s.opts.storageError("failed to load artwork", err)
	}
	view := newArtworkView(item)
	return &view, true, nil
}

// Update merges patch into the stored artwork. The owning exhibition never
// changes. found is false when no row exists.
func (s *GalleryService) Update(ctx context.Context, id uint, patch ArtworkPatch) (*db.Artwork, bool, error) {
	tx := s.db.WithContext(ctx)

	var item db.Artwork
	if err := tx.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, s.opts.storageError("failed to load artwork", err)
	}

	record := artworkRecord{
		Title:       item.Title,
		Artist:      item.Artist,
		Description: item.Description,
		ImageURL:    item.ImageURL,
	}
	if patch.Title != nil {
		record.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Artist != nil {
		record.Artist = strings.TrimSpace(*patch.Artist)
	}
	if patch.Description != nil {
		record.Description = trimPtr(patch.Description)
	}
	if patch.ImageURL != nil {
		record.ImageURL = strings.TrimSpace(*patch.ImageURL)
	}
	if err := validateRecord(record); err != nil {
		return nil, true, err
	}

	applyArtworkRecord(&item, record)
	if err := tx.Save(&item).Error; err != nil {
		return nil, true, s.opts.storageError("failed to update artwork", err)
	}
	return &item, true, nil
}

// Remove deletes an artwork. It reports false when no row exists.
func (s *GalleryService) Remove(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&db.Artwork{}, id)
	if res.Error != nil {
		return false, s.opts.storageError("failed to delete artwork", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// List returns one page of artworks matching the filter.
func (s *GalleryService) List(ctx context.Context, filter GalleryFilter) (GalleryListResult, error) {
	var filters []query.Filter
	if filter.ExhibitionID != 0 {
		filters = append(filters, query.Equals{Field: "exhibitionId", Value: filter.ExhibitionID})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		filters = append(filters, query.Contains{Fields: []string{"title", "artist"}, Term: search})
	}

	var items []db.Artwork
	pagination, err := s.builder.Find(s.db.WithContext(ctx), filter.Request, filters, &items, preloadExhibitionRef)
	if err != nil {
		return GalleryListResult{}, s.opts.storageError("failed to list artworks", err)
	}

	result := GalleryListResult{
		Items:      make([]ArtworkView, 0, len(items)),
		Pagination: pagination,
	}
	for _, item := range items {
		result.Items = append(result.Items, newArtworkView(item))
	}
	return result, nil
}

func preloadExhibitionRef(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Exhibition", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "title", "location")
	})
}

func newArtworkView(item db.Artwork) ArtworkView {
	view := ArtworkView{Artwork: item}
	if item.Exhibition != nil {
		view.Exhibition = &ExhibitionRef{
			ID:       item.Exhibition.ID,
			Title:    item.Exhibition.Title,
			Location: item.Exhibition.Location,
		}
	}
	view.Artwork.Exhibition = nil
	return view
}

func applyArtworkRecord(item *db.Artwork, record artworkRecord) {
	item.Title = record.Title
	item.Artist = record.Artist
	item.Description = record.Description
	item.ImageURL = record.ImageURL
}
