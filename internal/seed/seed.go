// Package seed loads the sample catalogue into an empty or existing database.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/exhibitions/internal/db"
	"github.com/exhibitions/internal/service"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Config controls a seed run.
type Config struct {
	// UploadsBaseURL prefixes every sample image file name.
	UploadsBaseURL string
	Logger         zerolog.Logger
	Clock          func() time.Time
}

// Report summarises what a seed run created.
type Report struct {
	Exhibitions int
	Artworks    int
	Stats       service.ExhibitionStats
}

// Seed replaces the catalogue with the sample data in one transaction. Any
// failure rolls the database back to its previous content.
func Seed(ctx context.Context, gdb *gorm.DB, cfg Config) (Report, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.UploadsBaseURL), "/")
	if baseURL == "" {
		return Report{}, fmt.Errorf("seed: uploads base url is required")
	}

	var report Report
	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearCatalogue(tx); err != nil {
			return err
		}

		opts := []service.Option{service.WithLogger(cfg.Logger), service.WithClock(cfg.Clock)}
		exhibitions := service.NewExhibitionService(tx, opts...)
		gallery := service.NewGalleryService(tx, opts...)

		for _, sample := range samples {
			exhibition, err := exhibitions.Create(ctx, sample.input(baseURL))
			if err != nil {
				return fmt.Errorf("create exhibition %q: %w", sample.Title, err)
			}
			report.Exhibitions++
			cfg.Logger.Info().Uint("id", exhibition.ID).Str("title", exhibition.Title).Msg("exhibition created")

			for _, artwork := range sample.Artworks {
				if _, err := gallery.Add(ctx, exhibition.ID, artwork.input(baseURL)); err != nil {
					return fmt.Errorf("add artwork %q to %q: %w", artwork.Title, sample.Title, err)
				}
				report.Artworks++
			}
		}

		stats, err := exhibitions.Stats(ctx)
		if err != nil {
			return fmt.Errorf("collect stats: %w", err)
		}
		report.Stats = stats
		return nil
	})
	if err != nil {
		return Report{}, err
	}
	return report, nil
}

func clearCatalogue(tx *gorm.DB) error {
	all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := all.Delete(&db.Artwork{}).Error; err != nil {
		return fmt.Errorf("clear gallery: %w", err)
	}
	if err := all.Delete(&db.Exhibition{}).Error; err != nil {
		return fmt.Errorf("clear exhibitions: %w", err)
	}
	return nil
}

func (s exhibitionSample) input(baseURL string) service.ExhibitionInput {
	detail := s.DetailDescription
	image := baseURL + "/" + s.Image
	return service.ExhibitionInput{
		Title:             s.Title,
		Description:       s.Description,
		DetailDescription: &detail,
		Location:          s.Location,
		StartDate:         db.MustDate(s.StartDate),
		EndDate:           db.MustDate(s.EndDate),
		Image:             &image,
		Category:          s.Category,
		Organizer:         s.Organizer,
	}
}

func (a artworkSample) input(baseURL string) service.ArtworkInput {
	description := a.Description
	return service.ArtworkInput{
		Title:       a.Title,
		Artist:      a.Artist,
		Description: &description,
		ImageURL:    baseURL + "/" + a.Image,
	}
}
