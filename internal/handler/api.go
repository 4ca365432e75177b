package handler

import (
	"time"

	"github.com/exhibitions/internal/service"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Version is reported by the service banner.
const Version = "1.0.0"

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	exhibitions *service.ExhibitionService
	gallery     *service.GalleryService
	logger      zerolog.Logger
}

// Options tune the services behind the handlers.
type Options struct {
	Logger      zerolog.Logger
	Clock       func() time.Time
	MaxPageSize int
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, opts Options) *API {
	serviceOpts := []service.Option{
		service.WithLogger(opts.Logger),
		service.WithClock(opts.Clock),
		service.WithMaxPageSize(opts.MaxPageSize),
	}

	return &API{
		db:          gdb,
		exhibitions: service.NewExhibitionService(gdb, serviceOpts...),
		gallery:     service.NewGalleryService(gdb, serviceOpts...),
		logger:      opts.Logger,
	}
}
