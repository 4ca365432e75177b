package router

import (
	"strings"
	"time"

	"github.com/exhibitions/internal/handler"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Options configure the HTTP engine.
type Options struct {
	Logger          zerolog.Logger
	CORSOrigins     []string
	UploadDir       string
	UploadURLPath   string
	RateLimitPerMin int
}

// SetupRouter configures the gin engine and routes.
func SetupRouter(api *handler.API, opts Options) *gin.Engine {
	r := gin.New()

	r.Use(RequestID())
	r.Use(RequestLogger(opts.Logger))
	r.Use(Recovery(opts.Logger))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))
	if opts.RateLimitPerMin > 0 {
		r.Use(RateLimit(opts.RateLimitPerMin))
	}

	if opts.UploadDir != "" {
		uploadURL := strings.TrimSpace(opts.UploadURLPath)
		if uploadURL == "" {
			uploadURL = "/uploads"
		}
		r.Static(uploadURL, opts.UploadDir)
	}

	r.GET("/", api.Banner)
	r.GET("/health", api.HealthCheck)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("", api.Banner)

		exhibitions := apiGroup.Group("/exhibitions")
		{
			exhibitions.GET("", api.ListExhibitions)
			exhibitions.POST("", api.CreateExhibition)
			exhibitions.GET("/stats", api.ExhibitionStats)
			exhibitions.GET("/categories", api.ExhibitionCategories)
			exhibitions.GET("/organizers", api.ExhibitionOrganizers)
			exhibitions.GET("/search", api.SearchExhibitions)
			exhibitions.GET("/:id", api.GetExhibition)
			exhibitions.PUT("/:id", api.UpdateExhibition)
			exhibitions.DELETE("/:id", api.DeleteExhibition)
			exhibitions.GET("/:id/artworks", api.ListExhibitionArtworks)
			exhibitions.POST("/:id/artworks", api.AddArtwork)
		}

		gallery := apiGroup.Group("/gallery")
		{
			gallery.GET("", api.ListArtworks)
			gallery.GET("/:id", api.GetArtwork)
			gallery.PUT("/:id", api.UpdateArtwork)
			gallery.DELETE("/:id", api.DeleteArtwork)
		}
	}

	r.NoRoute(api.NotFound)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
