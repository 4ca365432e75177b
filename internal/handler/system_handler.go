package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Banner describes the service and its entry points.
func (a *API) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API for the largest art exhibitions of Ukraine",
		"version": Version,
		"endpoints": gin.H{
			"exhibitions": "/api/exhibitions",
			"gallery":     "/api/gallery",
		},
	})
}

// HealthCheck pings the database for load balancers and monitoring.
func (a *API) HealthCheck(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "database handle unavailable",
		})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
	})
}

// NotFound answers unmatched routes.
func (a *API) NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "route not found")
}
