package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/exhibitions/internal/db"
	"github.com/exhibitions/internal/query"
	"github.com/exhibitions/internal/service"
	"github.com/gin-gonic/gin"
)

const msgInternalError = "internal server error"

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondPage(c *gin.Context, data any, pagination query.Pagination) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "pagination": pagination})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func respondValidation(c *gin.Context, verr *service.ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": verr.Error(),
		"errors":  verr.Fields,
	})
}

// respondServiceError maps service and query errors onto HTTP statuses.
// Anything unrecognised is a 500 without detail.
func (a *API) respondServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respondValidation(c, verr)
	case errors.Is(err, query.ErrQuery):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrExhibitionNotExists):
		respondError(c, http.StatusNotFound, service.ErrExhibitionNotExists.Error())
	case errors.Is(err, service.ErrStorage):
		c.Error(err)
		respondError(c, http.StatusInternalServerError, err.Error())
	default:
		c.Error(err)
		a.logger.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled service error")
		respondError(c, http.StatusInternalServerError, msgInternalError)
	}
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// parseUintParam reads a positive id from the route.
func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// queryInt reads an integer query value. Missing or malformed values yield 0,
// which the query builder replaces with its default.
func queryInt(c *gin.Context, key string) int {
	value, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return 0
	}
	return value
}

func listRequest(c *gin.Context) query.Request {
	return query.Request{
		Page:      queryInt(c, "page"),
		Limit:     queryInt(c, "limit"),
		SortBy:    strings.TrimSpace(c.Query("sortBy")),
		SortOrder: strings.TrimSpace(c.Query("sortOrder")),
	}
}

// parseDateField parses an optional YYYY-MM-DD body value. nil means absent
// and an empty string is the zero date; malformed values are appended to fields.
func parseDateField(name string, raw *string, fields *[]service.FieldError) *db.Date {
	if raw == nil {
		return nil
	}
	if strings.TrimSpace(*raw) == "" {
		return &db.Date{}
	}
	date, err := db.ParseDate(*raw)
	if err != nil {
		*fields = append(*fields, service.FieldError{
			Field:   name,
			Message: fmt.Sprintf("%s must be a date in YYYY-MM-DD format", name),
		})
		return nil
	}
	return &date
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
