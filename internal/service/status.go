package service

import (
	"math"
	"strings"

	"github.com/exhibitions/internal/db"
	"github.com/exhibitions/internal/query"
)

const (
	StatusActive   = "active"
	StatusUpcoming = "upcoming"
	StatusPast     = "past"
)

// ExhibitionStatus is derived from the exhibition dates and today's date.
// It is never stored.
type ExhibitionStatus struct {
	IsActive   bool `json:"isActive"`
	IsUpcoming bool `json:"isUpcoming"`
	IsPast     bool `json:"isPast"`
	Duration   int  `json:"duration"`
}

// StatusOf computes the status of e as of today.
func StatusOf(e db.Exhibition, today db.Date) ExhibitionStatus {
	return ExhibitionStatus{
		IsActive:   IsActive(e, today),
		IsUpcoming: IsUpcoming(e, today),
		IsPast:     IsPast(e, today),
		Duration:   Duration(e.StartDate, e.EndDate),
	}
}

// IsActive reports whether today falls within the exhibition, bounds included.
func IsActive(e db.Exhibition, today db.Date) bool {
	return !today.Before(e.StartDate) && !today.After(e.EndDate)
}

// IsUpcoming reports whether the exhibition has not started yet.
func IsUpcoming(e db.Exhibition, today db.Date) bool {
	return today.Before(e.StartDate)
}

// IsPast reports whether the exhibition has ended.
func IsPast(e db.Exhibition, today db.Date) bool {
	return today.After(e.EndDate)
}

// Duration is the number of whole days between start and end, rounded up.
func Duration(start, end db.Date) int {
	days := math.Abs(end.Time().Sub(start.Time()).Hours()) / 24
	return int(math.Ceil(days))
}

// statusFilters translates a status name into date predicates equivalent to
// IsActive, IsUpcoming and IsPast. ok is false for unknown names.
func statusFilters(status string, today db.Date) (filters []query.Filter, ok bool) {
	day := today.Time()
	switch strings.ToLower(strings.TrimSpace(status)) {
	case StatusActive:
		return []query.Filter{
			query.Compare{Field: "startDate", Op: query.LessOrEqual, Value: day},
			query.Compare{Field: "endDate", Op: query.GreaterOrEqual, Value: day},
		}, true
	case StatusUpcoming:
		return []query.Filter{
			query.Compare{Field: "startDate", Op: query.Greater, Value: day},
		}, true
	case StatusPast:
		return []query.Filter{
			query.Compare{Field: "endDate", Op: query.Less, Value: day},
		}, true
	default:
		return nil, false
	}
}
