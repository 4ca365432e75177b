package query

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

const (
	DefaultPage     = 1
	DefaultLimit    = 10
	DefaultMaxLimit = 100
)

const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// Request carries the paging and sorting half of a list call. Zero values
// mean "use the default".
type Request struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Pagination is the envelope returned next to every list result.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// NewPagination derives the envelope for one page of a filtered set.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// Builder turns a Request plus filters into count and page queries against
// one gorm model. Sort and filter fields are checked against the model's
// mapped columns.
type Builder struct {
	model       any
	columns     map[string]string
	defaultSort string
	maxLimit    int
}

// Option tweaks a Builder.
type Option func(*Builder)

// WithMaxLimit caps the page size. Non-positive values keep the default cap.
func WithMaxLimit(limit int) Option {
	return func(b *Builder) {
		if limit > 0 {
			b.maxLimit = limit
		}
	}
}

// NewBuilder indexes the columns of model. defaultSort must name one of them.
func NewBuilder(model any, defaultSort string, opts ...Option) (*Builder, error) {
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("parse model schema: %w", err)
	}

	b := &Builder{
		model:    model,
		columns:  make(map[string]string, len(s.Fields)*3),
		maxLimit: DefaultMaxLimit,
	}
	for _, field := range s.Fields {
		if field.DBName == "" {
			continue
		}
		b.columns[strings.ToLower(field.Name)] = field.DBName
		b.columns[strings.ToLower(field.DBName)] = field.DBName
		if name := jsonName(field.Tag.Get("json")); name != "" {
			b.columns[strings.ToLower(name)] = field.DBName
		}
	}
	for _, opt := range opts {
		opt(b)
	}

	column, ok := b.Column(defaultSort)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrInvalidSortField, defaultSort)
	}
	b.defaultSort = column
	return b, nil
}

// Column maps an API or Go field name to its column.
func (b *Builder) Column(field string) (string, bool) {
	column, ok := b.columns[strings.ToLower(strings.TrimSpace(field))]
	return column, ok
}

// MaxLimit is the largest page size the builder will serve.
func (b *Builder) MaxLimit() int {
	return b.maxLimit
}

// Normalize applies the page and limit defaults and the page size cap.
// Pages are capped so that the row offset plus limit still fits in an int.
func (b *Builder) Normalize(req Request) (page, limit int) {
	limit = req.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > b.maxLimit {
		limit = b.maxLimit
	}
	page = req.Page
	if page < 1 {
		page = DefaultPage
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return page, limit
}

// Where translates filters into conditions on tx.
func (b *Builder) Where(tx *gorm.DB, filters []Filter) (*gorm.DB, error) {
	for _, f := range filters {
		if f == nil {
			continue
		}
		expr, err := f.expression(b.Column)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			tx = tx.Where(expr)
		}
	}
	return tx, nil
}

// OrderBy validates the sort part of req.
func (b *Builder) OrderBy(req Request) (clause.OrderByColumn, error) {
	column := b.defaultSort
	if sortBy := strings.TrimSpace(req.SortBy); sortBy != "" {
		resolved, ok := b.Column(sortBy)
		if !ok {
			return clause.OrderByColumn{}, fmt.Errorf("%w %q", ErrInvalidSortField, sortBy)
		}
		column = resolved
	}

	desc := false
	switch strings.ToUpper(strings.TrimSpace(req.SortOrder)) {
	case "", OrderAsc:
	case OrderDesc:
		desc = true
	default:
		return clause.OrderByColumn{}, fmt.Errorf("%w %q", ErrInvalidSortOrder, req.SortOrder)
	}

	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}, nil
}

// Find counts the filtered set, then loads the requested page into dest in
// sorted order. scopes only affect the page query (e.g. preloads).
func (b *Builder) Find(tx *gorm.DB, req Request, filters []Filter, dest any, scopes ...func(*gorm.DB) *gorm.DB) (Pagination, error) {
	page, limit := b.Normalize(req)

	order, err := b.OrderBy(req)
	if err != nil {
		return Pagination{}, err
	}

	countQuery, err := b.Where(tx.Model(b.model), filters)
	if err != nil {
		return Pagination{}, err
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	pageQuery, err := b.Where(tx.Model(b.model), filters)
	if err != nil {
		return Pagination{}, err
	}
	pageQuery = pageQuery.Order(order)
	if _, hasID := b.columns["id"]; hasID && order.Column.Name != "id" {
		pageQuery = pageQuery.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: order.Desc})
	}

	if err := pageQuery.Scopes(scopes...).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	return NewPagination(page, limit, total), nil
}

func jsonName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}
