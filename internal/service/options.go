package service

import (
	"errors"
	"time"

	"github.com/exhibitions/internal/db"
	"github.com/exhibitions/internal/query"
	"github.com/rs/zerolog"
)

// Option configures the exhibition and gallery services.
type Option func(*options)

type options struct {
	logger      zerolog.Logger
	now         func() time.Time
	maxPageSize int
}

func newOptions(opts []Option) options {
	o := options{
		logger:      zerolog.Nop(),
		now:         time.Now,
		maxPageSize: query.DefaultMaxLimit,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for storage failures and ignored filters.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock replaces time.Now for status calculations.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithMaxPageSize caps the limit accepted by list operations.
func WithMaxPageSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.maxPageSize = size
		}
	}
}

// today is the server-local calendar date.
func (o options) today() db.Date {
	return db.NewDate(o.now())
}

// storageError logs err in full and returns a client-safe error. Query
// errors pass through untouched.
func (o options) storageError(message string, err error) error {
	if errors.Is(err, query.ErrQuery) {
		return err
	}
	o.logger.Error().Err(err).Msg(message)
	return &StorageError{Message: message, cause: err}
}

func mustBuilder(model any, defaultSort string, maxLimit int) *query.Builder {
	b, err := query.NewBuilder(model, defaultSort, query.WithMaxLimit(maxLimit))
	if err != nil {
		panic(err)
	}
	return b
}
