package service

import (
	"errors"
	"strings"
)

var (
	// ErrStorage marks failures of the backing store. The message carried by
	// the error is safe to show to clients; the cause is only logged.
	ErrStorage = errors.New("storage failure")
	// ErrExhibitionNotExists is returned when an artwork references an
	// exhibition id that has no row.
	ErrExhibitionNotExists = errors.New("exhibition with this id does not exist")
)

// FieldError is one violated field constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated constraint of a record.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return "validation failed: " + strings.Join(messages, ", ")
}

// StorageError wraps a store failure behind a client-safe message.
type StorageError struct {
	Message string
	cause   error
}

func (e *StorageError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrStorage) match.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// Cause returns the underlying store error for logging.
func (e *StorageError) Cause() error {
	return e.cause
}
