package service

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/exhibitions/internal/db"
	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		if err := v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return db.IsCategory(fl.Field().String())
		}); err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

// exhibitionRecord is the merged exhibition state that gets validated.
type exhibitionRecord struct {
	Title             string    `json:"title" validate:"required,max=255"`
	Description       string    `json:"description" validate:"required"`
	DetailDescription *string   `json:"detail_description" validate:"omitnil,min=1"`
	Location          string    `json:"location" validate:"required,max=255"`
	StartDate         time.Time `json:"startDate" validate:"required"`
	EndDate           time.Time `json:"endDate" validate:"required,gtfield=StartDate"`
	Image             *string   `json:"image" validate:"omitnil,min=1,max=500"`
	Category          string    `json:"category" validate:"required,category"`
	Organizer         string    `json:"organizer" validate:"required,max=255"`
}

type artworkRecord struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Artist      string  `json:"artist" validate:"required,max=255"`
	Description *string `json:"description"`
	ImageURL    string  `json:"imageUrl" validate:"required,max=500"`
}

// validateRecord checks record and merges in fields the caller rejected while
// decoding. A rejected field replaces whatever the validator says about it.
func validateRecord(record any, rejected ...FieldError) error {
	err := recordValidator().Struct(record)

	var fieldErrs validator.ValidationErrors
	if err != nil && !errors.As(err, &fieldErrs) {
		return err
	}
	if len(fieldErrs) == 0 && len(rejected) == 0 {
		return nil
	}

	skip := make(map[string]bool, len(rejected))
	for _, fe := range rejected {
		skip[fe.Field] = true
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs)+len(rejected))}
	for _, fe := range fieldErrs {
		if skip[fe.Field()] {
			continue
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	out.Fields = append(out.Fields, rejected...)

	order := fieldOrder(reflect.TypeOf(record))
	sort.SliceStable(out.Fields, func(i, j int) bool {
		return order[out.Fields[i].Field] < order[out.Fields[j].Field]
	})
	return out
}

// fieldOrder maps json field names to their declaration index.
func fieldOrder(t reflect.Type) map[string]int {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	order := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name = t.Field(i).Name
		}
		order[name] = i
	}
	return order
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must not be empty", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", fe.Field(), lowerFirst(fe.Param()))
	case "category":
		return fmt.Sprintf("%s must be one of the allowed values", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
