package query

import (
	"fmt"
	"strings"

	"gorm.io/gorm/clause"
)

// Filter is one predicate dimension of a list request. Filters are combined
// with AND. The set of variants is closed: Equals, Contains and Compare.
type Filter interface {
	expression(resolve columnResolver) (clause.Expression, error)
}

type columnResolver func(field string) (string, bool)

// Equals matches rows whose field equals Value exactly.
type Equals struct {
	Field string
	Value any
}

func (f Equals) expression(resolve columnResolver) (clause.Expression, error) {
	column, err := resolveFilterColumn(resolve, f.Field)
	if err != nil {
		return nil, err
	}
	return clause.Eq{Column: clause.Column{Name: column}, Value: f.Value}, nil
}

// Contains matches rows where any of Fields contains Term as a substring.
// Case sensitivity is whatever LIKE does on the underlying engine.
type Contains struct {
	Fields []string
	Term   string
}

func (f Contains) expression(resolve columnResolver) (clause.Expression, error) {
	if len(f.Fields) == 0 {
		return nil, fmt.Errorf("%w: contains filter without fields", ErrInvalidFilter)
	}
	if f.Term == "" {
		return nil, nil
	}

	pattern := "%" + f.Term + "%"
	exprs := make([]clause.Expression, 0, len(f.Fields))
	for _, field := range f.Fields {
		column, err := resolveFilterColumn(resolve, field)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, clause.Like{Column: clause.Column{Name: column}, Value: pattern})
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return clause.Or(exprs...), nil
}

// Operator is an ordering comparison used by Compare.
type Operator int

const (
	Less Operator = iota + 1
	LessOrEqual
	Greater
	GreaterOrEqual
)

func (op Operator) String() string {
	switch op {
	case Less:
		return "<"
	case LessOrEqual:
		return "<="
	case Greater:
		return ">"
	case GreaterOrEqual:
		return ">="
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

// Compare matches rows where Field Op Value holds.
type Compare struct {
	Field string
	Op    Operator
	Value any
}

func (f Compare) expression(resolve columnResolver) (clause.Expression, error) {
	column, err := resolveFilterColumn(resolve, f.Field)
	if err != nil {
		return nil, err
	}

	col := clause.Column{Name: column}
	switch f.Op {
	case Less:
		return clause.Lt{Column: col, Value: f.Value}, nil
	case LessOrEqual:
		return clause.Lte{Column: col, Value: f.Value}, nil
	case Greater:
		return clause.Gt{Column: col, Value: f.Value}, nil
	case GreaterOrEqual:
		return clause.Gte{Column: col, Value: f.Value}, nil
	default:
		return nil, fmt.Errorf("%w: unknown operator %s on %s", ErrInvalidFilter, f.Op, f.Field)
	}
}

func resolveFilterColumn(resolve columnResolver, field string) (string, error) {
	column, ok := resolve(field)
	if !ok {
		return "", fmt.Errorf("%w: unknown field %q", ErrInvalidFilter, strings.TrimSpace(field))
	}
	return column, nil
}
