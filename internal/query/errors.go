package query

import (
	"errors"
	"fmt"
)

// ErrQuery is the root of every rejected list request.
var ErrQuery = errors.New("invalid query")

var (
	ErrInvalidSortField = fmt.Errorf("%w: invalid sort field", ErrQuery)
	ErrInvalidSortOrder = fmt.Errorf("%w: invalid sort order", ErrQuery)
	ErrInvalidFilter    = fmt.Errorf("%w: invalid filter", ErrQuery)
)
