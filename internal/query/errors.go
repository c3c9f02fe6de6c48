package query

import (
	"errors"
	"fmt"
)

// Error codes for query expressions.
const (
	ErrCodeBadPredicate = "E301" // Predicate expression not understood
	ErrCodeBadAggregate = "E302" // Unknown aggregate name
)

// ExprError reports an expression that could not be parsed.
type ExprError struct {
	Code    string
	Expr    string
	Message string
}

func (e *ExprError) Error() string {
	return fmt.Sprintf("%s: %s: %q", e.Code, e.Message, e.Expr)
}

// IsExprError returns true if err is or wraps an ExprError.
func IsExprError(err error) bool {
	var ee *ExprError
	return errors.As(err, &ee)
}
