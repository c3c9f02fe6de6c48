package store

import (
	"errors"
	"fmt"
)

// ErrMissingID is returned by Save when a node has no ID.
var ErrMissingID = errors.New("node has no id")

// NotFoundError reports a node ID with no stored row.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("node %q not found", e.ID)
}

// IsNotFound returns true if err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
