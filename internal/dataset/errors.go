// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

// ErrorKind is a coarse-grained categorization of plan loading errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindUnknownMatrix ErrorKind = "unknown_matrix"
	KindBadMatrix     ErrorKind = "bad_matrix"
)

// ErrInvalidConfig marks field-level validation failures inside a plan.
var ErrInvalidConfig = errors.New("invalid plan")

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // plan file, when known
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err carries an *OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
