package capability

import (
	"errors"
	"strings"
)

// Sentinel errors, checked with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrKeyNotFound     = errors.New("key not found")
)

// UnknownNamesError reports every requested name that a registry does not know.
type UnknownNamesError struct {
	// Kind is the plural, human-readable registry kind (e.g. "library hooks").
	Kind string
	// Names lists the unknown names in request order, without duplicates.
	Names []string
	// Err is the sentinel this error unwraps to.
	Err error
}

func (e *UnknownNamesError) Error() string {
	if len(e.Names) == 1 && e.Err == ErrKeyNotFound {
		return e.Kind + " '" + e.Names[0] + "' not available"
	}
	return e.Kind + " don't exist: " + strings.Join(e.Names, ", ")
}

func (e *UnknownNamesError) Unwrap() error {
	return e.Err
}
