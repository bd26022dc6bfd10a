package config

import (
	"errors"

	"github.com/getmockd/vcr/internal/capability"
)

// Error kinds returned by Configuration, checked with errors.Is.
var (
	// ErrInvalidArgument reports unknown hook or matcher names and malformed
	// matcher registrations.
	ErrInvalidArgument = capability.ErrInvalidArgument

	// ErrKeyNotFound reports an unknown storage name.
	ErrKeyNotFound = capability.ErrKeyNotFound

	// ErrConfiguration reports an unusable cassette path.
	ErrConfiguration = errors.New("configuration error")
)

// UnknownNamesError is returned when enabling or selecting names that are
// not registered. It lists every unknown name at once.
type UnknownNamesError = capability.UnknownNamesError

// CassettePathError reports a cassette path that is not an existing directory.
type CassettePathError struct {
	Path string
	// Err is the underlying stat error, nil when the path exists but is
	// not a directory.
	Err error
}

func (e *CassettePathError) Error() string {
	return "cassette path '" + e.Path + "' is not a directory. Please either " +
		"create it or set a different cassette path using " +
		"Configuration.SetCassettePath(\"directory\")"
}

func (e *CassettePathError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConfiguration}
	}
	return []error{ErrConfiguration, e.Err}
}
