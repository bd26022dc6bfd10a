// Package hook provides the interception points vcr installs into net/http.
//
// A Hook diverts outgoing requests to a Handler while it is enabled. Hooks
// replace process-global values (http.DefaultTransport, http.DefaultClient)
// and must not be toggled concurrently.
package hook

import (
	"errors"
	"net/http"
)

// Built-in hook names.
const (
	NameTransport = "transport"
	NameClient    = "client"
	NameSOAP      = "soap"
)

// Errors returned by hooks.
var (
	ErrAlreadyEnabled = errors.New("hook already enabled")
	ErrNilHandler     = errors.New("hook handler cannot be nil")
)

// Handler answers an intercepted request.
type Handler func(req *http.Request) (*http.Response, error)

// Hook intercepts outgoing HTTP requests.
type Hook interface {
	// Enable starts sending intercepted requests to handler.
	Enable(handler Handler) error

	// Disable restores whatever was in place before Enable. Disabling a
	// disabled hook is a no-op.
	Disable() error

	// IsEnabled reports whether the hook is currently intercepting.
	IsEnabled() bool
}

// Factory constructs a fresh, disabled hook.
type Factory func() Hook

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
