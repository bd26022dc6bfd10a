package hook

import "net/http"

// TransportHook replaces http.DefaultTransport.
type TransportHook struct {
	previous http.RoundTripper
	enabled  bool
}

// NewTransportHook returns a disabled TransportHook.
func NewTransportHook() Hook {
	return &TransportHook{}
}

// Enable implements Hook.
func (h *TransportHook) Enable(handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}
	if h.enabled {
		return ErrAlreadyEnabled
	}
	h.previous = http.DefaultTransport
	http.DefaultTransport = RoundTripperFunc(handler)
	h.enabled = true
	return nil
}

// Disable implements Hook.
func (h *TransportHook) Disable() error {
	if !h.enabled {
		return nil
	}
	http.DefaultTransport = h.previous
	h.previous = nil
	h.enabled = false
	return nil
}

// IsEnabled implements Hook.
func (h *TransportHook) IsEnabled() bool {
	return h.enabled
}

// ClientHook replaces the transport of http.DefaultClient.
type ClientHook struct {
	previous http.RoundTripper
	enabled  bool
}

// NewClientHook returns a disabled ClientHook.
func NewClientHook() Hook {
	return &ClientHook{}
}

// Enable implements Hook.
func (h *ClientHook) Enable(handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}
	if h.enabled {
		return ErrAlreadyEnabled
	}
	h.previous = http.DefaultClient.Transport
	http.DefaultClient.Transport = RoundTripperFunc(handler)
	h.enabled = true
	return nil
}

// Disable implements Hook.
func (h *ClientHook) Disable() error {
	if !h.enabled {
		return nil
	}
	http.DefaultClient.Transport = h.previous
	h.previous = nil
	h.enabled = false
	return nil
}

// IsEnabled implements Hook.
func (h *ClientHook) IsEnabled() bool {
	return h.enabled
}
