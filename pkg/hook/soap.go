package hook

import (
	"bytes"
	"io"
	"net/http"

	"github.com/beevik/etree"
)

// SOAP envelope namespaces.
const (
	SOAP11Namespace = "http://schemas.xmlsoap.org/soap/envelope/"
	SOAP12Namespace = "http://www.w3.org/2003/05/soap-envelope"
)

// SOAPHook wraps http.DefaultTransport and intercepts SOAP calls only.
// Every other request goes to the transport that was in place on Enable.
type SOAPHook struct {
	previous http.RoundTripper
	enabled  bool
}

// NewSOAPHook returns a disabled SOAPHook.
func NewSOAPHook() Hook {
	return &SOAPHook{}
}

// Enable implements Hook.
func (h *SOAPHook) Enable(handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}
	if h.enabled {
		return ErrAlreadyEnabled
	}
	previous := http.DefaultTransport
	h.previous = previous
	http.DefaultTransport = RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		soap, err := IsSOAPRequest(req)
		if err != nil {
			return nil, err
		}
		if soap {
			return handler(req)
		}
		return previous.RoundTrip(req)
	})
	h.enabled = true
	return nil
}

// Disable implements Hook.
func (h *SOAPHook) Disable() error {
	if !h.enabled {
		return nil
	}
	http.DefaultTransport = h.previous
	h.previous = nil
	h.enabled = false
	return nil
}

// IsEnabled implements Hook.
func (h *SOAPHook) IsEnabled() bool {
	return h.enabled
}

// IsSOAPRequest reports whether req carries a SOAP 1.1 or 1.2 envelope.
// The body is buffered and restored so req can still be sent.
func IsSOAPRequest(req *http.Request) (bool, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return false, nil
	}
	data, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return false, err
	}
	req.Body = io.NopCloser(bytes.NewReader(data))

	return IsSOAPEnvelope(data), nil
}

// IsSOAPEnvelope reports whether body parses as an XML document whose root is
// an Envelope in one of the SOAP namespaces.
func IsSOAPEnvelope(body []byte) bool {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return false
	}

	root := doc.Root()
	if root == nil || root.Tag != "Envelope" {
		return false
	}

	switch root.NamespaceURI() {
	case SOAP11Namespace, SOAP12Namespace:
		return true
	}
	return false
}
