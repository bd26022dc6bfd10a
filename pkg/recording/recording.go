// Package recording provides the request/response pairs stored in cassettes.
package recording

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recording represents a captured HTTP request/response pair.
type Recording struct {
	ID        string    `json:"id" yaml:"id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	Request  RecordedRequest  `json:"request" yaml:"request"`
	Response RecordedResponse `json:"response" yaml:"response"`

	Duration time.Duration `json:"duration" yaml:"duration"`
}

// RecordedRequest represents the captured request details.
type RecordedRequest struct {
	Method  string      `json:"method" yaml:"method"`
	URL     string      `json:"url" yaml:"url"`
	Host    string      `json:"host" yaml:"host"`
	Headers http.Header `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body    string      `json:"body,omitempty" yaml:"body,omitempty"`
}

// RecordedResponse represents the captured response details.
type RecordedResponse struct {
	StatusCode int         `json:"statusCode" yaml:"statusCode"`
	Status     string      `json:"statusText" yaml:"statusText"`
	Headers    http.Header `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body       string      `json:"body,omitempty" yaml:"body,omitempty"`
}

// NewRecording creates a new recording with a unique ID.
func NewRecording() *Recording {
	return &Recording{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
	}
}

// NewRecordedRequest captures details from an HTTP request.
// The request body is read and replaced so that req can still be sent.
func NewRecordedRequest(req *http.Request) (RecordedRequest, error) {
	body, err := readBody(&req.Body)
	if err != nil {
		return RecordedRequest{}, err
	}

	host := req.Host
	if host == "" && req.URL != nil {
		host = req.URL.Host
	}

	return RecordedRequest{
		Method:  req.Method,
		URL:     req.URL.String(),
		Host:    host,
		Headers: req.Header.Clone(),
		Body:    body,
	}, nil
}

// CaptureResponse captures details from an HTTP response. The response body
// is read and replaced so that resp can still be handed to the caller.
func (r *Recording) CaptureResponse(resp *http.Response, duration time.Duration) error {
	body, err := readBody(&resp.Body)
	if err != nil {
		return err
	}

	r.Response = RecordedResponse{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    resp.Header.Clone(),
		Body:       body,
	}
	r.Duration = duration
	return nil
}

// HTTPResponse builds a fresh *http.Response replaying the recorded one.
func (r *RecordedResponse) HTTPResponse(req *http.Request) *http.Response {
	status := r.Status
	if status == "" {
		status = http.StatusText(r.StatusCode)
	}
	header := r.Headers.Clone()
	if header == nil {
		header = make(http.Header)
	}

	return &http.Response{
		Status:        status,
		StatusCode:    r.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(r.Body)),
		ContentLength: int64(len(r.Body)),
		Request:       req,
	}
}

// DurationString returns a human-readable duration string.
func (r *Recording) DurationString() string {
	return r.Duration.String()
}

func readBody(body *io.ReadCloser) (string, error) {
	if *body == nil || *body == http.NoBody {
		return "", nil
	}
	data, err := io.ReadAll(*body)
	_ = (*body).Close()
	if err != nil {
		return "", err
	}
	*body = io.NopCloser(bytes.NewReader(data))
	return string(data), nil
}
