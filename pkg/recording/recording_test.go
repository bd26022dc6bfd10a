package recording

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecording(t *testing.T) {
	a := NewRecording()
	b := NewRecording()

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())
}

func TestNewRecordedRequest_KeepsBodyReadable(t *testing.T) {
	req, err := http.NewRequest(http.MethodPost, "http://example.com/api?x=1", strings.NewReader("payload"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")

	captured, err := NewRecordedRequest(req)
	require.NoError(t, err)

	assert.Equal(t, "POST", captured.Method)
	assert.Equal(t, "http://example.com/api?x=1", captured.URL)
	assert.Equal(t, "example.com", captured.Host)
	assert.Equal(t, "text/plain", captured.Headers.Get("Content-Type"))
	assert.Equal(t, "payload", captured.Body)

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(body))
}

func TestNewRecordedRequest_NoBody(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://example.com/", nil)
	require.NoError(t, err)

	captured, err := NewRecordedRequest(req)
	require.NoError(t, err)
	assert.Empty(t, captured.Body)
}

func TestCaptureResponse_AndReplay(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusCreated,
		Status:     "201 Created",
		Header:     http.Header{"X-Id": []string{"7"}},
		Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
	}

	rec := NewRecording()
	require.NoError(t, rec.CaptureResponse(resp, 25*time.Millisecond))

	assert.Equal(t, 201, rec.Response.StatusCode)
	assert.Equal(t, `{"ok":true}`, rec.Response.Body)
	assert.Equal(t, "25ms", rec.DurationString())

	original, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(original))

	replayed := rec.Response.HTTPResponse(nil)
	assert.Equal(t, 201, replayed.StatusCode)
	assert.Equal(t, "7", replayed.Header.Get("X-Id"))
	body, err := io.ReadAll(replayed.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
}

func TestHTTPResponse_DefaultsStatusText(t *testing.T) {
	r := RecordedResponse{StatusCode: http.StatusNotFound}

	resp := r.HTTPResponse(nil)

	assert.Equal(t, "Not Found", resp.Status)
	assert.NotNil(t, resp.Header)
}
