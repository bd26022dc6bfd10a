package matching

import (
	"net/http"
	"testing"

	"github.com/getmockd/vcr/pkg/recording"
)

func req(method, rawURL string) *recording.RecordedRequest {
	return &recording.RecordedRequest{
		Method:  method,
		URL:     rawURL,
		Host:    "example.com",
		Headers: http.Header{},
	}
}

func TestMatchMethod(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"GET", "GET", true},
		{"get", "GET", true},
		{"GET", "POST", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			got := MatchMethod(req(tt.a, "/"), req(tt.b, "/"))
			if got != tt.want {
				t.Errorf("MatchMethod(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMatchURL(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"same path", "http://example.com/users", "http://example.com/users", true},
		{"query ignored", "http://example.com/users?a=1", "http://example.com/users?a=2", true},
		{"different path", "http://example.com/users", "http://example.com/orders", false},
		{"empty path is root", "http://example.com", "http://example.com/", true},
		{"unparsable", "http://[::1", "http://example.com/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchURL(req("GET", tt.a), req("GET", tt.b)); got != tt.want {
				t.Errorf("MatchURL(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMatchHost(t *testing.T) {
	a := req("GET", "/")
	b := req("GET", "/")
	b.Host = "EXAMPLE.com"
	if !MatchHost(a, b) {
		t.Error("expected hosts to match case-insensitively")
	}

	b.Host = "other.com"
	if MatchHost(a, b) {
		t.Error("expected different hosts not to match")
	}
}

func TestMatchHeaders(t *testing.T) {
	recorded := req("GET", "/")
	recorded.Headers.Set("Accept", "application/json")

	incoming := req("GET", "/")
	incoming.Headers.Set("accept", "application/json")
	incoming.Headers.Set("X-Extra", "1")

	if !MatchHeaders(recorded, incoming) {
		t.Error("expected recorded headers to be a subset of incoming headers")
	}
	if MatchHeaders(incoming, recorded) {
		t.Error("expected missing header to fail")
	}

	incoming.Headers.Set("Accept", "text/html")
	if MatchHeaders(recorded, incoming) {
		t.Error("expected differing header value to fail")
	}
}

func TestMatchBody(t *testing.T) {
	a := req("POST", "/")
	b := req("POST", "/")
	a.Body, b.Body = "x=1", "x=1"
	if !MatchBody(a, b) {
		t.Error("expected identical bodies to match")
	}
	b.Body = "x=2"
	if MatchBody(a, b) {
		t.Error("expected differing bodies not to match")
	}
}

func TestMatchPostFields(t *testing.T) {
	form := func(body string) *recording.RecordedRequest {
		r := req("POST", "/")
		r.Headers.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
		r.Body = body
		return r
	}

	if !MatchPostFields(form("a=1&b=2"), form("b=2&a=1")) {
		t.Error("expected field order to be ignored")
	}
	if MatchPostFields(form("a=1"), form("a=2")) {
		t.Error("expected differing fields not to match")
	}

	plain := req("POST", "/")
	plain.Body = "a=1"
	if !MatchPostFields(plain, req("POST", "/")) {
		t.Error("expected non-form requests to carry no fields")
	}
	if MatchPostFields(form("a=1"), plain) {
		t.Error("expected form and non-form requests not to match")
	}
}

func TestMatchQueryString(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"same", "/s?q=go&page=2", "/s?page=2&q=go", true},
		{"different value", "/s?q=go", "/s?q=rust", false},
		{"missing", "/s?q=go", "/s", false},
		{"both empty", "/s", "/t", true},
		{"encoded", "/s?q=a%20b", "/s?q=a+b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchQueryString(req("GET", tt.a), req("GET", tt.b)); got != tt.want {
				t.Errorf("MatchQueryString(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
