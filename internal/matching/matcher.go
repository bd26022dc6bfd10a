package matching

import (
	"maps"
	"mime"
	"net/url"
	"slices"
	"strings"

	"github.com/getmockd/vcr/pkg/recording"
)

// Built-in matcher names, in their default order.
const (
	NameMethod      = "method"
	NameURL         = "url"
	NameHost        = "host"
	NameHeaders     = "headers"
	NameBody        = "body"
	NamePostFields  = "post_fields"
	NameQueryString = "query_string"
)

const formContentType = "application/x-www-form-urlencoded"

// MatchMethod checks if the request methods match.
func MatchMethod(first, second *recording.RecordedRequest) bool {
	return strings.EqualFold(first.Method, second.Method)
}

// MatchURL checks if the request URL paths match.
func MatchURL(first, second *recording.RecordedRequest) bool {
	a, ok := parseURL(first.URL)
	if !ok {
		return false
	}
	b, ok := parseURL(second.URL)
	if !ok {
		return false
	}
	return normalizePath(a.Path) == normalizePath(b.Path)
}

// MatchHost checks if the request hosts match. Hosts are case-insensitive.
func MatchHost(first, second *recording.RecordedRequest) bool {
	return strings.EqualFold(first.Host, second.Host)
}

// MatchHeaders checks that every header of first is present in second with
// the same values. Header names are case-insensitive (per HTTP spec).
func MatchHeaders(first, second *recording.RecordedRequest) bool {
	for name, values := range first.Headers {
		actual := second.Headers.Values(name)
		if !slices.Equal(values, actual) {
			return false
		}
	}
	return true
}

// MatchBody checks if the request bodies are identical.
func MatchBody(first, second *recording.RecordedRequest) bool {
	return first.Body == second.Body
}

// MatchPostFields checks if the form-encoded fields of both requests are
// equal, ignoring field order. Requests that are not form posts carry no
// fields.
func MatchPostFields(first, second *recording.RecordedRequest) bool {
	return valuesEqual(postFields(first), postFields(second))
}

// MatchQueryString checks if the decoded query parameters are equal,
// ignoring parameter order.
func MatchQueryString(first, second *recording.RecordedRequest) bool {
	a, ok := parseURL(first.URL)
	if !ok {
		return false
	}
	b, ok := parseURL(second.URL)
	if !ok {
		return false
	}
	return valuesEqual(a.Query(), b.Query())
}

func parseURL(raw string) (*url.URL, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	return u, true
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func postFields(r *recording.RecordedRequest) url.Values {
	ct := r.Headers.Get("Content-Type")
	if ct == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || mediaType != formContentType {
		return nil
	}
	values, err := url.ParseQuery(r.Body)
	if err != nil {
		return nil
	}
	return values
}

func valuesEqual(a, b url.Values) bool {
	return maps.EqualFunc(a, b, func(x, y []string) bool {
		return slices.Equal(x, y)
	})
}
