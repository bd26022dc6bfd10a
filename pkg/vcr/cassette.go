package vcr

import (
	"github.com/getmockd/vcr/pkg/config"
	"github.com/getmockd/vcr/pkg/recording"
	"github.com/getmockd/vcr/pkg/storage"
)

// Cassette answers requests from the recordings of one storage.
type Cassette struct {
	name     string
	storage  storage.Storage
	matchers []config.RequestMatcher
}

// NewCassette wraps an open storage. A request matches a recording only when
// every matcher agrees; with no matchers every recording matches.
func NewCassette(name string, s storage.Storage, matchers []config.RequestMatcher) *Cassette {
	return &Cassette{
		name:     name,
		storage:  s,
		matchers: matchers,
	}
}

// Name returns the cassette name.
func (c *Cassette) Name() string {
	return c.name
}

// Path returns the cassette file location.
func (c *Cassette) Path() string {
	return c.storage.Path()
}

// Playback returns the first recording whose request matches req.
func (c *Cassette) Playback(req *recording.RecordedRequest) (*recording.Recording, bool) {
	for _, rec := range c.storage.Recordings() {
		if c.matches(&rec.Request, req) {
			return &rec, true
		}
	}
	return nil, false
}

// Record persists rec in the cassette.
func (c *Cassette) Record(rec recording.Recording) error {
	return c.storage.Store(rec)
}

// Recordings returns every recording in the cassette.
func (c *Cassette) Recordings() []recording.Recording {
	return c.storage.Recordings()
}

func (c *Cassette) matches(recorded, incoming *recording.RecordedRequest) bool {
	for _, match := range c.matchers {
		if !match(recorded, incoming) {
			return false
		}
	}
	return true
}
