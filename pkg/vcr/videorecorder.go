// Package vcr records HTTP interactions into cassettes and replays them.
//
// A Videorecorder reads everything it needs from a config.Configuration:
// which hooks to install, which storage format to use, where cassettes live
// and which matchers decide that a request was already recorded.
//
//	cfg := config.New()
//	_ = cfg.SetCassettePath("testdata/cassettes")
//
//	rec := vcr.New(cfg)
//	if err := rec.TurnOn(); err != nil {
//	    t.Fatal(err)
//	}
//	defer rec.TurnOff()
//	if err := rec.Insert("github-users"); err != nil {
//	    t.Fatal(err)
//	}
//
//	resp, err := http.Get("https://api.github.com/users")
//
// The first run performs real requests and records them; later runs replay.
package vcr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/getmockd/vcr/pkg/config"
	"github.com/getmockd/vcr/pkg/hook"
	"github.com/getmockd/vcr/pkg/logging"
	"github.com/getmockd/vcr/pkg/recording"
)

// Errors returned by the videorecorder.
var (
	ErrNoCassette  = errors.New("no cassette inserted")
	ErrAlreadyOn   = errors.New("videorecorder already turned on")
	ErrNotTurnedOn = errors.New("videorecorder is turned off")
)

// Videorecorder intercepts outgoing requests and serves them from a cassette.
type Videorecorder struct {
	config   *config.Configuration
	logger   *slog.Logger
	upstream http.RoundTripper

	hooks []hook.Hook
	on    bool

	// mu guards cassette, which hook handlers read from the goroutines
	// issuing requests.
	mu       sync.RWMutex
	cassette *Cassette
}

// Option configures a Videorecorder.
type Option func(*Videorecorder)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Videorecorder) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithUpstream sets the transport used for requests that are not on the
// cassette yet.
func WithUpstream(rt http.RoundTripper) Option {
	return func(v *Videorecorder) {
		if rt != nil {
			v.upstream = rt
		}
	}
}

// New creates a turned-off videorecorder reading cfg.
func New(cfg *config.Configuration, opts ...Option) *Videorecorder {
	v := &Videorecorder{
		config:   cfg,
		logger:   logging.Nop(),
		upstream: defaultUpstream(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// defaultUpstream returns a private copy of the stock transport so that
// hooks replacing http.DefaultTransport do not loop back into vcr.
func defaultUpstream() http.RoundTripper {
	if t, ok := http.DefaultTransport.(*http.Transport); ok {
		return t.Clone()
	}
	return &http.Transport{Proxy: http.ProxyFromEnvironment}
}

// TurnOn installs every active library hook.
func (v *Videorecorder) TurnOn() error {
	if v.on {
		return ErrAlreadyOn
	}

	names := v.config.LibraryHookNames()
	var enabled []hook.Hook
	for i, factory := range v.config.LibraryHooks() {
		h := factory()
		if err := h.Enable(v.handleRequest); err != nil {
			_ = disableAll(enabled)
			return fmt.Errorf("failed to enable library hook %s: %w", names[i], err)
		}
		enabled = append(enabled, h)
	}

	v.hooks = enabled
	v.on = true
	v.logger.Debug("videorecorder turned on", "hooks", names)
	return nil
}

// TurnOff ejects the cassette and removes the hooks, newest first.
func (v *Videorecorder) TurnOff() error {
	if !v.on {
		return nil
	}
	v.Eject()
	err := disableAll(v.hooks)
	v.hooks = nil
	v.on = false
	v.logger.Debug("videorecorder turned off")
	return err
}

func disableAll(hooks []hook.Hook) error {
	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i].Disable(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IsOn reports whether hooks are installed.
func (v *Videorecorder) IsOn() bool {
	return v.on
}

// Insert opens the cassette called name with the configured storage and
// request matchers, replacing any inserted cassette.
func (v *Videorecorder) Insert(name string) error {
	if !v.on {
		return ErrNotTurnedOn
	}

	dir, err := v.config.CassettePath()
	if err != nil {
		return err
	}
	s, err := v.config.Storage()(dir, name)
	if err != nil {
		return fmt.Errorf("failed to open cassette %s: %w", name, err)
	}

	cassette := NewCassette(name, s, v.config.RequestMatchers())
	v.mu.Lock()
	v.cassette = cassette
	v.mu.Unlock()

	v.logger.Debug("cassette inserted",
		"cassette", name,
		"path", s.Path(),
		"storage", v.config.StorageName(),
		"matchers", v.config.RequestMatcherNames())
	return nil
}

// Eject removes the inserted cassette, if any.
func (v *Videorecorder) Eject() {
	v.mu.Lock()
	ejected := v.cassette
	v.cassette = nil
	v.mu.Unlock()

	if ejected != nil {
		v.logger.Debug("cassette ejected", "cassette", ejected.Name())
	}
}

// Cassette returns the inserted cassette or nil.
func (v *Videorecorder) Cassette() *Cassette {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cassette
}

// handleRequest is the hook handler: replay when possible, else record.
func (v *Videorecorder) handleRequest(req *http.Request) (*http.Response, error) {
	cassette := v.Cassette()
	if cassette == nil {
		return nil, fmt.Errorf("%w: cannot handle %s %s", ErrNoCassette, req.Method, req.URL)
	}

	incoming, err := recording.NewRecordedRequest(req)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if rec, ok := cassette.Playback(&incoming); ok {
		v.logger.Debug("replaying request", "method", req.Method, "url", req.URL.String(), "recording", rec.ID)
		return rec.Response.HTTPResponse(req), nil
	}

	start := time.Now()
	resp, err := v.upstream.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	rec := recording.NewRecording()
	rec.Request = incoming
	if err := rec.CaptureResponse(resp, time.Since(start)); err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if err := cassette.Record(*rec); err != nil {
		return nil, fmt.Errorf("failed to record %s %s: %w", req.Method, req.URL, err)
	}

	v.logger.Debug("recorded request", "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode)
	return resp, nil
}
