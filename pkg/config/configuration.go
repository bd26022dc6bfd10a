package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/getmockd/vcr/internal/capability"
	"github.com/getmockd/vcr/internal/matching"
	"github.com/getmockd/vcr/pkg/hook"
	"github.com/getmockd/vcr/pkg/logging"
	"github.com/getmockd/vcr/pkg/recording"
	"github.com/getmockd/vcr/pkg/storage"
)

// DefaultCassettePath is the cassette directory used until SetCassettePath.
const DefaultCassettePath = "testdata/cassettes"

// DefaultStorage is the storage selected until SetStorage.
const DefaultStorage = storage.NameYAML

// DefaultBlackList holds the paths of vcr's own interception code, which
// must never be instrumented.
var DefaultBlackList = []string{"pkg/hook/", "pkg/vcr/", "pkg/filter/"}

// RequestMatcher reports whether an incoming request (second) matches a
// recorded one (first) on some aspect.
type RequestMatcher func(first, second *recording.RecordedRequest) bool

// Configuration is the registry of active vcr subsystems.
type Configuration struct {
	cassettePath string

	hooks    *capability.Registry[hook.Factory]
	storages *capability.Selector[storage.Factory]
	matchers *capability.Registry[RequestMatcher]

	whiteList []string
	blackList []string

	logger *slog.Logger
}

// Option configures a Configuration.
type Option func(*Configuration)

// WithLogger sets the logger used to report configuration changes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Configuration) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Configuration holding the built-in defaults: every hook and
// matcher enabled, yaml storage, DefaultCassettePath and DefaultBlackList.
func New(opts ...Option) *Configuration {
	c := &Configuration{
		cassettePath: DefaultCassettePath,
		hooks: capability.New("library hooks",
			capability.Entry[hook.Factory]{Name: hook.NameTransport, Value: hook.NewTransportHook},
			capability.Entry[hook.Factory]{Name: hook.NameClient, Value: hook.NewClientHook},
			capability.Entry[hook.Factory]{Name: hook.NameSOAP, Value: hook.NewSOAPHook},
		),
		storages: capability.NewSelector("storage", DefaultStorage,
			capability.Entry[storage.Factory]{Name: storage.NameJSON, Value: storage.OpenJSON},
			capability.Entry[storage.Factory]{Name: storage.NameYAML, Value: storage.OpenYAML},
		),
		matchers: capability.New("request matchers",
			capability.Entry[RequestMatcher]{Name: matching.NameMethod, Value: matching.MatchMethod},
			capability.Entry[RequestMatcher]{Name: matching.NameURL, Value: matching.MatchURL},
			capability.Entry[RequestMatcher]{Name: matching.NameHost, Value: matching.MatchHost},
			capability.Entry[RequestMatcher]{Name: matching.NameHeaders, Value: matching.MatchHeaders},
			capability.Entry[RequestMatcher]{Name: matching.NameBody, Value: matching.MatchBody},
			capability.Entry[RequestMatcher]{Name: matching.NamePostFields, Value: matching.MatchPostFields},
			capability.Entry[RequestMatcher]{Name: matching.NameQueryString, Value: matching.MatchQueryString},
		),
		whiteList: []string{},
		blackList: slices.Clone(DefaultBlackList),
		logger:    logging.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// LibraryHooks returns the active hook factories in registration order.
func (c *Configuration) LibraryHooks() []hook.Factory {
	return c.hooks.Active()
}

// LibraryHookNames returns the active hook names in registration order.
func (c *Configuration) LibraryHookNames() []string {
	return c.hooks.ActiveNames()
}

// AvailableLibraryHooks returns every known hook name.
func (c *Configuration) AvailableLibraryHooks() []string {
	return c.hooks.Names()
}

// EnabledLibraryHooks returns the names last passed to EnableLibraryHooks,
// in the order given. ok is false while every hook is active by default.
func (c *Configuration) EnabledLibraryHooks() (names []string, ok bool) {
	return c.hooks.Enabled()
}

// EnableLibraryHooks restricts the active hooks to names. When any name is
// unknown the returned error lists all of them and nothing changes.
func (c *Configuration) EnableLibraryHooks(names ...string) error {
	if err := c.hooks.Enable(names...); err != nil {
		return err
	}
	c.logger.Debug("library hooks enabled", "hooks", c.hooks.ActiveNames())
	return nil
}

// Storage returns the factory of the selected storage.
func (c *Configuration) Storage() storage.Factory {
	_, f := c.storages.Selected()
	return f
}

// StorageName returns the name of the selected storage.
func (c *Configuration) StorageName() string {
	name, _ := c.storages.Selected()
	return name
}

// AvailableStorages returns every known storage name.
func (c *Configuration) AvailableStorages() []string {
	return c.storages.Names()
}

// SetStorage selects the storage called name. An unknown name yields an
// error wrapping ErrKeyNotFound and keeps the current selection.
func (c *Configuration) SetStorage(name string) error {
	if err := c.storages.Select(name); err != nil {
		return err
	}
	c.logger.Debug("storage selected", "storage", name)
	return nil
}

// RequestMatchers returns the active request matchers in registration order.
func (c *Configuration) RequestMatchers() []RequestMatcher {
	return c.matchers.Active()
}

// RequestMatcherNames returns the active matcher names in registration order.
func (c *Configuration) RequestMatcherNames() []string {
	return c.matchers.ActiveNames()
}

// AvailableRequestMatchers returns every known matcher name, including
// those added with AddRequestMatcher.
func (c *Configuration) AvailableRequestMatchers() []string {
	return c.matchers.Names()
}

// EnabledRequestMatchers returns the names last passed to
// EnableRequestMatchers, in the order given. ok is false while every matcher
// is active by default.
func (c *Configuration) EnabledRequestMatchers() (names []string, ok bool) {
	return c.matchers.Enabled()
}

// AddRequestMatcher registers matcher under name, replacing any matcher
// already registered with that name.
func (c *Configuration) AddRequestMatcher(name string, matcher RequestMatcher) error {
	if name == "" {
		return fmt.Errorf("%w: a request matcher name must be at least one character long, found %q",
			ErrInvalidArgument, name)
	}
	if matcher == nil {
		return fmt.Errorf("%w: request matcher '%s' is not callable", ErrInvalidArgument, name)
	}
	c.matchers.Add(name, matcher)
	c.logger.Debug("request matcher added", "matcher", name)
	return nil
}

// EnableRequestMatchers restricts the active matchers to names. When any
// name is unknown the returned error lists all of them and nothing changes.
func (c *Configuration) EnableRequestMatchers(names ...string) error {
	if err := c.matchers.Enable(names...); err != nil {
		return err
	}
	c.logger.Debug("request matchers enabled", "matchers", c.matchers.ActiveNames())
	return nil
}

// CassettePath returns the cassette directory. The directory is checked on
// every call, so one removed after SetCassettePath is reported here.
func (c *Configuration) CassettePath() (string, error) {
	if err := checkCassettePath(c.cassettePath); err != nil {
		return "", err
	}
	return c.cassettePath, nil
}

// SetCassettePath sets the cassette directory, which must already exist.
func (c *Configuration) SetCassettePath(path string) error {
	if err := checkCassettePath(path); err != nil {
		return err
	}
	c.cassettePath = path
	c.logger.Debug("cassette path set", "path", path)
	return nil
}

func checkCassettePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &CassettePathError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return &CassettePathError{Path: path}
	}
	return nil
}

// BlackList returns the paths excluded from instrumentation.
func (c *Configuration) BlackList() []string {
	return slices.Clone(c.blackList)
}

// SetBlackList replaces the paths excluded from instrumentation.
func (c *Configuration) SetBlackList(paths ...string) *Configuration {
	c.blackList = normalizeList(paths)
	return c
}

// WhiteList returns the paths restricted to for instrumentation. An empty
// list means no restriction.
func (c *Configuration) WhiteList() []string {
	return slices.Clone(c.whiteList)
}

// SetWhiteList replaces the paths restricted to for instrumentation.
func (c *Configuration) SetWhiteList(paths ...string) *Configuration {
	c.whiteList = normalizeList(paths)
	return c
}

func normalizeList(paths []string) []string {
	if paths == nil {
		return []string{}
	}
	return slices.Clone(paths)
}
