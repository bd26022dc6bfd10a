// Package filter decides which source paths may be instrumented, based on
// the allow/deny lists of a vcr configuration.
package filter

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Lists is the part of a configuration the filter reads.
type Lists interface {
	WhiteList() []string
	BlackList() []string
}

// PathFilter evaluates paths against a snapshot of the allow/deny lists.
type PathFilter struct {
	whiteList []string
	blackList []string
}

// New snapshots the lists of cfg. Later changes to cfg are not seen.
func New(cfg Lists) *PathFilter {
	return &PathFilter{
		whiteList: cfg.WhiteList(),
		blackList: cfg.BlackList(),
	}
}

// Allows reports whether path may be instrumented. A deny entry always
// wins; an empty allow list allows everything else.
func (f *PathFilter) Allows(path string) bool {
	path = filepath.ToSlash(path)

	for _, pattern := range f.blackList {
		if Match(pattern, path) {
			return false
		}
	}

	if len(f.whiteList) == 0 {
		return true
	}
	for _, pattern := range f.whiteList {
		if Match(pattern, path) {
			return true
		}
	}
	return false
}

// Match reports whether path is covered by pattern. Patterns containing glob
// syntax are matched with doublestar (so ** spans directories); any other
// pattern matches when it occurs anywhere in path.
func Match(pattern, path string) bool {
	pattern = filepath.ToSlash(pattern)
	if pattern == "" {
		return false
	}
	if !strings.ContainsAny(pattern, "*?[{") {
		return strings.Contains(path, pattern)
	}
	ok, err := doublestar.Match(pattern, path)
	return err == nil && ok
}
