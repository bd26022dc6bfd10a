package cliconfig

import (
	"fmt"
	"net/url"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/getmockd/vcr/pkg/config"
	"github.com/getmockd/vcr/pkg/recording"
)

// matcherEnv declares the variables a matcher expression can use. Both are
// maps with the keys produced by requestEnv.
var matcherEnv = map[string]any{
	"first":  map[string]any{},
	"second": map[string]any{},
}

// CompileMatcher turns a boolean expression over the recorded request
// (first) and the incoming one (second) into a request matcher, e.g.
//
//	first.method == second.method && first.path == second.path
//
// Each request exposes method, url, host, path, query, body and headers
// (first value per header, canonical names). An expression that fails at
// run time does not match.
func CompileMatcher(expression string) (config.RequestMatcher, error) {
	program, err := expr.Compile(expression, expr.Env(matcherEnv), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	return func(first, second *recording.RecordedRequest) bool {
		return runMatcher(program, first, second)
	}, nil
}

func runMatcher(program *vm.Program, first, second *recording.RecordedRequest) bool {
	env := map[string]any{
		"first":  requestEnv(first),
		"second": requestEnv(second),
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false
	}
	ok, _ := out.(bool)
	return ok
}

func requestEnv(r *recording.RecordedRequest) map[string]any {
	headers := make(map[string]any, len(r.Headers))
	for name := range r.Headers {
		headers[name] = r.Headers.Get(name)
	}

	env := map[string]any{
		"method":  r.Method,
		"url":     r.URL,
		"host":    r.Host,
		"path":    "",
		"query":   "",
		"body":    r.Body,
		"headers": headers,
	}
	if u, err := url.Parse(r.URL); err == nil {
		env["path"] = u.Path
		env["query"] = u.RawQuery
	}
	return env
}
