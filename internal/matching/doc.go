// Package matching provides the built-in request matchers used to decide
// whether an intercepted request can be answered from a cassette.
//
// Every matcher compares a recorded request (first) with an incoming one
// (second) on a single aspect:
//
//   - method: HTTP method, case-insensitive
//   - url: URL path
//   - host: request host
//   - headers: every recorded header must be present with the same values
//   - body: exact body
//   - post_fields: form-encoded fields, order-insensitive
//   - query_string: decoded query parameters, order-insensitive
//
// A request is replayed only when all enabled matchers agree.
package matching
