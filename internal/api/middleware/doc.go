// Package middleware provides the HTTP middleware applied by the router:
// trace-ID propagation and cookie-based session authentication.
package middleware
