// Package api contains the HTTP handlers, request and response models,
// and the error-to-status mapping for the public API surface. Handlers
// stay thin: they decode and validate input, call a service or store, and
// translate the result. Raw internal errors are logged with trace IDs and
// never written to responses.
package api
