// Package supabase wraps the hosted platform's HTTP APIs: the identity
// service (account signup, password grants, logout, admin deletion) and
// the object store (upload, public URL derivation, removal). One Client is
// constructed at startup from configuration and injected into the services
// that need it; nothing here is process-global.
package supabase
