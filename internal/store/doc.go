// Package store defines the persistence interfaces and sentinel errors for
// the relational profile store. Implementations live under
// internal/platform; services depend only on these interfaces.
package store
