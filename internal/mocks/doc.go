// Package mocks provides hand-written mock implementations of the
// application's interfaces for use in tests.
package mocks
