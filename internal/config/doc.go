// Package config defines the application configuration structure and its
// loading logic. Configuration is resolved once at startup from environment
// variables (COMMUNITY_ prefix) and an optional config.yaml, then validated
// so that misconfiguration fails the process instead of individual requests.
package config
