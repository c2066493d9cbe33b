// Package redact provides utilities for scrubbing sensitive information
// from strings before they are logged. Errors bubbling up from the hosted
// platform can embed connection strings, API keys, session tokens, or
// addresses; none of that may reach log output or clients.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedCredential = "[REDACTED_CREDENTIAL]"
	RedactedKey        = "[REDACTED_KEY]"
	RedactedJWT        = "[REDACTED_JWT]"
	RedactedEmail      = "[REDACTED_EMAIL]"
	RedactedPath       = "[REDACTED_PATH]"
	RedactedSQL        = "[REDACTED_SQL]"
	RedactedHost       = "[REDACTED_HOST]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order; earlier rules handle the more specific
// shapes so the broad host/path rules do not mangle them first.
var rules = []rule{
	// Database connection strings with inline credentials.
	{regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`), RedactedCredential},

	// Platform API keys passed as headers or query parameters.
	{regexp.MustCompile(`(?i)(apikey|api[_-]?key|service[_-]?role[_-]?key|anon[_-]?key|secret|authorization)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedKey},

	// Session and verification tokens in the standard three-part JWT shape.
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedJWT},

	// Email addresses (registration input echoed back by the platform).
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmail},

	// SQL fragments leaked from the profiles store.
	{regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)[\s\w,*()]+(?:FROM|INTO|SET)[\s\S]*`), RedactedSQL},

	// Storage object and filesystem paths.
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPath},

	// Bare host:port endpoints.
	{regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`), RedactedHost},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
