package domain

import (
	"net/url"
	"strings"
)

// Connection carries the per-call Oracle Fusion target and credentials.
// It is supplied fresh on every tool invocation, threaded by value through
// the pipeline, and never stored, cached, or logged in full.
type Connection struct {
	BaseURL   string
	Username  string
	Password  string
	VerifySSL bool // default true; false skips certificate validation only
}

// Validate checks the required connection fields.
func (c Connection) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return &ErrValidation{Field: "base_url", Message: "required"}
	}
	u, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &ErrValidation{Field: "base_url", Message: "must be an absolute http(s) URL"}
	}
	if strings.TrimSpace(c.Username) == "" {
		return &ErrValidation{Field: "username", Message: "required"}
	}
	if c.Password == "" {
		return &ErrValidation{Field: "password", Message: "required"}
	}
	return nil
}

// Host returns the upstream host:port, used for logging and for keying
// the per-host circuit breaker. Never includes credentials.
func (c Connection) Host() string {
	u, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil || u.Host == "" {
		return strings.TrimSpace(c.BaseURL)
	}
	return u.Host
}

// Redacted returns a log-safe rendering of the connection: host plus a
// masked username, no password in any form.
func (c Connection) Redacted() string {
	return c.Host() + " as " + MaskValue(c.Username)
}

// String implements fmt.Stringer so an accidental %v of a Connection
// cannot leak the password.
func (c Connection) String() string {
	return "oracle://" + c.Redacted()
}

// MaskValue keeps only the last 4 characters of a sensitive value.
func MaskValue(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if len(v) <= 4 {
		return "****"
	}
	return "****" + v[len(v)-4:]
}
