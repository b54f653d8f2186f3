package logging

import (
	"net/url"
	"regexp"
	"strings"
)

// RedactedValue replaces secrets in conference links.
const RedactedValue = "[REDACTED]"

var addressPattern = regexp.MustCompile(`([A-Za-z0-9._%+-]+)@([A-Za-z0-9.-]+\.[A-Za-z]{2,})`)

// Query keys that carry meeting passcodes or tokens.
var sensitiveParams = []string{"pwd", "passcode", "password", "token", "key", "auth"}

// RedactAddress masks the local part of an email address, keeping the first
// character and the domain: "sarah@acme.io" -> "s***@acme.io".
func RedactAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	at := strings.LastIndex(addr, "@")
	if at <= 0 {
		return addr
	}
	local := []rune(addr[:at])
	return string(local[0]) + "***" + addr[at:]
}

// Redact masks every email address found in s.
func Redact(s string) string {
	return addressPattern.ReplaceAllStringFunc(s, RedactAddress)
}

// RedactLink drops passcode-style query values from a conference link.
func RedactLink(link string) string {
	parsed, err := url.Parse(strings.TrimSpace(link))
	if err != nil || parsed.RawQuery == "" {
		return link
	}
	query := parsed.Query()
	changed := false
	for key := range query {
		if IsSensitiveParam(key) {
			query.Set(key, RedactedValue)
			changed = true
		}
	}
	if !changed {
		return link
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// IsSensitiveParam reports whether a query key looks like a passcode.
func IsSensitiveParam(name string) bool {
	lower := strings.ToLower(name)
	for _, field := range sensitiveParams {
		if strings.Contains(lower, field) {
			return true
		}
	}
	return false
}
