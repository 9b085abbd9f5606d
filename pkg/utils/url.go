package utils

import (
	"net/url"
	"strings"
)

// ToAbsoluteURL resolves ref against base. It returns "" when ref is blank,
// cannot be parsed, or cannot be made absolute (e.g. relative ref, nil base).
func ToAbsoluteURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if refURL.IsAbs() {
		return refURL.String()
	}
	if base == nil || !base.IsAbs() {
		return ""
	}
	return base.ResolveReference(refURL).String()
}

// IsHTTPURL reports whether raw is an absolute http or https URL with a host.
func IsHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Hostname returns the host part of raw, or "unknown" if it cannot be parsed.
func Hostname(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return u.Hostname()
}
