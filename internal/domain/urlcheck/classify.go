package urlcheck

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// MalformedURLError is returned by Scheme when a string is not an absolute URL.
type MalformedURLError struct {
	URL    string
	Reason string
}

func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("malformed URL %q: %s", e.URL, e.Reason)
}

// Scheme returns the lowercase scheme of raw. Strings that do not parse, or
// parse without a scheme, are reported as *MalformedURLError.
func Scheme(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		reason := err.Error()
		var ue *url.Error
		if errors.As(err, &ue) {
			reason = ue.Err.Error()
		}
		return "", &MalformedURLError{URL: raw, Reason: reason}
	}
	if u.Scheme == "" {
		return "", &MalformedURLError{URL: raw, Reason: "no protocol: " + raw}
	}
	return strings.ToLower(u.Scheme), nil
}

// IsHTTP reports whether a scheme is probed over the network.
func IsHTTP(scheme string) bool {
	return scheme == "http" || scheme == "https"
}
