package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies a provider failure so callers can decide whether a
// retry against another model makes sense.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindQuota covers rate limits and exhausted usage quotas.
	KindQuota
	// KindInvalid covers rejected requests: bad model name, malformed prompt.
	KindInvalid
	// KindTransient covers provider-side failures that may clear on their own.
	KindTransient
)

func (k ErrorKind) String() string {
	switch k {
	case KindQuota:
		return "quota"
	case KindInvalid:
		return "invalid"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// APIError is a classified failure returned by a provider client.
type APIError struct {
	Kind       ErrorKind
	Model      string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("llm %s error (model %s, http %d): %s", e.Kind, e.Model, e.StatusCode, e.Message)
}

// Classify maps a provider failure to an ErrorKind. The HTTP status is
// authoritative; message text is consulted only when the status says nothing.
func Classify(status int, message string) ErrorKind {
	switch {
	case status == http.StatusTooManyRequests:
		return KindQuota
	case status == http.StatusBadRequest, status == http.StatusNotFound,
		status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindInvalid
	case status >= 500:
		return KindTransient
	}
	msg := strings.ToLower(message)
	for _, phrase := range []string{"quota", "rate limit", "too many requests"} {
		if strings.Contains(msg, phrase) {
			return KindQuota
		}
	}
	return KindUnknown
}

// IsQuota reports whether err is a classified quota/rate-limit failure.
func IsQuota(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindQuota
}
