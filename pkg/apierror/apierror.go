package apierror

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// Kind classifies a failed backend request. Policy code (such as the
// catalog's degraded-write handling) must branch on Kind, never on
// error message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindCORS
	KindStatus
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindCORS:
		return "cors"
	case KindStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Error is a classified backend request failure
type Error struct {
	Kind     Kind
	Status   int    // set when Kind == KindStatus
	Endpoint string // method + path of the failed request
	Body     string // response body when available
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("%s: backend returned %d: %s", e.Endpoint, e.Status, e.Body)
	case KindCORS:
		return fmt.Sprintf("%s: request blocked by cross-origin policy: %v", e.Endpoint, e.Err)
	case KindNetwork:
		return fmt.Sprintf("%s: network failure: %v", e.Endpoint, e.Err)
	default:
		return fmt.Sprintf("%s: request failed: %v", e.Endpoint, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// corsMarkers are the transport-error substrings treated as evidence of a
// cross-origin rejection rather than application logic.
var corsMarkers = []string{
	"cors",
	"cross-origin",
	"access-control-allow-origin",
	"preflight",
}

// Classify converts a transport-layer error into a classified Error.
func Classify(endpoint string, err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	lower := strings.ToLower(err.Error())
	for _, marker := range corsMarkers {
		if strings.Contains(lower, marker) {
			return &Error{Kind: KindCORS, Endpoint: endpoint, Err: err}
		}
	}

	var urlErr *url.Error
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &urlErr),
		errors.As(err, &netErr):
		return &Error{Kind: KindNetwork, Endpoint: endpoint, Err: err}
	}

	return &Error{Kind: KindUnknown, Endpoint: endpoint, Err: err}
}

// FromResponse builds a classified Error from a non-2xx backend response.
func FromResponse(endpoint string, resp *http.Response, body []byte) *Error {
	return &Error{
		Kind:     KindStatus,
		Status:   resp.StatusCode,
		Endpoint: endpoint,
		Body:     strings.TrimSpace(string(body)),
	}
}

// IsCORS reports whether err is a CORS-classified failure
func IsCORS(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindCORS
}

// StatusCode extracts the HTTP status from a status-classified failure.
func StatusCode(err error) (int, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindStatus {
		return apiErr.Status, true
	}
	return 0, false
}
