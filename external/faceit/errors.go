package faceit

import (
	"fmt"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrInvalidConfig is returned by NewClient when the configuration cannot
	// produce a working client.
	ErrInvalidConfig = crerr.New("faceit: invalid client config")
	// ErrMissingAPIKey is returned by NewClient when no API key was supplied.
	// It wraps ErrInvalidConfig.
	ErrMissingAPIKey = crerr.Wrap(ErrInvalidConfig, "api key is required")
	// ErrInvalidInput is returned before any request is sent when an
	// operation argument is blank or malformed.
	ErrInvalidInput = crerr.New("faceit: invalid input")
	// ErrMapping is returned when a successful response does not have the
	// shape an operation needs, e.g. a listing without items.
	ErrMapping = crerr.New("faceit: unexpected response shape")
	// ErrResponseTooLarge is returned when a response body exceeds the read
	// cap. The APIError carrying it keeps the upstream status.
	ErrResponseTooLarge = crerr.New("faceit: response body too large")
)

// APIError is returned for every call that did not complete with a 2xx
// status. StatusCode and Body hold exactly what the upstream sent. A call that
// never produced a response (network failure, open circuit) has StatusCode 0
// and the cause in Err. A response that could not be read in full keeps its
// status and carries the cause in Err.
type APIError struct {
	StatusCode int
	// Body is the decoded JSON body when it parses, the raw text otherwise.
	Body    any
	RawBody []byte
	Method  string
	URL     string
	Err     error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("faceit: %s %s failed: %v", e.Method, e.URL, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("faceit: %s %s returned status=%d: %v", e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("faceit: %s %s returned status=%d body=%s", e.Method, e.URL, e.StatusCode, abbreviateBody(e.RawBody))
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Transient reports whether the failure says nothing about the request itself.
func (e *APIError) Transient() bool {
	return e.StatusCode == 0 || e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// AsAPIError extracts the *APIError from err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if crerr.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
