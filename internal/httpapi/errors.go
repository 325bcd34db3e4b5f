package httpapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-json-experiment/json"

	"github.com/input-output-hk/catalyst-forge-libs/object/errors"
)

// APIError is a non-2xx response from the object service.
type APIError struct {
	StatusCode int
	Method     string
	URL        string

	// Code and Message come from the service's JSON error body, when present
	Code    string
	Message string
}

func newAPIError(resp *http.Response) *APIError {
	e := &APIError{
		StatusCode: resp.StatusCode,
		Method:     resp.Request.Method,
		URL:        resp.Request.URL.Redacted(),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return e
	}
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) != nil {
		e.Message = string(body)
		return e
	}
	e.Code, e.Message = payload.Code, payload.Message
	return e
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap maps the status code to the matching sentinel error.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return errors.ErrInvalidInput
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return errors.ErrAccessDenied
	case e.StatusCode == http.StatusNotFound:
		return errors.ErrObjectNotFound
	case e.StatusCode == http.StatusConflict:
		return errors.ErrConflict
	case e.StatusCode == http.StatusTooManyRequests:
		return errors.ErrTooManyRequests
	case e.StatusCode >= 500:
		return errors.ErrServiceUnavailable
	default:
		return nil
	}
}
