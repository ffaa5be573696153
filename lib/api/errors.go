package api

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/gravitational/trace"
)

// HTTPError is returned for responses with a non-2xx status
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	// Body holds the beginning of the response body
	Body string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%v %v: %v %v: %v",
		e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

func (e *HTTPError) httpError() *HTTPError {
	return e
}

// The wrappers below classify an HTTPError for trace.IsNotFound and friends

type notFoundError struct{ *HTTPError }

func (notFoundError) IsNotFoundError() bool { return true }

type accessDeniedError struct{ *HTTPError }

func (accessDeniedError) IsAccessDeniedError() bool { return true }

type alreadyExistsError struct{ *HTTPError }

func (alreadyExistsError) IsAlreadyExistsError() bool { return true }

type badParameterError struct{ *HTTPError }

func (badParameterError) IsBadParameterError() bool { return true }

// AsHTTPError returns the HTTPError err was caused by
func AsHTTPError(err error) (*HTTPError, bool) {
	if err == nil {
		return nil, false
	}
	e, ok := trace.Unwrap(err).(interface{ httpError() *HTTPError })
	if !ok {
		return nil, false
	}
	return e.httpError(), true
}

// IsHTTPError returns true if err was caused by an error response
func IsHTTPError(err error) bool {
	_, ok := AsHTTPError(err)
	return ok
}

// StatusCode returns the response status err was caused by or 0
func StatusCode(err error) int {
	if e, ok := AsHTTPError(err); ok {
		return e.StatusCode
	}
	return 0
}

// maxErrorBody bounds how much of an error response body is kept
const maxErrorBody = 4096

// RaiseForStatus returns an error for responses with a non-2xx status.
// The body of an error response is consumed
func RaiseForStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := ioutil.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	e := &HTTPError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
	if resp.Request != nil {
		e.Method = resp.Request.Method
		e.URL = resp.Request.URL.String()
	}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return trace.Wrap(notFoundError{e})
	case http.StatusUnauthorized, http.StatusForbidden:
		return trace.Wrap(accessDeniedError{e})
	case http.StatusConflict:
		return trace.Wrap(alreadyExistsError{e})
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return trace.Wrap(badParameterError{e})
	}
	return trace.Wrap(e)
}
