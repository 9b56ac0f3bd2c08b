package magiceden

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	ErrParseRawAmount = errors.New("parse raw amount error")
	ErrMissingItems   = errors.New("at least one item is required")
)

// TransportError reports the request never produced an HTTP response:
// connection, DNS, TLS, or deadline failures.
type TransportError struct {
	Url string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error for %s: %s", e.Url, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was the per-call deadline firing.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	if errors.As(e.Err, &nerr) {
		return nerr.Timeout()
	}
	return false
}

// AuthError reports a 401 or 403 response.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error: status code %d, body: %s", e.StatusCode, e.Body)
}

// RequestError reports a 4xx rejection carrying the remote's structured
// message.
type RequestError struct {
	StatusCode int
	Name       string
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("status code: %d error: %s message: %s", e.StatusCode, e.Name, e.Message)
}

// OrderFilledError reports a 410 on BuyTokens: the targeted order was
// already filled or canceled.
type OrderFilledError struct {
	StatusCode int
	Name       string
	Message    string
	Code       int
}

func (e *OrderFilledError) Error() string {
	return fmt.Sprintf("already filled: status_code=%d, error=%s, message=%s, code=%d", e.StatusCode, e.Name, e.Message, e.Code)
}

// ServerError reports a 5xx response.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("status code %d, body: %s", e.StatusCode, e.Body)
}

// ParseError reports a body that did not match the expected schema. The
// original bytes are retained so callers can inspect what the remote sent.
type ParseError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("body: %s error: %s", e.Body, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// errorBody is the remote's structured error payload
type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Code       int    `json:"code"`
}
