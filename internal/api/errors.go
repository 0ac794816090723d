package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// User-facing messages for the failure classes the wizard surfaces. The
// draft always survives any of these; the user retries manually.
const (
	MsgBackendDown    = "Backend server is not running. Start the backend and try again."
	MsgOriginRejected = "The backend rejected this client's origin. Check the backend's allowed origins."
)

// APIError is a structured rejection from the backend (non-2xx with a body)
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError is a failure before any HTTP response arrived
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// rejectionBody is the error shape the backend returns on non-2xx responses
type rejectionBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// classifyTransport maps network-level failures to user-facing messages.
// A refused connection means the backend is simply not up.
func classifyTransport(err error) error {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return &TransportError{Message: MsgBackendDown, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TransportError{Message: "The request to the backend timed out. Try again.", Err: err}
	}
	return &TransportError{Message: fmt.Sprintf("Network error: %v", err), Err: err}
}

// classifyRejection surfaces the backend's own message when it sent one,
// falling back to a generic status line. An origin rejection gets its own
// message so it is distinguishable from a plain 4xx.
func classifyRejection(status int, body []byte) error {
	var parsed rejectionBody
	_ = json.Unmarshal(body, &parsed)

	msg := parsed.Message
	if msg == "" {
		msg = parsed.Error
	}

	if status == 403 && strings.Contains(strings.ToLower(msg), "origin") {
		return &APIError{StatusCode: status, Message: MsgOriginRejected}
	}

	if msg == "" {
		msg = fmt.Sprintf("Server error: %d", status)
	}
	return &APIError{StatusCode: status, Message: msg}
}

// UserMessage extracts the message to show near the submit control
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var trErr *TransportError
	if errors.As(err, &trErr) {
		return trErr.Message
	}
	return err.Error()
}
