package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// Kind classifies every failure surfaced by the client.
type Kind int

const (
	KindValidation Kind = iota + 1 // bad input, caught before any request
	KindAuth                       // 401/403, invalid credentials
	KindNotFound                   // 404
	KindServer                     // 5xx, other non-2xx, malformed body
	KindNetwork                    // timeout, DNS, connection failure
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	}
	return "unknown"
}

type kindSentinel Kind

func (k kindSentinel) Error() string { return Kind(k).String() + " error" }

// Sentinels for errors.Is.
var (
	ErrValidation error = kindSentinel(KindValidation)
	ErrAuth       error = kindSentinel(KindAuth)
	ErrNotFound   error = kindSentinel(KindNotFound)
	ErrServer     error = kindSentinel(KindServer)
	ErrNetwork    error = kindSentinel(KindNetwork)
)

// Error is the single error type returned by every Client operation.
type Error struct {
	Kind    Kind
	Op      string
	Status  int    // HTTP status, 0 when no response was received
	Message string // human readable, safe to show to the user
	Err     error
}

func (e *Error) Error() string {
	if desc, ok := opDescriptions[e.Op]; ok {
		return fmt.Sprintf("%s: %s", desc, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	k, ok := target.(kindSentinel)
	return ok && Kind(k) == e.Kind
}

// KindOf returns the kind of a client error, or 0 for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

var opDescriptions = map[string]string{
	OpListVaccines:      "could not load vaccines",
	OpGetVaccine:        "could not load vaccine details",
	OpLogin:             "login failed",
	OpRegister:          "registration failed",
	OpListChildren:      "could not load children",
	OpAddChild:          "could not add child",
	OpListAppointments:  "could not load appointments",
	OpBookAppointment:   "could not book appointment",
	OpCancelAppointment: "could not cancel appointment",
}

func invalid(op string, err error) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: err.Error(), Err: err}
}

func malformed(op string, status int, err error) *Error {
	return &Error{Kind: KindServer, Op: op, Status: status, Message: "malformed response from server", Err: err}
}

func storageError(op string, err error) *Error {
	return &Error{Kind: KindServer, Op: op, Message: "login succeeded but the session could not be stored", Err: err}
}

func transportError(op string, err error) *Error {
	msg := err.Error()
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		msg = urlErr.Err.Error()
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		msg = "request timed out"
	}
	return &Error{Kind: KindNetwork, Op: op, Message: msg, Err: err}
}

func statusError(op string, status int, body []byte) *Error {
	msg := backendMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = fmt.Sprintf("unexpected status %d", status)
	}
	return &Error{Kind: kindForStatus(op, status), Op: op, Status: status, Message: msg}
}

func kindForStatus(op string, status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadRequest && (op == OpLogin || op == OpRegister):
		// The backend answers bad credentials and duplicate accounts with 400.
		return KindAuth
	}
	return KindServer
}

// backendMessage extracts msg, message or error from a JSON error body, in
// that order, falling back to the first entry of an "errors" array.
func backendMessage(body []byte) string {
	var payload struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
		Error   any    `json:"error"`
		Errors  []struct {
			Msg     string `json:"msg"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, s := range []string{payload.Msg, payload.Message} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	if s, ok := payload.Error.(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	for _, e := range payload.Errors {
		if e.Msg != "" {
			return e.Msg
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return ""
}
