package booking

import "fmt"

// Error codes carried by BookingError.
const (
	CodeInvalid  = "invalid"
	CodeNotFound = "notFound"
	CodeConflict = "conflict"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidError(msg string) error {
	return &BookingError{Code: CodeInvalid, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &BookingError{Code: CodeConflict, Message: msg}
}
