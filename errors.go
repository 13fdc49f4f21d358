package pamfax

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed     = errors.New("request failed")
	ErrMalformedResponse = errors.New("malformed response")
	ErrFaxJobFailed      = errors.New("fax job failed")
	ErrNotLoggedIn       = errors.New("no user token, call Login first")

	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrEmptyNumber      = errors.New("fax number cannot be empty")
	ErrEmptyUUID        = errors.New("uuid cannot be empty")
	ErrEmptyFileName    = errors.New("file name cannot be empty")
	ErrEmptyFileData    = errors.New("file data cannot be empty")
	ErrEmptyRemoteURL   = errors.New("remote file url cannot be empty")
	ErrEmptyProvider    = errors.New("storage provider cannot be empty")
	ErrInvalidPageRange = errors.New("page number must be positive")
	ErrNilReader        = errors.New("reader cannot be nil")
	ErrNilWriter        = errors.New("writer cannot be nil")
)

// APIError is returned when the service answers with a result code other than "success".
type APIError struct {
	Operation Operation
	Code      string
	Message   string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s failed with code %s", e.Operation, e.Code)
	}
	return fmt.Sprintf("%s failed with code %s: %s", e.Operation, e.Code, e.Message)
}

// IsCode reports whether err is an APIError carrying the given result code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// errCode formats a failure when the API reports a non-success code.
func errCode(operation Operation, result Result) error {
	return &APIError{Operation: operation, Code: result.Code, Message: result.Message}
}

// errStatus formats an error with the HTTP status.
func errStatus(operation Operation, statusCode int, status string) error {
	return fmt.Errorf("%s failed with status %d: %s: %w", operation, statusCode, status, ErrRequestFailed)
}

// errTransport wraps a transport failure reported by the HTTP client.
func errTransport(operation Operation, err error) error {
	return fmt.Errorf("%s failed: %w: %w", operation, ErrRequestFailed, err)
}

func errMalformed(operation Operation, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", operation, fmt.Sprintf(format, args...), ErrMalformedResponse)
}
