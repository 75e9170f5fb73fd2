package upstream

import "fmt"

// Error codes for failures talking to the WedNest backend.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeNotFound        = "notFound"
	CodeValidation      = "validationError"
	CodeDuplicate       = "duplicate"
	CodeNetwork         = "networkError"
	CodeUpstream        = "upstreamError"
)

// Error is a typed failure from an upstream call.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code, msg string, err error) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

func codeOf(err error) string {
	if ue, ok := err.(*Error); ok {
		return ue.Code
	}
	return ""
}

// IsNotFound reports whether err is an upstream not-found failure.
func IsNotFound(err error) bool { return codeOf(err) == CodeNotFound }

// IsUnauthenticated reports whether err is an upstream auth failure.
func IsUnauthenticated(err error) bool { return codeOf(err) == CodeUnauthenticated }

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool { return codeOf(err) == CodeNetwork }

// IsDuplicate reports whether err is a duplicate/conflict failure.
func IsDuplicate(err error) bool { return codeOf(err) == CodeDuplicate }

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool { return codeOf(err) == CodeValidation }
