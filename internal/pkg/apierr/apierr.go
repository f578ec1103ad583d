package apierr

import "fmt"

// Error carries an HTTP status and a machine-readable code across the
// service boundary. Handlers unwrap it with Status/Code instead of
// matching on message text.
type Error struct {
	StatusCode int
	Code       string
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error (%d)", e.StatusCode)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{StatusCode: status, Code: code, Err: err}
}
