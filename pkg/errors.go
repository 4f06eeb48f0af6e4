package pkg

import (
	"os"
)

// AppError is the application-level error carried from use cases to the HTTP
// layer. Code is a stable machine-readable identifier; HTTPStatus is the
// status the handler should answer with.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON error body returned to clients.
//
// Detail carries the underlying error text and is only populated outside
// production so internals never leak to end users.
type HTTPError struct {
	ErrorCode string `json:"error"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{
		ErrorCode: e.Code,
		Message:   e.Message,
	}
	if e.Err != nil && !isProduction() {
		out.Detail = e.Err.Error()
	}
	return out
}

func isProduction() bool {
	switch os.Getenv("APP_ENV") {
	case "production", "prod":
		return true
	}
	return os.Getenv("GIN_MODE") == "release"
}
