package pkg

import "net/http"

// AppError is the error envelope returned by every HTTP handler.
//
// Code is a stable, machine-readable identifier; Message is safe to show to
// the operator. Err keeps the underlying cause for logging and is never
// serialized.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Retryable  bool
	Err        error
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
	Details   any    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

// NewRetryableError marks failures where the caller should offer a retry
// action (store unavailable, timeouts).
func NewRetryableError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status, Retryable: true}
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Retryable: e.Retryable}
}

// ToHTTPErrorWithDetails attaches extra payload, e.g. accepted/rejected counts.
func (e *AppError) ToHTTPErrorWithDetails(details any) HTTPError {
	body := e.ToHTTPError()
	body.Details = details
	return body
}

// Internal is the fallback for unmapped errors.
func Internal(err error) *AppError {
	return NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
