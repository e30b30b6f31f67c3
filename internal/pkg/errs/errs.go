/*
Package errs provides custom error types and application-level error code constants.

This file defines CustomError, which carries a business code, a user-facing message
and the HTTP status used when the error reaches a client.
*/
package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"chatserver/internal/pkg/logx"
)

// CustomError is the error type returned to clients by the HTTP layer.
type CustomError struct {
	// Code is the business error code (see constants definition).
	Code int

	// Message is the user-friendly error description.
	Message string

	// Status is the HTTP status code corresponding to this error.
	Status int
}

// Error implements the error interface.
func (e CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// NewError builds a *CustomError from a predefined code.
// details are printf arguments for templates containing a verb. For ErrUnknown the
// first detail may be the underlying error, which is logged and never exposed.
// An unregistered code yields ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]

	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with an unknown code in errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)

		unknownErr := errorMap[ErrUnknown]
		return &unknownErr
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = http.StatusOK
	}

	switch {
	case code == ErrUnknown && len(details) > 0:
		if originalErr, ok := details[0].(error); ok {
			logx.Error(originalErr, "Handling ErrUnknown with underlying error")
		}
	case len(details) > 0:
		if strings.Contains(customErr.Message, "%") {
			customErr.Message = fmt.Sprintf(customErr.Message, details...)
		} else {
			logx.Warn("Details provided for error, but message template has no formatting placeholders. Details ignored.",
				"code", code)
		}
	}

	return &customErr
}

// As extracts a *CustomError from err. Anything else becomes ErrUnknown.
func As(err error) *CustomError {
	if err == nil {
		return nil
	}

	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr
	}

	return NewError(ErrUnknown, err)
}
