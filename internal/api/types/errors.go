package types

import (
	"errors"

	appErr "github.com/leggettc18/devmarks/pkg/errors"
)

// FromAppError converts err into the envelope's error object. Internal and
// uncoded errors get a generic message so internals do not leak.
func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	var ae *appErr.AppError
	if !errors.As(err, &ae) || ae.Code == appErr.CodeInternal || ae.Code == appErr.CodeUnknown {
		return &APIError{Code: string(appErr.CodeInternal), Message: "internal server error"}
	}
	return &APIError{Code: string(ae.Code), Message: ae.Message}
}
