package errors

import (
	"context"
	"errors"
	"net/http"
)

// Fallback messages used when the backend does not supply one.
const (
	msgAuthentication = "Invalid email or password."
	msgUnauthorized   = "Your session has expired. Please sign in again."
	msgForbidden      = "You do not have permission to perform this action."
	msgNotFound       = "Resource not found."
	msgValidation     = "The request was rejected. Please check your input."
	msgServer         = "The leave service is temporarily unavailable. Please try again."
	msgNetwork        = "Unable to reach the leave service. Please try again."
)

// MapTransportError maps errors returned by an HTTP round trip to AppError instances.
// Context deadlines and cancellations keep their own codes; everything else is a network error.
func MapTransportError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out. Please try again.",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "Request was canceled.",
			Cause:   err,
		}
	}

	return &AppError{
		Code:    ErrCodeNetwork,
		Message: msgNetwork,
		Cause:   err,
	}
}

// FromStatus classifies a non-2xx backend response.
// A 401 on a credential exchange is an authentication failure; on any other call it means
// the session is no longer valid. An empty message falls back to a generic one per code.
func FromStatus(status int, message string, credentialExchange bool) *AppError {
	code, fallback := classifyStatus(status, credentialExchange)
	if message == "" {
		message = fallback
	}
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

func classifyStatus(status int, credentialExchange bool) (ErrorCode, string) {
	switch {
	case status == http.StatusUnauthorized && credentialExchange:
		return ErrCodeAuthentication, msgAuthentication
	case status == http.StatusUnauthorized:
		return ErrCodeUnauthorized, msgUnauthorized
	case status == http.StatusForbidden:
		return ErrCodeForbidden, msgForbidden
	case status == http.StatusNotFound:
		return ErrCodeNotFound, msgNotFound
	case status >= 400 && status < 500:
		return ErrCodeValidation, msgValidation
	default:
		return ErrCodeServer, msgServer
	}
}
