package service

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoCaptions is returned when the video has no usable transcript.
	ErrNoCaptions = errors.New("no captions available")
	// ErrSourceUnavailable is returned when the video cannot be loaded.
	ErrSourceUnavailable = errors.New("video source unavailable")
	// ErrExternalService is returned when an external service call fails.
	ErrExternalService = errors.New("external service error")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// classify wraps err with sentinel kind unless err is a context error,
// which is passed through so callers can tell cancellation apart.
func classify(kind, err error, msg string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return WrapError(err, msg)
	}
	return fmt.Errorf("%s: %w: %w", msg, kind, err)
}
