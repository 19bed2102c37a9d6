package service

import (
	"context"
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "field and message",
			err: &ValidationError{
				Field:   "youtube_link",
				Message: "must be an http(s) URL",
			},
			want: "validation error on field youtube_link: must be an http(s) URL",
		},
		{
			name: "empty field",
			err: &ValidationError{
				Field:   "",
				Message: "invalid",
			},
			want: "validation error on field : invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		msg     string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "nil error",
			err:     nil,
			msg:     "context",
			wantNil: true,
		},
		{
			name:    "wrapped error",
			err:     errors.New("original error"),
			msg:     "context",
			wantNil: false,
			wantMsg: "context: original error",
		},
		{
			name:    "empty message",
			err:     errors.New("original error"),
			msg:     "",
			wantNil: false,
			wantMsg: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError(tt.err, tt.msg)
			if tt.wantNil {
				if got != nil {
					t.Errorf("WrapError() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Errorf("WrapError() = nil, want error")
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("WrapError() = %v, want %v", got.Error(), tt.wantMsg)
			}
			// Verify error wrapping
			if !errors.Is(got, tt.err) {
				t.Errorf("WrapError() should wrap original error")
			}
		})
	}
}

func TestValidationError_IsInvalidInput(t *testing.T) {
	err := WrapError(&ValidationError{Field: "youtube_link", Message: "is required"}, "analyze")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("errors.Is(%v, ErrInvalidInput) = false, want true", err)
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "youtube_link" {
		t.Errorf("errors.As() did not find the ValidationError in %v", err)
	}
}

func TestClassify(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		wantKind bool
		wantMsg  string
	}{
		{
			name:     "wraps kind and cause",
			err:      cause,
			wantKind: true,
			wantMsg:  "fetch transcript: video source unavailable: boom",
		},
		{
			name:    "context cancellation is passed through",
			err:     context.Canceled,
			wantMsg: "fetch transcript: context canceled",
		},
		{
			name:    "deadline is passed through",
			err:     context.DeadlineExceeded,
			wantMsg: "fetch transcript: context deadline exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(ErrSourceUnavailable, tt.err, "fetch transcript")
			if errors.Is(got, ErrSourceUnavailable) != tt.wantKind {
				t.Errorf("classify() = %v, kind match want %v", got, tt.wantKind)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("classify() = %v, should wrap %v", got, tt.err)
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("classify() = %q, want %q", got.Error(), tt.wantMsg)
			}
		})
	}
}
