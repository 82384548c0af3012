package apfid

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "error with message",
			err: &Error{
				Op:  "Parse",
				Err: ErrInvalidIdentifier,
				Msg: "1abc",
			},
			expected: "Parse: 1abc: invalid apfid",
		},
		{
			name: "error without message",
			err: &Error{
				Op:  "Format",
				Err: ErrUnsupportedVersion,
			},
			expected: "Format: unsupported apfid version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "wrapped ErrInvalidFormat matches",
			err:    &Error{Op: "ParseAlphaFoldID", Err: ErrInvalidFormat},
			target: ErrInvalidFormat,
			want:   true,
		},
		{
			name: "double wrapped error matches",
			err: &Error{
				Op:  "Parse",
				Err: fmt.Errorf("%w: bad number", ErrInvalidIdentifier),
			},
			target: ErrInvalidIdentifier,
			want:   true,
		},
		{
			name:   "different error does not match",
			err:    &Error{Op: "Format", Err: ErrUnsupportedVersion},
			target: ErrInvalidIdentifier,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.target)
			if got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrors_FromOperations(t *testing.T) {
	_, err := ParseAlphaFoldID("XY_P12345")
	var apErr *Error
	if !errors.As(err, &apErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apErr.Op != "ParseAlphaFoldID" {
		t.Errorf("Op = %q, want %q", apErr.Op, "ParseAlphaFoldID")
	}

	_, err = Parse("nothing here")
	if !errors.As(err, &apErr) || apErr.Op != "Parse" {
		t.Errorf("expected Parse *Error, got %v", err)
	}
}
