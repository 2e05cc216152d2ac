package formatkit

import (
	"errors"
	"io/fs"
	"testing"
)

func TestDetectErrorFormatting(t *testing.T) {
	inner := errors.New("boom")
	tests := []struct {
		name string
		err  *DetectError
		want string
	}{
		{
			name: "with path",
			err:  &DetectError{Op: "open", Path: "/tmp/x", Err: inner},
			want: "formatkit: open /tmp/x: boom",
		},
		{
			name: "without path",
			err:  &DetectError{Op: "read", Err: inner},
			want: "formatkit: read: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, inner) {
				t.Error("Unwrap() broken: errors.Is failed")
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	notExist := &DetectError{Op: "open", Path: "x", Err: fs.ErrNotExist}
	if !IsNotExist(notExist) {
		t.Error("IsNotExist() = false")
	}
	if IsPermission(notExist) {
		t.Error("IsPermission() = true for not-exist")
	}
	denied := &DetectError{Op: "open", Path: "x", Err: fs.ErrPermission}
	if !IsPermission(denied) {
		t.Error("IsPermission() = false")
	}
	if IsNotExist(nil) || IsPermission(nil) {
		t.Error("predicates must be false for nil")
	}
}
