package errors

import (
	"context"
	"fmt"
	"os"
	"testing"

	"owaspkit/internal/testutil"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		baseErr := New("base error")
		wrapped := Wrap(baseErr, "additional context")

		testutil.AssertNotNil(t, wrapped, "wrapped error should not be nil")
		testutil.AssertTrue(t, Is(wrapped, baseErr), "should be able to unwrap to base error")
		testutil.AssertEqual(t, wrapped.Error(), "additional context: base error", "error message")
	})

	t.Run("returns nil when wrapping nil", func(t *testing.T) {
		testutil.AssertTrue(t, Wrap(nil, "context") == nil, "wrapping nil should return nil")
	})

	t.Run("multiple wraps preserve chain", func(t *testing.T) {
		baseErr := New("base")
		wrapped := Wrap(Wrap(baseErr, "layer 1"), "layer 2")

		testutil.AssertTrue(t, Is(wrapped, baseErr), "should unwrap to base error")
		testutil.AssertEqual(t, wrapped.Error(), "layer 2: layer 1: base", "full chain")
	})
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrNotFound, "wordlist %s", "rockyou.txt")

	testutil.AssertTrue(t, IsNotFound(wrapped), "should match sentinel")
	testutil.AssertEqual(t, wrapped.Error(), "wordlist rockyou.txt: resource not found", "formatted message")
	testutil.AssertTrue(t, Wrapf(nil, "x %d", 1) == nil, "wrapping nil should return nil")
}

func TestAs(t *testing.T) {
	_, statErr := os.Stat("/definitely/not/here")
	wrapped := Wrap(statErr, "stat table")

	var pathErr *os.PathError
	testutil.AssertTrue(t, As(wrapped, &pathErr), "should find *os.PathError in chain")
	testutil.AssertEqual(t, pathErr.Path, "/definitely/not/here", "path")
}

func TestUnwrap(t *testing.T) {
	base := New("base")
	testutil.AssertTrue(t, Unwrap(Wrap(base, "ctx")) == base, "Unwrap should return cause")
	testutil.AssertTrue(t, Unwrap(base) == nil, "Unwrap of leaf should be nil")
}

func TestJoin(t *testing.T) {
	joined := Join(ErrNotFound, nil, ErrMalformed)
	testutil.AssertTrue(t, IsNotFound(joined), "joined should contain not found")
	testutil.AssertTrue(t, IsMalformed(joined), "joined should contain malformed")
	testutil.AssertTrue(t, Join(nil, nil) == nil, "join of nils should be nil")
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(error) bool
		err  error
		want bool
	}{
		{"invalid input direct", IsInvalidInput, ErrInvalidInput, true},
		{"invalid input wrapped", IsInvalidInput, Wrap(ErrInvalidInput, "workers"), true},
		{"unsupported", IsUnsupported, Wrapf(ErrUnsupported, "algorithm %q", "crc"), true},
		{"not found other", IsNotFound, ErrMalformed, false},
		{"timeout context", IsTimeout, fmt.Errorf("run: %w", context.DeadlineExceeded), true},
		{"canceled context", IsCanceled, context.Canceled, true},
		{"canceled sentinel", IsCanceled, ErrCanceled, true},
		{"connection failed", IsConnectionFailed, Wrap(ErrConnectionFailed, "dial"), true},
		{"service unavailable", IsServiceUnavailable, ErrServiceUnavailable, true},
		{"rate limit", IsRateLimit, Wrapf(ErrRateLimit, "status %d", 429), true},
		{"unauthorized", IsUnauthorized, ErrUnauthorized, true},
		{"nil", IsNotFound, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.fn(tt.err), tt.want, tt.name)
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindNone},
		{"invalid input", Wrap(ErrInvalidInput, "max length must be positive"), KindConfiguration},
		{"unsupported", Wrap(ErrUnsupported, "algorithm"), KindConfiguration},
		{"not found", Wrap(ErrNotFound, "table"), KindResource},
		{"malformed", ErrMalformed, KindMalformed},
		{"deadline", context.DeadlineExceeded, KindCanceled},
		{"canceled", context.Canceled, KindCanceled},
		{"other", New("disk on fire"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, Kind(tt.err), tt.want, "kind")
		})
	}
}
