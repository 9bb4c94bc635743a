package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"owaspkit/internal/platform/errors"
	"owaspkit/internal/testutil"
)

func TestSearchFailed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"canceled", errors.Wrap(context.Canceled, "search"), exitCanceled},
		{"deadline", errors.Wrap(errors.ErrTimeout, "search"), exitCanceled},
		{"missing wordlist", errors.Wrapf(errors.ErrNotFound, "wordlist %s", "rockyou.txt"), exitConfig},
		{"bad table", errors.Wrap(errors.ErrInvalidInput, "table format"), exitConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := searchFailed(&buf, tt.err)

			testutil.AssertEqual(t, code, tt.want, "exit code")
			testutil.AssertEqual(t, strings.Count(buf.String(), tt.err.Error()), 1, "error reported once")
			testutil.AssertEqual(t, strings.Count(buf.String(), "\n"), 1, "single line")
		})
	}
}
