package domain

import (
	"testing"

	"owaspkit/internal/platform/errors"
	"owaspkit/internal/testutil"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
	}{
		{"table", ModeTable},
		{"rainbow", ModeTable},
		{"Dictionary", ModeDictionary},
		{"dict", ModeDictionary},
		{"bruteforce", ModeBruteForce},
		{" brute ", ModeBruteForce},
		{"brute-force", ModeBruteForce},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			testutil.RequireNoError(t, err, "ParseMode")
			testutil.AssertEqual(t, got, tt.want, "mode")
		})
	}
}

func TestParseMode_Unknown(t *testing.T) {
	_, err := ParseMode("hybrid")
	testutil.AssertTrue(t, errors.Is(err, ErrUnknownMode), "should be ErrUnknownMode")
	testutil.AssertTrue(t, errors.Is(err, ErrInvalidConfig), "should be a configuration error")
	testutil.AssertEqual(t, errors.Kind(err), errors.KindConfiguration, "kind")
}

func TestMode_Hashes(t *testing.T) {
	testutil.AssertFalse(t, ModeTable.Hashes(), "table compares stored digests")
	testutil.AssertTrue(t, ModeDictionary.Hashes(), "dictionary")
	testutil.AssertTrue(t, ModeBruteForce.Hashes(), "bruteforce")
	testutil.AssertEqual(t, len(Modes()), 3, "modes")
}
