// internal/core/usecases/cracker_integration_test.go
package usecases

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"owaspkit/internal/core/domain"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/platform/registry"
	"owaspkit/internal/testutil"

	_ "owaspkit/internal/sources/keyspace"
	_ "owaspkit/internal/sources/table"
	_ "owaspkit/internal/sources/wordlist"
)

func crackWithBuiltins(t *testing.T, job domain.Job) (*domain.Result, error) {
	t.Helper()
	cracker := NewCracker(CrackerOptions{Registry: registry.Global(), Logger: logx.NewSilent()})
	return cracker.Crack(context.Background(), job)
}

func TestIntegration_BruteForceFindsPlaintext(t *testing.T) {
	tests := []struct {
		name string
		salt string
	}{
		{"unsalted", ""},
		{"salted", "s4lt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := newJob(t, digestOf(t, "sha1", tt.salt, "abc"), "sha1", tt.salt, "bruteforce",
				domain.SourceParams{Charset: "abc", MaxLen: 3}, 4)

			result, err := crackWithBuiltins(t, job)

			testutil.RequireNoError(t, err, "Crack")
			testutil.AssertEqual(t, result.String(), "abc", "plaintext")
			testutil.AssertEqual(t, result.Salted, tt.salt != "", "salted flag")
		})
	}
}

func TestIntegration_DictionaryAnyWorkerCount(t *testing.T) {
	path := testutil.WriteLines(t, "words.txt", "foo", "bar", "baz")
	target := digestOf(t, "md5", "", "bar")

	for _, workers := range []int{1, 2, 3, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			job := newJob(t, target, "md5", "", "dictionary", domain.SourceParams{Path: path}, workers)

			result, err := crackWithBuiltins(t, job)

			testutil.RequireNoError(t, err, "Crack")
			testutil.AssertEqual(t, result.String(), "bar", "plaintext")
		})
	}
}

func TestIntegration_TableIgnoresDigestCase(t *testing.T) {
	path := testutil.WriteLines(t, "rainbow_table.txt", testutil.FixtureTableLines...)
	job := newJob(t, testutil.MD5Password, "md5", "", "table", domain.SourceParams{Path: path}, 1)

	result, err := crackWithBuiltins(t, job)

	testutil.RequireNoError(t, err, "Crack")
	testutil.AssertEqual(t, result.String(), "pass1", "plaintext")
	testutil.AssertEqual(t, result.Skipped, int64(1), "malformed line skipped, not fatal")
}

func TestIntegration_BruteForceExhaustion(t *testing.T) {
	job := newJob(t, digestOf(t, "sha1", "", "zzz"), "sha1", "", "bruteforce",
		domain.SourceParams{Charset: "ab", MaxLen: 2}, 1)

	result, err := crackWithBuiltins(t, job)

	testutil.RequireNoError(t, err, "Crack")
	testutil.AssertEqual(t, result.String(), domain.NoMatchMessage, "no match")
	testutil.AssertEqual(t, result.Candidates, int64(6), "a, b, aa, ab, ba, bb")
}

func TestIntegration_EmptyWordlistIsNoMatch(t *testing.T) {
	path := testutil.WriteLines(t, "empty.txt", "# nothing here")
	job := newJob(t, testutil.MD5Password, "md5", "", "dictionary", domain.SourceParams{Path: path}, 4)

	result, err := crackWithBuiltins(t, job)

	testutil.RequireNoError(t, err, "Crack")
	testutil.AssertEqual(t, result.Outcome, domain.OutcomeNoMatch, "outcome")
	testutil.AssertEqual(t, result.Chunks, 0, "no chunks")
}

func TestIntegration_MissingResource(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	for _, mode := range []string{"table", "dictionary"} {
		t.Run(mode, func(t *testing.T) {
			job := newJob(t, testutil.MD5Password, "md5", "", mode, domain.SourceParams{Path: missing}, 2)

			_, err := crackWithBuiltins(t, job)

			testutil.AssertTrue(t, errors.Is(err, domain.ErrSourceNotFound), "resource error")
		})
	}
}

func TestIntegration_UnknownAlgorithmFailsFast(t *testing.T) {
	_, err := domain.NewJob(testutil.MD5Password, "crc32", "", "bruteforce",
		domain.SourceParams{Charset: "ab", MaxLen: 2}, 1)

	testutil.AssertTrue(t, errors.Is(err, domain.ErrUnsupportedAlgorithm), "unsupported algorithm")
}

func TestIntegration_CanceledBruteForce(t *testing.T) {
	job := newJob(t, digestOf(t, "sha1", "", "zzzzzzzz"), "sha1", "", "bruteforce",
		domain.SourceParams{Charset: "@alnum", MaxLen: 8}, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cracker := NewCracker(CrackerOptions{Registry: registry.Global(), Logger: logx.NewSilent()})
	_, err := cracker.Crack(ctx, job)

	testutil.AssertTrue(t, errors.Is(err, context.Canceled), "canceled run reports the context error")
}
