// internal/adapters/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"owaspkit/internal/core/domain"
	"owaspkit/internal/testutil"
)

func testResult() *domain.Result {
	job := domain.Job{
		Target:    domain.Digest(testutil.SHA1Abc),
		Algorithm: "sha1",
		Salt:      "s",
		Mode:      domain.ModeBruteForce,
		Workers:   4,
	}
	r := domain.Found(job, "abc")
	r.Candidates = 1234
	r.Chunks = 36
	r.Duration = 1500 * time.Millisecond
	return r
}

func TestOutputJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "crack.json")

	err := OutputJSON(path, testResult())
	testutil.RequireNoError(t, err, "OutputJSON")

	data, err := os.ReadFile(path)
	testutil.RequireNoError(t, err, "read output")

	var decoded map[string]any
	testutil.RequireNoError(t, json.Unmarshal(data, &decoded), "valid JSON")
	testutil.AssertEqual(t, decoded["outcome"], "found", "outcome")
	testutil.AssertEqual(t, decoded["plaintext"], "abc", "plaintext")
	testutil.AssertEqual(t, decoded["mode"], "bruteforce", "mode")
	testutil.AssertEqual(t, decoded["salted"], true, "salted")
	testutil.AssertEqual(t, decoded["candidates"], float64(1234), "candidates")
	testutil.AssertTrue(t, strings.Contains(string(data), "\n  \""), "indented")
}

func TestOutputJSON_NoMatchOmitsPlaintext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nomatch.json")
	result := domain.NoMatch(domain.Job{Target: domain.Digest(testutil.SHA1Abc), Algorithm: "sha1", Mode: domain.ModeDictionary})

	testutil.RequireNoError(t, OutputJSON(path, result), "OutputJSON")

	data, err := os.ReadFile(path)
	testutil.RequireNoError(t, err, "read output")
	testutil.AssertFalse(t, strings.Contains(string(data), "plaintext"), "plaintext omitted")
	testutil.AssertContains(t, string(data), `"outcome": "no_match"`, "outcome")
}

func TestOutputJSON_BadDirectory(t *testing.T) {
	blocker := testutil.WriteFile(t, "file", []byte("x"))
	err := OutputJSON(filepath.Join(blocker, "out.json"), testResult())
	testutil.AssertError(t, err, "parent is a file")
}

func TestOutputJSONStdout(t *testing.T) {
	var compact, pretty bytes.Buffer

	testutil.RequireNoError(t, OutputJSONStdout(&compact, testResult(), false), "compact")
	testutil.RequireNoError(t, OutputJSONStdout(&pretty, testResult(), true), "pretty")

	testutil.AssertEqual(t, strings.Count(compact.String(), "\n"), 1, "single line")
	testutil.AssertTrue(t, strings.Count(pretty.String(), "\n") > 5, "indented")
}

func TestJSONExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	e := JSONExporter{Path: path}

	testutil.AssertEqual(t, e.Name(), "json", "name")
	testutil.RequireNoError(t, e.Export(testResult()), "Export")

	_, err := os.Stat(path)
	testutil.AssertNoError(t, err, "file written")
}
