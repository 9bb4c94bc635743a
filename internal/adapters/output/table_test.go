// internal/adapters/output/table_test.go
package output

import (
	"bytes"
	"testing"

	"owaspkit/internal/core/domain"
	"owaspkit/internal/testutil"
)

func TestOutputTable(t *testing.T) {
	var buf bytes.Buffer

	err := OutputTable(&buf, testResult())
	testutil.RequireNoError(t, err, "OutputTable")

	out := buf.String()
	testutil.AssertContains(t, out, "=== owaspkit cracker ===", "title")
	testutil.AssertContains(t, out, "Algorithm:", "algorithm row")
	testutil.AssertContains(t, out, "sha1", "algorithm")
	testutil.AssertContains(t, out, "bruteforce", "mode")
	testutil.AssertContains(t, out, "1234", "candidates")
	testutil.AssertContains(t, out, "1.5s", "duration")
	testutil.AssertContains(t, out, "Plaintext:", "plaintext row")
}

func TestOutputTable_NoMatch(t *testing.T) {
	var buf bytes.Buffer
	result := domain.NoMatch(domain.Job{Target: domain.Digest(testutil.SHA1Abc), Algorithm: "sha1", Mode: domain.ModeTable})
	result.Skipped = 2

	testutil.RequireNoError(t, OutputTable(&buf, result), "OutputTable")

	out := buf.String()
	testutil.AssertContains(t, out, "no_match", "outcome")
	testutil.AssertContains(t, out, "Skipped records:", "skipped row")
	testutil.AssertFalse(t, bytes.Contains(buf.Bytes(), []byte("Plaintext:")), "no plaintext row")
}

func TestTableExporter(t *testing.T) {
	var buf bytes.Buffer
	e := TableExporter{W: &buf}

	testutil.AssertEqual(t, e.Name(), "table", "name")
	testutil.RequireNoError(t, e.Export(testResult()), "Export")
	testutil.AssertContains(t, buf.String(), "Outcome:", "written")
}
