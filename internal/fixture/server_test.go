// internal/fixture/server_test.go
package fixture

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"owaspkit/internal/platform/config"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/testutil"
)

func newTestServer(t *testing.T, filesDir string) (*httptest.Server, *testutil.SafeBuffer) {
	t.Helper()
	logs := &testutil.SafeBuffer{}
	srv := httptest.NewServer(NewHandler(Options{
		Accessible: config.IDRange{From: 1, To: 10},
		Forbidden:  config.IDRange{From: 11, To: 20},
		FilesDir:   filesDir,
		Logger:     logx.NewWithWriter(logs, logx.LevelDebug),
	}))
	t.Cleanup(srv.Close)
	return srv, logs
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	testutil.RequireNoError(t, err, "GET "+url)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	testutil.RequireNoError(t, err, "read body")
	return resp.StatusCode, string(body)
}

func TestItems_Status(t *testing.T) {
	srv, _ := newTestServer(t, "")

	tests := []struct {
		id   string
		want int
	}{
		{"1", http.StatusOK},
		{"10", http.StatusOK},
		{"11", http.StatusForbidden},
		{"20", http.StatusForbidden},
		{"21", http.StatusNotFound},
		{"0", http.StatusNotFound},
		{"-3", http.StatusNotFound},
		{"abc", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			status, _ := get(t, srv.URL+"/api/items/"+tt.id)
			testutil.AssertEqual(t, status, tt.want, "status")
		})
	}
}

func TestItems_Body(t *testing.T) {
	srv, _ := newTestServer(t, "")

	_, body := get(t, srv.URL+"/api/items/7")

	var item Item
	testutil.RequireNoError(t, json.Unmarshal([]byte(body), &item), "decode")
	testutil.AssertEqual(t, item, Item{ID: 7, Name: "Item 7", Method: http.MethodGet}, "item")
}

func TestItems_MethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t, "")

	resp, err := http.Post(srv.URL+"/api/items/1", "application/json", strings.NewReader("{}"))
	testutil.RequireNoError(t, err, "POST")
	resp.Body.Close()
	testutil.AssertEqual(t, resp.StatusCode, http.StatusMethodNotAllowed, "status")
}

func TestFiles_Samples(t *testing.T) {
	srv, _ := newTestServer(t, "")

	status, body := get(t, srv.URL+"/files/invoice-1001.txt")
	testutil.AssertEqual(t, status, http.StatusOK, "status")
	testutil.AssertEqual(t, body, SampleFiles["invoice-1001.txt"], "content")

	status, _ = get(t, srv.URL+"/files/invoice-9999.txt")
	testutil.AssertEqual(t, status, http.StatusNotFound, "unknown file")
}

func TestFiles_Dir(t *testing.T) {
	path := testutil.WriteFile(t, "notes.txt", []byte("secret notes\n"))
	srv, _ := newTestServer(t, filepath.Dir(path))

	status, body := get(t, srv.URL+"/files/notes.txt")
	testutil.AssertEqual(t, status, http.StatusOK, "status")
	testutil.AssertEqual(t, body, "secret notes\n", "content")

	status, _ = get(t, srv.URL+"/files/backup.sql")
	testutil.AssertEqual(t, status, http.StatusNotFound, "samples are not served with a dir")
}

func TestFiles_RejectsTraversal(t *testing.T) {
	srv, _ := newTestServer(t, t.TempDir())

	for _, name := range []string{"..secret", "a..b", "dir%5Cfile"} {
		t.Run(name, func(t *testing.T) {
			status, _ := get(t, srv.URL+"/files/"+name)
			testutil.AssertEqual(t, status, http.StatusBadRequest, "status")
		})
	}
}

func TestLogRequests(t *testing.T) {
	srv, logs := newTestServer(t, "")

	get(t, srv.URL+"/api/items/15")

	out := logs.String()
	testutil.AssertContains(t, out, "component=fixture", "scope")
	testutil.AssertContains(t, out, "path=/api/items/15", "path")
	testutil.AssertContains(t, out, "status=403", "status")
}
