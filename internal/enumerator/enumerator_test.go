// internal/enumerator/enumerator_test.go
package enumerator

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"owaspkit/internal/fixture"
	"owaspkit/internal/platform/config"
	"owaspkit/internal/platform/errors"
	"owaspkit/internal/platform/httpclient"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/testutil"
)

func newFixture(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(fixture.NewHandler(fixture.Options{
		Accessible: config.IDRange{From: 1, To: 10},
		Forbidden:  config.IDRange{From: 11, To: 20},
		Logger:     logx.NewSilent(),
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T) *httpclient.Client {
	t.Helper()
	client, err := httpclient.New(httpclient.DefaultConfig(), logx.NewSilent())
	testutil.RequireNoError(t, err, "client")
	return client
}

func newEnumerator(t *testing.T, opts Options) *Enumerator {
	t.Helper()
	if opts.Client == nil {
		opts.Client = newClient(t)
	}
	if opts.Logger == nil {
		opts.Logger = logx.NewSilent()
	}
	e, err := New(opts)
	testutil.RequireNoError(t, err, "New")
	return e
}

func TestRun_AgainstFixture(t *testing.T) {
	srv := newFixture(t)
	e := newEnumerator(t, Options{
		Request: RequestSpec{URL: srv.URL + "/api/items/{}"},
		Workers: 4,
	})

	report, err := e.Run(context.Background(), RangePayloads(1, 22))
	testutil.RequireNoError(t, err, "Run")

	testutil.AssertEqual(t, report.Total, 22, "total")
	testutil.AssertEqual(t, len(report.Records), 22, "records")
	testutil.AssertEqual(t, report.ByStatus[http.StatusOK], 10, "200s")
	testutil.AssertEqual(t, report.ByStatus[http.StatusForbidden], 10, "403s")
	testutil.AssertEqual(t, report.ByStatus[http.StatusNotFound], 2, "404s")
	testutil.AssertEqual(t, report.Failed, 0, "failed")
	testutil.AssertFalse(t, report.Aborted, "aborted")
	testutil.AssertEqual(t, report.Skipped(), 0, "skipped")

	for i, rec := range report.Records {
		testutil.AssertEqual(t, rec.Index, i, "records keep payload order")
	}
	testutil.AssertEqual(t, report.Records[0].URL, srv.URL+"/api/items/1", "url")
	testutil.AssertEqual(t, report.Records[0].Body, "", "body not saved by default")
}

func TestRun_SaveBody(t *testing.T) {
	srv := newFixture(t)
	e := newEnumerator(t, Options{
		Request:  RequestSpec{URL: srv.URL + "/api/items/{}"},
		SaveBody: true,
	})

	report, err := e.Run(context.Background(), []string{"3"})
	testutil.RequireNoError(t, err, "Run")

	testutil.AssertEqual(t, report.Records[0].Status, http.StatusOK, "status")
	testutil.AssertEqual(t, report.Records[0].Body, `{"id":3,"name":"Item 3","method":"GET"}\n`, "escaped body")
}

func TestRun_BodyTemplateAndHeaders(t *testing.T) {
	var (
		mu     sync.Mutex
		bodies = map[string]bool{}
		tokens = map[string]bool{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies[string(body)] = true
		tokens[r.Header.Get("Authorization")] = true
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	e := newEnumerator(t, Options{
		Request: RequestSpec{
			URL:     srv.URL + "/api/orders",
			Method:  "post",
			Body:    `{"order_id":{}}`,
			Headers: map[string]string{"Authorization": "Bearer t0ken"},
		},
		Workers: 2,
	})

	report, err := e.Run(context.Background(), []string{"7", "8"})
	testutil.RequireNoError(t, err, "Run")

	testutil.AssertEqual(t, report.ByStatus[http.StatusCreated], 2, "201s")
	mu.Lock()
	defer mu.Unlock()
	testutil.AssertTrue(t, bodies[`{"order_id":7}`], "body for 7")
	testutil.AssertTrue(t, bodies[`{"order_id":8}`], "body for 8")
	testutil.AssertEqual(t, len(tokens), 1, "single auth header value")
	testutil.AssertTrue(t, tokens["Bearer t0ken"], "auth header")
}

func TestRun_PathEscapesPayload(t *testing.T) {
	var got atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.URL.EscapedPath())
	}))
	defer srv.Close()

	e := newEnumerator(t, Options{Request: RequestSpec{URL: srv.URL + "/users/{}"}})

	_, err := e.Run(context.Background(), []string{"john doe"})
	testutil.RequireNoError(t, err, "Run")
	testutil.AssertEqual(t, got.Load(), "/users/john%20doe", "escaped path")
}

func TestRun_CircuitBreakerAborts(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/api/items/{}"
	srv.Close()

	var seen atomic.Int32
	e := newEnumerator(t, Options{
		Request:          RequestSpec{URL: url},
		Workers:          1,
		BreakerThreshold: 3,
		OnRecord:         func(Record) { seen.Add(1) },
	})

	report, err := e.Run(context.Background(), RangePayloads(1, 10))
	testutil.RequireNoError(t, err, "an aborted run is not an error")

	testutil.AssertTrue(t, report.Aborted, "aborted")
	testutil.AssertEqual(t, len(report.Records), 3, "probes sent before the breaker opened")
	testutil.AssertEqual(t, report.Failed, 3, "failed")
	testutil.AssertEqual(t, report.Skipped(), 7, "skipped")
	testutil.AssertEqual(t, int(seen.Load()), 3, "OnRecord calls")

	for _, rec := range report.Records {
		testutil.AssertEqual(t, rec.Status, 0, "status of a transport failure")
		testutil.AssertContains(t, rec.Error, "connection failed", "error text")
	}
}

func TestRun_OnRecord(t *testing.T) {
	srv := newFixture(t)

	var seen atomic.Int32
	e := newEnumerator(t, Options{
		Request:  RequestSpec{URL: srv.URL + "/api/items/{}"},
		Workers:  3,
		OnRecord: func(Record) { seen.Add(1) },
	})

	_, err := e.Run(context.Background(), RangePayloads(1, 12))
	testutil.RequireNoError(t, err, "Run")
	testutil.AssertEqual(t, int(seen.Load()), 12, "one call per record")
}

func TestRun_Canceled(t *testing.T) {
	srv := newFixture(t)
	e := newEnumerator(t, Options{Request: RequestSpec{URL: srv.URL + "/api/items/{}"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := e.Run(ctx, RangePayloads(1, 5))
	testutil.AssertTrue(t, errors.IsCanceled(err), "canceled error")
	testutil.AssertNotNil(t, report, "partial report")
	testutil.AssertEqual(t, report.Total, 5, "total")
	testutil.AssertEqual(t, len(report.Records), 0, "nothing sent")
}

func TestRun_Empty(t *testing.T) {
	e := newEnumerator(t, Options{Request: RequestSpec{URL: "http://127.0.0.1:5000/api/items/{}"}})

	report, err := e.Run(context.Background(), nil)
	testutil.RequireNoError(t, err, "Run")
	testutil.AssertEqual(t, len(report.Records), 0, "records")
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		spec RequestSpec
	}{
		{"no scheme", RequestSpec{URL: "127.0.0.1/api/{}"}},
		{"no placeholder", RequestSpec{URL: "http://127.0.0.1/api/items"}},
		{"bad method", RequestSpec{URL: "http://127.0.0.1/api/{}", Method: "GE T"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Options{Request: tt.spec, Logger: logx.NewSilent()})
			testutil.AssertTrue(t, errors.IsInvalidInput(err), "invalid input")
		})
	}

	_, err := New(Options{
		Request: RequestSpec{URL: "http://127.0.0.1/api/items", Body: `{"id":{}}`},
		Logger:  logx.NewSilent(),
	})
	testutil.AssertNoError(t, err, "placeholder in body only")
}
