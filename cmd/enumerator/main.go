// cmd/enumerator/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"owaspkit/internal/adapters/output"
	"owaspkit/internal/enumerator"
	"owaspkit/internal/platform/config"
	"owaspkit/internal/platform/errors"
	"owaspkit/internal/platform/httpclient"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/platform/ui"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes
const (
	exitOK       = 0
	exitAborted  = 1
	exitConfig   = 2
	exitCanceled = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadEnumerator()
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConfig
	}
	if cfg.PrintVersion {
		config.PrintVersion(os.Stdout, "enumerator", version, commit, date)
		return exitOK
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try: enumerator -h for help")
		return exitConfig
	}

	logger := logx.NewVerbose(cfg.Output.Verbose)
	if cfg.Output.Quiet {
		logger = logx.NewSilent()
	}

	ctx, cancel := rootContextWithSignals(cfg.Timeout())
	defer cancel()

	payloads, err := loadPayloads(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConfig
	}

	headers, _ := cfg.HeaderMap() // validado arriba
	client, err := httpclient.New(httpclient.Config{
		Timeout:         cfg.Request.Timeout,
		MaxRetries:      cfg.Request.Retries,
		RetryBackoff:    500 * time.Millisecond,
		MaxRetryBackoff: 10 * time.Second,
		UserAgent:       httpclient.DefaultUserAgent,
		Interval:        cfg.Request.Interval,
		FollowRedirects: cfg.Request.FollowRedirects,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConfig
	}

	presenter := ui.New(cfg.Output.Quiet)
	defer presenter.Close()

	enum, err := enumerator.New(enumerator.Options{
		Request: enumerator.RequestSpec{
			URL:     cfg.Request.URL,
			Method:  cfg.Request.Method,
			Body:    cfg.Request.Body,
			Headers: headers,
		},
		Workers:          cfg.Core.Workers,
		Client:           client,
		BreakerThreshold: cfg.Request.BreakerThreshold,
		SaveBody:         cfg.Output.SaveBody,
		Logger:           logger,
		OnRecord:         func(enumerator.Record) { presenter.Advance(1) },
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConfig
	}

	presenter.Start(ui.RunInfo{
		Title:  "owaspkit enumerator",
		Fields: runFields(cfg, len(payloads)),
	})
	presenter.StartTask(fmt.Sprintf("Probing %d payloads", len(payloads)), len(payloads))

	report, runErr := enum.Run(ctx, payloads)

	switch {
	case runErr != nil:
		presenter.StopTask(ui.StatusError, "enumeration interrupted")
	case report.Aborted:
		presenter.StopTask(ui.StatusWarning, "circuit breaker open, remaining probes skipped")
	default:
		presenter.StopTask(ui.StatusSuccess, "enumeration completed")
	}
	presenter.Finish(summary(report, cfg.Output.CSV))

	// El CSV se escribe también con resultados parciales
	if err := output.WriteCSV(cfg.Output.CSV, report.Records, cfg.Output.SaveBody); err != nil {
		logger.Err(err, "phase", "output")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConfig
	}

	switch {
	case runErr != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return exitCanceled
	case report.Aborted:
		return exitAborted
	}
	return exitOK
}

func loadPayloads(ctx context.Context, cfg config.EnumeratorConfig) ([]string, error) {
	switch cfg.PayloadKind() {
	case config.PayloadNames:
		return cfg.Payload.Names, nil
	case config.PayloadFile:
		return enumerator.FilePayloads(ctx, cfg.Payload.File, cfg.Payload.Password)
	default:
		return enumerator.RangePayloads(cfg.Payload.Start, cfg.Payload.End), nil
	}
}

func runFields(cfg config.EnumeratorConfig, payloads int) []ui.Field {
	fields := []ui.Field{
		{Label: "URL", Value: cfg.Request.URL},
		{Label: "Method", Value: cfg.Request.Method},
		{Label: "Payloads", Value: fmt.Sprintf("%d (%s)", payloads, cfg.PayloadKind())},
		{Label: "Workers", Value: fmt.Sprint(cfg.Core.Workers)},
		{Label: "Timeout", Value: cfg.Request.Timeout.String()},
	}
	if cfg.Request.Interval > 0 {
		fields = append(fields, ui.Field{Label: "Interval", Value: cfg.Request.Interval.String()})
	}
	if len(cfg.Request.Headers) > 0 {
		fields = append(fields, ui.Field{Label: "Headers", Value: fmt.Sprint(len(cfg.Request.Headers))})
	}
	return fields
}

func summary(report *enumerator.Report, csvPath string) ui.Summary {
	s := ui.Summary{
		Status:   ui.StatusSuccess,
		Headline: fmt.Sprintf("%d/%d probes sent", len(report.Records), report.Total),
		Duration: report.Duration,
	}

	counts := make([]string, 0, len(report.ByStatus))
	for _, status := range report.Statuses() {
		counts = append(counts, fmt.Sprintf("%d×%d", status, report.ByStatus[status]))
	}
	if len(counts) > 0 {
		s.Fields = append(s.Fields, ui.Field{Label: "Statuses", Value: strings.Join(counts, "  ")})
	}
	if report.Failed > 0 {
		s.Fields = append(s.Fields, ui.Field{Label: "No response", Value: fmt.Sprint(report.Failed)})
	}
	if report.Aborted {
		s.Status = ui.StatusWarning
		s.Fields = append(s.Fields, ui.Field{Label: "Skipped", Value: fmt.Sprint(report.Skipped())})
	}
	if csvPath != "" {
		s.Fields = append(s.Fields, ui.Field{Label: "CSV", Value: csvPath})
	}
	return s
}

// rootContextWithSignals cancela con SIGINT/SIGTERM o al vencer timeout
// (0 = sin timeout).
func rootContextWithSignals(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	if timeout <= 0 {
		return ctx, stop
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}
