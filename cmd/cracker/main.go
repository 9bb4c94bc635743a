// cmd/cracker/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"owaspkit/internal/adapters/output"
	"owaspkit/internal/core/domain"
	"owaspkit/internal/core/ports"
	"owaspkit/internal/core/usecases"
	"owaspkit/internal/platform/config"
	"owaspkit/internal/platform/errors"
	"owaspkit/internal/platform/hashing"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/platform/ui"

	// Sources se registran vía init()
	_ "owaspkit/internal/sources/keyspace"
	_ "owaspkit/internal/sources/table"
	_ "owaspkit/internal/sources/wordlist"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes
const (
	exitFound    = 0
	exitNoMatch  = 1
	exitConfig   = 2
	exitCanceled = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadCracker()
	if errors.Is(err, pflag.ErrHelp) {
		return exitFound
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConfig
	}

	if cfg.PrintVersion {
		config.PrintVersion(os.Stdout, "cracker", version, commit, date)
		return exitFound
	}
	if cfg.ListAlgorithms {
		fmt.Println(strings.Join(hashing.SupportedNames(), "\n"))
		return exitFound
	}

	job, err := cfg.Job()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try: cracker -h for help")
		return exitConfig
	}

	logger := logx.NewVerbose(cfg.Output.Verbose)
	if cfg.Output.Quiet {
		logger = logx.NewSilent()
	}
	logger.Debug("owaspkit cracker starting", "version", version, "commit", commit)

	ctx, cancel := rootContextWithSignals(cfg.Timeout())
	defer cancel()

	presenter := ui.New(cfg.Output.Quiet)
	defer presenter.Close()

	presenter.Start(ui.RunInfo{
		Title:  "owaspkit cracker",
		Fields: runFields(*job),
	})
	presenter.StartTask(fmt.Sprintf("Searching (%s)", job.Mode), 0)

	cracker := usecases.NewCracker(usecases.CrackerOptions{
		Logger:    logger,
		Observers: []ports.Notifier{ui.NewSearchNotifier(presenter)},
	})

	start := time.Now()
	result, err := cracker.Crack(ctx, *job)
	if err != nil {
		presenter.StopTask(ui.StatusError, "search failed")
		return searchFailed(os.Stderr, err)
	}

	if result.IsFound() {
		presenter.StopTask(ui.StatusSuccess, "match found")
	} else {
		presenter.StopTask(ui.StatusWarning, "no match")
	}
	presenter.Finish(summary(result, time.Since(start)))

	if err := writeOutputs(cfg, result); err != nil {
		logger.Err(err, "phase", "output")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConfig
	}

	// La última línea de stdout es siempre el plaintext o "no match found"
	fmt.Println(result.String())

	if !result.IsFound() {
		return exitNoMatch
	}
	return exitFound
}

// searchFailed reporta err una sola vez en w, también con --quiet, y elige
// el exit code.
func searchFailed(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	if errors.Kind(err) == errors.KindCanceled {
		return exitCanceled
	}
	return exitConfig
}

func runFields(job domain.Job) []ui.Field {
	fields := []ui.Field{
		{Label: "Target", Value: job.Target.String()},
		{Label: "Algorithm", Value: job.Algorithm.String()},
		{Label: "Mode", Value: job.Mode.String()},
		{Label: "Salt applied", Value: ui.BoolToString(job.SaltApplied())},
		{Label: "Workers", Value: fmt.Sprint(job.Workers)},
	}
	switch job.Mode {
	case domain.ModeBruteForce:
		fields = append(fields,
			ui.Field{Label: "Charset", Value: job.Source.Charset},
			ui.Field{Label: "Max length", Value: fmt.Sprint(job.Source.MaxLen)},
		)
	default:
		fields = append(fields, ui.Field{Label: "Source", Value: job.Source.Path})
	}
	return fields
}

func summary(result *domain.Result, elapsed time.Duration) ui.Summary {
	s := ui.Summary{
		Status:   ui.StatusSuccess,
		Headline: "Plaintext: " + result.Plaintext,
		Fields: []ui.Field{
			{Label: "Algorithm", Value: result.Algorithm.String()},
			{Label: "Mode", Value: result.Mode.String()},
			{Label: "Salt applied", Value: ui.BoolToString(result.Salted)},
			{Label: "Candidates", Value: fmt.Sprint(result.Candidates)},
		},
		Duration: elapsed,
	}
	if result.Skipped > 0 {
		s.Fields = append(s.Fields, ui.Field{Label: "Skipped records", Value: fmt.Sprint(result.Skipped)})
	}
	if !result.IsFound() {
		s.Status = ui.StatusWarning
		s.Headline = "No match found"
	}
	return s
}

// writeOutputs corre los exporters que pide la configuración.
func writeOutputs(cfg config.CrackerConfig, result *domain.Result) error {
	var exporters []ports.Exporter
	if cfg.Output.File != "" {
		exporters = append(exporters, output.JSONExporter{Path: cfg.Output.File})
	}
	if cfg.Output.Verbose {
		exporters = append(exporters, output.TableExporter{W: os.Stderr})
	}

	for _, e := range exporters {
		if err := e.Export(result); err != nil {
			return fmt.Errorf("%s output: %w", e.Name(), err)
		}
	}
	return nil
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
