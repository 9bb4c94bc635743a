// cmd/testserver/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"owaspkit/internal/fixture"
	"owaspkit/internal/platform/config"
	"owaspkit/internal/platform/errors"
	"owaspkit/internal/platform/logx"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadTestServer()
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if cfg.PrintVersion {
		config.PrintVersion(os.Stdout, "testserver", version, commit, date)
		return 0
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	logger := logx.NewVerbose(cfg.Verbose)

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: fixture.NewHandler(fixture.Options{
			Accessible: cfg.Accessible,
			Forbidden:  cfg.Forbidden,
			FilesDir:   cfg.FilesDir,
			Logger:     logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("test server listening",
			"addr", "http://"+cfg.Addr,
			"accessible", fmt.Sprintf("%d-%d", cfg.Accessible.From, cfg.Accessible.To),
			"forbidden", fmt.Sprintf("%d-%d", cfg.Forbidden.From, cfg.Forbidden.To),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Err(err, "phase", "listen")
			return 1
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Err(err, "phase", "shutdown")
			return 1
		}
	}
	return 0
}
