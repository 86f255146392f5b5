// Command orientweb serves the interactive NED/ENU orientation converter.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ned-enu-converter/internal/config"
	"ned-enu-converter/internal/logging"
	"ned-enu-converter/internal/webui"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	addr := flag.String("addr", "", "Listen address (default: 127.0.0.1:8080)")
	size := flag.Int("size", 0, "Rendered image size in pixels (default: 256)")
	supersample := flag.Int("supersample", 0, "Render supersampling factor (default: 2)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (default: info)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		ListenAddr:  *addr,
		RenderSize:  *size,
		Supersample: *supersample,
		LogLevel:    *logLevel,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer func() { _ = logger.Sync() }()

	srv, err := newHTTPServer(cfg, logger, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Errorw("failed to build server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, srv, logger); err != nil {
		logger.Errorw("server exited", "error", err)
		os.Exit(1)
	}
}

func newHTTPServer(cfg config.Config, logger *zap.SugaredLogger, reg prometheus.Registerer) (*http.Server, error) {
	metrics, err := webui.NewMetrics(reg)
	if err != nil {
		return nil, err
	}
	ui, err := webui.NewServer(cfg, logger, metrics)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           ui.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// serve runs srv until ctx is done, then shuts it down with a 5s grace period.
func serve(ctx context.Context, srv *http.Server, logger *zap.SugaredLogger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Infow("serving orientation converter", "addr", "http://"+srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
