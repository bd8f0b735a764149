// Command fasskollen-server runs the medication lookup HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	_ "net/http/pprof"

	"github.com/almroth/fasskollen/config"
	"github.com/almroth/fasskollen/data"
	"github.com/almroth/fasskollen/logging"
	"github.com/almroth/fasskollen/scheduler"
	"github.com/almroth/fasskollen/server"
	"github.com/joho/godotenv"
)

const shutdownGrace = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run owns the whole lifecycle so that deferred cleanup always fires;
// only main calls os.Exit.
func run() error {
	loadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w (supported variables: %s)", err, strings.Join(config.GetEnvVars(), ", "))
	}

	logging.InitLogger(cfg)
	defer logging.Close()

	catalog := data.NewDefaultCatalog()

	heartbeat := scheduler.NewHeartbeat(catalog)
	if err := heartbeat.Start(); err != nil {
		return fmt.Errorf("starting heartbeat: %w", err)
	}
	defer heartbeat.Stop()

	srv := server.NewServer(cfg, catalog)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logging.Info("Signal received, shutting down", "signal", sig.String())
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// loadDotEnv reads the optional .env file from the working directory,
// falling back to the executable's directory so the server starts the
// same way under systemd.
func loadDotEnv() {
	if err := godotenv.Load(); err == nil {
		return
	}

	ex, err := os.Executable()
	if err != nil {
		return
	}
	_ = godotenv.Load(filepath.Join(filepath.Dir(ex), ".env"))
}
