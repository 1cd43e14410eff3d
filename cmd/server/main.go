package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"care-lab/guard"
	"care-lab/internal"
	"care-lab/observability"
	"care-lab/resources"
	"care-lab/session"
	"care-lab/triage"
	"care-lab/web"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components and manages the server lifecycle.
// Keeping the logic out of main ensures defers (store and index cleanup)
// execute before the process exits, and keeps startup testable.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Ephemeral session store (in-memory Badger, dies with the process)
	db, err := session.OpenEphemeral()
	if err != nil {
		return exitRuntime, fmt.Errorf("session store opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing session store...")
		_ = db.Close()
	}()
	store := session.NewEntryStore(db, logger, config.LimitEntries)

	// 3. Rule engine, guard, and resource index
	engine := triage.NewEngine(logger)

	adviceGuard, err := guard.NewGuard(guard.DefaultForbiddenPhrases(), charReplacement, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("guard init failed: %w", err)
	}

	index, err := resources.NewIndex(resources.Library(), logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("resource index init failed: %w", err)
	}
	defer func() {
		logger.Info("Closing resource index...")
		_ = index.Close()
	}()

	stats := observability.NewManager(logger)

	// 4. HTTP server
	server := web.NewServer(logger, engine, adviceGuard, store, index, stats,
		config.MaxContentLength, config.SearchLimit)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: server.Handler()}

	// 5. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("shutdown error: %w", err)
	}
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}
