package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"message-service/analytics"
	"message-service/api"
	"message-service/backend"
	"message-service/clients"
	"message-service/draft"
	"message-service/internal"
	"message-service/messenger"
	"message-service/notify"
	"message-service/observability"
	"message-service/repositories"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning instead of exiting keeps defers (database cleanup) running and
// the wiring testable.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Collaborator clients
	chatBackend := backend.NewClient(log, config.BackendURL, backend.Credentials{
		UserID: config.BackendSystemUserID,
		Token:  config.BackendSystemToken,
	}, config.BackendTimeout)
	emailClient := clients.NewEmailClient(config.UserServiceURL, config.SideEffectTimeout)
	liveClient := clients.NewLiveClient(config.LiveServiceURL, config.SideEffectTimeout)
	analyticsSink := analytics.NewSink(log, config.StatisticsURL, config.AnalyticsBufferSize, config.SideEffectTimeout)

	// 4. Core wiring
	stats := observability.NewStats(log)
	drafts := draft.NewStore(log, repositories.NewDraftRepository(db, log), config.MasterKey)
	dispatcher := notify.NewDispatcher(log, drafts, liveClient, emailClient, analyticsSink, stats, config.SideEffectTimeout)
	msgr := messenger.NewMessenger(log, chatBackend, dispatcher, stats, config.BackendSystemUserID)
	server := api.NewServer(log, msgr, drafts, stats, []byte(config.JWTSecret))

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Background analytics shipper
	go func() {
		if err := analyticsSink.Run(ctx); err != nil {
			log.Error(fmt.Sprintf("Analytics sink stopped: %v", err))
		}
	}()

	// 7. HTTP server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: server.Handler()}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.SideEffectTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn(fmt.Sprintf("HTTP shutdown incomplete: %v", err))
	}
	log.Info("Program stopped cleanly")

	return nil
}
