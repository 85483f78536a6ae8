package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moneymap/account-detect/internal/api/handlers"
	"github.com/moneymap/account-detect/internal/api/middleware"
	"github.com/moneymap/account-detect/internal/balance"
	"github.com/moneymap/account-detect/internal/detect"
	"github.com/moneymap/account-detect/internal/logger"
	"github.com/moneymap/account-detect/internal/store"
	storeBQ "github.com/moneymap/account-detect/internal/store/bigquery"
	"github.com/moneymap/account-detect/internal/store/inmemory"
)

func main() {
	var (
		port    = flag.String("port", "8080", "HTTP server port")
		project = flag.String("project", os.Getenv("BIGQUERY_PROJECT"), "GCP project for the accounts dataset (or set BIGQUERY_PROJECT env)")
		dataset = flag.String("dataset", envOr("BIGQUERY_DATASET", "moneymap"), "BigQuery dataset holding the accounts table")
	)
	flag.Parse()

	log := logger.New()
	ctx := context.Background()

	var accounts store.AccountStore
	if *project != "" {
		bqStore, err := storeBQ.New(ctx, *project, *dataset)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create BigQuery account store")
		}
		defer bqStore.Close()
		accounts = bqStore
	} else {
		log.Warn().Msg("No BigQuery project configured - using in-memory account store")
		accounts = inmemory.New()
	}

	detector := detect.New(log, balance.NewExtractor(log))
	matcher := detect.NewMatcher(accounts, log)

	detectHandler := handlers.NewDetectHandler(detector, log)
	accountsHandler := handlers.NewAccountsHandler(matcher, log)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/detect/filename", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			detectHandler.DetectFilename(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/detect/pdf", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			detectHandler.DetectPDF(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/detect/headers", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			detectHandler.DetectHeaders(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/accounts/match", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			accountsHandler.MatchAccount(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", *port).Msg("Starting detection API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
