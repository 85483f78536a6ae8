package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/civil"

	"github.com/moneymap/account-detect/internal/balance"
	"github.com/moneymap/account-detect/internal/detect"
	"github.com/moneymap/account-detect/internal/gcs"
	"github.com/moneymap/account-detect/internal/logger"
	"github.com/moneymap/account-detect/internal/pipeline"
	"github.com/moneymap/account-detect/internal/store"
	storeBQ "github.com/moneymap/account-detect/internal/store/bigquery"
	"github.com/moneymap/account-detect/internal/store/inmemory"
)

func main() {
	log := logger.New()

	gcsURI := flag.String("gcs-uri", "", "GCS URI of the statement PDF (e.g. gs://bucket/file.pdf)")
	localFile := flag.String("file", "", "Local statement PDF to upload before ingesting (requires --bucket)")
	bucket := flag.String("bucket", os.Getenv("GCS_BUCKET"), "GCS bucket for --file uploads (or set GCS_BUCKET env)")
	userID := flag.String("user-id", "", "User the statement belongs to")
	dateStr := flag.String("statement-date", "", "Date the statement balance is valid for (YYYY-MM-DD, default today)")
	project := flag.String("project", os.Getenv("BIGQUERY_PROJECT"), "GCP project for the accounts dataset (or set BIGQUERY_PROJECT env)")
	dataset := flag.String("dataset", envOr("BIGQUERY_DATASET", "moneymap"), "BigQuery dataset holding the accounts table")
	flag.Parse()

	if *gcsURI == "" && *localFile == "" {
		log.Fatal().Msg("Error: --gcs-uri or --file is required")
	}
	if *localFile != "" && *bucket == "" {
		log.Fatal().Msg("Error: --file requires --bucket")
	}
	if *userID == "" {
		log.Fatal().Msg("Error: --user-id is required")
	}

	statementDate := civil.DateOf(time.Now())
	if *dateStr != "" {
		parsed, err := civil.ParseDate(*dateStr)
		if err != nil {
			log.Fatal().Err(err).Msg("Error: --statement-date must be YYYY-MM-DD")
		}
		statementDate = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

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

	if *localFile != "" {
		objectPath := "statements/" + filepath.Base(*localFile)
		uri, err := gcs.Upload(ctx, *bucket, objectPath, *localFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to upload statement")
		}
		log.Info().Str("gcs_uri", uri).Msg("Uploaded statement")
		*gcsURI = uri
	}

	detector := detect.New(log, balance.NewExtractor(log))
	p := pipeline.New(accounts, detector, log)

	log.Info().Str("gcs_uri", *gcsURI).Msg("Starting ingestion")

	result, err := p.IngestStatementFromGCS(ctx, *gcsURI, *userID, statementDate)
	if err != nil {
		log.Fatal().Err(err).Msg("Ingestion failed")
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode result")
	}
	fmt.Println(string(out))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
