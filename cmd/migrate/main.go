package main

import (
	"context"
	"crypto/sha256"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/moneymap/account-detect/internal/logger"
)

// migration is one versioned SQL file from the migrations directory.
type migration struct {
	Version  int
	Name     string
	Filename string
	SQL      string
	Checksum string
}

var migrationFileRe = regexp.MustCompile(`^(\d{4})_(.+)\.sql$`)

func main() {
	var (
		project       = flag.String("project", os.Getenv("BIGQUERY_PROJECT"), "GCP project ID (required)")
		dataset       = flag.String("dataset", envOr("BIGQUERY_DATASET", "moneymap"), "BigQuery dataset ID")
		appliedBy     = flag.String("applied-by", "migrate-cli", "recorded as the applier in schema_migrations")
		migrationsDir = flag.String("migrations", "migrations", "path to the migrations directory")
	)
	flag.Parse()

	log := logger.New()
	if *project == "" {
		log.Fatal().Msg("-project flag or BIGQUERY_PROJECT is required")
	}

	ctx := context.Background()
	client, err := bigquery.NewClient(ctx, *project)
	if err != nil {
		log.Fatal().Err(err).Msg("creating BigQuery client")
	}
	defer client.Close()

	log.Info().Str("project", *project).Str("dataset", *dataset).Msg("connected to BigQuery")

	if err := ensureSchemaMigrationsTable(ctx, client, *project, *dataset); err != nil {
		log.Fatal().Err(err).Msg("ensuring schema_migrations table")
	}

	migrations, err := loadMigrations(*migrationsDir, *project, *dataset)
	if err != nil {
		log.Fatal().Err(err).Msg("loading migrations")
	}
	log.Info().Int("count", len(migrations)).Msg("found migration files")

	appliedVersions, err := appliedMigrationVersions(ctx, client, *project, *dataset)
	if err != nil {
		log.Fatal().Err(err).Msg("reading applied migrations")
	}

	applied := 0
	for _, m := range migrations {
		if appliedVersions[m.Version] {
			log.Info().Str("migration", m.Filename).Msg("already applied, skipping")
			continue
		}

		log.Info().Str("migration", m.Filename).Msg("applying")
		if err := runStatement(ctx, client, m.SQL, nil); err != nil {
			log.Fatal().Err(err).Str("migration", m.Filename).Msg("applying migration")
		}
		if err := recordMigration(ctx, client, *project, *dataset, *appliedBy, m); err != nil {
			log.Fatal().Err(err).Str("migration", m.Filename).Msg("recording migration")
		}
		applied++
	}

	if applied == 0 {
		log.Info().Msg("no new migrations to apply")
	} else {
		log.Info().Int("applied", applied).Msg("migrations applied")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseMigrationFilename splits "0001_create_accounts.sql" into its version
// and name. ok is false for files that are not migrations.
func parseMigrationFilename(filename string) (version int, name string, ok bool) {
	m := migrationFileRe.FindStringSubmatch(filename)
	if m == nil {
		return 0, "", false
	}
	version, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return version, m[2], true
}

// loadMigrations reads the migrations directory, sorted by version. The
// checksum covers the raw file content, before project and dataset
// placeholders are substituted.
func loadMigrations(dir, projectID, datasetID string) ([]migration, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("loadMigrations: migrations directory not found: %s", dir)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("loadMigrations: reading directory: %w", err)
	}

	var migrations []migration
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		version, name, ok := parseMigrationFilename(file.Name())
		if !ok {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("loadMigrations: reading %s: %w", file.Name(), err)
		}

		sql := string(content)
		sql = strings.ReplaceAll(sql, "{{PROJECT_ID}}", projectID)
		sql = strings.ReplaceAll(sql, "{{DATASET_ID}}", datasetID)

		migrations = append(migrations, migration{
			Version:  version,
			Name:     name,
			Filename: file.Name(),
			SQL:      sql,
			Checksum: fmt.Sprintf("%x", sha256.Sum256(content)),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

func ensureSchemaMigrationsTable(ctx context.Context, client *bigquery.Client, projectID, datasetID string) error {
	sql := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS `+"`%s.%s.schema_migrations`"+` (
			version    INT64 NOT NULL,
			name       STRING NOT NULL,
			applied_at TIMESTAMP NOT NULL,
			checksum   STRING,
			applied_by STRING
		)
	`, projectID, datasetID)
	if err := runStatement(ctx, client, sql, nil); err != nil {
		return fmt.Errorf("ensureSchemaMigrationsTable: %w", err)
	}
	return nil
}

func appliedMigrationVersions(ctx context.Context, client *bigquery.Client, projectID, datasetID string) (map[int]bool, error) {
	sql := fmt.Sprintf(`
		SELECT version
		FROM `+"`%s.%s.schema_migrations`"+`
		ORDER BY version ASC
	`, projectID, datasetID)

	it, err := client.Query(sql).Read(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "Not found") {
			return map[int]bool{}, nil
		}
		return nil, fmt.Errorf("appliedMigrationVersions: reading: %w", err)
	}

	versions := make(map[int]bool)
	for {
		var row struct {
			Version int64 `bigquery:"version"`
		}
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("appliedMigrationVersions: iterating: %w", err)
		}
		versions[int(row.Version)] = true
	}
	return versions, nil
}

func recordMigration(ctx context.Context, client *bigquery.Client, projectID, datasetID, appliedBy string, m migration) error {
	sql := fmt.Sprintf(`
		INSERT INTO `+"`%s.%s.schema_migrations`"+`
		(version, name, applied_at, checksum, applied_by)
		VALUES (@version, @name, CURRENT_TIMESTAMP(), @checksum, @applied_by)
	`, projectID, datasetID)
	params := []bigquery.QueryParameter{
		{Name: "version", Value: m.Version},
		{Name: "name", Value: m.Name},
		{Name: "checksum", Value: m.Checksum},
		{Name: "applied_by", Value: appliedBy},
	}
	if err := runStatement(ctx, client, sql, params); err != nil {
		return fmt.Errorf("recordMigration: %w", err)
	}
	return nil
}

func runStatement(ctx context.Context, client *bigquery.Client, sql string, params []bigquery.QueryParameter) error {
	q := client.Query(sql)
	q.Parameters = params

	job, err := q.Run(ctx)
	if err != nil {
		return fmt.Errorf("running query: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return fmt.Errorf("waiting for job: %w", err)
	}
	if err := status.Err(); err != nil {
		return fmt.Errorf("job error: %w", err)
	}
	return nil
}
