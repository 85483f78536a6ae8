package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseMigrationFilename(t *testing.T) {
	tests := []struct {
		filename string
		ok       bool
		version  int
		name     string
	}{
		{"0001_create_accounts.sql", true, 1, "create_accounts"},
		{"0012_add_holder_name.sql", true, 12, "add_holder_name"},
		{"001_short_version.sql", false, 0, ""},
		{"0001_missing_suffix", false, 0, ""},
		{"0001.sql", false, 0, ""},
		{"notes.txt", false, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			version, name, ok := parseMigrationFilename(tt.filename)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if version != tt.version || name != tt.name {
				t.Errorf("parsed (%d, %q), want (%d, %q)", version, name, tt.version, tt.name)
			}
		})
	}
}

func TestLoadMigrations(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("0002_second.sql", "SELECT 2 FROM `{{PROJECT_ID}}.{{DATASET_ID}}.accounts`")
	write("0001_first.sql", "SELECT 1")
	write("README.md", "not a migration")

	migrations, err := loadMigrations(dir, "proj", "ds")
	if err != nil {
		t.Fatalf("loadMigrations: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("len(migrations) = %d, want 2", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[1].Version != 2 {
		t.Errorf("migrations not sorted by version: %d, %d", migrations[0].Version, migrations[1].Version)
	}
	if want := "SELECT 2 FROM `proj.ds.accounts`"; migrations[1].SQL != want {
		t.Errorf("SQL = %q, want %q", migrations[1].SQL, want)
	}
	if migrations[0].Checksum == "" || migrations[0].Checksum == migrations[1].Checksum {
		t.Error("checksums should be set and distinct per file")
	}
}

func TestLoadMigrations_ChecksumIgnoresPlaceholders(t *testing.T) {
	dir := t.TempDir()
	content := "CREATE TABLE `{{PROJECT_ID}}.{{DATASET_ID}}.accounts` (account_id STRING)"
	if err := os.WriteFile(filepath.Join(dir, "0001_create_accounts.sql"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := loadMigrations(dir, "proj-a", "ds-a")
	if err != nil {
		t.Fatalf("loadMigrations: %v", err)
	}
	b, err := loadMigrations(dir, "proj-b", "ds-b")
	if err != nil {
		t.Fatalf("loadMigrations: %v", err)
	}

	// The checksum tracks the migration itself, not the target it is
	// rendered against.
	if a[0].Checksum != b[0].Checksum {
		t.Error("checksum should not depend on project or dataset")
	}
	if a[0].SQL == b[0].SQL || !strings.Contains(a[0].SQL, "proj-a.ds-a") {
		t.Errorf("SQL not rendered for target: %q", a[0].SQL)
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	if _, err := loadMigrations(filepath.Join(t.TempDir(), "nope"), "p", "d"); err == nil {
		t.Error("expected error for missing directory")
	}
}
