package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Web.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Web.Port)
	}
	if cfg.Airtable.TableName != DefaultTableName {
		t.Errorf("table = %q, want %q", cfg.Airtable.TableName, DefaultTableName)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("database driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Database.SQLite.Path != "preopedge.db" {
		t.Errorf("sqlite path = %q", cfg.Database.SQLite.Path)
	}
}

func TestLoadPostgresDriver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("database:\n  driver: postgres\n  postgres:\n    host: db.internal\n    database: preop\n    user: preop\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.Database.Postgres.Host != "db.internal" {
		t.Errorf("host = %q, want db.internal", cfg.Database.Postgres.Host)
	}
	// Defaults survive a partial postgres block.
	if cfg.Database.Postgres.Port != 5432 {
		t.Errorf("port = %d, want 5432", cfg.Database.Postgres.Port)
	}
	if cfg.Database.Postgres.SSLMode != "disable" {
		t.Errorf("sslmode = %q, want disable", cfg.Database.Postgres.SSLMode)
	}
}

func TestLoadOverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("site_id: yard-7\nweb:\n  port: 9090\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SiteID != "yard-7" {
		t.Errorf("site id = %q, want yard-7", cfg.SiteID)
	}
	if cfg.Web.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Web.Port)
	}
	// Untouched keys keep their defaults.
	if cfg.QueuePath != "pending_submissions.json" {
		t.Errorf("queue path = %q", cfg.QueuePath)
	}
}

func TestEnvOverlayFlipsConfigured(t *testing.T) {
	t.Setenv("AIRTABLE_API_KEY", "")
	t.Setenv("AIRTABLE_BASE_ID", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Airtable.IsConfigured() {
		t.Fatal("configured without credentials")
	}

	t.Setenv("AIRTABLE_API_KEY", "key123")
	t.Setenv("AIRTABLE_BASE_ID", "appBASE")
	t.Setenv("AIRTABLE_TABLE_NAME", "Custom Table")
	cfg, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Airtable.IsConfigured() {
		t.Error("not configured with credentials set")
	}
	if cfg.Airtable.TableName != "Custom Table" {
		t.Errorf("table = %q, want env override", cfg.Airtable.TableName)
	}
}
