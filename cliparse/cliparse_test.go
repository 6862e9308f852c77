// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("INGEST_KEY_SALT", "test-salt")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DriverName() != "postgres" {
		t.Errorf("expected postgres driver, got %s", cfg.DriverName())
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-ingest-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	// sqlite is the default type
	if cfg.DriverName() != "sqlite" {
		t.Errorf("expected sqlite driver, got %s", cfg.DriverName())
	}
}

func TestParseFlags_RejectsUnknownDatabaseType(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-d", "file:test.db", "-t", "oracle", "-ingest-salt", "s1"})
	if err == nil {
		t.Fatal("expected error for unknown database type")
	}
}

func TestParseFlags_RequiresIngestSalt(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-d", "file:test.db"})
	if err == nil {
		t.Fatal("expected error when INGEST_KEY_SALT is missing")
	}
}
