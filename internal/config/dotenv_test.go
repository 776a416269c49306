package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDotEnv(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	return path
}

func TestLoadDotEnv_LoadsValuesAndIgnoresNoise(t *testing.T) {
	t.Setenv("REMONT_PORT", "")
	t.Setenv("REMONT_LANG", "")
	t.Setenv("REMONT_BASE_URL", "")

	path := writeDotEnv(t, `
# local overrides

REMONT_PORT=8181
export REMONT_LANG=en
REMONT_BASE_URL="http://localhost:8181"
`)

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	for key, want := range map[string]string{
		"REMONT_PORT":     "8181",
		"REMONT_LANG":     "en",
		"REMONT_BASE_URL": "http://localhost:8181",
	} {
		if got := os.Getenv(key); got != want {
			t.Fatalf("%s=%q, want %q", key, got, want)
		}
	}
}

func TestLoadDotEnv_DoesNotOverwriteExistingEnv(t *testing.T) {
	t.Setenv("REMONT_DB_PATH", "/var/lib/remont.db")

	path := writeDotEnv(t, "REMONT_DB_PATH=./dev.db\n")
	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("REMONT_DB_PATH"); got != "/var/lib/remont.db" {
		t.Fatalf("REMONT_DB_PATH=%q, want %q", got, "/var/lib/remont.db")
	}
}

func TestLoadDotEnv_StripsSingleQuotes(t *testing.T) {
	t.Setenv("REMONT_TITLE", "")

	path := writeDotEnv(t, "REMONT_TITLE='Ремонт без хлопот'\n")
	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("REMONT_TITLE"); got != "Ремонт без хлопот" {
		t.Fatalf("REMONT_TITLE=%q, want %q", got, "Ремонт без хлопот")
	}
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("loadDotEnv on missing file: %v", err)
	}
}
