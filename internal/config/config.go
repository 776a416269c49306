package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/Simplici0/remont/internal/calc"
)

const (
	defaultEnv      = "dev"
	defaultDBPath   = "./dev.db"
	defaultPort     = "8080"
	defaultLang     = "ru"
	defaultBaseURL  = "http://localhost:8080"
	defaultLogLevel = "info"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env         string
	DBPath      string
	Port        string
	DefaultLang string
	BaseURL     string
	LogLevel    string

	// Calculator overrides. Zero means "use the reference table value".
	AdhesiveKgPerM2 float64
	// TariffPerKwh is used when a heating request does not carry its own tariff.
	TariffPerKwh *float64
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: production injects real env vars.
	if err := loadDotEnv(".env"); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg := Config{
		Env:         getenv("APP_ENV", defaultEnv),
		DBPath:      getenv("DB_PATH", defaultDBPath),
		Port:        getenv("PORT", defaultPort),
		DefaultLang: getenv("DEFAULT_LANG", defaultLang),
		BaseURL:     strings.TrimRight(getenv("BASE_URL", defaultBaseURL), "/"),
		LogLevel:    getenv("LOG_LEVEL", defaultLogLevel),
	}

	cfg.AdhesiveKgPerM2 = getenvFloat("ADHESIVE_KG_PER_M2")
	if raw := strings.TrimSpace(os.Getenv("TARIFF_PER_KWH")); raw != "" {
		if tariff, ok := calc.ParseNumber(raw); ok && tariff >= 0 {
			cfg.TariffPerKwh = &tariff
		} else {
			slog.Warn("ignoring invalid TARIFF_PER_KWH", "value", raw)
		}
	}

	if cfg.DefaultLang != "ru" && cfg.DefaultLang != "en" {
		slog.Warn("unsupported DEFAULT_LANG, falling back to ru", "value", cfg.DefaultLang)
		cfg.DefaultLang = defaultLang
	}

	return cfg
}

// IsDev reports whether the app runs in development mode.
func (c Config) IsDev() bool {
	return c.Env == "" || c.Env == "dev" || c.Env == "development"
}

// Tables returns the calculator reference tables with configured overrides applied.
func (c Config) Tables() calc.Tables {
	t := calc.DefaultTables()
	if c.AdhesiveKgPerM2 > 0 {
		t.AdhesiveKgPerM2 = c.AdhesiveKgPerM2
	}
	return t
}

// SlogLevel maps LOG_LEVEL to a slog level; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0
	}
	v, ok := calc.ParseNumber(raw)
	if !ok || v < 0 {
		slog.Warn("ignoring invalid numeric env var", "key", key, "value", raw)
		return 0
	}
	return v
}
