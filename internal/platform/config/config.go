package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// StoreDriver selects the event store backend.
type StoreDriver string

const (
	StoreMemory   StoreDriver = "memory"
	StoreSQLite   StoreDriver = "sqlite"
	StorePostgres StoreDriver = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	StoreDriver    StoreDriver
	SQLitePath     string
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	RateLimit          string
	CORSAllowedOrigins []string
	LoadSampleData     bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8081")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_DRIVER", string(StoreSQLite))
	viper.SetDefault("SQLITE_PATH", "aba_ledger.db")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("LOAD_SAMPLE_DATA", false)

	// Values from .env were exported by godotenv, so actual environment
	// variables and .env entries are read the same way here.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8081" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	if err := cfg.LogLevel.UnmarshalText([]byte(viper.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", viper.GetString("LOG_LEVEL"), err)
	}

	cfg.StoreDriver = StoreDriver(strings.ToLower(viper.GetString("STORE_DRIVER")))
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	switch cfg.StoreDriver {
	case StoreMemory:
		log.Println("Warning: STORE_DRIVER is memory. The journal will not survive a restart.")
	case StoreSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH must be set when STORE_DRIVER is %s", StoreSQLite)
		}
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORE_DRIVER is %s", StorePostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want memory, sqlite or postgres)", cfg.StoreDriver)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.LoadSampleData = viper.GetBool("LOAD_SAMPLE_DATA")

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
