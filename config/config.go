package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cache backends accepted by CACHE_BACKEND.
const (
	CacheMemory   = "memory"
	CachePostgres = "postgres"
	CacheNone     = "none"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, calendar defaults, caching, warm-up jobs and the
// optional Postgres cache store.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	DEFAULT_TIMEZONE=America/Sao_Paulo
//	CACHE_BACKEND=postgres
//	CACHE_TTL_SECONDS=86400
//	RATE_LIMIT_PER_MINUTE=100
//	WARMUP_SCHEDULE=0 3 * * *
//	WARMUP_REGIONS=US,BR
//	WARMUP_YEARS=2
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=holidaypulse
//	POSTGRES_SSLMODE=disable
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Calendar CalendarConfig // Host defaults for calendar queries
	Cache    CacheConfig    // Memoization of holiday sets and occurrences
	Warmup   WarmupConfig   // Scheduled precomputation
	Postgres PostgresConfig // PostgreSQL connection settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string // The TCP port the HTTP server will listen on (e.g., "8080")
	RateLimitPerMinute int    // Requests allowed per client IP per minute
}

// CalendarConfig holds defaults applied when a request leaves them out.
type CalendarConfig struct {
	// DefaultTimezone is used when the timezone parameter is absent.
	// An explicitly empty parameter still means UTC.
	DefaultTimezone string
}

// CacheConfig selects the memoizing store.
//
// Fields:
//   - Backend: "memory", "postgres" or "none".
//   - TTL: lifetime of a cached entry.
type CacheConfig struct {
	Backend string
	TTL     time.Duration
}

// WarmupConfig drives the cron warm-up job.
//
// Fields:
//   - Schedule: standard 5-field cron spec; empty disables the job.
//   - Regions: regions to precompute; empty means every supported region.
//   - Years: how many years, starting at the current one, to precompute.
type WarmupConfig struct {
	Schedule string
	Regions  []string
	Years    int
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Constructs the PostgreSQL connection string (DSN).
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() will
//     terminate the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 100)

	viper.SetDefault("DEFAULT_TIMEZONE", "UTC")

	viper.SetDefault("CACHE_BACKEND", CacheMemory)
	viper.SetDefault("CACHE_TTL_SECONDS", 86400)

	viper.SetDefault("WARMUP_SCHEDULE", "0 3 * * *")
	viper.SetDefault("WARMUP_REGIONS", "")
	viper.SetDefault("WARMUP_YEARS", 2)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "holidaypulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Calendar: CalendarConfig{
			DefaultTimezone: viper.GetString("DEFAULT_TIMEZONE"),
		},
		Cache: CacheConfig{
			Backend: strings.ToLower(strings.TrimSpace(viper.GetString("CACHE_BACKEND"))),
			TTL:     time.Duration(viper.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		},
		Warmup: WarmupConfig{
			Schedule: strings.TrimSpace(viper.GetString("WARMUP_SCHEDULE")),
			Regions:  splitList(viper.GetString("WARMUP_REGIONS")),
			Years:    viper.GetInt("WARMUP_YEARS"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	// Validate critical fields
	validateConfig()
}

// splitList turns "US, br,,CA" into ["US" "BR" "CA"].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToUpper(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// Behavior:
//   - Collects every problem via configProblems().
//   - If any are found, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	if problems := configProblems(AppConfig); len(problems) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", problems)
	}
}

// configProblems lists the variables that are missing or invalid in cfg.
// Postgres settings are only required when the postgres cache is selected.
func configProblems(cfg Config) []string {
	var problems []string

	if cfg.Server.Port == "" {
		problems = append(problems, "SERVER_PORT")
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		problems = append(problems, "RATE_LIMIT_PER_MINUTE")
	}
	if _, err := time.LoadLocation(cfg.Calendar.DefaultTimezone); err != nil {
		problems = append(problems, "DEFAULT_TIMEZONE")
	}
	if cfg.Warmup.Years < 0 {
		problems = append(problems, "WARMUP_YEARS")
	}

	switch cfg.Cache.Backend {
	case CacheMemory, CacheNone:
	case CachePostgres:
		if cfg.Postgres.Host == "" {
			problems = append(problems, "POSTGRES_HOST")
		}
		if cfg.Postgres.Port == 0 {
			problems = append(problems, "POSTGRES_PORT")
		}
		if cfg.Postgres.User == "" {
			problems = append(problems, "POSTGRES_USER")
		}
		if cfg.Postgres.Password == "" {
			problems = append(problems, "POSTGRES_PASSWORD")
		}
		if cfg.Postgres.DBName == "" {
			problems = append(problems, "POSTGRES_DB")
		}
	default:
		problems = append(problems, "CACHE_BACKEND")
	}

	return problems
}
