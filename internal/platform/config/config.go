package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	LogLevel       string
	Location       *time.Location
	MigrationsPath string
	StoreDriver    string

	// Expiry scanner
	ExpiryScanInterval   time.Duration
	ExpiryScanMaxRetries int
	ExpiryScanRetryDelay time.Duration
	ExpiryScanBatchSize  int
	ExpiryScanMaxBatches int

	// HTTP edge
	RateLimit          string
	RedisURL           string
	CORSAllowedOrigins []string
	MetricsPort        string
}

// LoadConfig loads configuration from environment variables and .env files if present.
// Files named in envFiles are loaded first; a missing default .env is ignored.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else {
		// Attempt to load .env file, ignore error if it doesn't exist
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("EXPIRY_SCAN_INTERVAL", "10m")
	v.SetDefault("EXPIRY_SCAN_MAX_RETRIES", 3)
	v.SetDefault("EXPIRY_SCAN_RETRY_DELAY", "30s")
	v.SetDefault("EXPIRY_SCAN_BATCH_SIZE", 500)
	v.SetDefault("EXPIRY_SCAN_MAX_BATCHES", 1000)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("METRICS_PORT", "9090")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		LogLevel:             strings.ToLower(v.GetString("LOG_LEVEL")),
		MigrationsPath:       v.GetString("MIGRATIONS_PATH"),
		StoreDriver:          strings.ToLower(v.GetString("STORE_DRIVER")),
		ExpiryScanMaxRetries: v.GetInt("EXPIRY_SCAN_MAX_RETRIES"),
		ExpiryScanBatchSize:  v.GetInt("EXPIRY_SCAN_BATCH_SIZE"),
		ExpiryScanMaxBatches: v.GetInt("EXPIRY_SCAN_MAX_BATCHES"),
		RateLimit:            v.GetString("RATE_LIMIT"),
		RedisURL:             v.GetString("REDIS_URL"),
		MetricsPort:          v.GetString("METRICS_PORT"),
	}

	if cfg.StoreDriver == StoreDriverPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.StoreDriver != StoreDriverPostgres && cfg.StoreDriver != StoreDriverMemory {
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: expected %q or %q", cfg.StoreDriver, StoreDriverPostgres, StoreDriverMemory)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	loc, err := time.LoadLocation(v.GetString("TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	cfg.ExpiryScanInterval = durationOrDefault(v, "EXPIRY_SCAN_INTERVAL", 10*time.Minute)
	cfg.ExpiryScanRetryDelay = durationOrDefault(v, "EXPIRY_SCAN_RETRY_DELAY", 30*time.Second)

	if cfg.ExpiryScanMaxRetries < 0 {
		return nil, fmt.Errorf("EXPIRY_SCAN_MAX_RETRIES must not be negative, got %d", cfg.ExpiryScanMaxRetries)
	}
	if cfg.ExpiryScanBatchSize <= 0 || cfg.ExpiryScanMaxBatches <= 0 {
		return nil, fmt.Errorf("EXPIRY_SCAN_BATCH_SIZE and EXPIRY_SCAN_MAX_BATCHES must be positive")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
