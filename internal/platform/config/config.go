package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// Rate synchronization
	BaseCurrency   string
	SyncCurrencies []string
	SyncChunkDays  int
	SyncMaxRetries int
	SyncBackoff    time.Duration
	ECBBaseURL     string

	// Scheduling
	DailySyncSpec         string
	CleanupSpec           string
	TrackingRetentionDays int
	UpdateRetentionDays   int

	RateLimitRPS int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("BASE_CURRENCY", "EUR")
	viper.SetDefault("SYNC_CURRENCIES", "USD,CHF,GBP,JPY,SEK,NOK")
	viper.SetDefault("SYNC_CHUNK_DAYS", 30)
	viper.SetDefault("SYNC_MAX_RETRIES", 3)
	viper.SetDefault("SYNC_RETRY_BACKOFF", "1s")
	viper.SetDefault("ECB_BASE_URL", "")
	// The ECB publishes reference rates around 16:00 CET on business days.
	viper.SetDefault("DAILY_SYNC_SPEC", "0 17 * * 1-5")
	viper.SetDefault("CLEANUP_SPEC", "30 3 * * *")
	viper.SetDefault("TRACKING_RETENTION_DAYS", 30)
	viper.SetDefault("UPDATE_RETENTION_DAYS", 30)
	viper.SetDefault("RATE_LIMIT_RPS", 20)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.BaseCurrency = strings.ToUpper(viper.GetString("BASE_CURRENCY"))
	for _, c := range strings.Split(viper.GetString("SYNC_CURRENCIES"), ",") {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			cfg.SyncCurrencies = append(cfg.SyncCurrencies, c)
		}
	}

	cfg.SyncChunkDays = viper.GetInt("SYNC_CHUNK_DAYS")
	cfg.SyncMaxRetries = viper.GetInt("SYNC_MAX_RETRIES")

	backoffStr := viper.GetString("SYNC_RETRY_BACKOFF")
	backoff, err := time.ParseDuration(backoffStr)
	if err != nil {
		log.Printf("Warning: invalid SYNC_RETRY_BACKOFF %q, using 1s\n", backoffStr)
		backoff = time.Second
	}
	cfg.SyncBackoff = backoff

	cfg.ECBBaseURL = viper.GetString("ECB_BASE_URL")
	cfg.DailySyncSpec = viper.GetString("DAILY_SYNC_SPEC")
	cfg.CleanupSpec = viper.GetString("CLEANUP_SPEC")
	cfg.TrackingRetentionDays = viper.GetInt("TRACKING_RETENTION_DAYS")
	cfg.UpdateRetentionDays = viper.GetInt("UPDATE_RETENTION_DAYS")
	cfg.RateLimitRPS = viper.GetInt("RATE_LIMIT_RPS")

	return cfg, nil
}
