package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Session store backends.
const (
	SessionStoreMemory   = "memory"
	SessionStoreRedis    = "redis"
	SessionStorePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Core banking API
	BankAPIBaseURL   string        `mapstructure:"BANK_API_BASE_URL"`
	BankAPITimeout   time.Duration `mapstructure:"BANK_API_TIMEOUT"`
	BankAPIRateLimit float64       `mapstructure:"BANK_API_RATE_LIMIT"`
	BankAPIBurst     int           `mapstructure:"BANK_API_BURST"`

	// Portal tokens
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Sessions
	SessionStore  string `mapstructure:"SESSION_STORE"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	DatabaseURL   string
	MigrationsURL string `mapstructure:"MIGRATIONS_PATH"`

	FrontendBaseURL          string `mapstructure:"FRONTEND_BASE_URL"`
	LoginRateLimit           string `mapstructure:"LOGIN_RATE_LIMIT"`
	NotificationPollInterval time.Duration
	PosthogAPIKey            string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BANK_API_BASE_URL", "http://localhost:9090")
	viper.SetDefault("BANK_API_TIMEOUT", "15s")
	viper.SetDefault("BANK_API_RATE_LIMIT", 50)
	viper.SetDefault("BANK_API_BURST", 20)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "bank-portal")
	viper.SetDefault("SESSION_STORE", SessionStoreMemory)
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("NOTIFICATION_POLL_INTERVAL", "60s")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.BankAPIBaseURL = strings.TrimRight(viper.GetString("BANK_API_BASE_URL"), "/")
	cfg.BankAPITimeout = durationOrDefault("BANK_API_TIMEOUT", 15*time.Second)
	cfg.BankAPIRateLimit = viper.GetFloat64("BANK_API_RATE_LIMIT")
	cfg.BankAPIBurst = viper.GetInt("BANK_API_BURST")

	// Load JWT Secret
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "bank-portal"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.SessionStore = strings.ToLower(viper.GetString("SESSION_STORE"))
	switch cfg.SessionStore {
	case SessionStoreMemory, SessionStoreRedis, SessionStorePostgres:
	default:
		log.Printf("Warning: Unknown SESSION_STORE ('%s'). Defaulting to %s.\n", cfg.SessionStore, SessionStoreMemory)
		cfg.SessionStore = SessionStoreMemory
	}
	cfg.SessionSecret = viper.GetString("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		log.Println("Warning: SESSION_SECRET not set, sealing upstream tokens with JWT_SECRET.")
		cfg.SessionSecret = cfg.JWTSecret
	}
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.SessionStore == SessionStorePostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.MigrationsURL = viper.GetString("MIGRATIONS_PATH")

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.NotificationPollInterval = durationOrDefault("NOTIFICATION_POLL_INTERVAL", time.Minute)
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
