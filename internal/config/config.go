package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	DiscordToken string
	DiscordAppID string
	// DiscordAnnounceChannelID receives refill announcements when set.
	DiscordAnnounceChannelID string

	// DevMode bypasses command cooldowns.
	DevMode bool

	ActionTimeout    time.Duration // wait for a battle action component
	StrategicTimeout time.Duration // wait for slower inputs (team joins, risk-life)
	RefillInterval   time.Duration // daily action-point refill check period
	RefillCooldown   time.Duration // time between action-point refills per user
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env if present; real env vars are fine too
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		Environment:      getEnv("ENVIRONMENT", "dev"),
		Version:          getEnv("VERSION", "dev"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "etheris"),
		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:     getEnv("DISCORD_APP_ID", ""),
		DevMode:          getEnvAsBool("DEV_MODE", false),
		ActionTimeout:    getEnvAsDuration("ACTION_TIMEOUT", 60*time.Second),
		StrategicTimeout: getEnvAsDuration("STRATEGIC_TIMEOUT", 3*time.Minute),
		RefillInterval:   getEnvAsDuration("REFILL_INTERVAL", 10*time.Minute),
		RefillCooldown:   getEnvAsDuration("REFILL_COOLDOWN", 24*time.Hour),
	}

	cfg.Port = getEnvAsInt("PORT", 8080)
	cfg.DiscordAnnounceChannelID = getEnv("DISCORD_ANNOUNCE_CHANNEL_ID", "")

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN environment variable must be set")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an env var as int or returns the default
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsBool retrieves an env var as bool or returns the default
func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvAsDuration retrieves an env var as duration or returns the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
