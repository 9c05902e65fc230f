package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all adapter configuration
type Config struct {
	LogLevel string `json:"log_level"`

	// Result retrieval
	ResultPollInterval time.Duration `json:"result_poll_interval"`
	ResultMaxAttempts  int           `json:"result_max_attempts"`
	ResultBackoffBase  float64       `json:"result_backoff_base"`
	ResultMaxBackoff   time.Duration `json:"result_max_backoff"`

	// Job metadata persistence
	JobStore string `json:"job_store"` // "memory" or "redis"
	RedisURL string `json:"redis_url"`
}

// LoadConfig loads configuration from environment variables with sensible defaults
func LoadConfig() (*Config, error) {
	cfg := &Config{
		LogLevel:           getEnvString("LOG_LEVEL", "INFO"),
		ResultPollInterval: getEnvDuration("RESULT_POLL_INTERVAL", time.Second),
		ResultMaxAttempts:  getEnvInt("RESULT_MAX_ATTEMPTS", 5),
		ResultBackoffBase:  getEnvFloat("RESULT_BACKOFF_BASE", 2.0),
		ResultMaxBackoff:   getEnvDuration("RESULT_MAX_BACKOFF", 30*time.Second),
		JobStore:           getEnvString("JOB_STORE", "memory"),
		RedisURL:           getEnvString("REDIS_URL", "redis://localhost:6379"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Helper functions for environment variable parsing
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// validate performs basic validation of the configuration
func (c *Config) validate() error {
	// Validate and normalize LogLevel
	validLevels := map[string]bool{
		"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true,
	}
	upperLevel := strings.ToUpper(strings.TrimSpace(c.LogLevel))
	if !validLevels[upperLevel] {
		return fmt.Errorf("invalid log level '%s': must be DEBUG, INFO, WARN, or ERROR", c.LogLevel)
	}
	c.LogLevel = upperLevel

	// Validate retrieval settings
	if c.ResultPollInterval <= 0 {
		return fmt.Errorf("invalid result poll interval %v: must be positive", c.ResultPollInterval)
	}
	if c.ResultPollInterval > time.Minute {
		return fmt.Errorf("invalid result poll interval %v: must not exceed 1 minute", c.ResultPollInterval)
	}
	if c.ResultMaxAttempts < 1 {
		return fmt.Errorf("invalid result max attempts %d: must be at least 1", c.ResultMaxAttempts)
	}
	if c.ResultBackoffBase < 1 {
		return fmt.Errorf("invalid result backoff base %v: must be at least 1", c.ResultBackoffBase)
	}
	if c.ResultMaxBackoff < c.ResultPollInterval {
		return fmt.Errorf("invalid result max backoff %v: must not be below the poll interval", c.ResultMaxBackoff)
	}

	// Validate job store selection
	switch strings.ToLower(strings.TrimSpace(c.JobStore)) {
	case "memory":
		c.JobStore = "memory"
	case "redis":
		c.JobStore = "redis"
		if strings.TrimSpace(c.RedisURL) == "" {
			return fmt.Errorf("redis URL cannot be empty when the redis job store is selected")
		}
	default:
		return fmt.Errorf("invalid job store '%s': must be memory or redis", c.JobStore)
	}

	return nil
}
