// Package config loads configuration for both the fintrack client and
// the fintrackd server from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"fintrack/internal/core"
)

type Config struct {
	// Shared
	LogLevel string

	// Client
	APIBaseURL string
	UserID     string
	UserName   string
	UserEmail  string
	UserRole   string

	// Server
	Port         string
	SQLiteDBPath string

	// AMQP change events (optional; empty URL disables publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

func Load() *Config {
	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),

		APIBaseURL: getEnv("FINTRACK_API_URL", "http://localhost:8081"),
		UserID:     getEnv("FINTRACK_USER_ID", "local"),
		UserName:   getEnv("FINTRACK_USER_NAME", "Local User"),
		UserEmail:  getEnv("FINTRACK_USER_EMAIL", "local@example.com"),
		UserRole:   getEnv("FINTRACK_USER_ROLE", "user"),

		Port:         getEnv("PORT", "8081"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/fintrack.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "fintrack"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "transaction_events"),
	}
}

// CurrentUser builds the read-only current-user fact from the
// environment-supplied identity.
func (c *Config) CurrentUser() core.User {
	return core.User{
		ID:    c.UserID,
		Name:  c.UserName,
		Email: c.UserEmail,
		Role:  core.Role(c.UserRole),
	}
}

// Validate checks the configuration and returns all problems as a single
// error.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if u, err := url.Parse(c.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("invalid API base URL '%s'", c.APIBaseURL))
	}

	if !core.Role(c.UserRole).Valid() {
		errs = append(errs, fmt.Sprintf("invalid user role '%s': must be admin, user or read-only", c.UserRole))
	}

	if c.AMQPURL != "" {
		if u, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if u.Scheme != "amqp" && u.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", u.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errs = append(errs, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.SQLiteDBPath == "" {
		errs = append(errs, "SQLite database path cannot be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
