// Package config reads the service settings from environment variables
// and validates them before anything else starts.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Config carries every runtime setting for the service.
type Config struct {
	Port              string
	Address           string
	Env               Environment
	LogLevel          string
	LogRetentionWeeks int     // weekly log files older than this are swept
	MaxLogFileSize    int64   // size at which a week's log file spills to a numbered sibling
	MaxRequestBody    int64   // request body cap in bytes
	MaxHeaderSize     int64   // summed request header cap in bytes
	RateLimitRate     float64 // token bucket refill, tokens per second
	RateLimitBurst    int64   // token bucket capacity per client
}

// Load builds a Config from the environment, falling back to defaults
// for anything unset, and rejects values that would misconfigure the
// server.
func Load() (*Config, error) {
	env, err := ParseEnvironment(envString("ENV", "dev"))
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: invalid ENV: %w", err)
	}

	cfg := &Config{
		Port:              envString("PORT", "8000"),
		Address:           envString("ADDRESS", "127.0.0.1"),
		Env:               env,
		LogLevel:          envString("LOG_LEVEL", "info"),
		LogRetentionWeeks: envInt("LOG_RETENTION_WEEKS", 4),
		MaxLogFileSize:    envInt64("MAX_LOG_FILE_SIZE", 100<<20),
		MaxRequestBody:    envInt64("MAX_REQUEST_BODY", 1<<20),
		MaxHeaderSize:     envInt64("MAX_HEADER_SIZE", 1<<20),
		RateLimitRate:     envFloat("RATE_LIMIT_RATE", 3),
		RateLimitBurst:    envInt64("RATE_LIMIT_BURST", 1000),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if err := validatePort(c.Port); err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	if err := validateAddress(c.Address); err != nil {
		return fmt.Errorf("invalid ADDRESS: %w", err)
	}
	if err := validateLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if err := checkRange("MAX_REQUEST_BODY", c.MaxRequestBody, 1, 100<<20); err != nil {
		return err
	}
	if err := checkRange("MAX_HEADER_SIZE", c.MaxHeaderSize, 1, 100<<20); err != nil {
		return err
	}
	if err := checkRange("LOG_RETENTION_WEEKS", int64(c.LogRetentionWeeks), 1, 52); err != nil {
		return err
	}
	if err := checkRange("MAX_LOG_FILE_SIZE", c.MaxLogFileSize, 1<<20, 1<<30); err != nil {
		return err
	}
	if c.RateLimitRate <= 0 || c.RateLimitRate > 1000 {
		return fmt.Errorf("RATE_LIMIT_RATE must be above 0 and at most 1000 tokens per second, got: %g", c.RateLimitRate)
	}
	return checkRange("RATE_LIMIT_BURST", c.RateLimitBurst, 1, 1_000_000)
}

func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}
	switch {
	case n < 1 || n > 65535:
		return fmt.Errorf("PORT must be between 1 and 65535")
	case n < 1024:
		return fmt.Errorf("PORT %d is privileged (less than 1024), use ports 1024-65535", n)
	}
	return nil
}

// validateAddress accepts loopback and private addresses only. The
// service serves reference data with no auth, so it should sit behind
// a proxy rather than bind a public interface directly.
func validateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("ADDRESS cannot be empty")
	}
	if address == "localhost" {
		return nil
	}
	ip := net.ParseIP(address)
	if ip == nil {
		return fmt.Errorf("ADDRESS must be a valid IP address or 'localhost', got: %s", address)
	}
	if !ip.IsLoopback() && !ip.IsPrivate() {
		return fmt.Errorf("ADDRESS %s is a public IP, bind a loopback or private address instead", address)
	}
	return nil
}

var logLevelNames = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func validateLogLevel(level string) error {
	if level == "" {
		return fmt.Errorf("LOG_LEVEL cannot be empty")
	}
	if !logLevelNames[strings.ToLower(level)] {
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got: %s", level)
	}
	return nil
}

// checkRange rejects numeric settings outside their allowed window.
func checkRange(name string, value, min, max int64) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %d and %d, got: %d", name, min, max, value)
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if n, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil {
		return n
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return fallback
}

// GetEnvVars lists every environment variable the service reads, for
// startup diagnostics.
func GetEnvVars() []string {
	return []string{
		"PORT",
		"ADDRESS",
		"ENV",
		"LOG_LEVEL",
		"LOG_RETENTION_WEEKS",
		"MAX_LOG_FILE_SIZE",
		"MAX_REQUEST_BODY",
		"MAX_HEADER_SIZE",
		"RATE_LIMIT_RATE",
		"RATE_LIMIT_BURST",
	}
}
