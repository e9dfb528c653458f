package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds all application configuration
type Config struct {
	Dir        string
	Pair       string
	FormsFile  string
	LogLevel   string
	SeedSample bool
}

// Load reads configuration from environment variables.
// Values are checked by Validate once command line overrides are applied.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	seed, err := getEnvBool("POLYGLOT_SAMPLE", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Dir:        getEnv("POLYGLOT_DIR", "languages"),
		Pair:       os.Getenv("POLYGLOT_PAIR"),
		FormsFile:  os.Getenv("POLYGLOT_FORMS"),
		LogLevel:   getEnv("POLYGLOT_LOG_LEVEL", "warn"),
		SeedSample: seed,
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("POLYGLOT_DIR is required")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("POLYGLOT_LOG_LEVEL: %w", err)
	}
	return nil
}

// LoggerConfig returns the zap production config at the configured level
func (c *Config) LoggerConfig() (zap.Config, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zap.Config{}, fmt.Errorf("POLYGLOT_LOG_LEVEL: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, value)
	}
	return b, nil
}
