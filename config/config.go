// Package config loads blues-scooter configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Notehub NotehubConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// NotehubConfig identifies the single device that receives signals and the
// session token used to reach it.
type NotehubConfig struct {
	APIURL       string
	ProductUID   string
	DeviceUID    string
	SessionToken string
	Timeout      time.Duration
}

type LogConfig struct {
	Level string
}

// Load returns application configuration from environment variables.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, relying on system env vars")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Notehub: NotehubConfig{
			APIURL:       getEnv("NOTEHUB_API_URL", "https://api.notefile.net"),
			ProductUID:   getEnv("NOTEHUB_PRODUCT_UID", "com.blues.ces"),
			DeviceUID:    getEnv("NOTEHUB_DEVICE_UID", "dev:860322068096251"),
			SessionToken: getEnv("NOTEHUB_SESSION_TOKEN", ""),
			Timeout:      getEnvDuration("NOTEHUB_TIMEOUT", 15*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Validate reports configuration that would only surface later as an auth
// failure or a malformed request.
func (c *Config) Validate() error {
	var errs []error
	if c.Notehub.SessionToken == "" {
		errs = append(errs, errors.New("NOTEHUB_SESSION_TOKEN is required"))
	}
	if c.Notehub.APIURL == "" {
		errs = append(errs, errors.New("NOTEHUB_API_URL must not be empty"))
	}
	if c.Notehub.ProductUID == "" || c.Notehub.DeviceUID == "" {
		errs = append(errs, errors.New("NOTEHUB_PRODUCT_UID and NOTEHUB_DEVICE_UID must not be empty"))
	}
	if c.Notehub.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("NOTEHUB_TIMEOUT must be positive, got %s", c.Notehub.Timeout))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether the service runs with production defaults.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// Zero fails Validate.
		return 0
	}
	return defaultValue
}
