package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "LOG_LEVEL", "NOTEHUB_API_URL", "NOTEHUB_PRODUCT_UID",
		"NOTEHUB_DEVICE_UID", "NOTEHUB_SESSION_TOKEN", "NOTEHUB_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "https://api.notefile.net", cfg.Notehub.APIURL)
	assert.Equal(t, "com.blues.ces", cfg.Notehub.ProductUID)
	assert.Equal(t, "dev:860322068096251", cfg.Notehub.DeviceUID)
	assert.Empty(t, cfg.Notehub.SessionToken)
	assert.Equal(t, 15*time.Second, cfg.Notehub.Timeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("NOTEHUB_API_URL", "http://localhost:1234")
	t.Setenv("NOTEHUB_PRODUCT_UID", "com.example.demo")
	t.Setenv("NOTEHUB_DEVICE_UID", "dev:000000000000001")
	t.Setenv("NOTEHUB_SESSION_TOKEN", "secret")
	t.Setenv("NOTEHUB_TIMEOUT", "3s")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "http://localhost:1234", cfg.Notehub.APIURL)
	assert.Equal(t, "com.example.demo", cfg.Notehub.ProductUID)
	assert.Equal(t, "dev:000000000000001", cfg.Notehub.DeviceUID)
	assert.Equal(t, "secret", cfg.Notehub.SessionToken)
	assert.Equal(t, 3*time.Second, cfg.Notehub.Timeout)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080", Env: "development"},
			Notehub: NotehubConfig{
				APIURL:       "https://api.notefile.net",
				ProductUID:   "com.blues.ces",
				DeviceUID:    "dev:860322068096251",
				SessionToken: "token",
				Timeout:      time.Second,
			},
			Log: LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing token", mutate: func(c *Config) { c.Notehub.SessionToken = "" }, wantErr: "NOTEHUB_SESSION_TOKEN"},
		{name: "missing url", mutate: func(c *Config) { c.Notehub.APIURL = "" }, wantErr: "NOTEHUB_API_URL"},
		{name: "missing device", mutate: func(c *Config) { c.Notehub.DeviceUID = "" }, wantErr: "NOTEHUB_DEVICE_UID"},
		{name: "zero timeout", mutate: func(c *Config) { c.Notehub.Timeout = 0 }, wantErr: "NOTEHUB_TIMEOUT"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInvalidTimeoutFailsValidation(t *testing.T) {
	t.Setenv("NOTEHUB_SESSION_TOKEN", "token")
	t.Setenv("NOTEHUB_TIMEOUT", "soon")

	cfg := Load()

	assert.Zero(t, cfg.Notehub.Timeout)
	assert.ErrorContains(t, cfg.Validate(), "NOTEHUB_TIMEOUT")
}
