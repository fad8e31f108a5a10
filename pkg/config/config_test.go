package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:            "8080",
		Env:             "development",
		MongoURI:        "mongodb://localhost:27017",
		JWTSecret:       "secure-secret-at-least-32-chars-long",
		SequenceBackend: SequenceBackendMongo,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Valid development", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing mongo uri", func(c *Config) { c.MongoURI = "" }, true},
		{"Missing secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Short secret in development", func(c *Config) { c.JWTSecret = "short" }, false},
		{"Short secret in production", func(c *Config) { c.Env = "production"; c.JWTSecret = "short" }, true},
		{"Default secret in production", func(c *Config) { c.Env = "prod"; c.JWTSecret = DefaultJWTSecret }, true},
		{"Strong secret in production", func(c *Config) { c.Env = "production" }, false},
		{"Postgres without url", func(c *Config) { c.SequenceBackend = SequenceBackendPostgres }, true},
		{"Postgres with url", func(c *Config) {
			c.SequenceBackend = SequenceBackendPostgres
			c.PostgresURL = "postgres://localhost/cooking"
		}, false},
		{"Unknown backend", func(c *Config) { c.SequenceBackend = "redis" }, true},
		{"Debug log level", func(c *Config) { c.LogLevel = "debug" }, false},
		{"Unknown log level", func(c *Config) { c.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("SEQUENCE_BACKEND", " Mongo ")
	t.Setenv("UPLOAD_MAX_FILE_MB", "5")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, SequenceBackendMongo, cfg.SequenceBackend)
	assert.Equal(t, int64(5<<20), cfg.UploadMaxBytes())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins())
	assert.Equal(t, "cookingapp", cfg.MongoDatabase)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL())
	assert.Equal(t, "warn", cfg.LogLevel)
}
