package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes keys for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingBotToken(t *testing.T) {
	unsetEnv(t, "BOT_TOKEN")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_WithDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	unsetEnv(t,
		"CATALOG_SOURCE", "ADMIN_REPLY_DELAY", "POLL_TIMEOUT", "LOG_LEVEL",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSL_MODE",
	)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, CatalogStatic, cfg.CatalogSource)
	assert.Equal(t, 3*time.Second, cfg.AdminReplyDelay)
	assert.Equal(t, 10*time.Second, cfg.PollTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "mygriya", cfg.Database.Name)
	assert.Equal(t, "mygriya", cfg.Database.User)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("ADMIN_REPLY_DELAY", "500ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, CatalogPostgres, cfg.CatalogSource)
	assert.Equal(t, 500*time.Millisecond, cfg.AdminReplyDelay)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		contains string
	}{
		{
			name:     "missing token",
			cfg:      Config{CatalogSource: CatalogStatic},
			contains: "BOT_TOKEN",
		},
		{
			name: "static catalog needs no database",
			cfg:  Config{BotToken: "t", CatalogSource: CatalogStatic},
		},
		{
			name:     "postgres catalog needs password",
			cfg:      Config{BotToken: "t", CatalogSource: CatalogPostgres},
			contains: "DB_PASSWORD",
		},
		{
			name:     "unknown source",
			cfg:      Config{BotToken: "t", CatalogSource: "redis"},
			contains: "CATALOG_SOURCE",
		},
		{
			name:     "negative delay",
			cfg:      Config{BotToken: "t", CatalogSource: CatalogStatic, AdminReplyDelay: -time.Second},
			contains: "ADMIN_REPLY_DELAY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.contains == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadDatabase_MissingPassword(t *testing.T) {
	unsetEnv(t, "DB_PASSWORD")

	db, err := LoadDatabase()
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}
