package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.env")

	configData := []byte(`
PORT=8080
ENVIRONMENT=production
LOG_LEVEL=debug
POSTGRES_HOST=db.example.com
POSTGRES_USER=testuser
POSTGRES_PASSWORD=testpassword
POSTGRES_DB=testdb
RABBITMQ_HOST=rabbitmq.example.com
RABBITMQ_USER=testuser
RABBITMQ_PASSWORD=testpassword
`)
	require.NoError(t, os.WriteFile(path, configData, 0o600))

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, ":8080", config.Addr())
	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "db.example.com", config.DB.Host)
	assert.Equal(t, "5432", config.DB.Port)
	assert.Equal(t, "testuser", config.DB.User)
	assert.Equal(t, "testpassword", config.DB.Password)
	assert.Equal(t, "testdb", config.DB.Name)
	assert.Equal(t, "rabbitmq.example.com", config.RabbitMQ.Host)
	assert.Equal(t, "5672", config.RabbitMQ.Port)
	assert.True(t, config.EventsEnabled())
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "3003", config.Port)
	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "file://migrations", config.MigrationsPath)
	assert.False(t, config.EventsEnabled())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ENVIRONMENT", "test")

	config, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9999", config.Port)
	assert.Equal(t, "test", config.Environment)
}

func TestLoadConfigInvalidEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "invalid ENVIRONMENT")
}
