package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.False(t, cfg.AuthEnabled)
	assert.Equal(t, "0.0.0.0:3000", cfg.ServerAddress())
}

func TestLoad_EnvOverrides(t *testing.T) {
	_ = os.Setenv("APP_HTTP_PORT", "9090")
	_ = os.Setenv("APP_DB_DRIVER", "sqlite")
	_ = os.Setenv("APP_SQLITE_PATH", "test.db")
	_ = os.Setenv("APP_AUTH_ENABLED", "true")
	t.Cleanup(func() {
		_ = os.Unsetenv("APP_HTTP_PORT")
		_ = os.Unsetenv("APP_DB_DRIVER")
		_ = os.Unsetenv("APP_SQLITE_PATH")
		_ = os.Unsetenv("APP_AUTH_ENABLED")
	})

	cfg := Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "test.db", cfg.SQLitePath)
	assert.True(t, cfg.AuthEnabled)
}
