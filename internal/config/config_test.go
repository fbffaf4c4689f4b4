package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 7, cfg.SessionTTLMinutes/1440)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.False(t, cfg.IsDevelopment())
	assert.Contains(t, cfg.PostgresDSN(), "host=db.internal")
	assert.Contains(t, cfg.PostgresDSN(), "password=secret")
}
