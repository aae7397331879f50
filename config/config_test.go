package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, AppointmentsStyleQuery, cfg.API.AppointmentsStyle)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, "default", cfg.Session.Namespace)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessExpiry)
	assert.Equal(t, "admin", cfg.Sandbox.AdminUsername)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_BASE_URL", "http://clinic.test/api")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("APPOINTMENTS_STYLE", "path")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REDIS_DB", "4")
	t.Setenv("JWT_ACCESS_EXPIRY", "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://clinic.test/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, AppointmentsStylePath, cfg.API.AppointmentsStyle)
	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, 4, cfg.Redis.DB)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessExpiry)
}

func TestLoadConfig_RejectsUnknownStyles(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("APPOINTMENTS_STYLE", "graphql")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("APPOINTMENTS_STYLE", "query")
	t.Setenv("SESSION_STORE", "cookie")
	_, err = LoadConfig()
	assert.Error(t, err)
}
