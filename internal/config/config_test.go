package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, "todolist.db", cfg.DBPath)
	require.Equal(t, "test-secret", cfg.JWTSecret)
	require.Equal(t, 12*time.Hour, cfg.TokenTTL)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("TOKEN_TTL", "45m")
	t.Setenv("CORS_ORIGINS", "http://localhost:5500,https://todo.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "postgres", cfg.DBDriver)
	require.Equal(t, 45*time.Minute, cfg.TokenTTL)
	require.Equal(t, []string{"http://localhost:5500", "https://todo.example.com"}, cfg.CORSOrigins)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	// t.Setenv registers the restore; the variable must be absent, not empty.
	t.Setenv("JWT_SECRET", "placeholder")
	os.Unsetenv("JWT_SECRET")

	_, err := Load()
	require.Error(t, err)
}
