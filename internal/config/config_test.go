package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "recipebox", cfg.App.Name)
	require.Equal(t, "0.0.0.0:5555", cfg.HTTPAddr())
	require.Equal(t, "recipebox_session", cfg.Session.CookieName)
	require.Equal(t, time.Duration(0), cfg.SessionTTL())
	require.Equal(t, "recipebox.activity", cfg.RabbitMQ.ActivityQueue)
	require.Equal(t, "root:@tcp(127.0.0.1:3306)/recipebox?parseTime=true&loc=Local&charset=utf8mb4", cfg.MySQLDSN())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[app]
port = 9000

[session]
secret = "from-file"
ttl_minutes = 30

[redis]
addr = "redis:6379"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("RABBITMQ_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.App.Port)
	require.Equal(t, "from-file", cfg.Session.Secret)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL())
	require.True(t, cfg.Session.CookieSecure)
	require.Equal(t, "cache:6380", cfg.Redis.Addr)
	require.Empty(t, cfg.RabbitMQ.URL)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	t.Run("empty secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("negative ttl", func(t *testing.T) {
		t.Setenv("SESSION_TTL_MINUTES", "-5")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestGetEnvAsInt_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("RECIPEBOX_TEST_INT", "abc")
	require.Equal(t, 7, getEnvAsInt("RECIPEBOX_TEST_INT", 7))
}

func TestValidate_DefaultSecretOutsideDev(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	for _, env := range []string{"dev", "test"} {
		t.Run(env, func(t *testing.T) {
			t.Setenv("APP_ENV", env)
			_, err := Load()
			require.NoError(t, err)
		})
	}

	t.Run("prod with default secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "prod")
		_, err := Load()
		require.ErrorContains(t, err, "session secret must be set")
	})

	t.Run("prod with own secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "prod")
		t.Setenv("SESSION_SECRET", "a-real-secret")
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "a-real-secret", cfg.Session.Secret)
	})
}
