package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/westernedge/portal/internal/config"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ADDR", ":9999")
	t.Setenv("APP_BASE_URL", "https://portal.example.com")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("PROVIDER_URL", "https://project.supabase.example")
	t.Setenv("PROVIDER_ANON_KEY", "anon-key")
}

func TestNew(t *testing.T) {
	t.Run("loads values from the environment", func(t *testing.T) {
		validEnv(t)

		cfg, err := config.New()
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.GetAddr())
		assert.Equal(t, "https://portal.example.com", cfg.GetAppBaseURL())
		assert.Equal(t, "https://project.supabase.example", cfg.GetProviderURL())
		assert.Equal(t, "anon-key", cfg.GetProviderAnonKey())
	})

	t.Run("rejects a missing provider URL", func(t *testing.T) {
		validEnv(t)
		t.Setenv("PROVIDER_URL", "")

		_, err := config.New()
		assert.Error(t, err)
	})

	t.Run("rejects a short session secret", func(t *testing.T) {
		validEnv(t)
		t.Setenv("SESSION_SECRET", "too-short")

		_, err := config.New()
		assert.Error(t, err)
	})

	t.Run("defaults the listen address", func(t *testing.T) {
		validEnv(t)
		t.Setenv("APP_ADDR", "")

		cfg, err := config.New()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.GetAddr())
	})
}
