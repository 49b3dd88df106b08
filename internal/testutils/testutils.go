package testutils

import (
	"testing"

	"github.com/westernedge/portal/internal/config"
	"github.com/westernedge/portal/internal/logging"
)

// ConfigForTests sets a complete test environment and returns a valid
// config.Provider. t.Setenv scopes the variables to the test, so parallel
// packages never see each other's values.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	t.Setenv("APP_ADDR", ":0")
	t.Setenv("APP_BASE_URL", "http://localhost:8080")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("PROVIDER_URL", "http://localhost:9999")
	t.Setenv("PROVIDER_ANON_KEY", "test-anon-key")

	logging.New()

	cfg, err := config.New()
	if err != nil {
		t.Fatalf("failed to build test config: %v", err)
	}
	return cfg
}
