package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/westernedge/portal/internal/domain"
	"github.com/westernedge/portal/internal/server"
	"github.com/westernedge/portal/internal/testutils"
)

func TestNewInjector(t *testing.T) {
	testutils.ConfigForTests(t)

	injector := NewInjector()

	t.Run("resolves a fully wired server", func(t *testing.T) {
		srv := do.MustInvoke[*server.Server](injector)
		require.NotNil(t, srv)
		require.NotNil(t, srv.E)
		require.NotNil(t, srv.Bus)

		// The route table must already be registered.
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		srv.E.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("shares one provider client across invocations", func(t *testing.T) {
		first := do.MustInvoke[domain.AuthProvider](injector)
		second := do.MustInvoke[domain.AuthProvider](injector)
		assert.Same(t, first, second)
	})
}
