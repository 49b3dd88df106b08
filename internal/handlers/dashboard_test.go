package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/westernedge/portal/internal/domain"
	"github.com/westernedge/portal/internal/handlers"
	"github.com/westernedge/portal/internal/middleware"
	"github.com/westernedge/portal/internal/rendering"
)

func setupDashboardTest(p domain.AuthProvider, user *domain.User) (*echo.Echo, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Renderer = rendering.NewGomponentRenderer()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	h := handlers.NewDashboardHandler(p)
	e.GET("/dashboard", func(c echo.Context) error {
		if user != nil {
			c.Set(middleware.UserContextKey, user)
		}
		return h.DashboardGet(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return e, rec
}

func TestDashboardGet(t *testing.T) {
	user := &domain.User{ID: "user-1", Email: "test@example.com"}

	t.Run("greets with the profile name when one exists", func(t *testing.T) {
		mock := &mockProvider{
			profileFn: func(ctx context.Context, userID string) (*domain.Profile, error) {
				return &domain.Profile{ID: userID, FirstName: "Ada", LastName: "Lovelace"}, nil
			},
		}
		_, rec := setupDashboardTest(mock, user)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Welcome, Ada")
		assert.Contains(t, rec.Body.String(), "User ID: user-1")
	})

	t.Run("falls back to the email when no profile row exists", func(t *testing.T) {
		mock := &mockProvider{
			profileFn: func(ctx context.Context, userID string) (*domain.Profile, error) {
				return nil, domain.ErrProfileNotFound
			},
		}
		_, rec := setupDashboardTest(mock, user)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Welcome, test@example.com")
	})

	t.Run("a profile fetch failure does not block the page", func(t *testing.T) {
		mock := &mockProvider{
			profileFn: func(ctx context.Context, userID string) (*domain.Profile, error) {
				return nil, context.DeadlineExceeded
			},
		}
		_, rec := setupDashboardTest(mock, user)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Welcome, test@example.com")
	})

	t.Run("redirects when no user made it into the context", func(t *testing.T) {
		mock := &mockProvider{}
		_, rec := setupDashboardTest(mock, nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})
}
