package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/westernedge/portal/internal/domain"
)

// sessionStub is a provider double for the middleware tests. Only the
// session lookup matters here; the other operations are never reached.
type sessionStub struct {
	user *domain.User
	err  error
}

func (s *sessionStub) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	panic("not used")
}

func (s *sessionStub) SignUp(ctx context.Context, params domain.SignUpParams) (*domain.User, error) {
	panic("not used")
}

func (s *sessionStub) SendPasswordResetEmail(ctx context.Context, email, redirectURL string) error {
	panic("not used")
}

func (s *sessionStub) UpdateCurrentUserPassword(ctx context.Context, accessToken, newPassword string) error {
	panic("not used")
}

func (s *sessionStub) GetCurrentSessionUser(ctx context.Context, accessToken string) (*domain.User, error) {
	return s.user, s.err
}

func (s *sessionStub) SignOut(ctx context.Context, accessToken string) error {
	panic("not used")
}

func (s *sessionStub) QueryProfileByID(ctx context.Context, userID string) (*domain.Profile, error) {
	panic("not used")
}

func TestRequireSession(t *testing.T) {
	newApp := func(stub *sessionStub) *echo.Echo {
		e := echo.New()
		e.GET("/dashboard", func(c echo.Context) error {
			user := c.Get(UserContextKey).(*domain.User)
			return c.String(http.StatusOK, "Welcome "+user.Email)
		}, RequireSession(stub))
		return e
	}

	t.Run("visitor without a cookie is sent to the entry route", func(t *testing.T) {
		e := newApp(&sessionStub{})

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("valid token reaches the handler with the user in context", func(t *testing.T) {
		e := newApp(&sessionStub{user: &domain.User{ID: "user-1", Email: "test@example.com"}})

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: "valid-token", Path: "/"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Welcome test@example.com")
	})

	t.Run("stale token is cleared and redirected", func(t *testing.T) {
		e := newApp(&sessionStub{err: domain.ErrNoSession})

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: "stale-token", Path: "/"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		var cleared *http.Cookie
		for _, c := range rec.Result().Cookies() {
			if c.Name == "auth_token" {
				cleared = c
			}
		}
		require.NotNil(t, cleared)
		assert.Equal(t, -1, cleared.MaxAge)
	})

	t.Run("empty cookie value is treated as no session", func(t *testing.T) {
		e := newApp(&sessionStub{user: &domain.User{ID: "user-1", Email: "test@example.com"}})

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: "", Path: "/"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}
