package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/westernedge/portal/internal/domain"
)

const UserContextKey = "user"

const authCookieName = "auth_token"

// RequireSession creates a middleware that gates routes behind an active
// provider session. Visitors without one are sent to the entry route and
// nothing further is rendered.
func RequireSession(p domain.AuthProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(authCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusSeeOther, "/")
			}

			user, err := p.GetCurrentSessionUser(c.Request().Context(), cookie.Value)
			if err != nil {
				// The token is stale or revoked; clear it so the next
				// request doesn't repeat the provider round trip.
				c.SetCookie(&http.Cookie{
					Name:   authCookieName,
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
				return c.Redirect(http.StatusSeeOther, "/")
			}

			if user == nil {
				return c.Redirect(http.StatusSeeOther, "/")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
