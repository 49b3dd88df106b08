package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/westernedge/portal/internal/domain"
	"github.com/westernedge/portal/internal/middleware"
	"github.com/westernedge/portal/internal/view"
	"github.com/westernedge/portal/internal/view/dto/auth"
	"github.com/westernedge/portal/web/src/templates/layouts"
	"github.com/westernedge/portal/web/src/templates/pages"
)

// DashboardHandler handles requests for the post-login dashboard.
type DashboardHandler struct {
	provider domain.AuthProvider
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(p domain.AuthProvider) *DashboardHandler {
	return &DashboardHandler{provider: p}
}

// DashboardGet shows the user's dashboard page. The RequireSession
// middleware has already resolved the session user; a render of this
// handler therefore always has an authenticated user in the context.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		// Safeguard only: the middleware redirects before this can happen.
		return c.Redirect(http.StatusSeeOther, "/")
	}

	profile, err := h.provider.QueryProfileByID(c.Request().Context(), user.ID)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		// A profile fetch failure must not block the dashboard; the email
		// fallback still identifies the account.
		middleware.FromContext(c.Request().Context()).Warn("Could not fetch profile", "user_id", user.ID, "error", err)
	}

	data := auth.DashboardData{
		DisplayName: profile.DisplayName(user.Email),
		Email:       user.Email,
		UserID:      user.ID,
	}

	flashes := view.GetFlashData(c)
	return c.Render(http.StatusOK, "", layouts.Base("Dashboard", flashes, pages.Dashboard(data)))
}
