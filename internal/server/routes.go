package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/westernedge/portal/internal/middleware"
)

// RegisterRoutes wires up every route the application serves.
func (s *Server) RegisterRoutes() {
	e := s.E

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/", s.authHandler.HomeGet)
	e.GET("/auth/switch/:mode", s.authHandler.SwitchMode)
	e.GET("/auth/callback", s.authHandler.CallbackGet)

	limiter := middleware.RateLimiter()
	e.POST("/auth/login", s.authHandler.LoginPost, limiter)
	e.POST("/auth/register", s.authHandler.RegisterPost, limiter)
	e.POST("/auth/register/check", s.authHandler.RegisterCheckPost)
	e.POST("/auth/forgot-password", s.authHandler.ForgotPasswordPost, limiter)

	e.GET("/update-password", s.authHandler.UpdatePasswordGet)
	e.POST("/update-password", s.authHandler.UpdatePasswordPost, limiter)

	e.POST("/auth/logout", s.authHandler.Logout)

	protected := e.Group("", middleware.RequireSession(s.provider))
	protected.GET("/dashboard", s.dashboardHandler.DashboardGet)
}
