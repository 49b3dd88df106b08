package server

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/westernedge/portal/internal/config"
	"github.com/westernedge/portal/internal/domain"
	"github.com/westernedge/portal/internal/events"
	"github.com/westernedge/portal/internal/handlers"
	appmw "github.com/westernedge/portal/internal/middleware"
	"github.com/westernedge/portal/internal/pubsub"
	"github.com/westernedge/portal/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider
	Bus *pubsub.Bridge

	provider         domain.AuthProvider
	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
}

// New assembles the server from its injected dependencies: the process-wide
// provider client, the event bus, and the validated configuration.
func New(cfg config.Provider, p domain.AuthProvider, bus *pubsub.Bridge) *Server {
	recorder := events.NewRecorder(bus)
	renderer := rendering.NewGomponentRenderer()

	authHandler := handlers.NewAuthHandler(p, recorder, renderer, cfg.GetAppBaseURL())
	dashboardHandler := handlers.NewDashboardHandler(p)

	e := echo.New()
	e.HideBanner = true
	setupErrorHandling(e)
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(appmw.Logger)

	// Cookie sessions back the flash messages and the auth-screen mode.
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	e.Static("/static", "web/static")
	e.Renderer = renderer

	return &Server{
		E:                e,
		Cfg:              cfg,
		Bus:              bus,
		provider:         p,
		authHandler:      authHandler,
		dashboardHandler: dashboardHandler,
	}
}

// Provider is a getter for the server's provider client, useful for testing.
func (s *Server) Provider() domain.AuthProvider {
	return s.provider
}
