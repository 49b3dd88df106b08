package app

import (
	"context"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/westernedge/portal/internal/config"
	"github.com/westernedge/portal/internal/domain"
	"github.com/westernedge/portal/internal/events"
	"github.com/westernedge/portal/internal/provider"
	"github.com/westernedge/portal/internal/pubsub"
	"github.com/westernedge/portal/internal/server"
)

// NewInjector builds the application's dependency container. Every service is
// registered lazily; nothing is constructed until the first invocation.
func NewInjector() do.Injector {
	injector := do.New()

	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		return config.New()
	})

	do.Provide(injector, func(i do.Injector) (config.Provider, error) {
		return do.MustInvoke[*config.Config](i), nil
	})

	// A single provider client is shared across the whole process.
	do.Provide(injector, func(i do.Injector) (domain.AuthProvider, error) {
		cfg := do.MustInvoke[config.Provider](i)
		return provider.New(cfg.GetProviderURL(), cfg.GetProviderAnonKey()), nil
	})

	do.Provide(injector, func(i do.Injector) (*pubsub.Bridge, error) {
		return pubsub.NewBridge(), nil
	})

	do.Provide(injector, func(i do.Injector) (*server.Server, error) {
		cfg := do.MustInvoke[config.Provider](i)
		p := do.MustInvoke[domain.AuthProvider](i)
		bus := do.MustInvoke[*pubsub.Bridge](i)

		srv := server.New(cfg, p, bus)
		srv.RegisterRoutes()
		return srv, nil
	})

	return injector
}

// Run builds the container, attaches the audit-log subscriber and starts the
// server. It blocks until shutdown.
func Run() error {
	injector := NewInjector()

	srv := do.MustInvoke[*server.Server](injector)

	if err := events.Record(context.Background(), srv.Bus); err != nil {
		slog.Error("attaching event recorder", "error", err)
	}

	srv.Start(srv.Cfg.GetAddr())
	return nil
}
