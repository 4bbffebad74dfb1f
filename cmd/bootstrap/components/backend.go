package components

import (
	"spa-pos/internal/infra/backend"
	"spa-pos/internal/pkg/config"
	"spa-pos/internal/pkg/metrics"
	"spa-pos/internal/usecase/commands"
	"spa-pos/internal/usecase/queries"

	"go.uber.org/fx"
)

// BackendModule binds the single backend client to every remote port.
var BackendModule = fx.Module("backend",
	fx.Provide(
		fx.Annotate(
			NewBackendClient,
			// Write side
			fx.As(new(commands.Authenticator)),
			fx.As(new(commands.VoucherValidator)),
			fx.As(new(commands.MembershipLookup)),
			fx.As(new(commands.BillingGateway)),
			// Read side
			fx.As(new(queries.CatalogReader)),
			fx.As(new(queries.StaffReader)),
			fx.As(new(queries.CustomerReader)),
		),
	),
)

func NewBackendClient(cfg config.Config, m *metrics.Metrics) *backend.Client {
	return backend.NewClient(cfg.Backend, m)
}
