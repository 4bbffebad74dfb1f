package components

import (
	"spa-pos/internal/handler"
	"spa-pos/internal/handler/api"
	"spa-pos/internal/handler/middleware"
	"spa-pos/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewTransactionHandler,
		NewHandlers,
		NewRateLimiter,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, catalog *api.CatalogHandler, transaction *api.TransactionHandler) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Catalog:     catalog,
		Transaction: transaction,
	}
}

func NewRateLimiter(cfg config.Config) *middleware.SessionRateLimiter {
	return middleware.NewSessionRateLimiter(cfg.RateLimit)
}
