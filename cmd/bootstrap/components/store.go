package components

import (
	"spa-pos/internal/infra/memstore"
	"spa-pos/internal/pkg/config"
	"spa-pos/internal/pkg/metrics"
	"spa-pos/internal/usecase"
	"spa-pos/internal/usecase/commands"
	"spa-pos/internal/usecase/queries"
	"spa-pos/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		// Session
		fx.Annotate(
			NewSessionStore,
			fx.As(new(commands.SessionStore)),
			fx.As(new(usecase.SessionReader)),
			fx.As(new(shared.SessionRemover)),
		),
		// Transaction
		fx.Annotate(
			NewTransactionStore,
			fx.As(new(commands.TransactionStore)),
			fx.As(new(queries.TransactionReadStore)),
		),
		// Submission receipts
		fx.Annotate(
			NewSubmissionLedger,
			fx.As(new(commands.SubmissionLedger)),
		),
		// Catalog
		fx.Annotate(
			NewCatalogStore,
			fx.As(new(commands.ServiceCatalog)),
			fx.As(new(queries.CatalogCache)),
		),
	),
)

func NewSessionStore(cfg config.Config) *memstore.SessionStore {
	return memstore.NewSessionStore(cfg.Store.SessionTTL, cfg.Store.CleanupInterval)
}

func NewTransactionStore(cfg config.Config, m *metrics.Metrics) *memstore.TransactionStore {
	return memstore.NewTransactionStore(cfg.Store.TransactionTTL, cfg.Store.CleanupInterval, m)
}

func NewCatalogStore(cfg config.Config) *memstore.CatalogStore {
	return memstore.NewCatalogStore(cfg.Store.CatalogCacheTTL, cfg.Store.CleanupInterval)
}

func NewSubmissionLedger(cfg config.Config) *memstore.SubmissionLedger {
	return memstore.NewSubmissionLedger(cfg.Store.SubmissionTTL, cfg.Store.CleanupInterval)
}
