package queries

import (
	"context"
	"log/slog"

	"spa-pos/internal/domain/catalog"
	"spa-pos/internal/domain/session"
	"spa-pos/internal/pkg/errs"
	"spa-pos/internal/usecase/shared"
)

var (
	ErrCatalogUnavailable = errs.New("catalog unavailable")
)

type CatalogQueries interface {
	ListServices(ctx context.Context, sess *session.Session, params ListServicesParams) (*ServicePage, error)
}

type CatalogReader interface {
	ListServices(ctx context.Context, sess *session.Session, params ListServicesParams) (*ServicePage, error)
}

// CatalogCache keeps the services a terminal has seen so lines can be added by id.
type CatalogCache interface {
	Merge(ctx context.Context, scope string, services []catalog.Service) error
}

type catalogQueriesImpl struct {
	reader CatalogReader
	cache  CatalogCache
	guard  *shared.SessionGuard
}

func NewCatalogQueries(reader CatalogReader, cache CatalogCache, guard *shared.SessionGuard) CatalogQueries {
	return &catalogQueriesImpl{
		reader: reader,
		cache:  cache,
		guard:  guard,
	}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context, sess *session.Session, params ListServicesParams) (*ServicePage, error) {
	page, err := q.reader.ListServices(ctx, sess, params.Normalize())
	if err != nil {
		return nil, q.guard.BackendError(ctx, sess, err, ErrCatalogUnavailable, "Could not load services")
	}

	// entries that cannot be sold are hidden from the page as well as the snapshot
	services := make([]catalog.Service, 0, len(page.Items))
	listed := make([]ServiceView, 0, len(page.Items))
	for _, item := range page.Items {
		svc, convErr := catalog.NewService(item.ID, item.Name, item.FinalPrice, item.DurationMinutes)
		if convErr != nil {
			slog.Warn("skipping malformed catalog entry", "service_id", item.ID, "error", convErr.Error())
			continue
		}
		services = append(services, svc)
		listed = append(listed, item)
	}
	page.Items = listed

	if err := q.cache.Merge(ctx, shared.CatalogScope(sess), services); err != nil {
		slog.Warn("failed to cache catalog page", "error", err.Error())
	}

	return page, nil
}
