package queries

import (
	"context"

	"spa-pos/internal/domain/session"
	"spa-pos/internal/pkg/errs"
	"spa-pos/internal/usecase/shared"
)

var (
	ErrStaffUnavailable = errs.New("staff list unavailable")
)

type StaffQueries interface {
	// ListStaff returns the therapists that can be assigned to a service.
	ListStaff(ctx context.Context, sess *session.Session) ([]StaffView, error)
	// ListAllStaff includes front desk and managers, who may bill a sale.
	ListAllStaff(ctx context.Context, sess *session.Session) ([]StaffView, error)
}

type StaffReader interface {
	ListStaff(ctx context.Context, sess *session.Session) ([]StaffView, error)
	ListAllStaff(ctx context.Context, sess *session.Session) ([]StaffView, error)
}

type staffQueriesImpl struct {
	reader StaffReader
	guard  *shared.SessionGuard
}

func NewStaffQueries(reader StaffReader, guard *shared.SessionGuard) StaffQueries {
	return &staffQueriesImpl{reader: reader, guard: guard}
}

func (q *staffQueriesImpl) ListStaff(ctx context.Context, sess *session.Session) ([]StaffView, error) {
	staff, err := q.reader.ListStaff(ctx, sess)
	if err != nil {
		return nil, q.guard.BackendError(ctx, sess, err, ErrStaffUnavailable, "Could not load staff")
	}
	return staff, nil
}

func (q *staffQueriesImpl) ListAllStaff(ctx context.Context, sess *session.Session) ([]StaffView, error) {
	staff, err := q.reader.ListAllStaff(ctx, sess)
	if err != nil {
		return nil, q.guard.BackendError(ctx, sess, err, ErrStaffUnavailable, "Could not load staff")
	}
	return staff, nil
}

// FindStaff looks id up in list.
func FindStaff(list []StaffView, id string) (StaffView, bool) {
	for _, s := range list {
		if s.ID == id {
			return s, true
		}
	}
	return StaffView{}, false
}
