package queries

import (
	"context"
	"strings"

	"spa-pos/internal/domain/session"
	"spa-pos/internal/domain/transaction"
	"spa-pos/internal/pkg/errs"
	"spa-pos/internal/usecase/shared"
)

var (
	ErrInvalidPhone         = errs.New("invalid phone")
	ErrCustomerLookupFailed = errs.New("customer lookup failed")
)

type CustomerQueries interface {
	FindByPhone(ctx context.Context, sess *session.Session, phone string) (*CustomerView, error)
}

type CustomerReader interface {
	FindCustomerByPhone(ctx context.Context, sess *session.Session, phone string) (*CustomerView, error)
}

type customerQueriesImpl struct {
	reader CustomerReader
	guard  *shared.SessionGuard
}

func NewCustomerQueries(reader CustomerReader, guard *shared.SessionGuard) CustomerQueries {
	return &customerQueriesImpl{reader: reader, guard: guard}
}

func (q *customerQueriesImpl) FindByPhone(ctx context.Context, sess *session.Session, phone string) (*CustomerView, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, shared.Invalid(errs.New("phone number is required"), ErrInvalidPhone)
	}
	if !transaction.IsValidPhone(phone) {
		return nil, shared.Invalid(transaction.ErrInvalidPhone, ErrInvalidPhone)
	}

	view, err := q.reader.FindCustomerByPhone(ctx, sess, phone)
	if err != nil {
		return nil, q.guard.BackendError(ctx, sess, err, ErrCustomerLookupFailed, "Could not look up customer")
	}
	if view == nil {
		return &CustomerView{Phone: phone}, nil
	}
	return view, nil
}
