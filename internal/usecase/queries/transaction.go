package queries

import (
	"context"
	"sort"

	"spa-pos/internal/domain/session"
	"spa-pos/internal/domain/transaction"
	"spa-pos/internal/infra"
	"spa-pos/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound = errs.New("transaction not found")
)

type TransactionQueries interface {
	Get(ctx context.Context, sess *session.Session, id uuid.UUID) (*TransactionView, error)
	ListOpen(ctx context.Context, sess *session.Session) ([]TransactionListItem, error)
}

// TransactionReadStore hands out transactions under the store lock only.
type TransactionReadStore interface {
	View(ctx context.Context, id uuid.UUID, fn func(*transaction.Transaction) error) error
	ForEachByOwner(ctx context.Context, ownerID string, fn func(*transaction.Transaction)) error
}

type transactionQueriesImpl struct {
	store TransactionReadStore
}

func NewTransactionQueries(store TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{store: store}
}

func (q *transactionQueriesImpl) Get(ctx context.Context, sess *session.Session, id uuid.UUID) (*TransactionView, error) {
	var view *TransactionView
	err := q.store.View(ctx, id, func(t *transaction.Transaction) error {
		if !t.IsOwnedBy(sess.Profile().ID()) {
			return ErrTransactionNotFound
		}
		view = NewTransactionView(t)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) || errs.Is(err, ErrTransactionNotFound) {
			return nil, errs.MarkAll(err, ErrTransactionNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	return view, nil
}

// ListOpen returns the operator's unsubmitted transactions, most recently touched first.
func (q *transactionQueriesImpl) ListOpen(ctx context.Context, sess *session.Session) ([]TransactionListItem, error) {
	items := []TransactionListItem{}
	err := q.store.ForEachByOwner(ctx, sess.Profile().ID(), func(t *transaction.Transaction) {
		items = append(items, newTransactionListItem(t))
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
	return items, nil
}
