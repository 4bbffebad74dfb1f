package memstore

import (
	"context"
	"log/slog"
	"time"

	"spa-pos/internal/infra"
	"spa-pos/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SubmissionLedger keeps a claim per submitted transaction until ttl passes.
// go-cache's Add is atomic, so only one caller wins a claim.
type SubmissionLedger struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSubmissionLedger(ttl, cleanupInterval time.Duration) *SubmissionLedger {
	return &SubmissionLedger{cache: cache.New(ttl, cleanupInterval), ttl: ttl}
}

func (l *SubmissionLedger) TryClaim(_ context.Context, transactionID uuid.UUID, ownerID string) error {
	rec := commands.SubmissionRecord{
		TransactionID: transactionID,
		OwnerID:       ownerID,
		Status:        commands.SubmissionProcessing,
		ExpiresAt:     time.Now().Add(l.ttl),
	}
	if err := l.cache.Add(transactionID.String(), rec, cache.DefaultExpiration); err != nil {
		return infra.WrapErr(slog.Default(), infra.KindConflict, "submission already claimed", err)
	}
	return nil
}

func (l *SubmissionLedger) Get(_ context.Context, transactionID uuid.UUID) (*commands.SubmissionRecord, error) {
	v, ok := l.cache.Get(transactionID.String())
	if !ok {
		return nil, infra.WrapErr(slog.Default(), infra.KindNotFound, "submission not found", nil)
	}
	rec := v.(commands.SubmissionRecord)
	return &rec, nil
}

// Complete stores the receipt and restarts the ttl from now.
func (l *SubmissionLedger) Complete(ctx context.Context, transactionID uuid.UUID, result commands.SubmitResult) error {
	rec, err := l.Get(ctx, transactionID)
	if err != nil {
		return err
	}
	rec.Status = commands.SubmissionCompleted
	rec.Result = &result
	rec.ExpiresAt = time.Now().Add(l.ttl)
	l.cache.Set(transactionID.String(), *rec, cache.DefaultExpiration)
	return nil
}

// Release drops an unfinished claim so the operator can fix the bill and retry.
func (l *SubmissionLedger) Release(_ context.Context, transactionID uuid.UUID) error {
	l.cache.Delete(transactionID.String())
	return nil
}
