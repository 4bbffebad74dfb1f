//go:build unit

package memstore_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"spa-pos/internal/infra"
	"spa-pos/internal/infra/memstore"
	"spa-pos/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("claim complete get", func(t *testing.T) {
		ledger := memstore.NewSubmissionLedger(time.Hour, time.Minute)
		id := uuid.New()

		require.NoError(t, ledger.TryClaim(ctx, id, "17"))
		rec, err := ledger.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, commands.SubmissionProcessing, rec.Status)
		assert.Nil(t, rec.Result)

		require.NoError(t, ledger.Complete(ctx, id, commands.SubmitResult{TransactionID: id, Message: "Saved"}))
		rec, err = ledger.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, commands.SubmissionCompleted, rec.Status)
		assert.Equal(t, "17", rec.OwnerID)
		assert.Equal(t, "Saved", rec.Result.Message)
	})

	t.Run("second claim conflicts until released", func(t *testing.T) {
		ledger := memstore.NewSubmissionLedger(time.Hour, time.Minute)
		id := uuid.New()
		require.NoError(t, ledger.TryClaim(ctx, id, "17"))

		assert.True(t, infra.IsKind(ledger.TryClaim(ctx, id, "17"), infra.KindConflict))

		require.NoError(t, ledger.Release(ctx, id))
		assert.NoError(t, ledger.TryClaim(ctx, id, "17"))
	})

	t.Run("only one concurrent claim wins", func(t *testing.T) {
		ledger := memstore.NewSubmissionLedger(time.Hour, time.Minute)
		id := uuid.New()
		var wins atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if ledger.TryClaim(ctx, id, "17") == nil {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins.Load())
	})

	t.Run("complete without a claim is not found", func(t *testing.T) {
		ledger := memstore.NewSubmissionLedger(time.Hour, time.Minute)

		err := ledger.Complete(ctx, uuid.New(), commands.SubmitResult{})

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("claims expire", func(t *testing.T) {
		ledger := memstore.NewSubmissionLedger(10*time.Millisecond, time.Millisecond)
		id := uuid.New()
		require.NoError(t, ledger.TryClaim(ctx, id, "17"))

		require.Eventually(t, func() bool {
			_, err := ledger.Get(ctx, id)
			return infra.IsKind(err, infra.KindNotFound)
		}, time.Second, 5*time.Millisecond)
	})
}
