//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"brewzzy/internal/domain/redemption"
	"brewzzy/internal/infra/memstore"
	"brewzzy/internal/pkg/clock"
	"brewzzy/internal/pkg/errs"
	"brewzzy/internal/usecase/queries"
	"brewzzy/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendRedemptionAt(t *testing.T, sess *memstore.Session, id string, code int, createdAt time.Time) {
	t.Helper()
	c, err := redemption.NewCode(code)
	require.NoError(t, err)
	rec, err := redemption.NewRecord(id, builder.NewBookingBuilder().BuildCafeSummary(),
		c, createdAt, redemption.CodeTTL)
	require.NoError(t, err)
	sess.Records().AppendRedemption(rec)
}

func TestRedemptionHistory(t *testing.T) {
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(base)
	registry := memstore.NewRegistry(clk)
	q := queries.NewRedemptionQueries(registry, clk)
	sess := registry.Create()

	appendRedemptionAt(t, sess, "RD-fresh", 654321, base.Add(-time.Minute))
	appendRedemptionAt(t, sess, "RD-stale", 111111, base.Add(-time.Hour))

	t.Run("partitions by expiry at read time", func(t *testing.T) {
		history, err := q.History(context.Background(), sess.ID())
		require.NoError(t, err)

		require.Len(t, history.Active, 1)
		require.Len(t, history.Expired, 1)

		active := history.Active[0]
		assert.Equal(t, "RD-fresh", active.ID)
		assert.Equal(t, "654321", active.Code)
		assert.True(t, active.Active)
		assert.Equal(t, base.Add(9*time.Minute), active.ExpiresAt)
		assert.Equal(t, "RD-stale", history.Expired[0].ID)
		assert.False(t, history.Expired[0].Active)
	})

	t.Run("a code expires just by being read later", func(t *testing.T) {
		clk.Add(10 * time.Minute)

		history, err := q.History(context.Background(), sess.ID())
		require.NoError(t, err)

		assert.Empty(t, history.Active)
		assert.Len(t, history.Expired, 2)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := q.History(context.Background(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}

func TestRedemptionCode(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	registry := memstore.NewRegistry(clk)
	q := queries.NewRedemptionQueries(registry, clk)
	sess := registry.Create()

	appendRedemptionAt(t, sess, "RD-1", 987654, clk.Now())

	t.Run("exports the bare code string", func(t *testing.T) {
		code, err := q.Code(context.Background(), sess.ID(), "RD-1")
		require.NoError(t, err)
		assert.Equal(t, "987654", code)
	})

	t.Run("unknown redemption", func(t *testing.T) {
		_, err := q.Code(context.Background(), sess.ID(), "RD-nope")
		assert.ErrorIs(t, err, errs.ErrRedemptionNotFound)
	})
}
