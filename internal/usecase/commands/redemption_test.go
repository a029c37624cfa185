//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"brewzzy/internal/domain/cafe"
	"brewzzy/internal/domain/flow"
	"brewzzy/internal/infra/memstore"
	"brewzzy/internal/infra/notify"
	"brewzzy/internal/pkg/clock"
	"brewzzy/internal/pkg/config"
	"brewzzy/internal/pkg/errs"
	"brewzzy/internal/pkg/ident"
	"brewzzy/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type redemptionFixture struct {
	clock    *clock.MockClock
	registry *memstore.Registry
	center   *notify.Center
	cmds     commands.RedemptionCommands
	sess     *memstore.Session
}

func newRedemptionFixture(t *testing.T) *redemptionFixture {
	t.Helper()

	clk := clock.NewMockClock(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	registry := memstore.NewRegistry(clk)
	center := notify.NewCenter(clk)

	cmds := commands.NewRedemptionCommands(
		registry,
		cafe.DefaultCatalog(),
		center,
		ident.NewGenerator(clk),
		clk,
		config.NewTestConfig().Booking,
	)

	return &redemptionFixture{
		clock:    clk,
		registry: registry,
		center:   center,
		cmds:     cmds,
		sess:     registry.Create(),
	}
}

func TestRedemptionOpen(t *testing.T) {
	t.Run("opens in the info state", func(t *testing.T) {
		f := newRedemptionFixture(t)

		view, err := f.cmds.Open(context.Background(), f.sess.ID(), nordicBrewID)
		require.NoError(t, err)

		assert.Equal(t, "redemption", view.Variant)
		assert.Equal(t, "info", view.State)
		assert.Equal(t, "Nordic Brew", view.Cafe.Name)
		assert.Nil(t, view.Intent, "redemption flows carry no form")
	})

	t.Run("unknown cafe", func(t *testing.T) {
		f := newRedemptionFixture(t)
		_, err := f.cmds.Open(context.Background(), f.sess.ID(), "no-such-cafe")
		assert.ErrorIs(t, err, errs.ErrCafeNotFound)
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newRedemptionFixture(t)
		_, err := f.cmds.Open(context.Background(), uuid.New(), nordicBrewID)
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}

func TestRedeem(t *testing.T) {
	t.Run("issues a 6-digit code expiring in ten minutes", func(t *testing.T) {
		f := newRedemptionFixture(t)
		_, err := f.cmds.Open(context.Background(), f.sess.ID(), nordicBrewID)
		require.NoError(t, err)

		result, err := f.cmds.Redeem(context.Background(), f.sess.ID())
		require.NoError(t, err)

		r := result.Redemption
		assert.Regexp(t, `^RD-\d+-[0-9a-z]{9}$`, r.ID)
		assert.Regexp(t, `^[1-9]\d{5}$`, r.Code)
		assert.Equal(t, f.clock.Now(), r.IssuedAt)
		assert.Equal(t, f.clock.Now().Add(10*time.Minute), r.ExpiresAt)
		assert.True(t, r.Active)

		fl, err := f.sess.ActiveFlow()
		require.NoError(t, err)
		assert.Equal(t, flow.StateRedeemed, fl.State())

		require.Len(t, f.sess.Records().AllRedemptions(), 1)

		toasts := f.center.Drain(f.sess.ID())
		require.Len(t, toasts, 1)
		assert.Equal(t, "Code Generated!", toasts[0].Title)
		assert.Equal(t, "Show this code at Nordic Brew within the next 10 minutes.", toasts[0].Description)
	})

	t.Run("the stored record expires on schedule", func(t *testing.T) {
		f := newRedemptionFixture(t)
		_, err := f.cmds.Open(context.Background(), f.sess.ID(), nordicBrewID)
		require.NoError(t, err)
		_, err = f.cmds.Redeem(context.Background(), f.sess.ID())
		require.NoError(t, err)

		f.clock.Add(9 * time.Minute)
		active, expired := f.sess.Records().PartitionRedemptions(f.clock.Now())
		assert.Len(t, active, 1)
		assert.Empty(t, expired)

		f.clock.Add(2 * time.Minute)
		active, expired = f.sess.Records().PartitionRedemptions(f.clock.Now())
		assert.Empty(t, active)
		assert.Len(t, expired, 1)
	})

	t.Run("double redeem", func(t *testing.T) {
		f := newRedemptionFixture(t)
		_, err := f.cmds.Open(context.Background(), f.sess.ID(), nordicBrewID)
		require.NoError(t, err)
		_, err = f.cmds.Redeem(context.Background(), f.sess.ID())
		require.NoError(t, err)

		_, err = f.cmds.Redeem(context.Background(), f.sess.ID())
		assert.ErrorIs(t, err, errs.ErrInvalidFlowState)
		assert.Len(t, f.sess.Records().AllRedemptions(), 1)
	})

	t.Run("redeem on a booking flow", func(t *testing.T) {
		f := newRedemptionFixture(t)
		require.NoError(t, f.sess.OpenFlow(flow.NewBookingFlow(cafe.Summary{ID: "2", Name: "Nordic Brew"})))

		_, err := f.cmds.Redeem(context.Background(), f.sess.ID())
		assert.ErrorIs(t, err, commands.ErrWrongRedemptionVariant)
	})

	t.Run("redeem without a flow", func(t *testing.T) {
		f := newRedemptionFixture(t)
		_, err := f.cmds.Redeem(context.Background(), f.sess.ID())
		assert.ErrorIs(t, err, errs.ErrNoActiveFlow)
	})
}

func TestRedemptionClose(t *testing.T) {
	f := newRedemptionFixture(t)
	_, err := f.cmds.Open(context.Background(), f.sess.ID(), nordicBrewID)
	require.NoError(t, err)
	_, err = f.cmds.Redeem(context.Background(), f.sess.ID())
	require.NoError(t, err)

	require.NoError(t, f.cmds.Close(context.Background(), f.sess.ID()))

	_, err = f.sess.ActiveFlow()
	assert.ErrorIs(t, err, errs.ErrNoActiveFlow)

	// The record outlives the flow that produced it.
	assert.Len(t, f.sess.Records().AllRedemptions(), 1)
}
