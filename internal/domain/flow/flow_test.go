//go:build unit

package flow_test

import (
	"testing"
	"time"

	"brewzzy/internal/domain/booking"
	"brewzzy/internal/domain/flow"
	"brewzzy/internal/domain/redemption"
	"brewzzy/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncScheduler runs the reset immediately, making the delayed reset
// observable without real timers.
func syncScheduler(_ time.Duration, fn func()) { fn() }

// holdScheduler captures the reset for manual triggering.
type holdScheduler struct {
	fn func()
}

func (h *holdScheduler) schedule(_ time.Duration, fn func()) { h.fn = fn }

func strptr(s string) *string { return &s }

func newBookingRecord(t *testing.T) *booking.Record {
	t.Helper()
	rec, err := builder.NewBookingBuilder().BuildRecord("BK-1", booking.EmptyArtifact)
	require.NoError(t, err)
	return rec
}

func newRedemptionRecord(t *testing.T) *redemption.Record {
	t.Helper()
	code, err := redemption.NewCode(123456)
	require.NoError(t, err)
	rec, err := redemption.NewRecord("RD-1", builder.NewBookingBuilder().BuildCafeSummary(),
		code, time.Now(), redemption.CodeTTL)
	require.NoError(t, err)
	return rec
}

func TestNewBookingFlow(t *testing.T) {
	f := flow.NewBookingFlow(builder.NewBookingBuilder().BuildCafeSummary())

	assert.Equal(t, flow.VariantBooking, f.Variant())
	assert.Equal(t, flow.StateForm, f.State())
	assert.Equal(t, "2", f.Intent().Guests, "form opens with the default guest count")
	assert.Equal(t, "nordic-brew", f.Cafe().ID)
}

func TestNewRedemptionFlow(t *testing.T) {
	f := flow.NewRedemptionFlow(builder.NewBookingBuilder().BuildCafeSummary())

	assert.Equal(t, flow.VariantRedemption, f.Variant())
	assert.Equal(t, flow.StateInfo, f.State())
}

func TestUpdateIntent(t *testing.T) {
	t.Run("applies while the form is open", func(t *testing.T) {
		f := flow.NewBookingFlow(builder.NewBookingBuilder().BuildCafeSummary())

		require.NoError(t, f.UpdateIntent(booking.FieldUpdate{FullName: strptr("Asha Nair")}))
		assert.Equal(t, "Asha Nair", f.Intent().FullName)
	})

	t.Run("rejected after confirmation", func(t *testing.T) {
		f := flow.NewBookingFlow(builder.NewBookingBuilder().BuildCafeSummary())
		_, gen, err := f.BeginSubmit()
		require.NoError(t, err)
		require.NoError(t, f.CompleteSubmit(gen, newBookingRecord(t)))

		err = f.UpdateIntent(booking.FieldUpdate{FullName: strptr("x")})
		assert.ErrorIs(t, err, flow.ErrNotInForm)
	})

	t.Run("rejected on redemption flows", func(t *testing.T) {
		f := flow.NewRedemptionFlow(builder.NewBookingBuilder().BuildCafeSummary())
		err := f.UpdateIntent(booking.FieldUpdate{FullName: strptr("x")})
		assert.ErrorIs(t, err, flow.ErrWrongVariant)
	})
}

func TestSubmitLifecycle(t *testing.T) {
	t.Run("form to confirmation", func(t *testing.T) {
		f := flow.NewBookingFlow(builder.NewBookingBuilder().BuildCafeSummary())

		intent, gen, err := f.BeginSubmit()
		require.NoError(t, err)
		assert.Equal(t, "2", intent.Guests)
		assert.Equal(t, flow.StateForm, f.State(), "state holds until the submit completes")

		rec := newBookingRecord(t)
		require.NoError(t, f.CompleteSubmit(gen, rec))

		assert.Equal(t, flow.StateConfirmation, f.State())
		assert.Same(t, rec, f.Record())
	})

	t.Run("double submit rejected", func(t *testing.T) {
		f := flow.NewBookingFlow(builder.NewBookingBuilder().BuildCafeSummary())
		_, gen, err := f.BeginSubmit()
		require.NoError(t, err)
		require.NoError(t, f.CompleteSubmit(gen, newBookingRecord(t)))

		_, _, err = f.BeginSubmit()
		assert.ErrorIs(t, err, flow.ErrNotInForm)
	})

	t.Run("submit on redemption flow rejected", func(t *testing.T) {
		f := flow.NewRedemptionFlow(builder.NewBookingBuilder().BuildCafeSummary())
		_, _, err := f.BeginSubmit()
		assert.ErrorIs(t, err, flow.ErrWrongVariant)
	})

	t.Run("late submit after close is discarded", func(t *testing.T) {
		f := flow.NewBookingFlow(builder.NewBookingBuilder().BuildCafeSummary())

		// Submission starts, then the flow closes while the artifact is
		// still being encoded.
		_, gen, err := f.BeginSubmit()
		require.NoError(t, err)

		f.Close(0, syncScheduler)

		err = f.CompleteSubmit(gen, newBookingRecord(t))
		assert.ErrorIs(t, err, flow.ErrStaleArtifact)
		assert.Nil(t, f.Record(), "no record may surface in a closed flow")
	})
}

func TestRedeemLifecycle(t *testing.T) {
	t.Run("info to redeemed", func(t *testing.T) {
		f := flow.NewRedemptionFlow(builder.NewBookingBuilder().BuildCafeSummary())

		rec := newRedemptionRecord(t)
		require.NoError(t, f.CompleteRedeem(rec))

		assert.Equal(t, flow.StateRedeemed, f.State())
		assert.Same(t, rec, f.Redemption())
	})

	t.Run("double redeem rejected", func(t *testing.T) {
		f := flow.NewRedemptionFlow(builder.NewBookingBuilder().BuildCafeSummary())
		require.NoError(t, f.CompleteRedeem(newRedemptionRecord(t)))

		err := f.CompleteRedeem(newRedemptionRecord(t))
		assert.ErrorIs(t, err, flow.ErrNotInInfo)
	})

	t.Run("redeem on booking flow rejected", func(t *testing.T) {
		f := flow.NewBookingFlow(builder.NewBookingBuilder().BuildCafeSummary())
		err := f.CompleteRedeem(newRedemptionRecord(t))
		assert.ErrorIs(t, err, flow.ErrWrongVariant)
	})
}

func TestClose(t *testing.T) {
	t.Run("closes from any state", func(t *testing.T) {
		form := flow.NewBookingFlow(builder.NewBookingBuilder().BuildCafeSummary())
		form.Close(0, syncScheduler)
		assert.Equal(t, flow.StateClosed, form.State())

		confirmed := flow.NewBookingFlow(builder.NewBookingBuilder().BuildCafeSummary())
		_, gen, err := confirmed.BeginSubmit()
		require.NoError(t, err)
		require.NoError(t, confirmed.CompleteSubmit(gen, newBookingRecord(t)))
		confirmed.Close(0, syncScheduler)
		assert.Equal(t, flow.StateClosed, confirmed.State())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		f := flow.NewBookingFlow(builder.NewBookingBuilder().BuildCafeSummary())
		f.Close(0, syncScheduler)
		f.Close(0, syncScheduler)
		assert.Equal(t, flow.StateClosed, f.State())
	})

	t.Run("transient state survives until the scheduled reset runs", func(t *testing.T) {
		f := flow.NewBookingFlow(builder.NewBookingBuilder().BuildCafeSummary())
		require.NoError(t, f.UpdateIntent(booking.FieldUpdate{FullName: strptr("Asha Nair")}))

		hold := &holdScheduler{}
		f.Close(300*time.Millisecond, hold.schedule)

		assert.Equal(t, flow.StateClosed, f.State(), "the visible transition is immediate")
		assert.Equal(t, "Asha Nair", f.Intent().FullName, "form content lingers through the delay")

		require.NotNil(t, hold.fn)
		hold.fn()

		assert.Equal(t, booking.NewIntent(), f.Intent())
		assert.Nil(t, f.Record())
		assert.Nil(t, f.Redemption())
	})

	t.Run("closed state itself is permanent after reset", func(t *testing.T) {
		f := flow.NewBookingFlow(builder.NewBookingBuilder().BuildCafeSummary())
		f.Close(0, syncScheduler)
		assert.Equal(t, flow.StateClosed, f.State())
	})
}
