//go:build unit

package memstore_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"brewzzy/internal/domain/flow"
	"brewzzy/internal/domain/view"
	"brewzzy/internal/infra/memstore"
	"brewzzy/internal/pkg/clock"
	"brewzzy/internal/pkg/errs"
	"brewzzy/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syncScheduler(_ time.Duration, fn func()) { fn() }

func newRegistry() *memstore.Registry {
	return memstore.NewRegistry(clock.NewMockClock(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)))
}

func TestRegistry(t *testing.T) {
	r := newRegistry()

	t.Run("create and find", func(t *testing.T) {
		sess := r.Create()
		assert.NotEqual(t, uuid.Nil, sess.ID())
		assert.False(t, sess.CreatedAt().IsZero())

		found, err := r.Find(sess.ID())
		require.NoError(t, err)
		assert.Same(t, sess, found)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := r.Find(uuid.New())
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		a := r.Create()
		b := r.Create()
		assert.NotEqual(t, a.ID(), b.ID())
		assert.NotSame(t, a.Records(), b.Records())
	})
}

func TestSessionFlows(t *testing.T) {
	cf := builder.NewBookingBuilder().BuildCafeSummary()

	t.Run("one flow at a time", func(t *testing.T) {
		sess := newRegistry().Create()

		require.NoError(t, sess.OpenFlow(flow.NewBookingFlow(cf)))
		err := sess.OpenFlow(flow.NewRedemptionFlow(cf))
		assert.ErrorIs(t, err, errs.ErrFlowAlreadyOpen)
	})

	t.Run("closed flow is replaceable", func(t *testing.T) {
		sess := newRegistry().Create()

		require.NoError(t, sess.OpenFlow(flow.NewBookingFlow(cf)))
		require.NoError(t, sess.CloseFlow(0, syncScheduler))
		assert.NoError(t, sess.OpenFlow(flow.NewRedemptionFlow(cf)))
	})

	t.Run("active flow lookup", func(t *testing.T) {
		sess := newRegistry().Create()

		_, err := sess.ActiveFlow()
		assert.ErrorIs(t, err, errs.ErrNoActiveFlow)

		f := flow.NewBookingFlow(cf)
		require.NoError(t, sess.OpenFlow(f))

		got, err := sess.ActiveFlow()
		require.NoError(t, err)
		assert.Same(t, f, got)

		require.NoError(t, sess.CloseFlow(0, syncScheduler))
		_, err = sess.ActiveFlow()
		assert.ErrorIs(t, err, errs.ErrNoActiveFlow, "a closed flow is no longer active")
	})

	t.Run("closing without a flow", func(t *testing.T) {
		sess := newRegistry().Create()
		err := sess.CloseFlow(0, syncScheduler)
		assert.ErrorIs(t, err, errs.ErrNoActiveFlow)
	})
}

func TestSessionNavigation(t *testing.T) {
	sess := newRegistry().Create()

	v, anchor := sess.CurrentView()
	assert.Equal(t, view.ViewHome, v)
	assert.Empty(t, anchor)

	require.NoError(t, sess.Navigate(view.ViewPlans))
	v, _ = sess.CurrentView()
	assert.Equal(t, view.ViewPlans, v)

	sess.ScrollTo("cafes")
	v, anchor = sess.CurrentView()
	assert.Equal(t, view.ViewHome, v)
	assert.Equal(t, "cafes", anchor)
}

func TestSessionNavigationIsLogged(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	sess := newRegistry().Create()
	require.NoError(t, sess.Navigate(view.ViewMyBookings))

	logged := buf.String()
	assert.Contains(t, logged, "view changed")
	assert.Contains(t, logged, "view=my_bookings")
	assert.Contains(t, logged, sess.ID().String())
}
