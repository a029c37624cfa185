//go:build unit

package redemption_test

import (
	"testing"
	"time"

	"brewzzy/internal/domain/cafe"
	"brewzzy/internal/domain/redemption"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func testCafe() cafe.Summary {
	return cafe.Summary{
		ID:       "nordic-brew",
		Name:     "Nordic Brew",
		Image:    "https://images.example.com/nordic-brew.jpg",
		Location: "Indiranagar, Bengaluru",
	}
}

func TestNewRecord(t *testing.T) {
	code, err := redemption.NewCode(123456)
	require.NoError(t, err)

	t.Run("expiry is exactly createdAt plus ttl", func(t *testing.T) {
		rec, err := redemption.NewRecord("RD-1", testCafe(), code, issuedAt, redemption.CodeTTL)
		require.NoError(t, err)

		assert.Equal(t, issuedAt, rec.CreatedAt())
		assert.Equal(t, issuedAt.Add(10*time.Minute), rec.ExpiresAt())
	})

	t.Run("empty id rejected", func(t *testing.T) {
		_, err := redemption.NewRecord("", testCafe(), code, issuedAt, redemption.CodeTTL)
		assert.ErrorIs(t, err, redemption.ErrEmptyRedemptionID)
	})

	t.Run("missing cafe rejected", func(t *testing.T) {
		_, err := redemption.NewRecord("RD-1", cafe.Summary{}, code, issuedAt, redemption.CodeTTL)
		assert.ErrorIs(t, err, redemption.ErrEmptyCafe)
	})
}

func TestRecordIsActive(t *testing.T) {
	code, err := redemption.NewCode(654321)
	require.NoError(t, err)

	rec, err := redemption.NewRecord("RD-2", testCafe(), code, issuedAt, redemption.CodeTTL)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		at     time.Time
		active bool
	}{
		{name: "immediately after issue", at: issuedAt, active: true},
		{name: "nine minutes in", at: issuedAt.Add(9 * time.Minute), active: true},
		{name: "one nanosecond before expiry", at: issuedAt.Add(10*time.Minute - time.Nanosecond), active: true},
		{name: "exactly at expiry", at: issuedAt.Add(10 * time.Minute), active: false},
		{name: "eleven minutes in", at: issuedAt.Add(11 * time.Minute), active: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.active, rec.IsActive(tc.at))
		})
	}
}
