//go:build unit

package qrencode_test

import (
	"context"
	"strings"
	"testing"

	"brewzzy/internal/domain/booking"
	"brewzzy/internal/infra/qrencode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() qrencode.Payload {
	return qrencode.Payload{
		BookingID: "BK-1750000000000-abc123def",
		Cafe:      "Nordic Brew",
		Date:      "2025-06-16",
		Time:      "09:30",
		Guests:    "2",
		Name:      "Asha Nair",
	}
}

func TestEncode(t *testing.T) {
	enc := qrencode.NewEncoder(200)

	t.Run("produces a PNG data URI", func(t *testing.T) {
		artifact, err := enc.Encode(context.Background(), testPayload())
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(artifact.String(), "data:image/png;base64,"))
		assert.False(t, artifact.IsEmpty())
	})

	t.Run("payload round-trips to real PNG bytes", func(t *testing.T) {
		artifact, err := enc.Encode(context.Background(), testPayload())
		require.NoError(t, err)

		png, err := qrencode.DecodePNG(artifact)
		require.NoError(t, err)

		// PNG magic number
		require.Greater(t, len(png), 8)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, png[:8])
	})

	t.Run("cancelled context aborts encoding", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		artifact, err := enc.Encode(ctx, testPayload())
		assert.Error(t, err)
		assert.True(t, artifact.IsEmpty())
	})

	t.Run("non-positive size falls back to default", func(t *testing.T) {
		artifact, err := qrencode.NewEncoder(0).Encode(context.Background(), testPayload())
		require.NoError(t, err)
		assert.False(t, artifact.IsEmpty())
	})
}

func TestDecodePNG(t *testing.T) {
	for _, invalid := range []booking.Artifact{
		booking.EmptyArtifact,
		"data:image/png;base64,",
		"data:image/jpeg;base64,abcd",
		"random string",
	} {
		_, err := qrencode.DecodePNG(invalid)
		assert.Error(t, err, "artifact %q", invalid)
	}

	t.Run("corrupt base64", func(t *testing.T) {
		_, err := qrencode.DecodePNG("data:image/png;base64,!!!not-base64!!!")
		assert.Error(t, err)
	})
}
