package commands

import (
	"context"

	"brewzzy/internal/domain/booking"
	"brewzzy/internal/infra/qrencode"

	"github.com/google/uuid"
)

// ArtifactEncoder is the asynchronous proof-of-booking encoder. Encoding is
// best effort: callers must tolerate failure without rolling back the booking.
type ArtifactEncoder interface {
	Encode(ctx context.Context, p qrencode.Payload) (booking.Artifact, error)
}

// Notifier delivers user-visible toasts to a session. Delivery is fire and
// forget; a lost toast never fails a command.
type Notifier interface {
	Success(sessionID uuid.UUID, title, description string)
	Failure(sessionID uuid.UUID, title, description string)
}
