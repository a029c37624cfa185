package queries

import (
	"context"

	"brewzzy/internal/infra/memstore"
	"brewzzy/internal/infra/qrencode"
	"brewzzy/internal/pkg/clock"
	"brewzzy/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	History(ctx context.Context, sessionID uuid.UUID) (*BookingHistoryView, error)
	Artifact(ctx context.Context, sessionID uuid.UUID, bookingID string) (*ArtifactFile, error)
}

type bookingQueriesImpl struct {
	sessions *memstore.Registry
	clock    clock.Clock
}

func NewBookingQueries(sessions *memstore.Registry, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{sessions: sessions, clock: clk}
}

// History partitions the session's bookings into upcoming and past at call
// time. The partition is recomputed on every read; crossing local midnight
// moves today's bookings with no transition event.
func (q *bookingQueriesImpl) History(_ context.Context, sessionID uuid.UUID) (*BookingHistoryView, error) {
	sess, err := q.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	upcoming, past := sess.Records().PartitionBookings(q.clock.Now())

	history := &BookingHistoryView{
		Upcoming: make([]*BookingView, len(upcoming)),
		Past:     make([]*BookingView, len(past)),
	}
	for i, r := range upcoming {
		history.Upcoming[i] = NewBookingView(r)
	}
	for i, r := range past {
		history.Past[i] = NewBookingView(r)
	}
	return history, nil
}

// Artifact produces the named PNG export for a booking's QR proof.
func (q *bookingQueriesImpl) Artifact(_ context.Context, sessionID uuid.UUID, bookingID string) (*ArtifactFile, error) {
	sess, err := q.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	rec, ok := sess.Records().FindBooking(bookingID)
	if !ok {
		return nil, errs.ErrBookingNotFound
	}
	if rec.Artifact().IsEmpty() {
		return nil, errs.ErrArtifactMissing
	}

	png, err := qrencode.DecodePNG(rec.Artifact())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrArtifactMissing)
	}

	return &ArtifactFile{
		FileName: rec.ArtifactFileName(),
		PNG:      png,
	}, nil
}
