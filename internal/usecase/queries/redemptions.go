package queries

import (
	"context"

	"brewzzy/internal/infra/memstore"
	"brewzzy/internal/pkg/clock"
	"brewzzy/internal/pkg/errs"

	"github.com/google/uuid"
)

type RedemptionQueries interface {
	History(ctx context.Context, sessionID uuid.UUID) (*RedemptionHistoryView, error)
	Code(ctx context.Context, sessionID uuid.UUID, redemptionID string) (string, error)
}

type redemptionQueriesImpl struct {
	sessions *memstore.Registry
	clock    clock.Clock
}

func NewRedemptionQueries(sessions *memstore.Registry, clk clock.Clock) RedemptionQueries {
	return &redemptionQueriesImpl{sessions: sessions, clock: clk}
}

// History partitions by the expiry predicate at call time. Expiry is never
// pushed: a code flips to expired purely by being read after its window.
func (q *redemptionQueriesImpl) History(_ context.Context, sessionID uuid.UUID) (*RedemptionHistoryView, error) {
	sess, err := q.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	active, expired := sess.Records().PartitionRedemptions(now)

	history := &RedemptionHistoryView{
		Active:  make([]*RedemptionView, len(active)),
		Expired: make([]*RedemptionView, len(expired)),
	}
	for i, r := range active {
		history.Active[i] = NewRedemptionView(r, now)
	}
	for i, r := range expired {
		history.Expired[i] = NewRedemptionView(r, now)
	}
	return history, nil
}

// Code is the copy-to-clipboard export: the bare code string.
func (q *redemptionQueriesImpl) Code(_ context.Context, sessionID uuid.UUID, redemptionID string) (string, error) {
	sess, err := q.sessions.Find(sessionID)
	if err != nil {
		return "", err
	}

	rec, ok := sess.Records().FindRedemption(redemptionID)
	if !ok {
		return "", errs.ErrRedemptionNotFound
	}
	return rec.Code().String(), nil
}
