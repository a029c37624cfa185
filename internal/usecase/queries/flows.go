package queries

import (
	"context"

	"brewzzy/internal/infra/memstore"
	"brewzzy/internal/pkg/clock"

	"github.com/google/uuid"
)

type FlowQueries interface {
	Active(ctx context.Context, sessionID uuid.UUID) (*FlowView, error)
}

type flowQueriesImpl struct {
	sessions *memstore.Registry
	clock    clock.Clock
}

func NewFlowQueries(sessions *memstore.Registry, clk clock.Clock) FlowQueries {
	return &flowQueriesImpl{sessions: sessions, clock: clk}
}

func (q *flowQueriesImpl) Active(_ context.Context, sessionID uuid.UUID) (*FlowView, error) {
	sess, err := q.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	fl, err := sess.ActiveFlow()
	if err != nil {
		return nil, err
	}

	return NewFlowView(fl, q.clock.Now()), nil
}
