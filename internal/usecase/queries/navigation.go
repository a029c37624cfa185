package queries

import (
	"context"

	"brewzzy/internal/infra/memstore"

	"github.com/google/uuid"
)

type NavigationQueries interface {
	Current(ctx context.Context, sessionID uuid.UUID) (*NavigationView, error)
}

type navigationQueriesImpl struct {
	sessions *memstore.Registry
}

func NewNavigationQueries(sessions *memstore.Registry) NavigationQueries {
	return &navigationQueriesImpl{sessions: sessions}
}

func (q *navigationQueriesImpl) Current(_ context.Context, sessionID uuid.UUID) (*NavigationView, error) {
	sess, err := q.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	v, anchor := sess.CurrentView()
	return &NavigationView{View: v.String(), Anchor: anchor}, nil
}
