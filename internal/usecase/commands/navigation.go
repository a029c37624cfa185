package commands

import (
	"context"

	"brewzzy/internal/domain/view"
	"brewzzy/internal/infra/memstore"
	"brewzzy/internal/pkg/errs"
	"brewzzy/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidNavigation = errs.New("navigation target is invalid")

type NavigationCommands interface {
	Navigate(ctx context.Context, sessionID uuid.UUID, target string) (*queries.NavigationView, error)
	ScrollTo(ctx context.Context, sessionID uuid.UUID, anchor string) (*queries.NavigationView, error)
}

type navigationCommandsImpl struct {
	sessions *memstore.Registry
}

func NewNavigationCommands(sessions *memstore.Registry) NavigationCommands {
	return &navigationCommandsImpl{sessions: sessions}
}

// Navigate performs an unguarded view transition; every view is reachable from
// every other view.
func (c *navigationCommandsImpl) Navigate(_ context.Context, sessionID uuid.UUID, target string) (*queries.NavigationView, error) {
	sess, err := c.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	v, err := view.NewView(target)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidNavigation)
	}
	if err := sess.Navigate(v); err != nil {
		return nil, errs.Mark(err, ErrInvalidNavigation)
	}

	cur, anchor := sess.CurrentView()
	return &queries.NavigationView{View: cur.String(), Anchor: anchor}, nil
}

// ScrollTo moves the Home scroll anchor. It is not a view transition.
func (c *navigationCommandsImpl) ScrollTo(_ context.Context, sessionID uuid.UUID, anchor string) (*queries.NavigationView, error) {
	sess, err := c.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	sess.ScrollTo(anchor)

	cur, a := sess.CurrentView()
	return &queries.NavigationView{View: cur.String(), Anchor: a}, nil
}
