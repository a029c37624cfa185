package queries

import (
	"context"
	"time"

	"brewzzy/internal/infra/memstore"
	"brewzzy/internal/infra/notify"

	"github.com/google/uuid"
)

type NotificationView struct {
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type NotificationQueries interface {
	Drain(ctx context.Context, sessionID uuid.UUID) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	sessions *memstore.Registry
	center   *notify.Center
}

func NewNotificationQueries(sessions *memstore.Registry, center *notify.Center) NotificationQueries {
	return &notificationQueriesImpl{sessions: sessions, center: center}
}

// Drain pops the session's pending toasts. Draining an unknown session is an
// error; draining an empty queue is not.
func (q *notificationQueriesImpl) Drain(_ context.Context, sessionID uuid.UUID) ([]*NotificationView, error) {
	if _, err := q.sessions.Find(sessionID); err != nil {
		return nil, err
	}

	toasts := q.center.Drain(sessionID)
	views := make([]*NotificationView, len(toasts))
	for i, t := range toasts {
		views[i] = &NotificationView{
			Kind:        t.Kind,
			Title:       t.Title,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		}
	}
	return views, nil
}
