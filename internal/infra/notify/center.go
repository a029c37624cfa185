package notify

import (
	"log/slog"
	"sync"
	"time"

	"brewzzy/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	KindSuccess = "success"
	KindFailure = "failure"
)

// Toast is one user-visible notification. Toasts queue per session until the
// client drains them.
type Toast struct {
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Center buffers toasts per session. Delivery is fire and forget: pushing
// never blocks and never fails the triggering command.
type Center struct {
	mu      sync.Mutex
	pending map[uuid.UUID][]Toast
	clock   clock.Clock
}

func NewCenter(clk clock.Clock) *Center {
	return &Center{
		pending: make(map[uuid.UUID][]Toast),
		clock:   clk,
	}
}

func (c *Center) Success(sessionID uuid.UUID, title, description string) {
	c.push(sessionID, Toast{Kind: KindSuccess, Title: title, Description: description})
}

func (c *Center) Failure(sessionID uuid.UUID, title, description string) {
	c.push(sessionID, Toast{Kind: KindFailure, Title: title, Description: description})
}

func (c *Center) push(sessionID uuid.UUID, t Toast) {
	t.CreatedAt = c.clock.Now()

	c.mu.Lock()
	c.pending[sessionID] = append(c.pending[sessionID], t)
	c.mu.Unlock()

	slog.Info("notification queued", "session_id", sessionID, "kind", t.Kind, "title", t.Title)
}

// Drain returns and clears the session's queued toasts in arrival order.
func (c *Center) Drain(sessionID uuid.UUID) []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	toasts := c.pending[sessionID]
	delete(c.pending, sessionID)
	return toasts
}
