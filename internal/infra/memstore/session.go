package memstore

import (
	"log/slog"
	"sync"
	"time"

	"brewzzy/internal/domain/flow"
	"brewzzy/internal/domain/view"
	"brewzzy/internal/pkg/clock"
	"brewzzy/internal/pkg/errs"

	"github.com/google/uuid"
)

// Session is the Go analogue of one browser tab: it owns the record store, the
// navigation router and at most one active booking/redemption flow. It lives
// from explicit creation until the process stops.
type Session struct {
	id        uuid.UUID
	createdAt time.Time
	records   *Store

	mu     sync.Mutex
	router *view.Router
	active *flow.Flow
}

func newSession(id uuid.UUID, createdAt time.Time) *Session {
	s := &Session{
		id:        id,
		createdAt: createdAt,
		records:   NewStore(),
		router:    view.NewRouter(),
	}
	s.router.OnChange(func(v view.View) {
		slog.Info("view changed", "session_id", s.id, "view", v)
	})
	return s
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) Records() *Store      { return s.records }

// OpenFlow installs a new active flow, replacing any closed one. A flow still
// in progress is rejected: each cafe selection starts an independent attempt
// only after the previous one is dismissed.
func (s *Session) OpenFlow(f *flow.Flow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil && s.active.State() != flow.StateClosed {
		return errs.ErrFlowAlreadyOpen
	}
	s.active = f
	return nil
}

func (s *Session) ActiveFlow() (*flow.Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil || s.active.State() == flow.StateClosed {
		return nil, errs.ErrNoActiveFlow
	}
	return s.active, nil
}

// CloseFlow dismisses the active flow; the flow handles its own delayed reset.
func (s *Session) CloseFlow(delay time.Duration, schedule flow.ResetScheduler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil || s.active.State() == flow.StateClosed {
		return errs.ErrNoActiveFlow
	}
	s.active.Close(delay, schedule)
	return nil
}

func (s *Session) Navigate(v view.View) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.router.Navigate(v)
}

func (s *Session) ScrollTo(anchor string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.router.ScrollTo(anchor)
}

func (s *Session) CurrentView() (view.View, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.router.Current(), s.router.Anchor()
}

// Registry holds all live sessions. Sessions are created on demand and only
// discarded when the process exits; nothing is persisted.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	clock    clock.Clock
}

func NewRegistry(clk clock.Clock) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		clock:    clk,
	}
}

func (r *Registry) Create() *Session {
	s := newSession(uuid.New(), r.clock.Now())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.id] = s
	return s
}

func (r *Registry) Find(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	return s, nil
}
