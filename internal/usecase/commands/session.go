package commands

import (
	"context"

	"brewzzy/internal/infra/memstore"
	"brewzzy/internal/pkg/errs"
	"brewzzy/internal/pkg/session"

	"github.com/google/uuid"
)

var ErrTokenIssueFailed = errs.New("failed to issue session token")

type StartSessionResult struct {
	SessionID uuid.UUID
	Token     string
}

type SessionCommands interface {
	StartSession(ctx context.Context) (*StartSessionResult, error)
}

type sessionCommandsImpl struct {
	sessions *memstore.Registry
	tokens   *session.Service
}

func NewSessionCommands(sessions *memstore.Registry, tokens *session.Service) SessionCommands {
	return &sessionCommandsImpl{
		sessions: sessions,
		tokens:   tokens,
	}
}

// StartSession creates the in-memory session (record store + view router) and
// mints the signed token that binds the client to it.
func (c *sessionCommandsImpl) StartSession(_ context.Context) (*StartSessionResult, error) {
	sess := c.sessions.Create()

	token, err := c.tokens.GenerateToken(sess.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenIssueFailed)
	}

	return &StartSessionResult{
		SessionID: sess.ID(),
		Token:     token,
	}, nil
}
