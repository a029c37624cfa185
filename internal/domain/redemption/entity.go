package redemption

import (
	"errors"
	"strings"
	"time"

	"brewzzy/internal/domain/cafe"
)

var (
	ErrEmptyRedemptionID = errors.New("redemption id cannot be empty")
	ErrEmptyCafe         = errors.New("redemption requires a cafe")
)

// CodeTTL is the redemption code validity window.
const CodeTTL = 10 * time.Minute

// Record is the persisted result of a redeem action. Active/expired is a pure
// predicate over the expiry timestamp, re-evaluated on every read; nothing is
// ever transitioned or deleted.
type Record struct {
	id        string
	cafe      cafe.Summary
	code      Code
	createdAt time.Time
	expiresAt time.Time
}

// NewRecord fixes expiry at exactly createdAt + ttl.
func NewRecord(id string, cf cafe.Summary, code Code, createdAt time.Time, ttl time.Duration) (*Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyRedemptionID
	}
	if cf.ID == "" {
		return nil, ErrEmptyCafe
	}

	return &Record{
		id:        id,
		cafe:      cf,
		code:      code,
		createdAt: createdAt,
		expiresAt: createdAt.Add(ttl),
	}, nil
}

func (r *Record) IsActive(now time.Time) bool {
	return now.Before(r.expiresAt)
}

func (r *Record) ID() string           { return r.id }
func (r *Record) Cafe() cafe.Summary   { return r.cafe }
func (r *Record) Code() Code           { return r.code }
func (r *Record) CreatedAt() time.Time { return r.createdAt }
func (r *Record) ExpiresAt() time.Time { return r.expiresAt }
