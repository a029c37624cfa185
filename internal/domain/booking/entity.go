package booking

import (
	"fmt"
	"strings"
	"time"

	"brewzzy/internal/domain/cafe"
)

// Record is the persisted result of a completed booking flow. Once constructed
// it never changes; upcoming/past classification is derived on read.
type Record struct {
	id        string
	cafe      cafe.Summary
	details   Details
	createdAt time.Time
	artifact  Artifact
}

func NewRecord(id string, cf cafe.Summary, details Details, createdAt time.Time, artifact Artifact) (*Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyBookingID
	}
	if cf.ID == "" {
		return nil, ErrEmptyCafe
	}

	return &Record{
		id:        id,
		cafe:      cf,
		details:   details,
		createdAt: createdAt,
		artifact:  artifact,
	}, nil
}

func (r *Record) IsUpcoming(now time.Time) bool {
	return r.details.Date.IsUpcoming(now)
}

// ArtifactFileName names the downloadable proof image.
func (r *Record) ArtifactFileName() string {
	return fmt.Sprintf("brewzzy-booking-%s.png", r.cafe.Name)
}

func (r *Record) ID() string           { return r.id }
func (r *Record) Cafe() cafe.Summary   { return r.cafe }
func (r *Record) Details() Details     { return r.details }
func (r *Record) CreatedAt() time.Time { return r.createdAt }
func (r *Record) Artifact() Artifact   { return r.artifact }
