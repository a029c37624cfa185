package memstore

import (
	"sync"
	"time"

	"brewzzy/internal/domain/booking"
	"brewzzy/internal/domain/redemption"
)

// Store is a session's append-only record collection. Appends never reject,
// never merge and never dedupe; nothing is updated or deleted for the session
// lifetime. Partitions are derived projections computed on read — the
// underlying sequences are untouched.
//
// The product model is single-user, but HTTP requests may still arrive
// concurrently, so reads and the single-writer appends are mutex-guarded.
type Store struct {
	mu          sync.RWMutex
	bookings    []*booking.Record
	redemptions []*redemption.Record
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) AppendBooking(r *booking.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, r)
}

func (s *Store) AllBookings() []*booking.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*booking.Record, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// PartitionBookings splits the sequence into upcoming and past by reservation
// date against now. The split is total and disjoint and preserves relative
// order within each side.
func (s *Store) PartitionBookings(now time.Time) (upcoming, past []*booking.Record) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	upcoming = make([]*booking.Record, 0, len(s.bookings))
	past = make([]*booking.Record, 0)
	for _, r := range s.bookings {
		if r.IsUpcoming(now) {
			upcoming = append(upcoming, r)
		} else {
			past = append(past, r)
		}
	}
	return upcoming, past
}

func (s *Store) AppendRedemption(r *redemption.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redemptions = append(s.redemptions, r)
}

func (s *Store) AllRedemptions() []*redemption.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*redemption.Record, len(s.redemptions))
	copy(out, s.redemptions)
	return out
}

// PartitionRedemptions splits by the expiry predicate at now.
func (s *Store) PartitionRedemptions(now time.Time) (active, expired []*redemption.Record) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active = make([]*redemption.Record, 0, len(s.redemptions))
	expired = make([]*redemption.Record, 0)
	for _, r := range s.redemptions {
		if r.IsActive(now) {
			active = append(active, r)
		} else {
			expired = append(expired, r)
		}
	}
	return active, expired
}

func (s *Store) FindBooking(id string) (*booking.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.bookings {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

func (s *Store) FindRedemption(id string) (*redemption.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.redemptions {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}
