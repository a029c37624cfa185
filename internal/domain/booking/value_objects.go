package booking

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinGuests = 1
	MaxGuests = 8

	DefaultGuests = 2

	// DateLayout is the wire format for reservation dates.
	DateLayout = "2006-01-02"
)

// ReservationDate is a calendar date with no time-of-day component. Upcoming /
// past classification compares dates only: a booking for today stays upcoming
// until local midnight passes, regardless of the slot time.
type ReservationDate struct {
	value time.Time
}

func NewReservationDate(s string, now time.Time) (ReservationDate, error) {
	d, err := ParseReservationDate(s)
	if err != nil {
		return ReservationDate{}, err
	}
	if d.value.Before(truncateToDay(now)) {
		return ReservationDate{}, ErrDateInPast
	}
	return d, nil
}

// ParseReservationDate accepts any calendar date, including past ones. Records
// reconstructed from history must round-trip even after their date has passed.
func ParseReservationDate(s string) (ReservationDate, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return ReservationDate{}, ErrInvalidDate
	}
	return ReservationDate{value: t}, nil
}

func (d ReservationDate) IsUpcoming(now time.Time) bool {
	return !d.value.Before(truncateToDay(now))
}

func (d ReservationDate) String() string {
	return d.value.Format(DateLayout)
}

func (d ReservationDate) Time() time.Time {
	return d.value
}

func truncateToDay(t time.Time) time.Time {
	y, m, day := t.In(time.Local).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.Local)
}

// SlotTime is a half-hour slot from the fixed business-hours grid.
type SlotTime struct {
	value string
}

// SlotGrid returns the bookable time slots: fourteen half-hour steps starting
// at 08:00, matching the cafes' common service window.
func SlotGrid() []string {
	slots := make([]string, 0, 14)
	for i := 0; i < 14; i++ {
		half := i + 16
		slots = append(slots, fmt.Sprintf("%02d:%02d", half/2, (half%2)*30))
	}
	return slots
}

func NewSlotTime(s string) (SlotTime, error) {
	for _, slot := range SlotGrid() {
		if s == slot {
			return SlotTime{value: s}, nil
		}
	}
	return SlotTime{}, ErrInvalidSlot
}

func (s SlotTime) String() string {
	return s.value
}

type GuestCount struct {
	value int
}

func NewGuestCount(n int) (GuestCount, error) {
	if n < MinGuests || n > MaxGuests {
		return GuestCount{}, ErrInvalidGuests
	}
	return GuestCount{value: n}, nil
}

func (g GuestCount) Value() int { return g.value }

// Contact holds the per-field validated guest details. Cross-field rules do not
// exist; each field stands alone.
type Contact struct {
	fullName string
	phone    string
	email    string
}

func NewContact(fullName, phone, email string) (Contact, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return Contact{}, ErrEmptyFullName
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return Contact{}, ErrEmptyPhone
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return Contact{}, ErrInvalidEmail
	}
	return Contact{fullName: fullName, phone: phone, email: email}, nil
}

func (c Contact) FullName() string { return c.fullName }
func (c Contact) Phone() string    { return c.phone }
func (c Contact) Email() string    { return c.email }
