//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	dombooking "brewzzy/internal/domain/booking"
	"brewzzy/internal/domain/cafe"
)

// BookingBuilder assembles a valid booking intent anchored to a fixed clock so
// date validation stays deterministic.
type BookingBuilder struct {
	Now      time.Time
	FullName string
	Phone    string
	Email    string
	Date     string
	Time     string
	Guests   string
	CafeID   string
	CafeName string
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	return &BookingBuilder{
		Now:      now,
		FullName: "Asha Nair",
		Phone:    "+91 98765 43210",
		Email:    "asha@example.com",
		Date:     now.AddDate(0, 0, 1).Format(dombooking.DateLayout),
		Time:     "09:30",
		Guests:   "2",
		CafeID:   "nordic-brew",
		CafeName: "Nordic Brew",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildIntent() dombooking.Intent {
	return dombooking.Intent{
		FullName: b.FullName,
		Phone:    b.Phone,
		Email:    b.Email,
		Date:     b.Date,
		Time:     b.Time,
		Guests:   b.Guests,
	}
}

func (b *BookingBuilder) BuildCafeSummary() cafe.Summary {
	return cafe.Summary{
		ID:       b.CafeID,
		Name:     b.CafeName,
		Image:    "https://images.example.com/" + b.CafeID + ".jpg",
		Location: "Indiranagar, Bengaluru",
	}
}

func (b *BookingBuilder) BuildDetails() (dombooking.Details, error) {
	return b.BuildIntent().Validate(b.Now)
}

// BuildRecord reconstructs a record the way history restores do, so the date
// may already be in the past.
func (b *BookingBuilder) BuildRecord(id string, artifact dombooking.Artifact) (*dombooking.Record, error) {
	contact, err := dombooking.NewContact(b.FullName, b.Phone, b.Email)
	if err != nil {
		return nil, err
	}
	date, err := dombooking.ParseReservationDate(b.Date)
	if err != nil {
		return nil, err
	}
	slot, err := dombooking.NewSlotTime(b.Time)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(b.Guests)
	if err != nil {
		return nil, err
	}
	guests, err := dombooking.NewGuestCount(n)
	if err != nil {
		return nil, err
	}
	details := dombooking.Details{Contact: contact, Date: date, Slot: slot, Guests: guests}
	return dombooking.NewRecord(id, b.BuildCafeSummary(), details, b.Now, artifact)
}
