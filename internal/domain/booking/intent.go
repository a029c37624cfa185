package booking

import (
	"strconv"
	"time"
)

// Intent is the transient, mutable form state of one booking flow. It is
// created empty when the flow opens, mutated field by field, and discarded when
// the flow closes. Abandoning it creates no record.
type Intent struct {
	FullName string
	Phone    string
	Email    string
	Date     string
	Time     string
	Guests   string
}

func NewIntent() Intent {
	return Intent{Guests: strconv.Itoa(DefaultGuests)}
}

// FieldUpdate carries a partial, one-field-at-a-time edit. Nil fields are left
// untouched.
type FieldUpdate struct {
	FullName *string
	Phone    *string
	Email    *string
	Date     *string
	Time     *string
	Guests   *string
}

func (i *Intent) Apply(u FieldUpdate) {
	if u.FullName != nil {
		i.FullName = *u.FullName
	}
	if u.Phone != nil {
		i.Phone = *u.Phone
	}
	if u.Email != nil {
		i.Email = *u.Email
	}
	if u.Date != nil {
		i.Date = *u.Date
	}
	if u.Time != nil {
		i.Time = *u.Time
	}
	if u.Guests != nil {
		i.Guests = *u.Guests
	}
}

func (i *Intent) Reset() {
	*i = NewIntent()
}

// Details is the validated snapshot of an Intent, taken at submission time.
type Details struct {
	Contact Contact
	Date    ReservationDate
	Slot    SlotTime
	Guests  GuestCount
}

// Validate is the submission guard: incomplete or invalid intents are rejected
// here rather than surfaced as recoverable errors downstream.
func (i Intent) Validate(now time.Time) (Details, error) {
	contact, err := NewContact(i.FullName, i.Phone, i.Email)
	if err != nil {
		return Details{}, err
	}

	date, err := NewReservationDate(i.Date, now)
	if err != nil {
		return Details{}, err
	}

	slot, err := NewSlotTime(i.Time)
	if err != nil {
		return Details{}, err
	}

	n, err := strconv.Atoi(i.Guests)
	if err != nil {
		return Details{}, ErrInvalidGuests
	}
	guests, err := NewGuestCount(n)
	if err != nil {
		return Details{}, err
	}

	return Details{Contact: contact, Date: date, Slot: slot, Guests: guests}, nil
}
