package booking

import "errors"

var (
	ErrEmptyFullName  = errors.New("full name cannot be empty")
	ErrEmptyPhone     = errors.New("phone number cannot be empty")
	ErrInvalidEmail   = errors.New("email address is invalid")
	ErrInvalidDate    = errors.New("reservation date is invalid")
	ErrDateInPast     = errors.New("reservation date cannot be in the past")
	ErrInvalidSlot    = errors.New("time must be selected from the slot grid")
	ErrInvalidGuests  = errors.New("guest count must be between 1 and 8")
	ErrEmptyCafe      = errors.New("booking requires a cafe")
	ErrEmptyBookingID = errors.New("booking id cannot be empty")
)

// Artifact is the QR proof of a booking, carried as a data URI. The empty
// artifact is a legal value: encoding is best effort and a booking without a
// visual proof is still a booking.
type Artifact string

const EmptyArtifact Artifact = ""

func (a Artifact) IsEmpty() bool {
	return a == EmptyArtifact
}

func (a Artifact) String() string {
	return string(a)
}
