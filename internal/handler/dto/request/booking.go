package request

import (
	"brewzzy/internal/domain/booking"
)

type OpenBookingRequest struct {
	CafeID string `json:"cafe_id" binding:"required"`
}

// UpdateIntentRequest carries a partial form edit. Only the fields present in
// the request body are applied; absent fields leave the draft untouched.
type UpdateIntentRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Guests   *string `json:"guests,omitempty"`
}

func (r UpdateIntentRequest) ToFieldUpdate() booking.FieldUpdate {
	return booking.FieldUpdate{
		FullName: r.FullName,
		Phone:    r.Phone,
		Email:    r.Email,
		Date:     r.Date,
		Time:     r.Time,
		Guests:   r.Guests,
	}
}
