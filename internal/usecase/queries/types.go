package queries

import (
	"time"

	"brewzzy/internal/domain/booking"
	"brewzzy/internal/domain/cafe"
	"brewzzy/internal/domain/flow"
	"brewzzy/internal/domain/redemption"
)

// Read models (DTO for read side)

type CafeView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Tagline  string  `json:"tagline"`
	Location string  `json:"location"`
	Rating   float64 `json:"rating"`
	OpenTime string  `json:"open_time"`
}

type CafeSummaryView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Location string `json:"location"`
}

type PlanView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Period   string   `json:"period"`
	Savings  string   `json:"savings,omitempty"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}

type BookingView struct {
	ID          string          `json:"id"`
	Cafe        CafeSummaryView `json:"cafe"`
	FullName    string          `json:"full_name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Date        string          `json:"date"`
	DateDisplay string          `json:"date_display"`
	Time        string          `json:"time"`
	TimeDisplay string          `json:"time_display"`
	Guests      int             `json:"guests"`
	CreatedAt   time.Time       `json:"created_at"`
	Artifact    string          `json:"artifact"`
}

type BookingHistoryView struct {
	Upcoming []*BookingView `json:"upcoming"`
	Past     []*BookingView `json:"past"`
}

type RedemptionView struct {
	ID               string          `json:"id"`
	Cafe             CafeSummaryView `json:"cafe"`
	Code             string          `json:"code"`
	IssuedAt         time.Time       `json:"issued_at"`
	ExpiresAt        time.Time       `json:"expires_at"`
	ExpiresAtDisplay string          `json:"expires_at_display"`
	Active           bool            `json:"active"`
}

type RedemptionHistoryView struct {
	Active  []*RedemptionView `json:"active"`
	Expired []*RedemptionView `json:"expired"`
}

// FlowView is the rendering contract for an in-progress flow: the lifecycle
// state plus whatever artifact the state carries.
type FlowView struct {
	Variant  string          `json:"variant"`
	State    string          `json:"state"`
	Cafe     CafeSummaryView `json:"cafe"`
	Intent   *IntentView     `json:"intent,omitempty"`
	Booking  *BookingView    `json:"booking,omitempty"`
	Redeemed *RedemptionView `json:"redeemed,omitempty"`
}

type IntentView struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Guests   string `json:"guests"`
}

type NavigationView struct {
	View   string `json:"view"`
	Anchor string `json:"anchor,omitempty"`
}

type ArtifactFile struct {
	FileName string
	PNG      []byte
}

const (
	dateDisplayLayout = "Monday, January 2, 2006"
	timeDisplayLayout = "3:04 PM"
)

func NewCafeView(c *cafe.Cafe) *CafeView {
	return &CafeView{
		ID:       c.ID(),
		Name:     c.Name(),
		Image:    c.Image(),
		Tagline:  c.Tagline(),
		Location: c.Location(),
		Rating:   c.Rating(),
		OpenTime: c.OpenTime(),
	}
}

func NewCafeSummaryView(s cafe.Summary) CafeSummaryView {
	return CafeSummaryView{
		ID:       s.ID,
		Name:     s.Name,
		Image:    s.Image,
		Location: s.Location,
	}
}

func NewBookingView(r *booking.Record) *BookingView {
	d := r.Details()
	return &BookingView{
		ID:          r.ID(),
		Cafe:        NewCafeSummaryView(r.Cafe()),
		FullName:    d.Contact.FullName(),
		Phone:       d.Contact.Phone(),
		Email:       d.Contact.Email(),
		Date:        d.Date.String(),
		DateDisplay: d.Date.Time().Format(dateDisplayLayout),
		Time:        d.Slot.String(),
		TimeDisplay: formatSlotDisplay(d.Slot.String()),
		Guests:      d.Guests.Value(),
		CreatedAt:   r.CreatedAt(),
		Artifact:    r.Artifact().String(),
	}
}

func NewRedemptionView(r *redemption.Record, now time.Time) *RedemptionView {
	return &RedemptionView{
		ID:               r.ID(),
		Cafe:             NewCafeSummaryView(r.Cafe()),
		Code:             r.Code().String(),
		IssuedAt:         r.CreatedAt(),
		ExpiresAt:        r.ExpiresAt(),
		ExpiresAtDisplay: r.ExpiresAt().Format(timeDisplayLayout),
		Active:           r.IsActive(now),
	}
}

func NewFlowView(f *flow.Flow, now time.Time) *FlowView {
	v := &FlowView{
		Variant: string(f.Variant()),
		State:   f.State().String(),
		Cafe:    NewCafeSummaryView(f.Cafe()),
	}

	switch f.State() {
	case flow.StateForm:
		intent := f.Intent()
		v.Intent = &IntentView{
			FullName: intent.FullName,
			Phone:    intent.Phone,
			Email:    intent.Email,
			Date:     intent.Date,
			Time:     intent.Time,
			Guests:   intent.Guests,
		}
	case flow.StateConfirmation:
		if rec := f.Record(); rec != nil {
			v.Booking = NewBookingView(rec)
		}
	case flow.StateRedeemed:
		if rec := f.Redemption(); rec != nil {
			v.Redeemed = NewRedemptionView(rec, now)
		}
	}
	return v
}

func formatSlotDisplay(slot string) string {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return slot
	}
	return t.Format(timeDisplayLayout)
}
