package response

import (
	"time"

	"brewzzy/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          string              `json:"id"`
	Cafe        CafeSummaryResponse `json:"cafe"`
	FullName    string              `json:"fullName"`
	Phone       string              `json:"phone"`
	Email       string              `json:"email"`
	Date        string              `json:"date"`
	DateDisplay string              `json:"dateDisplay"`
	Time        string              `json:"time"`
	TimeDisplay string              `json:"timeDisplay"`
	Guests      int                 `json:"guests"`
	CreatedAt   time.Time           `json:"createdAt"`
	Artifact    string              `json:"artifact"`
}

type BookingHistoryResponse struct {
	Upcoming []*BookingResponse `json:"upcoming"`
	Past     []*BookingResponse `json:"past"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	if err := copier.Copy(&resp, v); err != nil {
		return &BookingResponse{}
	}
	return &resp
}

func FromBookingHistoryView(v *queries.BookingHistoryView) *BookingHistoryResponse {
	resp := &BookingHistoryResponse{
		Upcoming: make([]*BookingResponse, 0, len(v.Upcoming)),
		Past:     make([]*BookingResponse, 0, len(v.Past)),
	}
	for _, b := range v.Upcoming {
		resp.Upcoming = append(resp.Upcoming, FromBookingView(b))
	}
	for _, b := range v.Past {
		resp.Past = append(resp.Past, FromBookingView(b))
	}
	return resp
}
