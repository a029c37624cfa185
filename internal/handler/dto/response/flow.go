package response

import (
	"brewzzy/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type FlowResponse struct {
	Variant  string              `json:"variant"`
	State    string              `json:"state"`
	Cafe     CafeSummaryResponse `json:"cafe"`
	Intent   *IntentResponse     `json:"intent,omitempty"`
	Booking  *BookingResponse    `json:"booking,omitempty"`
	Redeemed *RedemptionResponse `json:"redeemed,omitempty"`
}

type IntentResponse struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Guests   string `json:"guests"`
}

func FromFlowView(v *queries.FlowView) *FlowResponse {
	resp := &FlowResponse{
		Variant: v.Variant,
		State:   v.State,
	}
	if err := copier.Copy(&resp.Cafe, &v.Cafe); err != nil {
		return resp
	}
	if v.Intent != nil {
		var intent IntentResponse
		if err := copier.Copy(&intent, v.Intent); err == nil {
			resp.Intent = &intent
		}
	}
	if v.Booking != nil {
		resp.Booking = FromBookingView(v.Booking)
	}
	if v.Redeemed != nil {
		resp.Redeemed = FromRedemptionView(v.Redeemed)
	}
	return resp
}
