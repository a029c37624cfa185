package response

import (
	"time"

	"brewzzy/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RedemptionResponse struct {
	ID               string              `json:"id"`
	Cafe             CafeSummaryResponse `json:"cafe"`
	Code             string              `json:"code"`
	IssuedAt         time.Time           `json:"issuedAt"`
	ExpiresAt        time.Time           `json:"expiresAt"`
	ExpiresAtDisplay string              `json:"expiresAtDisplay"`
	Active           bool                `json:"active"`
}

type RedemptionHistoryResponse struct {
	Active  []*RedemptionResponse `json:"active"`
	Expired []*RedemptionResponse `json:"expired"`
}

func FromRedemptionView(v *queries.RedemptionView) *RedemptionResponse {
	var resp RedemptionResponse
	if err := copier.Copy(&resp, v); err != nil {
		return &RedemptionResponse{}
	}
	return &resp
}

func FromRedemptionHistoryView(v *queries.RedemptionHistoryView) *RedemptionHistoryResponse {
	resp := &RedemptionHistoryResponse{
		Active:  make([]*RedemptionResponse, 0, len(v.Active)),
		Expired: make([]*RedemptionResponse, 0, len(v.Expired)),
	}
	for _, r := range v.Active {
		resp.Active = append(resp.Active, FromRedemptionView(r))
	}
	for _, r := range v.Expired {
		resp.Expired = append(resp.Expired, FromRedemptionView(r))
	}
	return resp
}
