package response

import (
	"brewzzy/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CafeResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Tagline  string  `json:"tagline"`
	Location string  `json:"location"`
	Rating   float64 `json:"rating"`
	OpenTime string  `json:"openTime"`
}

type CafeSummaryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Location string `json:"location"`
}

type PlanResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Period   string   `json:"period"`
	Savings  string   `json:"savings,omitempty"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}

func FromCafeView(v *queries.CafeView) *CafeResponse {
	var resp CafeResponse
	if err := copier.Copy(&resp, v); err != nil {
		return &CafeResponse{}
	}
	return &resp
}

func FromCafeViews(views []*queries.CafeView) []*CafeResponse {
	resps := make([]*CafeResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromCafeView(v))
	}
	return resps
}

func FromPlanViews(views []*queries.PlanView) []*PlanResponse {
	resps := make([]*PlanResponse, 0, len(views))
	for _, v := range views {
		var resp PlanResponse
		if err := copier.Copy(&resp, v); err != nil {
			continue
		}
		resps = append(resps, &resp)
	}
	return resps
}
