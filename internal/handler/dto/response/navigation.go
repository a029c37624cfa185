package response

import (
	"brewzzy/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type NavigationResponse struct {
	View   string `json:"view"`
	Anchor string `json:"anchor,omitempty"`
}

func FromNavigationView(v *queries.NavigationView) *NavigationResponse {
	var resp NavigationResponse
	if err := copier.Copy(&resp, v); err != nil {
		return &NavigationResponse{}
	}
	return &resp
}
