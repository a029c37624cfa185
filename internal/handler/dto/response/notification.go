package response

import (
	"time"

	"brewzzy/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromNotificationViews(views []*queries.NotificationView) []*NotificationResponse {
	resps := make([]*NotificationResponse, 0, len(views))
	for _, v := range views {
		var resp NotificationResponse
		if err := copier.Copy(&resp, v); err != nil {
			continue
		}
		resps = append(resps, &resp)
	}
	return resps
}
