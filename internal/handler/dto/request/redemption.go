package request

type OpenRedemptionRequest struct {
	CafeID string `json:"cafe_id" binding:"required"`
}
