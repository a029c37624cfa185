package request

type NavigateRequest struct {
	View string `json:"view" binding:"required"`
}

type ScrollToRequest struct {
	Anchor string `json:"anchor" binding:"required"`
}
