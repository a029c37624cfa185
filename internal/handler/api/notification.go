package api

import (
	"errors"
	"net/http"

	resdto "brewzzy/internal/handler/dto/response"
	"brewzzy/internal/handler/httperr"
	"brewzzy/internal/handler/middleware"
	"brewzzy/internal/pkg/errs"
	"brewzzy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationQueries queries.NotificationQueries
}

func NewNotificationHandler(notificationQueries queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{notificationQueries: notificationQueries}
}

// @Summary Drain notifications
// @Description Pop the session's pending toast notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.NotificationResponse
// @Failure 404 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) Drain(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	views, err := h.notificationQueries.Drain(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, errs.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Session not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}
