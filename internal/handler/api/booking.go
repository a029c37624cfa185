package api

import (
	"errors"
	"net/http"

	reqdto "brewzzy/internal/handler/dto/request"
	resdto "brewzzy/internal/handler/dto/response"
	"brewzzy/internal/handler/httperr"
	"brewzzy/internal/handler/middleware"
	"brewzzy/internal/pkg/errs"
	"brewzzy/internal/usecase/commands"
	"brewzzy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	flowQueries     queries.FlowQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	flowQueries queries.FlowQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		flowQueries:     flowQueries,
	}
}

// @Summary Open booking flow
// @Description Open a reservation flow for a cafe, starting on the form
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenBookingRequest true "Target cafe"
// @Success 201 {object} resdto.FlowResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/flow [post]
func (h *BookingHandler) OpenFlow(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.OpenBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.Open(c.Request.Context(), sessionID, req.CafeID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFlowView(view))
}

// @Summary Get active flow
// @Description Get the session's active flow state
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/flow [get]
func (h *BookingHandler) GetFlow(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	view, err := h.flowQueries.Active(c.Request.Context(), sessionID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlowView(view))
}

// @Summary Update booking form
// @Description Apply a partial edit to the in-progress booking form
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateIntentRequest true "Field updates"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/flow [patch]
func (h *BookingHandler) UpdateIntent(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.UpdateIntentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.UpdateIntent(c.Request.Context(), sessionID, req.ToFieldUpdate())
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlowView(view))
}

// @Summary Submit booking
// @Description Submit the in-progress form, confirming the reservation
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	result, err := h.bookingCommands.Submit(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking form is incomplete or invalid",
			})
		case errors.Is(err, commands.ErrFlowAbandoned):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Flow was closed before the booking completed",
			})
		default:
			h.respondFlowError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(result.Booking))
}

// @Summary Close flow
// @Description Close the active flow; transient state resets shortly after
// @Tags bookings
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /bookings/flow [delete]
func (h *BookingHandler) CloseFlow(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	if err := h.bookingCommands.Close(c.Request.Context(), sessionID); err != nil {
		h.respondFlowError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Booking history
// @Description List the session's bookings partitioned into upcoming and past
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingHistoryResponse
// @Failure 404 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) History(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	view, err := h.bookingQueries.History(c.Request.Context(), sessionID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingHistoryView(view))
}

// @Summary Download booking artifact
// @Description Download the booking's QR code as a PNG attachment
// @Tags bookings
// @Produce png
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/artifact [get]
func (h *BookingHandler) DownloadArtifact(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	file, err := h.bookingQueries.Artifact(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrArtifactMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking has no downloadable code",
			})
		default:
			h.respondFlowError(c, err)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, "image/png", file.PNG)
}

func (h *BookingHandler) respondFlowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Session not found",
		})
	case errors.Is(err, errs.ErrCafeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cafe not found",
		})
	case errors.Is(err, errs.ErrNoActiveFlow):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No active flow",
		})
	case errors.Is(err, errs.ErrFlowAlreadyOpen):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Another flow is already open",
		})
	case errors.Is(err, commands.ErrWrongFlowVariant):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Active flow is not a booking flow",
		})
	case errors.Is(err, errs.ErrInvalidFlowState):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Flow is not in a state that allows this operation",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
