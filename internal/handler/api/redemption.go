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

type RedemptionHandler struct {
	redemptionCommands commands.RedemptionCommands
	redemptionQueries  queries.RedemptionQueries
}

func NewRedemptionHandler(
	redemptionCommands commands.RedemptionCommands,
	redemptionQueries queries.RedemptionQueries,
) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionCommands: redemptionCommands,
		redemptionQueries:  redemptionQueries,
	}
}

// @Summary Open redemption flow
// @Description Open a free-coffee redemption flow for a cafe
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenRedemptionRequest true "Target cafe"
// @Success 201 {object} resdto.FlowResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /redemptions/flow [post]
func (h *RedemptionHandler) OpenFlow(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.OpenRedemptionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.redemptionCommands.Open(c.Request.Context(), sessionID, req.CafeID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFlowView(view))
}

// @Summary Redeem
// @Description Generate the one-time redemption code for the open flow
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.RedemptionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /redemptions [post]
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	result, err := h.redemptionCommands.Redeem(c.Request.Context(), sessionID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRedemptionView(result.Redemption))
}

// @Summary Close flow
// @Description Close the active redemption flow; transient state resets shortly after
// @Tags redemptions
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /redemptions/flow [delete]
func (h *RedemptionHandler) CloseFlow(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	if err := h.redemptionCommands.Close(c.Request.Context(), sessionID); err != nil {
		h.respondFlowError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Redemption history
// @Description List the session's redemptions partitioned into active and expired
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RedemptionHistoryResponse
// @Failure 404 {object} map[string]string
// @Router /redemptions [get]
func (h *RedemptionHandler) History(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	view, err := h.redemptionQueries.History(c.Request.Context(), sessionID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedemptionHistoryView(view))
}

// @Summary Export redemption code
// @Description Export the redemption code as plain text, e.g. for clipboard use
// @Tags redemptions
// @Produce plain
// @Security BearerAuth
// @Param id path string true "Redemption ID"
// @Success 200 {string} string
// @Failure 404 {object} map[string]string
// @Router /redemptions/{id}/code [get]
func (h *RedemptionHandler) ExportCode(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	code, err := h.redemptionQueries.Code(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrRedemptionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Redemption not found",
			})
			return
		}
		h.respondFlowError(c, err)
		return
	}

	c.String(http.StatusOK, code)
}

func (h *RedemptionHandler) respondFlowError(c *gin.Context, err error) {
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
	case errors.Is(err, commands.ErrWrongRedemptionVariant):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Active flow is not a redemption flow",
		})
	case errors.Is(err, errs.ErrInvalidFlowState):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Flow is not in a state that allows this operation",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
