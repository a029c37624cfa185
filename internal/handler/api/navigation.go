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

type NavigationHandler struct {
	navigationCommands commands.NavigationCommands
	navigationQueries  queries.NavigationQueries
}

func NewNavigationHandler(
	navigationCommands commands.NavigationCommands,
	navigationQueries queries.NavigationQueries,
) *NavigationHandler {
	return &NavigationHandler{
		navigationCommands: navigationCommands,
		navigationQueries:  navigationQueries,
	}
}

// @Summary Get current view
// @Description Get the session's current view and scroll anchor
// @Tags navigation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.NavigationResponse
// @Failure 404 {object} map[string]string
// @Router /navigation [get]
func (h *NavigationHandler) Current(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	view, err := h.navigationQueries.Current(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNavigationView(view))
}

// @Summary Navigate
// @Description Switch the session to another view
// @Tags navigation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.NavigateRequest true "Target view"
// @Success 200 {object} resdto.NavigationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /navigation [post]
func (h *NavigationHandler) Navigate(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.NavigateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.navigationCommands.Navigate(c.Request.Context(), sessionID, req.View)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNavigationView(view))
}

// @Summary Scroll to section
// @Description Move the Home scroll anchor without changing views
// @Tags navigation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScrollToRequest true "Target anchor"
// @Success 200 {object} resdto.NavigationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /navigation/scroll [post]
func (h *NavigationHandler) ScrollTo(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.ScrollToRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.navigationCommands.ScrollTo(c.Request.Context(), sessionID, req.Anchor)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNavigationView(view))
}

func (h *NavigationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Session not found",
		})
	case errors.Is(err, commands.ErrInvalidNavigation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown view",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
