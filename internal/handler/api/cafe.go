package api

import (
	"errors"
	"net/http"

	resdto "brewzzy/internal/handler/dto/response"
	"brewzzy/internal/handler/httperr"
	"brewzzy/internal/pkg/errs"
	"brewzzy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CafeHandler struct {
	cafeQueries queries.CafeQueries
	planQueries queries.PlanQueries
}

func NewCafeHandler(cafeQueries queries.CafeQueries, planQueries queries.PlanQueries) *CafeHandler {
	return &CafeHandler{
		cafeQueries: cafeQueries,
		planQueries: planQueries,
	}
}

// @Summary List cafes
// @Description List the partner cafe catalog
// @Tags cafes
// @Produce json
// @Success 200 {array} resdto.CafeResponse
// @Router /cafes [get]
func (h *CafeHandler) ListCafes(c *gin.Context) {
	views, err := h.cafeQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCafeViews(views))
}

// @Summary Get cafe
// @Description Get a single cafe by ID
// @Tags cafes
// @Produce json
// @Param id path string true "Cafe ID"
// @Success 200 {object} resdto.CafeResponse
// @Failure 404 {object} map[string]string
// @Router /cafes/{id} [get]
func (h *CafeHandler) GetCafe(c *gin.Context) {
	view, err := h.cafeQueries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrCafeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cafe not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCafeView(view))
}

// @Summary List subscription plans
// @Description List the static subscription plan content
// @Tags plans
// @Produce json
// @Success 200 {array} resdto.PlanResponse
// @Router /plans [get]
func (h *CafeHandler) ListPlans(c *gin.Context) {
	views, err := h.planQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPlanViews(views))
}
