//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"brewzzy/internal/handler/httperr"
	"brewzzy/internal/handler/middleware"
	"brewzzy/internal/pkg/errs"
	"brewzzy/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

func newErrorRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/boom", handler)
	return router
}

func TestErrorHandler(t *testing.T) {
	t.Run("renders an aborted public error exactly once", func(t *testing.T) {
		router := newErrorRouter(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusInternalServerError,
				errs.New("catalog unavailable"), "Internal server error", nil)
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("renders a recorded public error when the handler wrote nothing", func(t *testing.T) {
		router := newErrorRouter(func(c *gin.Context) {
			resp := httperr.NewResponse(http.StatusConflict, "Another flow is already open")
			_ = c.Error(&gin.Error{Err: errs.New("flow already open"), Type: gin.ErrorTypePublic, Meta: resp})
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Another flow is already open")
	})

	t.Run("falls back to a plain 500 for private errors", func(t *testing.T) {
		router := newErrorRouter(func(c *gin.Context) {
			_ = c.Error(errs.New("boom"))
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

func TestCustomRecovery(t *testing.T) {
	t.Run("a panicking handler becomes a 500 response", func(t *testing.T) {
		router := newErrorRouter(func(_ *gin.Context) {
			panic("unexpected")
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
