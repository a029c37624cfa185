//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"brewzzy/internal/handler/api"
	resdto "brewzzy/internal/handler/dto/response"
	"brewzzy/internal/pkg/errs"
	"brewzzy/internal/usecase/commands"
	"brewzzy/internal/usecase/queries"
	"brewzzy/tests/common/httptest"
	"brewzzy/tests/common/testutil"
	commandsmock "brewzzy/tests/mock/commands"
	queriesmock "brewzzy/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedemptionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRedemptionCommands
	mockQueries  *queriesmock.MockRedemptionQueries
	handler      *api.RedemptionHandler
	sessionID    uuid.UUID
}

func (s *RedemptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.sessionID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRedemptionQueries(s.mockCtrl)
	s.handler = api.NewRedemptionHandler(s.mockCommands, s.mockQueries)

	// Mock session middleware for testing
	sessionMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
			return
		}
		c.Set("session_id", s.sessionID)
		c.Next()
	}

	group := s.router.Group("/redemptions", sessionMiddleware)
	group.POST("", s.handler.Redeem)
	group.GET("", s.handler.History)
	group.POST("/flow", s.handler.OpenFlow)
	group.DELETE("/flow", s.handler.CloseFlow)
	group.GET("/:id/code", s.handler.ExportCode)
}

func (s *RedemptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedemptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(RedemptionHandlerTestSuite))
}

func infoFlowView() *queries.FlowView {
	return &queries.FlowView{
		Variant: "redemption",
		State:   "info",
		Cafe: queries.CafeSummaryView{
			ID:       "2",
			Name:     "Nordic Brew",
			Location: "Midtown Plaza",
		},
	}
}

func redemptionView(id string, active bool) *queries.RedemptionView {
	issued := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	return &queries.RedemptionView{
		ID:               id,
		Cafe:             queries.CafeSummaryView{ID: "2", Name: "Nordic Brew"},
		Code:             "482917",
		IssuedAt:         issued,
		ExpiresAt:        issued.Add(10 * time.Minute),
		ExpiresAtDisplay: "10:10 AM",
		Active:           active,
	}
}

// ================================================================================
// TestOpenFlow
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestOpenFlow() {
	url := "/redemptions/flow"
	reqBody := map[string]any{"cafe_id": "2"}

	s.Run("success: returns 201 Created in the info state", func() {
		s.mockCommands.EXPECT().Open(gomock.Any(), s.sessionID, "2").
			Return(infoFlowView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "session-token")

		var response resdto.FlowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("redemption", response.Variant)
		s.Equal("info", response.State)
		s.Nil(response.Intent, "redemption flows have no form")
	})

	s.Run("error: 400 Bad Request when cafe_id is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("cafe_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "session-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 Conflict when another flow is open", func() {
		s.mockCommands.EXPECT().Open(gomock.Any(), s.sessionID, "2").
			Return(nil, errs.ErrFlowAlreadyOpen).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "session-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Another flow is already open")
	})

	s.Run("error: 401 Unauthorized without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Session required")
	})
}

// ================================================================================
// TestRedeem
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestRedeem() {
	url := "/redemptions"

	s.Run("success: returns 201 Created with the fresh code", func() {
		result := &commands.RedeemResult{Redemption: redemptionView("RD-1750000000000-xyz789abc", true)}
		s.mockCommands.EXPECT().Redeem(gomock.Any(), s.sessionID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "session-token")

		var response resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("RD-1750000000000-xyz789abc", response.ID)
		s.Equal("482917", response.Code)
		s.True(response.Active)
		s.Equal("10:10 AM", response.ExpiresAtDisplay)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no active flow",
				commandsError:  errs.ErrNoActiveFlow,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No active flow",
			},
			{
				name:           "booking flow is open",
				commandsError:  commands.ErrWrongRedemptionVariant,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not a redemption flow",
			},
			{
				name:           "already redeemed",
				commandsError:  errs.ErrInvalidFlowState,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not in a state",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Redeem(gomock.Any(), s.sessionID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "session-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCloseFlow
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestCloseFlow() {
	url := "/redemptions/flow"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Close(gomock.Any(), s.sessionID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "session-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

// ================================================================================
// TestHistory
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestHistory() {
	url := "/redemptions"

	s.Run("success: returns active and expired partitions", func() {
		history := &queries.RedemptionHistoryView{
			Active:  []*queries.RedemptionView{redemptionView("RD-fresh", true)},
			Expired: []*queries.RedemptionView{redemptionView("RD-stale", false)},
		}
		s.mockQueries.EXPECT().History(gomock.Any(), s.sessionID).
			Return(history, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "session-token")

		var response resdto.RedemptionHistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Active, 1)
		s.Require().Len(response.Expired, 1)
		s.True(response.Active[0].Active)
		s.False(response.Expired[0].Active)
	})
}

// ================================================================================
// TestExportCode
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestExportCode() {
	redemptionID := "RD-1750000000000-xyz789abc"
	url := "/redemptions/" + redemptionID + "/code"

	s.Run("success: returns the bare code as text", func() {
		s.mockQueries.EXPECT().Code(gomock.Any(), s.sessionID, redemptionID).
			Return("482917", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "session-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("482917", rec.Body.String())
	})

	s.Run("error: 404 Not Found for an unknown redemption", func() {
		s.mockQueries.EXPECT().Code(gomock.Any(), s.sessionID, redemptionID).
			Return("", errs.ErrRedemptionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "session-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Redemption not found")
	})
}
