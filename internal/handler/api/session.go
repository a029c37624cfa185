package api

import (
	"net/http"

	resdto "brewzzy/internal/handler/dto/response"
	"brewzzy/internal/handler/httperr"
	"brewzzy/internal/pkg/config"
	"brewzzy/internal/pkg/cookie"
	"brewzzy/internal/pkg/session"
	"brewzzy/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionCommands commands.SessionCommands
	tokens          *session.Service
	cookieCfg       config.CookieConfig
}

func NewSessionHandler(
	sessionCommands commands.SessionCommands,
	tokens *session.Service,
	cookieCfg config.CookieConfig,
) *SessionHandler {
	return &SessionHandler{
		sessionCommands: sessionCommands,
		tokens:          tokens,
		cookieCfg:       cookieCfg,
	}
}

// @Summary Start session
// @Description Create a new browsing session and set its token cookie
// @Tags sessions
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Failure 500 {object} map[string]string
// @Router /session [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	result, err := h.sessionCommands.StartSession(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, h.tokens.TokenDuration())

	c.JSON(http.StatusCreated, resdto.SessionResponse{
		SessionID: result.SessionID,
		Token:     result.Token,
	})
}
