package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type sessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

func (m ApiHandler) createSession(c *gin.Context) {
	sessionID := uuid.NewString()

	if err := m.SessionRepository.Create(c.Request.Context(), sessionID); err != nil {
		returnErrorJson(err, c)
		return
	}

	token, err := issueSessionToken(m.JwtSecret, sessionID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, sessionResponse{
		SessionID: sessionID,
		Token:     token,
	})
}
