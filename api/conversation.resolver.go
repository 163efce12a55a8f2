package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) conversation(c *gin.Context) {
	sessionID := sessionIdFromContext(c)
	if sessionID == "" {
		returnErrorJsonCode(fmt.Errorf("a session token is required to read conversation history"), c, 401)
		return
	}

	history, err := m.ChatService.History(c.Request.Context(), sessionID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"success":  true,
		"messages": history,
		"count":    len(history),
	})
}
