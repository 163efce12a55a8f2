package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type webhookChatRequest struct {
	Message string `json:"message"`
}

// webhookChat is the single-message integration endpoint: no session, no
// retrieval context, just the advisor prompt and one user message.
func (m ApiHandler) webhookChat(c *gin.Context) {
	var requestBody webhookChatRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Message == "" {
		returnErrorJsonCode(fmt.Errorf("message must not be empty"), c, 400)
		return
	}

	reply, err := m.ChatService.WebhookChat(c.Request.Context(), requestBody.Message)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"response": reply,
		"success":  true,
	})
}
