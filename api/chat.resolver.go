package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"investbuddy/internal/domain"
)

type chatRequest struct {
	Messages []domain.ChatMessage `json:"messages"`
}

type chatResponse struct {
	Message string `json:"message"`
}

func (m ApiHandler) chat(c *gin.Context) {
	var requestBody chatRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if len(requestBody.Messages) == 0 {
		returnErrorJsonCode(fmt.Errorf("messages must not be empty"), c, 400)
		return
	}

	reply, err := m.ChatService.Chat(c.Request.Context(), sessionIdFromContext(c), requestBody.Messages)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, chatResponse{Message: reply})
}
