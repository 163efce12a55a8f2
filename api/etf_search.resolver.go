package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type etfSearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// searchEtfs runs a semantic search over the knowledge base. This is the
// retrieval layer exposed directly, without the chat model on top.
func (m ApiHandler) searchEtfs(c *gin.Context) {
	var requestBody etfSearchRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Query == "" {
		returnErrorJsonCode(fmt.Errorf("query must not be empty"), c, 400)
		return
	}

	results, err := m.EmbeddingIndex.Search(c.Request.Context(), m.Embedder, requestBody.Query, requestBody.Limit)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"results": results,
		"count":   len(results),
	})
}
