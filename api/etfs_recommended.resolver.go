package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) recommendedEtfs(c *gin.Context) {
	etfs := m.MarketDataService.GetRecommendedETFs(c.Request.Context())

	c.JSON(200, gin.H{
		"success": true,
		"data":    etfs,
		"count":   len(etfs),
	})
}
