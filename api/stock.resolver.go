package api

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"investbuddy/internal/service"
)

func (m ApiHandler) stock(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))

	quote, err := m.MarketDataService.GetStockPrice(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, service.ErrQuoteNotFound) {
			returnErrorJsonCode(err, c, 404)
			return
		}
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    quote,
	})
}
