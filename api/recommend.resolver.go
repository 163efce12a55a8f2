package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"investbuddy/internal/domain"
	"investbuddy/internal/logger"
)

func (m ApiHandler) recommendInvestment(c *gin.Context) {
	var profile domain.FinancialProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var err error
	if profile.Salary < 0 || profile.Savings < 0 || profile.MonthlyExpenses < 0 || profile.Debt < 0 {
		err = fmt.Errorf("financial amounts must not be negative")
	}
	if profile.MonthlyInvestment <= 0 {
		err = fmt.Errorf("monthly_investment must be positive")
	}
	if profile.TimeHorizonYears <= 0 {
		err = fmt.Errorf("time_horizon_years must be positive")
	}
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	ctx := c.Request.Context()
	rec := m.AdvisorService.GenerateRecommendation(ctx, profile)

	if sessionID := sessionIdFromContext(c); sessionID != "" {
		if err := m.SessionRepository.EnsureExists(ctx, sessionID); err != nil {
			logger.FromContext(ctx).Errorw("failed to ensure session", "sessionId", sessionID, "error", err)
		} else if err := m.RecommendationRepository.Add(ctx, sessionID, profile, rec); err != nil {
			// storage trouble should not block the advice itself
			logger.FromContext(ctx).Errorw("failed to store recommendation", "sessionId", sessionID, "error", err)
		}
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    rec,
	})
}
