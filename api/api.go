// Package api exposes the HTTP surface of the advisor.
package api

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"investbuddy/internal/logger"
	"investbuddy/internal/repository"
	"investbuddy/internal/service"
	"investbuddy/internal/vectorstore"
)

type ApiHandler struct {
	ChatService              service.ChatService
	MarketDataService        service.MarketDataService
	AdvisorService           service.AdvisorService
	SessionRepository        repository.SessionRepository
	RecommendationRepository repository.RecommendationRepository
	EmbeddingIndex           *vectorstore.Index
	Embedder                 vectorstore.Embedder
	JwtSecret                string
	Logger                   *zap.SugaredLogger
}

func (m ApiHandler) StartApi(port int) error {
	return m.buildRouter().Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) buildRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":     "InvestBuddy API is running!",
			"description": "AI-powered investment assistant for beginners",
			"version":     "1.0.0",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	router.POST("/session", m.createSession)
	router.POST("/chat", m.sessionMiddleware(), m.chat)
	router.POST("/webhook/chat", m.webhookChat)
	router.GET("/conversation", m.sessionMiddleware(), m.conversation)
	router.GET("/stock/:symbol", m.stock)
	router.GET("/etfs/recommended", m.recommendedEtfs)
	router.POST("/etfs/search", m.searchEtfs)
	router.POST("/investment/recommend", m.sessionMiddleware(), m.recommendInvestment)

	return router
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Errorw("request failed", "code", code, "error", err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestId := uuid.NewString()
	log := m.Logger.With(
		"requestId", requestId,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	c.Request = c.Request.WithContext(logger.AddToContext(c.Request.Context(), log))

	start := time.Now()
	c.Next()

	log.Infow("handled request",
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"clientIp", c.ClientIP(),
	)
}
