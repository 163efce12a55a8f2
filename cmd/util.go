package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"investbuddy/api"
	"investbuddy/internal/config"
	"investbuddy/internal/database"
	"investbuddy/internal/jobs"
	"investbuddy/internal/logger"
	"investbuddy/internal/repository"
	"investbuddy/internal/service"
	"investbuddy/internal/vectorstore"
)

type Dependencies struct {
	Config      *config.Config
	Db          *sql.DB
	ApiHandler  *api.ApiHandler
	QuoteWarmer *jobs.QuoteWarmer
	MarketData  service.MarketDataService
	Embedder    vectorstore.Embedder
	Index       *vectorstore.Index
}

func CloseDependencies(deps *Dependencies) {
	deps.QuoteWarmer.Stop()
	if err := deps.Db.Close(); err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*Dependencies, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	zapLogger := logger.New()
	ctx := logger.AddToContext(context.Background(), zapLogger)

	dbConn, err := database.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(cfg.OpenAIApiKey)
	if err != nil {
		return nil, err
	}
	embeddingRepository := repository.NewEmbeddingRepository(cfg.OpenAIApiKey, cfg.EmbeddingModel)
	yahooRepository := repository.NewYahooRepository()
	alphaVantageRepository := repository.NewAlphaVantageRepository(cfg.AlphaVantageApiKey)

	sessionRepository := repository.NewSessionRepository(dbConn)
	messageRepository := repository.NewMessageRepository(dbConn)
	recommendationRepository := repository.NewRecommendationRepository(dbConn)

	marketDataService := service.NewMarketDataService(
		[]repository.QuoteProvider{alphaVantageRepository, yahooRepository},
		yahooRepository,
	)
	advisorService := service.NewAdvisorService(marketDataService)

	index, err := vectorstore.NewIndex(ctx, embeddingRepository, cfg.EmbeddingModel, cfg.ArtifactPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build embedding index: %w", err)
	}
	contextBuilder := vectorstore.NewContextBuilder(index, embeddingRepository, marketDataService)

	chatService := service.NewChatService(
		gptRepository,
		messageRepository,
		sessionRepository,
		contextBuilder,
	)

	apiHandler := &api.ApiHandler{
		ChatService:              chatService,
		MarketDataService:        marketDataService,
		AdvisorService:           advisorService,
		SessionRepository:        sessionRepository,
		RecommendationRepository: recommendationRepository,
		EmbeddingIndex:           index,
		Embedder:                 embeddingRepository,
		JwtSecret:                cfg.JwtSecret,
		Logger:                   zapLogger,
	}

	return &Dependencies{
		Config:      cfg,
		Db:          dbConn,
		ApiHandler:  apiHandler,
		QuoteWarmer: jobs.NewQuoteWarmer(marketDataService),
		MarketData:  marketDataService,
		Embedder:    embeddingRepository,
		Index:       index,
	}, nil
}
