package api

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"investbuddy/internal/database"
	"investbuddy/internal/domain"
	"investbuddy/internal/knowledge"
	"investbuddy/internal/repository"
	"investbuddy/internal/service"
	"investbuddy/internal/vectorstore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubChatService struct {
	reply string
}

func (s stubChatService) Chat(_ context.Context, _ string, _ []domain.ChatMessage) (string, error) {
	return s.reply, nil
}

func (s stubChatService) WebhookChat(_ context.Context, _ string) (string, error) {
	return s.reply, nil
}

func (s stubChatService) History(_ context.Context, _ string) ([]domain.StoredMessage, error) {
	return []domain.StoredMessage{{Role: "user", Content: "hi"}}, nil
}

type stubMarketData struct {
	prices map[string]float64
}

func (s stubMarketData) GetStockPrice(_ context.Context, symbol string) (*domain.Quote, error) {
	if p, ok := s.prices[symbol]; ok {
		return &domain.Quote{Symbol: symbol, Price: p, Source: "stub", Timestamp: time.Now().UTC()}, nil
	}
	return nil, service.ErrQuoteNotFound
}

func (s stubMarketData) GetLiveETFData(_ context.Context, symbol string) domain.LiveMetrics {
	if p, ok := s.prices[symbol]; ok {
		return domain.LiveMetrics{Symbol: symbol, CurrentPrice: p}
	}
	return domain.LiveMetrics{Symbol: symbol, Err: "no data"}
}

func (s stubMarketData) GetRecommendedETFs(ctx context.Context) []domain.RecommendedETF {
	out := []domain.RecommendedETF{}
	for _, sym := range []string{"SPY", "VOO", "BND", "AGG"} {
		q, err := s.GetStockPrice(ctx, sym)
		if err != nil {
			continue
		}
		e, _ := knowledge.Get(sym)
		out = append(out, domain.RecommendedETF{
			Symbol:        sym,
			Name:          e.Name,
			SimpleName:    e.SimpleName,
			Price:         q.Price,
			ChangePercent: q.ChangePercent,
			Source:        q.Source,
		})
	}
	return out
}

func (s stubMarketData) PurgeCache() {}

type apiEmbedder struct{}

func (apiEmbedder) Embed(_ context.Context, inputs []string) ([][]float64, error) {
	out := make([][]float64, len(inputs))
	for i, in := range inputs {
		sum := sha256.Sum256([]byte(in))
		vec := make([]float64, 8)
		for j := range vec {
			vec[j] = float64(sum[j]) + 1
		}
		out[i] = vec
	}
	return out, nil
}

func newTestHandler(t *testing.T) ApiHandler {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	embedder := apiEmbedder{}
	idx, err := vectorstore.NewIndex(context.Background(), embedder, "test-model",
		filepath.Join(t.TempDir(), "emb.msgpack"))
	require.NoError(t, err)

	marketData := stubMarketData{prices: map[string]float64{
		"SPY": 500, "VOO": 460, "BND": 80, "AGG": 95,
	}}

	return ApiHandler{
		ChatService:              stubChatService{reply: "Hello from InvestBuddy!"},
		MarketDataService:        marketData,
		AdvisorService:           service.NewAdvisorService(marketData),
		SessionRepository:        repository.NewSessionRepository(db),
		RecommendationRepository: repository.NewRecommendationRepository(db),
		EmbeddingIndex:           idx,
		Embedder:                 embedder,
		JwtSecret:                "test-secret",
		Logger:                   zap.NewNop().Sugar(),
	}
}

func doRequest(t *testing.T, h ApiHandler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.buildRouter().ServeHTTP(w, req)
	return w
}

func Test_Root(t *testing.T) {
	w := doRequest(t, newTestHandler(t), "GET", "/", "", nil)
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), "InvestBuddy API is running!")
}

func Test_Health(t *testing.T) {
	w := doRequest(t, newTestHandler(t), "GET", "/health", "", nil)
	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func Test_CreateSession_AndUseToken(t *testing.T) {
	h := newTestHandler(t)

	w := doRequest(t, h, "POST", "/session", "", nil)
	require.Equal(t, 200, w.Code)

	var res sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.SessionID)
	require.NotEmpty(t, res.Token)

	sessionID, err := parseSessionToken(h.JwtSecret, res.Token)
	require.NoError(t, err)
	require.Equal(t, res.SessionID, sessionID)

	// token works against an authenticated route
	w = doRequest(t, h, "GET", "/conversation", "", map[string]string{
		"Authorization": "Bearer " + res.Token,
	})
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), `"count":1`)
}

func Test_Conversation_RequiresToken(t *testing.T) {
	w := doRequest(t, newTestHandler(t), "GET", "/conversation", "", nil)
	require.Equal(t, 401, w.Code)
}

func Test_SessionMiddleware_RejectsBadToken(t *testing.T) {
	w := doRequest(t, newTestHandler(t), "POST", "/chat",
		`{"messages":[{"role":"user","content":"hi"}]}`,
		map[string]string{"Authorization": "Bearer not-a-jwt"})
	require.Equal(t, 401, w.Code)
}

func Test_Chat(t *testing.T) {
	w := doRequest(t, newTestHandler(t), "POST", "/chat",
		`{"messages":[{"role":"user","content":"how do I start investing?"}]}`, nil)
	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `{"message":"Hello from InvestBuddy!"}`, w.Body.String())
}

func Test_Chat_EmptyMessages(t *testing.T) {
	w := doRequest(t, newTestHandler(t), "POST", "/chat", `{"messages":[]}`, nil)
	require.Equal(t, 400, w.Code)
}

func Test_WebhookChat(t *testing.T) {
	h := newTestHandler(t)

	w := doRequest(t, h, "POST", "/webhook/chat", `{"message":"what is an ETF?"}`, nil)
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)

	w = doRequest(t, h, "POST", "/webhook/chat", `{"message":""}`, nil)
	require.Equal(t, 400, w.Code)
}

func Test_Stock(t *testing.T) {
	h := newTestHandler(t)

	w := doRequest(t, h, "GET", "/stock/spy", "", nil)
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), `"symbol":"SPY"`)

	w = doRequest(t, h, "GET", "/stock/ZZZZ", "", nil)
	require.Equal(t, 404, w.Code)
}

func Test_RecommendedEtfs(t *testing.T) {
	w := doRequest(t, newTestHandler(t), "GET", "/etfs/recommended", "", nil)
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), `"count":4`)
	require.Contains(t, w.Body.String(), `"SPY"`)

	spy, _ := knowledge.Get("SPY")
	require.Contains(t, w.Body.String(), spy.Name, "entries carry the knowledge-base display name")
	require.Contains(t, w.Body.String(), `"source":"stub"`)
}

func Test_SearchEtfs(t *testing.T) {
	h := newTestHandler(t)

	w := doRequest(t, h, "POST", "/etfs/search", `{"query":"safe bonds for beginners","limit":2}`, nil)
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), `"count":2`)
	require.Contains(t, w.Body.String(), "relevanceScore")

	w = doRequest(t, h, "POST", "/etfs/search", `{"query":""}`, nil)
	require.Equal(t, 400, w.Code)
}

func Test_RecommendInvestment(t *testing.T) {
	h := newTestHandler(t)

	body := `{
		"salary": 3000, "savings": 10000, "monthly_expenses": 1500,
		"debt": 0, "monthly_investment": 500, "goal": "house",
		"time_horizon_years": 7
	}`
	w := doRequest(t, h, "POST", "/investment/recommend", body, nil)
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), `"is_safe_to_invest":true`)
	require.Contains(t, w.Body.String(), `"risk_profile":"aggressive"`)
}

func Test_RecommendInvestment_PersistsWithSession(t *testing.T) {
	h := newTestHandler(t)

	w := doRequest(t, h, "POST", "/session", "", nil)
	var ses sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ses))

	body := `{
		"salary": 3000, "savings": 10000, "monthly_expenses": 1500,
		"debt": 0, "monthly_investment": 500, "goal": "house",
		"time_horizon_years": 7
	}`
	w = doRequest(t, h, "POST", "/investment/recommend", body, map[string]string{
		"Authorization": "Bearer " + ses.Token,
	})
	require.Equal(t, 200, w.Code)

	stored, err := h.RecommendationRepository.ListBySession(context.Background(), ses.SessionID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.True(t, stored[0].Result.IsSafeToInvest)
}

func Test_RecommendInvestment_Validation(t *testing.T) {
	h := newTestHandler(t)

	cases := []string{
		`{"salary": -1, "savings": 0, "monthly_expenses": 0, "monthly_investment": 100, "goal": "x", "time_horizon_years": 5}`,
		`{"salary": 100, "savings": 0, "monthly_expenses": 0, "monthly_investment": 0, "goal": "x", "time_horizon_years": 5}`,
		`{"salary": 100, "savings": 0, "monthly_expenses": 0, "monthly_investment": 100, "goal": "x", "time_horizon_years": 0}`,
	}
	for _, body := range cases {
		w := doRequest(t, h, "POST", "/investment/recommend", body, nil)
		require.Equal(t, 400, w.Code, body)
	}
}
