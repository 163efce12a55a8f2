package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"investbuddy/internal/domain"
)

const alphaVantageBaseUrl = "https://www.alphavantage.co/query"

type alphaVantageRepositoryHandler struct {
	ApiKey     string
	BaseUrl    string
	HttpClient *http.Client
}

// NewAlphaVantageRepository returns the primary quote provider. The free
// tier allows 25 requests per day; rate-limit responses surface as
// ErrRateLimited so the chain falls back to Yahoo.
func NewAlphaVantageRepository(apiKey string) QuoteProvider {
	return alphaVantageRepositoryHandler{
		ApiKey:  apiKey,
		BaseUrl: alphaVantageBaseUrl,
		HttpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (h alphaVantageRepositoryHandler) Name() string {
	return "alpha_vantage"
}

type globalQuoteResponse struct {
	GlobalQuote map[string]string `json:"Global Quote"`
	Note        string            `json:"Note"`
	Information string            `json:"Information"`
}

func (h alphaVantageRepositoryHandler) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)
	params.Set("apikey", h.ApiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseUrl+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build alpha vantage request: %w", err)
	}

	res, err := h.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alpha vantage request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read alpha vantage response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alpha vantage returned status %d", res.StatusCode)
	}

	var parsed globalQuoteResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse alpha vantage response: %w", err)
	}
	// rate limits arrive as a 200 with a prose banner instead of data
	if parsed.Note != "" || parsed.Information != "" {
		return nil, ErrRateLimited
	}
	if len(parsed.GlobalQuote) == 0 {
		return nil, fmt.Errorf("alpha vantage returned no quote for %s", symbol)
	}

	price, err := strconv.ParseFloat(parsed.GlobalQuote["05. price"], 64)
	if err != nil {
		return nil, fmt.Errorf("alpha vantage returned unparseable price for %s: %w", symbol, err)
	}
	change, _ := strconv.ParseFloat(parsed.GlobalQuote["09. change"], 64)
	volume, _ := strconv.ParseInt(parsed.GlobalQuote["06. volume"], 10, 64)
	changePercent := strings.TrimSpace(parsed.GlobalQuote["10. change percent"])

	return &domain.Quote{
		Symbol:        strings.ToUpper(symbol),
		Price:         price,
		Change:        change,
		ChangePercent: changePercent,
		Volume:        volume,
		Timestamp:     time.Now().UTC(),
		Source:        h.Name(),
	}, nil
}
