package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/montanaflynn/stats"

	"investbuddy/internal/domain"
	"investbuddy/internal/knowledge"
	"investbuddy/internal/logger"
	"investbuddy/internal/repository"
)

// ErrQuoteNotFound means every provider in the chain failed for a symbol.
var ErrQuoteNotFound = errors.New("no quote available for symbol")

const (
	quoteCacheTtl = 15 * time.Minute
	liveCacheTtl  = 15 * time.Minute
)

type MarketDataService interface {
	// GetStockPrice returns a cached or freshly fetched quote.
	GetStockPrice(ctx context.Context, symbol string) (*domain.Quote, error)
	// GetLiveETFData never fails; provider errors produce a degraded
	// record with Err set.
	GetLiveETFData(ctx context.Context, symbol string) domain.LiveMetrics
	// GetRecommendedETFs returns quotes for the curated shortlist with
	// knowledge-base names attached; symbols whose providers all fail
	// are omitted.
	GetRecommendedETFs(ctx context.Context) []domain.RecommendedETF
	PurgeCache()
}

type cachedQuote struct {
	quote   domain.Quote
	fetched time.Time
}

type cachedMetrics struct {
	metrics domain.LiveMetrics
	fetched time.Time
}

type marketDataServiceHandler struct {
	Providers []repository.QuoteProvider
	Yahoo     repository.YahooRepository

	quoteMu    sync.Mutex
	quoteCache map[string]cachedQuote
	liveMu     sync.Mutex
	liveCache  map[string]cachedMetrics

	now func() time.Time
}

// NewMarketDataService wires the provider chain: providers are tried in
// order and the first success wins.
func NewMarketDataService(providers []repository.QuoteProvider, yahoo repository.YahooRepository) MarketDataService {
	return &marketDataServiceHandler{
		Providers:  providers,
		Yahoo:      yahoo,
		quoteCache: map[string]cachedQuote{},
		liveCache:  map[string]cachedMetrics{},
		now:        time.Now,
	}
}

func (h *marketDataServiceHandler) GetStockPrice(ctx context.Context, symbol string) (*domain.Quote, error) {
	h.quoteMu.Lock()
	if c, ok := h.quoteCache[symbol]; ok && h.now().Sub(c.fetched) < quoteCacheTtl {
		h.quoteMu.Unlock()
		q := c.quote
		return &q, nil
	}
	h.quoteMu.Unlock()

	log := logger.FromContext(ctx)

	var lastErr error
	for _, p := range h.Providers {
		q, err := p.GetQuote(ctx, symbol)
		if err != nil {
			if errors.Is(err, repository.ErrRateLimited) {
				log.Warnw("quote provider rate limited", "provider", p.Name(), "symbol", symbol)
			} else {
				log.Warnw("quote provider failed", "provider", p.Name(), "symbol", symbol, "error", err)
			}
			lastErr = err
			continue
		}

		h.quoteMu.Lock()
		h.quoteCache[symbol] = cachedQuote{quote: *q, fetched: h.now()}
		h.quoteMu.Unlock()
		return q, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrQuoteNotFound, symbol, lastErr)
	}
	return nil, fmt.Errorf("%w: %s", ErrQuoteNotFound, symbol)
}

func (h *marketDataServiceHandler) GetLiveETFData(ctx context.Context, symbol string) domain.LiveMetrics {
	h.liveMu.Lock()
	if c, ok := h.liveCache[symbol]; ok && h.now().Sub(c.fetched) < liveCacheTtl {
		h.liveMu.Unlock()
		return c.metrics
	}
	h.liveMu.Unlock()

	metrics := h.fetchLiveMetrics(ctx, symbol)

	// degraded records are never cached, so a transient upstream failure
	// does not stick for the full ttl
	if metrics.Err == "" {
		h.liveMu.Lock()
		h.liveCache[symbol] = cachedMetrics{metrics: metrics, fetched: h.now()}
		h.liveMu.Unlock()
	}
	return metrics
}

func (h *marketDataServiceHandler) fetchLiveMetrics(ctx context.Context, symbol string) domain.LiveMetrics {
	now := h.now().UTC()
	metrics := domain.LiveMetrics{
		Symbol:      symbol,
		LastUpdated: now,
	}
	if e, ok := knowledge.Get(symbol); ok {
		metrics.ExpenseRatio = e.ExpenseRatio
	}

	detail, err := h.Yahoo.GetQuoteDetail(ctx, symbol)
	if err != nil {
		metrics.Err = err.Error()
		return metrics
	}
	metrics.CurrentPrice = detail.Price
	metrics.PreviousClose = detail.PreviousClose
	metrics.DayChange = detail.ChangePercent
	metrics.Volume = detail.Volume
	metrics.TotalAssets = detail.MarketCap
	metrics.DividendYield = detail.DividendYield
	metrics.FiftyTwoWeekHigh = detail.FiftyTwoWeekHigh
	metrics.FiftyTwoWeekLow = detail.FiftyTwoWeekLow

	// history back to the start of the year covers both the trailing
	// month and the year-to-date window
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	history, err := h.Yahoo.GetDailyCloses(ctx, symbol, yearStart)
	if err != nil || len(history) == 0 {
		// quote-only record is still useful
		logger.FromContext(ctx).Warnw("price history unavailable", "symbol", symbol, "error", err)
		return metrics
	}

	last := history[len(history)-1].Close
	metrics.YTDChange = percentChange(history[0].Close, last)

	monthAgo := now.AddDate(0, -1, 0)
	monthWindow := []float64{}
	for _, p := range history {
		if !p.Date.Before(monthAgo) {
			monthWindow = append(monthWindow, p.Close)
		}
	}
	if len(monthWindow) >= 2 {
		metrics.MonthChange = percentChange(monthWindow[0], last)
		metrics.MonthVolatility = annualizedVolatility(monthWindow)
	}

	return metrics
}

func (h *marketDataServiceHandler) GetRecommendedETFs(ctx context.Context) []domain.RecommendedETF {
	symbols := knowledge.RecommendedSymbols()
	out := make([]domain.RecommendedETF, 0, len(symbols))
	for _, s := range symbols {
		q, err := h.GetStockPrice(ctx, s)
		if err != nil {
			logger.FromContext(ctx).Warnw("recommended etf unavailable", "symbol", s, "error", err)
			continue
		}
		etf := domain.RecommendedETF{
			Symbol:        s,
			Name:          s,
			Price:         q.Price,
			ChangePercent: q.ChangePercent,
			Source:        q.Source,
		}
		if e, ok := knowledge.Get(s); ok {
			etf.Name = e.Name
			etf.SimpleName = e.SimpleName
		}
		out = append(out, etf)
	}
	return out
}

func (h *marketDataServiceHandler) PurgeCache() {
	h.quoteMu.Lock()
	h.quoteCache = map[string]cachedQuote{}
	h.quoteMu.Unlock()

	h.liveMu.Lock()
	h.liveCache = map[string]cachedMetrics{}
	h.liveMu.Unlock()
}

func percentChange(from, to float64) float64 {
	if from == 0 {
		return 0
	}
	return (to - from) / from * 100
}

// annualizedVolatility is the standard deviation of daily returns scaled
// to a yearly horizon, in percent.
func annualizedVolatility(closes []float64) float64 {
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, closes[i]/closes[i-1]-1)
	}
	if len(returns) < 2 {
		return 0
	}
	sd, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0
	}
	return sd * math.Sqrt(252) * 100
}
