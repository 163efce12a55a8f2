// Package jobs holds background schedules that run alongside the API.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"investbuddy/internal/knowledge"
	"investbuddy/internal/logger"
	"investbuddy/internal/service"
)

// QuoteWarmer refreshes live data for the recommended ETF shortlist on
// the same cadence as the cache TTL, so interactive requests rarely pay
// for an upstream fetch.
type QuoteWarmer struct {
	cron       *cron.Cron
	marketData service.MarketDataService
}

func NewQuoteWarmer(marketData service.MarketDataService) *QuoteWarmer {
	return &QuoteWarmer{
		cron:       cron.New(),
		marketData: marketData,
	}
}

func (w *QuoteWarmer) Start() error {
	if _, err := w.cron.AddFunc("@every 15m", w.refresh); err != nil {
		return err
	}
	w.cron.Start()
	// warm once immediately so the first request after boot is fast
	go w.refresh()
	return nil
}

func (w *QuoteWarmer) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = logger.AddToContext(ctx, logger.New())

	w.marketData.PurgeCache()
	etfs := w.marketData.GetRecommendedETFs(ctx)

	// chat context reads the live-metrics cache, warm that side too
	failed := 0
	for _, s := range knowledge.RecommendedSymbols() {
		if m := w.marketData.GetLiveETFData(ctx, s); m.Err != "" {
			failed++
		}
	}
	logger.FromContext(ctx).Infow("refreshed recommended etf data",
		"quotes", len(etfs), "liveDataFailed", failed)
}

func (w *QuoteWarmer) Stop() {
	w.cron.Stop()
}
