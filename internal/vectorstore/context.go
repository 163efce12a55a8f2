package vectorstore

import (
	"context"
	"fmt"
	"strings"

	"investbuddy/internal/domain"
	"investbuddy/internal/logger"
)

// LiveDataSource supplies current market metrics for retrieved ETFs.
// Implementations never fail; a degraded record carries a non-empty Err.
type LiveDataSource interface {
	GetLiveETFData(ctx context.Context, symbol string) domain.LiveMetrics
}

// ContextBuilder renders retrieval hits, enriched with live market data,
// into the context block injected into the chat prompt.
type ContextBuilder struct {
	index    *Index
	embedder Embedder
	live     LiveDataSource
}

func NewContextBuilder(index *Index, embedder Embedder, live LiveDataSource) *ContextBuilder {
	return &ContextBuilder{
		index:    index,
		embedder: embedder,
		live:     live,
	}
}

// BuildContext retrieves the k most relevant ETFs for the query and
// formats them for the model. No hits yields an empty string. With
// includeLive, each hit gets a market-data block; a per-symbol live
// failure drops only that block, never the hit itself.
func (b *ContextBuilder) BuildContext(ctx context.Context, query string, k int, includeLive bool) (string, error) {
	hits, err := b.index.Search(ctx, b.embedder, query, k)
	if err != nil {
		return "", err
	}
	if len(hits) == 0 {
		return "", nil
	}

	log := logger.FromContext(ctx)

	var sb strings.Builder
	if includeLive {
		sb.WriteString("# Relevant ETF Information (with LIVE market data):\n")
	} else {
		sb.WriteString("# Relevant ETF Information:\n")
	}
	for _, hit := range hits {
		sb.WriteString("\n")
		sb.WriteString(formatEntryBlock(hit.Entry))

		if !includeLive {
			continue
		}
		metrics := b.live.GetLiveETFData(ctx, hit.Symbol)
		if metrics.Err != "" {
			log.Warnw("live data unavailable for retrieved etf", "symbol", hit.Symbol, "error", metrics.Err)
			continue
		}
		sb.WriteString(formatLiveBlock(metrics))
	}

	return sb.String(), nil
}

// formatEntryBlock renders one ETF the way a beginner would want to read
// it, as opposed to the denser document text used for embedding.
func formatEntryBlock(e domain.KnowledgeEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s - %s**\n", e.Symbol, e.SimpleName)
	fmt.Fprintf(&sb, "- Category: %s\n", e.Category)
	fmt.Fprintf(&sb, "- Risk: %s\n", e.RiskLevel)
	fmt.Fprintf(&sb, "- Explanation: %s\n", e.BeginnerExplanation)
	fmt.Fprintf(&sb, "- Good for: %s\n", e.GoodFor)
	fmt.Fprintf(&sb, "- Why beginners love it: %s\n", e.WhyBeginnersLoveIt)
	fmt.Fprintf(&sb, "- Example: %s\n", e.RealWorldExample)
	return sb.String()
}

func formatLiveBlock(m domain.LiveMetrics) string {
	var sb strings.Builder
	sb.WriteString("LIVE Market Data (current):\n")
	fmt.Fprintf(&sb, "- Current Price: $%.2f\n", m.CurrentPrice)
	fmt.Fprintf(&sb, "- Day Change: %s\n", formatPercent(m.DayChange))
	fmt.Fprintf(&sb, "- Month Change: %s\n", formatPercent(m.MonthChange))
	fmt.Fprintf(&sb, "- Year-to-Date Change: %s\n", formatPercent(m.YTDChange))
	if m.TotalAssets > 0 {
		fmt.Fprintf(&sb, "- Total Assets: %s\n", formatAssets(m.TotalAssets))
	}
	if m.DividendYield > 0 {
		fmt.Fprintf(&sb, "- Dividend Yield: %.2f%%\n", m.DividendYield*100)
	}
	if m.FiftyTwoWeekHigh > 0 && m.FiftyTwoWeekLow > 0 {
		fmt.Fprintf(&sb, "- 52-Week Range: $%.2f - $%.2f\n", m.FiftyTwoWeekLow, m.FiftyTwoWeekHigh)
	}
	if m.MonthVolatility > 0 {
		fmt.Fprintf(&sb, "- 30-Day Volatility: %.2f%%\n", m.MonthVolatility)
	}
	return sb.String()
}

func formatPercent(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

func formatAssets(v int64) string {
	switch {
	case v >= 1_000_000_000:
		return fmt.Sprintf("$%.1fB", float64(v)/1_000_000_000)
	case v >= 1_000_000:
		return fmt.Sprintf("$%.1fM", float64(v)/1_000_000)
	default:
		return fmt.Sprintf("$%d", v)
	}
}
