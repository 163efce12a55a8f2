package vectorstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"investbuddy/internal/domain"
	"investbuddy/internal/knowledge"
)

type fakeLiveSource struct {
	metrics map[string]domain.LiveMetrics
}

func (f *fakeLiveSource) GetLiveETFData(_ context.Context, symbol string) domain.LiveMetrics {
	if m, ok := f.metrics[symbol]; ok {
		return m
	}
	return domain.LiveMetrics{Symbol: symbol, Err: "no data"}
}

func Test_BuildContext(t *testing.T) {
	ctx := context.Background()
	embedder := &hashEmbedder{}
	idx, err := NewIndex(ctx, embedder, "test-model", filepath.Join(t.TempDir(), "emb.msgpack"))
	require.NoError(t, err)

	spy, _ := knowledge.Get("SPY")
	live := &fakeLiveSource{metrics: map[string]domain.LiveMetrics{
		"SPY": {
			Symbol:           "SPY",
			CurrentPrice:     512.34,
			DayChange:        0.42,
			MonthChange:      -1.1,
			YTDChange:        8.3,
			TotalAssets:      450_000_000_000,
			DividendYield:    0.0131,
			FiftyTwoWeekHigh: 520.1,
			FiftyTwoWeekLow:  410.5,
			MonthVolatility:  12.5,
		},
	}}

	builder := NewContextBuilder(idx, embedder, live)
	out, err := builder.BuildContext(ctx, knowledge.Document(spy), 2, true)
	require.NoError(t, err)

	require.Contains(t, out, "# Relevant ETF Information (with LIVE market data):")
	require.Contains(t, out, "**SPY - "+spy.SimpleName+"**")
	require.Contains(t, out, "- Risk: "+spy.RiskLevel)
	require.Contains(t, out, "- Why beginners love it: "+spy.WhyBeginnersLoveIt)
	require.Contains(t, out, "Current Price: $512.34")
	require.Contains(t, out, "Day Change: +0.42%")
	require.Contains(t, out, "Month Change: -1.10%")
	require.Contains(t, out, "Total Assets: $450.0B")
	require.Contains(t, out, "Dividend Yield: 1.31%")
	require.Contains(t, out, "52-Week Range: $410.50 - $520.10")
}

func Test_BuildContext_OmitsLiveBlockOnDegradedData(t *testing.T) {
	ctx := context.Background()
	embedder := &hashEmbedder{}
	idx, err := NewIndex(ctx, embedder, "test-model", filepath.Join(t.TempDir(), "emb.msgpack"))
	require.NoError(t, err)

	// no live metrics at all: every retrieved entry is degraded
	builder := NewContextBuilder(idx, embedder, &fakeLiveSource{})
	out, err := builder.BuildContext(ctx, "diversified index funds", 2, true)
	require.NoError(t, err)
	require.Contains(t, out, "- Category: ")
	require.NotContains(t, out, "LIVE Market Data (current):")
}

func Test_BuildContext_WithoutLiveData(t *testing.T) {
	ctx := context.Background()
	embedder := &hashEmbedder{}
	idx, err := NewIndex(ctx, embedder, "test-model", filepath.Join(t.TempDir(), "emb.msgpack"))
	require.NoError(t, err)

	spy, _ := knowledge.Get("SPY")
	calls := &fakeLiveSource{metrics: map[string]domain.LiveMetrics{
		"SPY": {Symbol: "SPY", CurrentPrice: 512.34},
	}}

	builder := NewContextBuilder(idx, embedder, calls)
	out, err := builder.BuildContext(ctx, knowledge.Document(spy), 2, false)
	require.NoError(t, err)
	require.Contains(t, out, "# Relevant ETF Information:\n")
	require.NotContains(t, out, "LIVE Market Data")
}

func Test_FormatAssets(t *testing.T) {
	require.Equal(t, "$1.5B", formatAssets(1_500_000_000))
	require.Equal(t, "$250.0M", formatAssets(250_000_000))
	require.Equal(t, "$999", formatAssets(999))
}
