package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/piquette/finance-go/quote"

	"investbuddy/internal/domain"
)

// QuoteDetail is the richer snapshot Yahoo exposes beyond a plain quote.
type QuoteDetail struct {
	Symbol           string
	Price            float64
	PreviousClose    float64
	Change           float64
	ChangePercent    float64
	Volume           int64
	MarketCap        int64
	DividendYield    float64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
}

// YahooRepository is the fallback QuoteProvider plus the history source
// used for volatility and trailing-change calculations.
type YahooRepository interface {
	QuoteProvider
	GetQuoteDetail(ctx context.Context, symbol string) (*QuoteDetail, error)
	GetDailyCloses(ctx context.Context, symbol string, start time.Time) ([]domain.PricePoint, error)
}

type yahooRepositoryHandler struct{}

func NewYahooRepository() YahooRepository {
	return yahooRepositoryHandler{}
}

func (h yahooRepositoryHandler) Name() string {
	return "yahoo_finance"
}

func (h yahooRepositoryHandler) GetQuote(_ context.Context, symbol string) (*domain.Quote, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get yahoo quote for %s: %w", symbol, err)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return nil, fmt.Errorf("yahoo returned no quote for %s", symbol)
	}

	return &domain.Quote{
		Symbol:        strings.ToUpper(symbol),
		Price:         q.RegularMarketPrice,
		Change:        q.RegularMarketChange,
		ChangePercent: fmt.Sprintf("%.4f%%", q.RegularMarketChangePercent),
		Volume:        int64(q.RegularMarketVolume),
		Timestamp:     time.Now().UTC(),
		Source:        h.Name(),
	}, nil
}

func (h yahooRepositoryHandler) GetQuoteDetail(_ context.Context, symbol string) (*QuoteDetail, error) {
	q, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get yahoo quote for %s: %w", symbol, err)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return nil, fmt.Errorf("yahoo returned no quote for %s", symbol)
	}

	return &QuoteDetail{
		Symbol:           strings.ToUpper(symbol),
		Price:            q.RegularMarketPrice,
		PreviousClose:    q.RegularMarketPreviousClose,
		Change:           q.RegularMarketChange,
		ChangePercent:    q.RegularMarketChangePercent,
		Volume:           int64(q.RegularMarketVolume),
		MarketCap:        q.MarketCap,
		DividendYield:    q.TrailingAnnualDividendYield,
		FiftyTwoWeekHigh: q.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  q.FiftyTwoWeekLow,
	}, nil
}

func (h yahooRepositoryHandler) GetDailyCloses(_ context.Context, symbol string, start time.Time) ([]domain.PricePoint, error) {
	now := time.Now()
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	points := []domain.PricePoint{}
	for iter.Next() {
		points = append(points, domain.PricePoint{
			Date:  time.Unix(int64(iter.Bar().Timestamp), 0).UTC(),
			Close: iter.Bar().AdjClose.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get price history for %s: %w", symbol, err)
	}

	return points, nil
}
