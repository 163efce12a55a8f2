package domain

import "time"

// Quote is a point-in-time price snapshot for one symbol. Source records
// which upstream provider produced it.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent string    `json:"change_percent"`
	Volume        int64     `json:"volume"`
	Timestamp     time.Time `json:"timestamp"`
	Source        string    `json:"source"`
}

// LiveMetrics is the richer per-symbol snapshot used to enrich chat context.
// A failed fetch produces a degraded record with Err set and a zero price;
// callers treat that as a valid value, not an error.
// RecommendedETF is one entry of the curated shortlist: the latest quote
// with the knowledge-base display name attached.
type RecommendedETF struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	SimpleName    string  `json:"simple_name"`
	Price         float64 `json:"price"`
	ChangePercent string  `json:"change_percent"`
	Source        string  `json:"source"`
}

// PricePoint is one day of adjusted close history.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

type LiveMetrics struct {
	Symbol           string    `json:"symbol"`
	CurrentPrice     float64   `json:"current_price"`
	PreviousClose    float64   `json:"previous_close"`
	DayChange        float64   `json:"day_change"`
	MonthChange      float64   `json:"month_change"`
	YTDChange        float64   `json:"ytd_change"`
	Volume           int64     `json:"volume"`
	TotalAssets      int64     `json:"total_assets"`
	ExpenseRatio     string    `json:"expense_ratio"`
	DividendYield    float64   `json:"dividend_yield"`
	FiftyTwoWeekHigh float64   `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  float64   `json:"fifty_two_week_low"`
	MonthVolatility  float64   `json:"month_volatility"`
	Err              string    `json:"error,omitempty"`
	LastUpdated      time.Time `json:"last_updated"`
}
