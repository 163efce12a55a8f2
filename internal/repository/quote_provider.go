package repository

import (
	"context"
	"errors"

	"investbuddy/internal/domain"
)

// ErrRateLimited signals the provider declined the request because of
// usage limits, not because the symbol is bad. Callers should try the
// next provider in the chain.
var ErrRateLimited = errors.New("quote provider rate limited")

// QuoteProvider fetches a live price snapshot for a symbol. Providers are
// tried in order; any error falls through to the next one.
type QuoteProvider interface {
	Name() string
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)
}
