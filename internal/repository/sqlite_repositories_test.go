package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"investbuddy/internal/database"
	"investbuddy/internal/domain"
)

func newTestDb(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func Test_SessionRepository(t *testing.T) {
	db := newTestDb(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	sessionID := uuid.NewString()

	got, err := repo.Get(ctx, sessionID)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, repo.Create(ctx, sessionID))

	got, err = repo.Get(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, sessionID, got.SessionID)
	require.False(t, got.CreatedAt.IsZero())

	// duplicate create violates the unique constraint
	require.Error(t, repo.Create(ctx, sessionID))

	// ensure is idempotent
	require.NoError(t, repo.EnsureExists(ctx, sessionID))
	require.NoError(t, repo.EnsureExists(ctx, uuid.NewString()))
}

func Test_MessageRepository(t *testing.T) {
	db := newTestDb(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	sessionID := uuid.NewString()

	msgs, err := repo.List(ctx, sessionID, 0)
	require.NoError(t, err)
	require.Empty(t, msgs)

	require.NoError(t, repo.Add(ctx, sessionID, "user", "hello"))
	require.NoError(t, repo.Add(ctx, sessionID, "assistant", "hi, how can I help?"))
	require.NoError(t, repo.Add(ctx, sessionID, "user", "what is an ETF?"))
	require.NoError(t, repo.Add(ctx, "other-session", "user", "unrelated"))

	msgs, err = repo.List(ctx, sessionID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	require.Equal(t, "user", msgs[0].Role)
	require.Equal(t, "hello", msgs[0].Content)
	require.Equal(t, "what is an ETF?", msgs[2].Content)

	// limit keeps the newest messages, in chronological order
	msgs, err = repo.List(ctx, sessionID, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "hi, how can I help?", msgs[0].Content)
	require.Equal(t, "what is an ETF?", msgs[1].Content)
}

func Test_RecommendationRepository(t *testing.T) {
	db := newTestDb(t)
	repo := NewRecommendationRepository(db)
	ctx := context.Background()

	sessionID := uuid.NewString()
	profile := domain.FinancialProfile{
		Salary:            2000,
		Savings:           5000,
		MonthlyExpenses:   1000,
		Debt:              0,
		MonthlyInvestment: 300,
		Goal:              "retirement",
		TimeHorizonYears:  10,
	}
	rec := domain.Recommendation{
		IsSafeToInvest: true,
		Portfolio: &domain.Portfolio{
			RiskProfile:          "aggressive",
			TimeHorizonYears:     10,
			MonthlyInvestmentAZN: 300,
			MonthlyInvestmentUSD: 176.47,
			Allocations: []domain.Allocation{
				{AssetType: "stocks", ETF: "SPY", Percentage: 80},
				{AssetType: "bonds", ETF: "BND", Percentage: 20},
			},
		},
		RecommendationText: "Invest 300 AZN monthly.",
	}

	require.NoError(t, repo.Add(ctx, sessionID, profile, rec))

	// not-safe recommendations carry no portfolio
	require.NoError(t, repo.Add(ctx, sessionID, profile, domain.Recommendation{
		IsSafeToInvest:     false,
		RecommendationText: "Build your emergency fund first.",
	}))

	stored, err := repo.ListBySession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	require.True(t, stored[0].Result.IsSafeToInvest)
	require.Empty(t, cmp.Diff(profile, stored[0].Profile))
	require.NotNil(t, stored[0].Result.Portfolio)
	require.Equal(t, "aggressive", stored[0].Result.Portfolio.RiskProfile)
	require.Len(t, stored[0].Result.Portfolio.Allocations, 2)
	require.Equal(t, "SPY", stored[0].Result.Portfolio.Allocations[0].ETF)

	require.False(t, stored[1].Result.IsSafeToInvest)
	require.Nil(t, stored[1].Result.Portfolio)
	require.Equal(t, "Build your emergency fund first.", stored[1].Result.RecommendationText)

	other, err := repo.ListBySession(ctx, "missing")
	require.NoError(t, err)
	require.Empty(t, other)
}
