package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"investbuddy/internal/domain"
)

type StoredRecommendation struct {
	ID        int64
	SessionID string
	Profile   domain.FinancialProfile
	Result    domain.Recommendation
	CreatedAt time.Time
}

type RecommendationRepository interface {
	Add(ctx context.Context, sessionID string, profile domain.FinancialProfile, rec domain.Recommendation) error
	ListBySession(ctx context.Context, sessionID string) ([]StoredRecommendation, error)
}

type recommendationRepositoryHandler struct {
	Db *sql.DB
}

func NewRecommendationRepository(db *sql.DB) RecommendationRepository {
	return recommendationRepositoryHandler{
		Db: db,
	}
}

func (h recommendationRepositoryHandler) Add(ctx context.Context, sessionID string, profile domain.FinancialProfile, rec domain.Recommendation) error {
	var portfolioJson []byte
	if rec.Portfolio != nil {
		var err error
		portfolioJson, err = json.Marshal(rec.Portfolio)
		if err != nil {
			return fmt.Errorf("failed to marshal portfolio: %w", err)
		}
	}

	safe := 0
	if rec.IsSafeToInvest {
		safe = 1
	}

	_, err := h.Db.ExecContext(ctx,
		`INSERT INTO recommendations (
			session_id, salary, savings, monthly_expenses, debt,
			monthly_investment, goal, time_horizon_years,
			is_safe_to_invest, portfolio, recommendation_text
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID,
		profile.Salary,
		profile.Savings,
		profile.MonthlyExpenses,
		profile.Debt,
		profile.MonthlyInvestment,
		profile.Goal,
		profile.TimeHorizonYears,
		safe,
		nullableString(portfolioJson),
		rec.RecommendationText,
	)
	if err != nil {
		return fmt.Errorf("failed to store recommendation for session %s: %w", sessionID, err)
	}
	return nil
}

func (h recommendationRepositoryHandler) ListBySession(ctx context.Context, sessionID string) ([]StoredRecommendation, error) {
	rows, err := h.Db.QueryContext(ctx,
		`SELECT id, session_id, salary, savings, monthly_expenses, debt,
			monthly_investment, goal, time_horizon_years,
			is_safe_to_invest, portfolio, recommendation_text, created_at
		FROM recommendations WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	out := []StoredRecommendation{}
	for rows.Next() {
		var (
			r             StoredRecommendation
			safe          int
			portfolioJson sql.NullString
			recText       sql.NullString
		)
		if err := rows.Scan(
			&r.ID, &r.SessionID,
			&r.Profile.Salary, &r.Profile.Savings, &r.Profile.MonthlyExpenses,
			&r.Profile.Debt, &r.Profile.MonthlyInvestment, &r.Profile.Goal,
			&r.Profile.TimeHorizonYears,
			&safe, &portfolioJson, &recText, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation row: %w", err)
		}

		r.Result.IsSafeToInvest = safe == 1
		r.Result.RecommendationText = recText.String
		if portfolioJson.Valid && portfolioJson.String != "" {
			var p domain.Portfolio
			if err := json.Unmarshal([]byte(portfolioJson.String), &p); err != nil {
				return nil, fmt.Errorf("failed to unmarshal stored portfolio: %w", err)
			}
			r.Result.Portfolio = &p
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recommendation rows: %w", err)
	}

	return out, nil
}

func nullableString(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
