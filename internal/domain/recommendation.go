package domain

// FinancialProfile is the request-scoped input to the recommendation
// engine. All monetary amounts are in AZN.
type FinancialProfile struct {
	Salary            float64 `json:"salary"`
	Savings           float64 `json:"savings"`
	MonthlyExpenses   float64 `json:"monthly_expenses"`
	Debt              float64 `json:"debt"`
	MonthlyInvestment float64 `json:"monthly_investment"`
	Goal              string  `json:"goal"`
	TimeHorizonYears  int     `json:"time_horizon_years"`
}

// SafetyDetails is the structured output of the pre-investment safety check.
type SafetyDetails struct {
	CanInvest           bool     `json:"can_invest"`
	EmergencyFundNeeded float64  `json:"emergency_fund_needed"`
	CurrentSavings      float64  `json:"current_savings"`
	DebtRatio           float64  `json:"debt_ratio"`
	PriorityActions     []string `json:"priority_actions"`
}

// Allocation is one leg of a recommended portfolio.
type Allocation struct {
	AssetType        string  `json:"asset_type"`
	ETF              string  `json:"etf"`
	ETFName          string  `json:"etf_name"`
	Percentage       int     `json:"percentage"`
	MonthlyAmountUSD float64 `json:"monthly_amount_usd"`
	MonthlyAmountAZN float64 `json:"monthly_amount_azn"`
	CurrentPrice     float64 `json:"current_price"`
	SharesPerMonth   float64 `json:"shares_per_month"`
	Description      string  `json:"description"`
}

// Portfolio is recomputed on every recommendation call, never stored
// authoritatively.
type Portfolio struct {
	RiskProfile          string       `json:"risk_profile"`
	TimeHorizonYears     int          `json:"time_horizon_years"`
	MonthlyInvestmentAZN float64      `json:"monthly_investment_azn"`
	MonthlyInvestmentUSD float64      `json:"monthly_investment_usd"`
	Allocations          []Allocation `json:"allocations"`
}

// Recommendation is the full engine output. Portfolio and
// RecommendationText carry a plan only when IsSafeToInvest is true; an
// unsafe profile gets the safety message and priority actions instead.
type Recommendation struct {
	IsSafeToInvest     bool          `json:"is_safe_to_invest"`
	SafetyMessage      string        `json:"safety_message"`
	SafetyDetails      SafetyDetails `json:"safety_details"`
	Portfolio          *Portfolio    `json:"portfolio,omitempty"`
	RecommendationText string        `json:"recommendation_text"`
}
