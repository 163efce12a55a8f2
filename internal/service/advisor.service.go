package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"investbuddy/internal/domain"
	"investbuddy/internal/logger"
)

// AznToUsd is the fixed conversion rate: 1 USD is roughly 1.7 AZN.
const AznToUsd = 1.7

const (
	emergencyFundMonths = 3
	highDebtThreshold   = 0.3
)

type riskProfile struct {
	Name           string
	StocksPercent  int
	BondsPercent   int
	Description    string
	ExpectedReturn float64
}

var riskProfiles = map[string]riskProfile{
	"conservative": {
		Name:           "conservative",
		StocksPercent:  20,
		BondsPercent:   80,
		Description:    "Very safe, minimal risk, lower returns",
		ExpectedReturn: 0.04,
	},
	"moderate": {
		Name:           "moderate",
		StocksPercent:  60,
		BondsPercent:   40,
		Description:    "Balanced risk and returns",
		ExpectedReturn: 0.07,
	},
	"aggressive": {
		Name:           "aggressive",
		StocksPercent:  80,
		BondsPercent:   20,
		Description:    "Higher risk, higher potential returns",
		ExpectedReturn: 0.09,
	},
}

const (
	stockEtf = "SPY"
	bondEtf  = "BND"
)

type AdvisorService interface {
	SafetyCheck(profile domain.FinancialProfile) (bool, string, domain.SafetyDetails)
	DetermineRiskProfile(timeHorizonYears int) string
	CalculatePortfolio(ctx context.Context, monthlyInvestmentAzn float64, timeHorizonYears int) *domain.Portfolio
	GenerateRecommendation(ctx context.Context, profile domain.FinancialProfile) domain.Recommendation
}

type advisorServiceHandler struct {
	MarketData MarketDataService
}

func NewAdvisorService(marketData MarketDataService) AdvisorService {
	return advisorServiceHandler{
		MarketData: marketData,
	}
}

// SafetyCheck decides whether the user should invest at all. High debt
// and a thin emergency fund each block investing on their own.
func (h advisorServiceHandler) SafetyCheck(p domain.FinancialProfile) (bool, string, domain.SafetyDetails) {
	emergencyFundNeeded := p.MonthlyExpenses * emergencyFundMonths

	debtRatio := 0.0
	if p.Salary > 0 {
		debtRatio = p.Debt / p.Salary
	}

	details := domain.SafetyDetails{
		CanInvest:           true,
		EmergencyFundNeeded: emergencyFundNeeded,
		CurrentSavings:      p.Savings,
		DebtRatio:           debtRatio,
		PriorityActions:     []string{},
	}

	if debtRatio > highDebtThreshold {
		details.CanInvest = false
		details.PriorityActions = append(details.PriorityActions,
			fmt.Sprintf("Pay down debt first. Your debt is %.1f%% of monthly income.", debtRatio*100),
			fmt.Sprintf("Focus on paying at least %.2f AZN/month towards debt.", p.Debt*0.1),
		)
	}

	if p.Savings < emergencyFundNeeded {
		details.CanInvest = false
		gap := emergencyFundNeeded - p.Savings
		details.PriorityActions = append(details.PriorityActions,
			fmt.Sprintf("Build emergency fund first. You need %.2f AZN more.", gap),
			fmt.Sprintf("Save %.2f AZN/month for 6 months to reach 3-month safety net.", gap/6),
		)
	}

	if p.Savings < p.MonthlyExpenses && debtRatio <= highDebtThreshold {
		details.PriorityActions = append(details.PriorityActions,
			"Consider saving 1 more month of expenses before investing.",
		)
	}

	message := "Great! You're financially ready to start investing."
	if !details.CanInvest {
		message = "Hold on! Let's secure your finances first before investing."
	}

	return details.CanInvest, message, details
}

func (h advisorServiceHandler) DetermineRiskProfile(timeHorizonYears int) string {
	switch {
	case timeHorizonYears < 3:
		return "conservative"
	case timeHorizonYears < 7:
		return "moderate"
	default:
		return "aggressive"
	}
}

// CalculatePortfolio splits the monthly budget into a stock and a bond
// leg at live prices. A leg whose price cannot be fetched is omitted
// rather than failing the whole recommendation.
func (h advisorServiceHandler) CalculatePortfolio(ctx context.Context, monthlyInvestmentAzn float64, timeHorizonYears int) *domain.Portfolio {
	rp := riskProfiles[h.DetermineRiskProfile(timeHorizonYears)]

	monthlyAzn := decimal.NewFromFloat(monthlyInvestmentAzn)
	monthlyUsd := monthlyAzn.Div(decimal.NewFromFloat(AznToUsd))

	portfolio := &domain.Portfolio{
		RiskProfile:          rp.Name,
		TimeHorizonYears:     timeHorizonYears,
		MonthlyInvestmentAZN: monthlyInvestmentAzn,
		MonthlyInvestmentUSD: monthlyUsd.Round(2).InexactFloat64(),
		Allocations:          []domain.Allocation{},
	}

	legs := []struct {
		assetType   string
		etf         string
		etfName     string
		percent     int
		description string
	}{
		{"Stocks", stockEtf, "S&P 500 ETF", rp.StocksPercent, "Large US companies - Apple, Microsoft, Amazon, etc."},
		{"Bonds", bondEtf, "Total Bond Market ETF", rp.BondsPercent, "Government and corporate bonds - stable and safe"},
	}

	log := logger.FromContext(ctx)
	for _, leg := range legs {
		if leg.percent <= 0 {
			continue
		}
		quote, err := h.MarketData.GetStockPrice(ctx, leg.etf)
		if err != nil {
			log.Warnw("omitting portfolio leg, price unavailable", "etf", leg.etf, "error", err)
			continue
		}

		pct := decimal.NewFromInt(int64(leg.percent)).Div(decimal.NewFromInt(100))
		amountUsd := monthlyUsd.Mul(pct)
		amountAzn := monthlyAzn.Mul(pct)
		shares := amountUsd.Div(decimal.NewFromFloat(quote.Price))

		portfolio.Allocations = append(portfolio.Allocations, domain.Allocation{
			AssetType:        leg.assetType,
			ETF:              leg.etf,
			ETFName:          leg.etfName,
			Percentage:       leg.percent,
			MonthlyAmountUSD: amountUsd.Round(2).InexactFloat64(),
			MonthlyAmountAZN: amountAzn.Round(2).InexactFloat64(),
			CurrentPrice:     quote.Price,
			SharesPerMonth:   shares.Round(4).InexactFloat64(),
			Description:      leg.description,
		})
	}

	return portfolio
}

// futureValue compounds a monthly contribution at the given annual rate
// over the horizon, with deposits at the start of each month.
func futureValue(monthlyContribution, annualRate float64, years int) float64 {
	monthlyRate := decimal.NewFromFloat(annualRate).Div(decimal.NewFromInt(12))
	months := years * 12

	growth := monthlyRate.Add(decimal.NewFromInt(1)).Pow(decimal.NewFromInt(int64(months))).
		Sub(decimal.NewFromInt(1)).
		Div(monthlyRate).
		Mul(monthlyRate.Add(decimal.NewFromInt(1)))

	return decimal.NewFromFloat(monthlyContribution).Mul(growth).InexactFloat64()
}

// GenerateRecommendation is the single entry point: safety gate first,
// portfolio and projection only when the user is financially ready.
func (h advisorServiceHandler) GenerateRecommendation(ctx context.Context, profile domain.FinancialProfile) domain.Recommendation {
	isSafe, message, details := h.SafetyCheck(profile)

	rec := domain.Recommendation{
		IsSafeToInvest: isSafe,
		SafetyMessage:  message,
		SafetyDetails:  details,
	}

	if !isSafe {
		rec.RecommendationText = notReadyText(message, details)
		return rec
	}

	portfolio := h.CalculatePortfolio(ctx, profile.MonthlyInvestment, profile.TimeHorizonYears)
	rec.Portfolio = portfolio
	rec.RecommendationText = recommendationText(portfolio, profile.Goal)
	return rec
}

func notReadyText(message string, details domain.SafetyDetails) string {
	var sb strings.Builder
	sb.WriteString(message)
	sb.WriteString("\n\n")
	for _, action := range details.PriorityActions {
		sb.WriteString(action)
		sb.WriteString("\n")
	}
	sb.WriteString(`
**Why this matters:**
Investing without a safety net is risky. If an emergency happens, you might need to sell investments at a loss. Let's build your financial foundation first!

**Next Steps:**
1. Create a budget to track expenses
`)
	fmt.Fprintf(&sb, "2. Build your emergency fund to %.2f AZN\n", details.EmergencyFundNeeded)
	sb.WriteString(`3. Pay down high-interest debt
4. Then come back and we'll create your investment plan!

Need help creating a savings plan? Just ask!
`)
	return sb.String()
}

func recommendationText(p *domain.Portfolio, goal string) string {
	rp := riskProfiles[p.RiskProfile]

	totalInvested := p.MonthlyInvestmentAZN * float64(p.TimeHorizonYears) * 12
	finalValue := futureValue(p.MonthlyInvestmentAZN, rp.ExpectedReturn, p.TimeHorizonYears)
	gains := finalValue - totalInvested

	var sb strings.Builder
	sb.WriteString("**Your Personalized Investment Plan**\n\n")
	fmt.Fprintf(&sb, "**Goal**: %s\n", titleCase(goal))
	fmt.Fprintf(&sb, "**Time Horizon**: %d years\n", p.TimeHorizonYears)
	fmt.Fprintf(&sb, "**Monthly Investment**: %.2f AZN (~$%.2f USD)\n\n", p.MonthlyInvestmentAZN, p.MonthlyInvestmentUSD)
	sb.WriteString("---\n\n")
	fmt.Fprintf(&sb, "**Recommended Portfolio (%s risk)**\n\n", strings.ToUpper(p.RiskProfile))

	for _, alloc := range p.Allocations {
		fmt.Fprintf(&sb, "**%s - %d%% allocation**\n", alloc.AssetType, alloc.Percentage)
		fmt.Fprintf(&sb, "- ETF: %s (%s)\n", alloc.ETF, alloc.ETFName)
		fmt.Fprintf(&sb, "- Current Price: $%.2f\n", alloc.CurrentPrice)
		fmt.Fprintf(&sb, "- Monthly Investment: %.2f AZN (~$%.2f)\n", alloc.MonthlyAmountAZN, alloc.MonthlyAmountUSD)
		fmt.Fprintf(&sb, "- Shares/month: ~%.3f\n", alloc.SharesPerMonth)
		fmt.Fprintf(&sb, "- What it is: %s\n\n", alloc.Description)
	}

	sb.WriteString("---\n\n**Why This Plan?**\n\n")
	fmt.Fprintf(&sb, "- **Time Horizon**: %d years gives you %s\n", p.TimeHorizonYears, horizonRationale(p.TimeHorizonYears))
	fmt.Fprintf(&sb, "- **Risk Level**: %s\n", rp.Description)
	sb.WriteString("- **Diversification**: Mix of stocks and bonds reduces risk\n\n")

	sb.WriteString("**Projected Results** (Conservative estimate)\n")
	fmt.Fprintf(&sb, "- Total Invested: %.2f AZN\n", totalInvested)
	fmt.Fprintf(&sb, "- Expected Growth: %.2f AZN (%.0f%% avg annual return)\n", gains, rp.ExpectedReturn*100)
	fmt.Fprintf(&sb, "- Final Value: ~%.2f AZN\n\n", finalValue)

	sb.WriteString("---\n\n**How to Start**\n\n")
	sb.WriteString("1. Open a brokerage account (Interactive Brokers, eToro, etc.)\n")
	fmt.Fprintf(&sb, "2. Set up automatic monthly investments of %.2f AZN\n", p.MonthlyInvestmentAZN)
	fmt.Fprintf(&sb, "3. Buy %s according to the percentages above\n", allocationSymbols(p.Allocations))
	sb.WriteString("4. Don't panic during market drops - stay the course!\n")
	sb.WriteString("5. Review your portfolio every 6 months\n\n")

	sb.WriteString("**Important Reminders**\n")
	sb.WriteString("- Past performance doesn't guarantee future returns\n")
	sb.WriteString("- Keep your emergency fund separate (don't invest it!)\n")
	fmt.Fprintf(&sb, "- Only invest money you won't need for %d years\n", p.TimeHorizonYears)
	sb.WriteString("- Consider talking to a licensed financial advisor for personalized advice\n\n")
	sb.WriteString("**Questions?** Feel free to ask me anything about your plan!\n")

	return sb.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func horizonRationale(years int) string {
	switch {
	case years >= 7:
		return "enough time to recover from market dips"
	case years >= 3:
		return "a moderate timeframe, so we balance risk"
	default:
		return "limited time, so we prioritize safety"
	}
}

func allocationSymbols(allocations []domain.Allocation) string {
	if len(allocations) == 0 {
		return "your recommended ETFs"
	}
	symbols := make([]string, len(allocations))
	for i, a := range allocations {
		symbols[i] = a.ETF
	}
	return strings.Join(symbols, " and ")
}
