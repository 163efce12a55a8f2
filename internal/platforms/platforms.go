// Package platforms describes brokerages reachable from Azerbaijan and a
// plain-language onboarding guide. Both feed the advisor's system prompt.
package platforms

import (
	"fmt"
	"strings"
)

type Platform struct {
	Name              string   `json:"name"`
	URL               string   `json:"url"`
	BestFor           string   `json:"bestFor"`
	Pros              []string `json:"pros"`
	Cons              []string `json:"cons"`
	SimpleExplanation string   `json:"simpleExplanation"`
	HowToStart        []string `json:"howToStart"`
}

var international = []Platform{
	{
		Name:    "Interactive Brokers",
		URL:     "https://www.interactivebrokers.com",
		BestFor: "Azerbaijani investors who want access to US stocks and ETFs",
		Pros: []string{
			"Access to global markets (US, Europe, Asia)",
			"Low fees",
			"Professional platform",
			"Can invest in all major ETFs (SPY, VOO, BND, etc.)",
		},
		Cons: []string{
			"Minimum deposit requirements",
			"Interface can be complex for beginners",
			"Need to understand currency conversion (AZN to USD)",
		},
		SimpleExplanation: "Interactive Brokers is like a global marketplace where you can buy pieces of American companies. It's one of the most popular platforms for investors outside the US.",
		HowToStart: []string{
			"1. Go to https://www.interactivebrokers.com",
			"2. Click 'Open Account'",
			"3. Choose 'Individual Account'",
			"4. Fill out personal information (name, address, passport)",
			"5. Answer questions about your financial experience",
			"6. Upload ID documents (passport, utility bill for address)",
			"7. Wait 1-3 days for approval",
			"8. Transfer money from your Azerbaijani bank (wire transfer)",
			"9. Money converts from AZN to USD automatically",
			"10. Start buying ETFs!",
		},
	},
	{
		Name:    "eToro",
		URL:     "https://www.etoro.com",
		BestFor: "Complete beginners who want a simple, user-friendly interface",
		Pros: []string{
			"Very beginner-friendly",
			"Copy other successful investors automatically",
			"Social features - see what others are buying",
			"No minimum deposit",
			"Simple mobile app",
		},
		Cons: []string{
			"Higher fees than some competitors",
			"Limited ETF selection compared to Interactive Brokers",
			"Withdrawal fees",
		},
		SimpleExplanation: "eToro is like the 'Instagram of investing' - it's simple, visual, and you can even copy what experienced investors are doing.",
		HowToStart: []string{
			"1. Go to https://www.etoro.com",
			"2. Click 'Join Now'",
			"3. Enter email and create password",
			"4. Fill out a short questionnaire",
			"5. Verify your email",
			"6. Upload ID (passport photo)",
			"7. Deposit money (credit card, bank transfer, or e-wallet)",
			"8. Search for ETFs like 'SPY' or 'VOO'",
			"9. Click 'Trade' and enter amount",
			"10. Click 'Open Trade' - you're done!",
		},
	},
	{
		Name:    "Saxo Bank",
		URL:     "https://www.home.saxo",
		BestFor: "Investors who want a premium platform with education",
		Pros: []string{
			"Excellent educational resources",
			"Wide range of investment products",
			"Good customer support",
			"Research tools and market analysis",
		},
		Cons: []string{
			"Higher minimum deposit",
			"More expensive fees",
			"Might be overkill for simple ETF investing",
		},
		SimpleExplanation: "Saxo Bank is like a premium investment platform - more expensive but comes with lots of helpful tools and education.",
		HowToStart: []string{
			"1. Visit https://www.home.saxo",
			"2. Click 'Open Account'",
			"3. Choose account type (Classic for beginners)",
			"4. Complete online application",
			"5. Provide identification documents",
			"6. Fund your account (bank transfer)",
			"7. Access trading platform",
			"8. Search for your chosen ETF",
			"9. Place your order",
			"10. Confirm purchase",
		},
	},
}

var cryptoFriendly = []Platform{
	{
		Name:    "Binance",
		URL:     "https://www.binance.com",
		BestFor: "If you want to invest in both crypto and traditional stocks",
		Pros: []string{
			"Very popular in Azerbaijan",
			"Can invest in crypto AND tokenized stocks",
			"Low fees",
			"Easy AZN deposits via local methods",
		},
		Cons: []string{
			"Primarily a crypto platform",
			"Traditional stock selection limited",
			"Regulatory concerns in some countries",
		},
		SimpleExplanation: "Binance started as a crypto platform but now offers some traditional investments too. Good if you want both.",
		HowToStart: []string{
			"1. Go to https://www.binance.com",
			"2. Click 'Register'",
			"3. Enter email and password",
			"4. Verify email and phone number",
			"5. Complete identity verification (KYC)",
			"6. Deposit money (various local payment methods)",
			"7. Search for stocks or crypto",
			"8. Click 'Buy' and enter amount",
			"9. Confirm transaction",
			"10. You now own the investment!",
		},
	},
}

// All returns every platform, international first.
func All() []Platform {
	out := make([]Platform, 0, len(international)+len(cryptoFriendly))
	out = append(out, international...)
	out = append(out, cryptoFriendly...)
	return out
}

// Recommended filters platforms by self-reported experience level.
func Recommended(level string) []Platform {
	switch level {
	case "intermediate":
		return []Platform{international[0], international[1]}
	case "advanced":
		out := make([]Platform, len(international))
		copy(out, international)
		return out
	default:
		// beginners get the simplest interfaces
		return []Platform{international[1], cryptoFriendly[0]}
	}
}

func formatPlatform(p Platform) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s)\n", p.Name, p.URL)
	fmt.Fprintf(&b, "Best for: %s\n\n", p.BestFor)
	fmt.Fprintf(&b, "Simple explanation: %s\n\n", p.SimpleExplanation)
	b.WriteString("Pros:\n")
	for _, pro := range p.Pros {
		fmt.Fprintf(&b, "   + %s\n", pro)
	}
	b.WriteString("\nCons:\n")
	for _, con := range p.Cons {
		fmt.Fprintf(&b, "   - %s\n", con)
	}
	b.WriteString("\nHow to get started:\n")
	for _, step := range p.HowToStart {
		fmt.Fprintf(&b, "   %s\n", step)
	}
	return b.String()
}

// ForPrompt renders every platform as context for the chat model.
func ForPrompt() string {
	parts := []string{"# Investment Platforms Available:\n"}
	for _, p := range All() {
		parts = append(parts, formatPlatform(p))
	}
	return strings.Join(parts, "\n")
}

// BeginnersGuide walks a first-time investor from account opening to a
// completed purchase. Appended to the advisor prompt alongside ForPrompt.
const BeginnersGuide = `
# Complete Beginner's Guide: How to Actually Invest

## Step 1: Choose Your Platform (Where to Invest)

Think of this like choosing which store to shop at. You need to pick a platform (also called a "brokerage" or "broker").

For Azerbaijan, we recommend:
- eToro - Easiest for beginners (https://www.etoro.com)
- Interactive Brokers - Best if you want more options (https://www.interactivebrokers.com)

## Step 2: Open an Account (Like Opening a Bank Account)

1. Go to the website and click "Open Account" or "Sign Up"
2. Fill out a form with your name, email, phone number, home address, and date of birth
3. Upload documents: passport photo and a utility bill showing your address
4. Wait for approval - usually 1-3 days

## Step 3: Add Money to Your Account

1. Log into your new account and find the "Deposit" button
2. Choose how to send money: bank transfer (cheapest but slower), credit/debit card (fastest but small fee), or e-wallet
3. Enter the amount in AZN and confirm - money arrives in 1-5 days depending on method

## Step 4: Search for Your Investment (The ETF)

1. Look for the search bar (usually at the top)
2. Type the letters: "SPY" or "BND" or whatever was recommended
3. Click on the result - you'll see the current price, a chart, and a description

## Step 5: Buy Your Investment

1. Click the "Buy" or "Trade" button
2. Enter how much money you want to invest (e.g. "$500" - the platform calculates shares for you)
3. Review your order: what you're buying, how much, how many shares
4. Click "Confirm" or "Buy Now" - you are now an investor!

## Step 6: What Happens Next?

- You'll see the investment in your account with its current value, which goes up and down daily - that's normal
- Some investments pay dividends; these appear in your account automatically
- Over years your investment grows; when ready, sell and transfer the cash back to your bank

## Important Reminders:

- Start small - your first investment can be as little as $50-100
- Don't check daily - checking too often makes you nervous
- Be patient - investments grow over YEARS, not days
- Keep investing - add a little money each month
- Don't panic sell - if it drops, that's normal, don't sell in fear

Remember: every expert investor started exactly where you are now - knowing nothing. You've got this!
`
