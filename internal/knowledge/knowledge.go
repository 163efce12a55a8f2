// Package knowledge holds the static, beginner-facing ETF knowledge base.
// The entries are fixed at build time and versioned with the code; updating
// them invalidates the persisted embedding artifact via its content hash.
package knowledge

import (
	"fmt"
	"strings"

	"investbuddy/internal/domain"
)

// entries is the canonical ordering. The embedding index relies on this
// order being stable across process restarts.
var entries = []domain.KnowledgeEntry{
	{
		Symbol:       "SPY",
		Name:         "SPDR S&P 500 ETF",
		SimpleName:   "America's Top 500 Companies",
		Category:     "US Stocks - Large Companies",
		RiskLevel:    "Medium",
		ExpenseRatio: "0.09%",
		BeginnerExplanation: "Think of SPY as owning a tiny piece of 500 of America's biggest and most successful companies " +
			"like Apple, Microsoft, Amazon, and Google. When you buy SPY, you're spreading your money across " +
			"all these companies instead of betting on just one. It's one of the safest ways to invest in stocks " +
			"because even if a few companies do badly, the others usually balance it out.",
		GoodFor:            "Long-term growth, retirement savings, first-time investors",
		WhyBeginnersLoveIt: "It's simple, proven, and you own a piece of America's economy",
		RealWorldExample:   "If you invested $10,000 in SPY 10 years ago, you'd have about $30,000 today",
	},
	{
		Symbol:       "VOO",
		Name:         "Vanguard S&P 500 ETF",
		SimpleName:   "Same as SPY but Cheaper",
		Category:     "US Stocks - Large Companies",
		RiskLevel:    "Medium",
		ExpenseRatio: "0.03%",
		BeginnerExplanation: "VOO is almost identical to SPY - it owns the same 500 big American companies. " +
			"The difference? VOO charges lower fees, which means more money stays in your pocket over time. " +
			"Think of it like buying the same product at two stores - VOO is the discount store version.",
		GoodFor:            "Long-term investors who want to minimize costs",
		WhyBeginnersLoveIt: "Lower fees mean your money grows faster over time",
		RealWorldExample:   "Over 30 years, the lower fees could save you thousands of dollars",
	},
	{
		Symbol:       "VTI",
		Name:         "Vanguard Total Stock Market ETF",
		SimpleName:   "Every US Company, Big and Small",
		Category:     "US Stocks - All Sizes",
		RiskLevel:    "Medium",
		ExpenseRatio: "0.03%",
		BeginnerExplanation: "VTI is like owning a piece of almost every publicly traded company in America - " +
			"not just the big 500, but also thousands of smaller companies. It's the most diversified " +
			"way to invest in the US stock market. You get big companies like Apple, plus smaller " +
			"companies that might become the next Apple.",
		GoodFor:            "Maximum diversification in US stocks, long-term growth",
		WhyBeginnersLoveIt: "You own the entire US market with one purchase",
		RealWorldExample:   "Includes about 4,000 companies - from giants to future stars",
	},
	{
		Symbol:       "QQQ",
		Name:         "Invesco QQQ Trust",
		SimpleName:   "Top 100 Tech Companies",
		Category:     "Technology Stocks",
		RiskLevel:    "Higher",
		ExpenseRatio: "0.20%",
		BeginnerExplanation: "QQQ focuses on the 100 biggest tech and innovation companies traded on the Nasdaq stock exchange. " +
			"Think Apple, Microsoft, Tesla, Netflix, and Amazon. If you believe technology will keep growing, " +
			"QQQ is your bet. But remember: higher potential rewards come with bigger ups and downs.",
		GoodFor:            "Tech enthusiasts, long-term growth, higher risk tolerance",
		WhyBeginnersLoveIt: "You own the companies shaping the future",
		RealWorldExample:   "During tech booms it soars, but during tech downturns it falls harder than SPY",
	},
	{
		Symbol:       "BND",
		Name:         "Vanguard Total Bond Market ETF",
		SimpleName:   "The Safety Net",
		Category:     "Bonds - Safe Investments",
		RiskLevel:    "Low",
		ExpenseRatio: "0.03%",
		BeginnerExplanation: "BND is like a savings account that pays better interest, but is still very safe. " +
			"When you buy bonds, you're lending money to the government and big companies, " +
			"and they pay you back with interest. Bonds don't grow as fast as stocks, but they " +
			"protect your money when the stock market gets scary. Perfect for money you'll need soon.",
		GoodFor:            "Stability, protecting your money, reducing risk",
		WhyBeginnersLoveIt: "It's boring, and that's a good thing - your money stays safe",
		RealWorldExample:   "Returns about 3-4% per year - slow and steady wins the race",
	},
	{
		Symbol:       "AGG",
		Name:         "iShares Core U.S. Aggregate Bond ETF",
		SimpleName:   "Another Safe Choice",
		Category:     "Bonds - Safe Investments",
		RiskLevel:    "Low",
		ExpenseRatio: "0.03%",
		BeginnerExplanation: "AGG is very similar to BND - it's another way to own safe bonds. " +
			"Think of it as a different brand of the same product. Both are excellent choices " +
			"for keeping part of your money safe while earning modest returns.",
		GoodFor:            "Safety, income, balancing risky investments",
		WhyBeginnersLoveIt: "Reliable and predictable - no surprises",
		RealWorldExample:   "When stocks crashed in 2020, bonds like AGG stayed stable",
	},
	{
		Symbol:       "VEA",
		Name:         "Vanguard FTSE Developed Markets ETF",
		SimpleName:   "Stable Foreign Companies",
		Category:     "International Stocks - Developed Countries",
		RiskLevel:    "Medium",
		ExpenseRatio: "0.05%",
		BeginnerExplanation: "VEA lets you own pieces of big companies in wealthy countries like Japan, UK, Canada, " +
			"Germany, and France. It's like SPY, but for international companies instead of American ones. " +
			"This helps you spread risk - if America's economy slows down, other countries might do well.",
		GoodFor:            "Global diversification, don't want to bet only on America",
		WhyBeginnersLoveIt: "You own companies from all over the developed world",
		RealWorldExample:   "Includes companies like Toyota, Samsung, and Nestle",
	},
	{
		Symbol:       "VWO",
		Name:         "Vanguard FTSE Emerging Markets ETF",
		SimpleName:   "Fast-Growing Countries",
		Category:     "International Stocks - Emerging Markets",
		RiskLevel:    "Higher",
		ExpenseRatio: "0.08%",
		BeginnerExplanation: "VWO invests in companies from countries that are growing fast, like China, India, Brazil, " +
			"and Taiwan. These countries are developing rapidly, which can mean bigger profits - but also " +
			"bigger risks. Think of it as investing in countries that might become the next America.",
		GoodFor:            "Long-term growth, higher risk tolerance, diversification",
		WhyBeginnersLoveIt: "Potential for high growth as these countries develop",
		RealWorldExample:   "China and India's middle class is growing - millions of new consumers",
	},
	{
		Symbol:       "VYM",
		Name:         "Vanguard High Dividend Yield ETF",
		SimpleName:   "Companies That Pay You Regularly",
		Category:     "Dividend Stocks",
		RiskLevel:    "Medium",
		ExpenseRatio: "0.06%",
		BeginnerExplanation: "VYM owns companies that regularly share their profits with investors (called dividends). " +
			"It's like getting a paycheck from your investments every few months. These companies are " +
			"usually stable and established, like utilities and banks. Good for people who want regular income.",
		GoodFor:            "Regular income, semi-retirement, stable growth",
		WhyBeginnersLoveIt: "You get paid while your investment grows",
		RealWorldExample:   "Might pay you $300-400 per year for every $10,000 invested",
	},
	{
		Symbol:       "SCHD",
		Name:         "Schwab U.S. Dividend Equity ETF",
		SimpleName:   "Quality Companies That Pay",
		Category:     "Dividend Stocks",
		RiskLevel:    "Medium",
		ExpenseRatio: "0.06%",
		BeginnerExplanation: "SCHD is pickier than VYM - it only owns high-quality companies with strong finances " +
			"that have consistently paid and grown their dividends. It's like VYM but with stricter standards. " +
			"Popular with investors who want both income and quality.",
		GoodFor:            "Income + quality, long-term dividend growth",
		WhyBeginnersLoveIt: "You own the best of the best dividend payers",
		RealWorldExample:   "Companies that have increased their dividend payments for 10+ years",
	},
	{
		Symbol:       "XLK",
		Name:         "Technology Select Sector SPDR Fund",
		SimpleName:   "Pure Technology",
		Category:     "Technology Sector",
		RiskLevel:    "Higher",
		ExpenseRatio: "0.10%",
		BeginnerExplanation: "XLK is all-in on technology. It owns the tech companies from the S&P 500, like Apple, Microsoft, " +
			"and Nvidia. If you believe tech is the future but want something more focused than QQQ, this is it. " +
			"But remember: when tech crashes, this crashes hard.",
		GoodFor:            "Tech believers, long-term growth, higher risk tolerance",
		WhyBeginnersLoveIt: "Direct bet on technology's growth",
		RealWorldExample:   "Up over 400% in the past 10 years during the tech boom",
	},
	{
		Symbol:       "XLV",
		Name:         "Health Care Select Sector SPDR Fund",
		SimpleName:   "Healthcare Companies",
		Category:     "Healthcare Sector",
		RiskLevel:    "Medium",
		ExpenseRatio: "0.10%",
		BeginnerExplanation: "XLV owns pharmaceutical companies, hospitals, and medical device makers. " +
			"As people age and healthcare advances, these companies tend to grow steadily. " +
			"Healthcare is one of the most stable sectors - people always need medicine and doctors.",
		GoodFor:            "Stability, aging population trend, defensive investing",
		WhyBeginnersLoveIt: "Healthcare demand never stops",
		RealWorldExample:   "Includes companies like Johnson & Johnson and Pfizer",
	},
	{
		Symbol:       "XLF",
		Name:         "Financial Select Sector SPDR Fund",
		SimpleName:   "Banks and Financial Companies",
		Category:     "Financial Sector",
		RiskLevel:    "Medium",
		ExpenseRatio: "0.10%",
		BeginnerExplanation: "XLF owns banks, insurance companies, and other financial institutions. " +
			"These companies make money from interest rates and managing money. When the economy is strong, " +
			"they tend to do well. When the economy struggles, they can suffer.",
		GoodFor:            "Economic growth believers, diversification",
		WhyBeginnersLoveIt: "Banks are the backbone of the economy",
		RealWorldExample:   "Includes JPMorgan, Bank of America, Wells Fargo",
	},
	{
		Symbol:       "XLE",
		Name:         "Energy Select Sector SPDR Fund",
		SimpleName:   "Oil and Energy Companies",
		Category:     "Energy Sector",
		RiskLevel:    "Higher",
		ExpenseRatio: "0.10%",
		BeginnerExplanation: "XLE owns oil, gas, and energy companies like ExxonMobil and Chevron. " +
			"Energy prices go up and down a lot, which makes this investment more volatile. " +
			"Good for hedging against inflation - when everything gets expensive, energy often does too.",
		GoodFor:            "Inflation protection, oil price believers, diversification",
		WhyBeginnersLoveIt: "Performs well when oil prices rise",
		RealWorldExample:   "Up 50%+ when oil prices surged in 2022",
	},
	{
		Symbol:       "VUG",
		Name:         "Vanguard Growth ETF",
		SimpleName:   "Fast-Growing Companies",
		Category:     "Growth Stocks",
		RiskLevel:    "Higher",
		ExpenseRatio: "0.04%",
		BeginnerExplanation: "VUG owns companies that are growing fast - think tech companies and innovative businesses. " +
			"These companies reinvest their profits to grow bigger rather than paying dividends. " +
			"Higher risk, higher potential reward. Like planting a tree that might grow tall.",
		GoodFor:            "Long-term growth, younger investors, higher risk tolerance",
		WhyBeginnersLoveIt: "Focuses on tomorrow's winners",
		RealWorldExample:   "Heavy in companies like Amazon and Tesla",
	},
	{
		Symbol:       "VTV",
		Name:         "Vanguard Value ETF",
		SimpleName:   "Bargain-Priced Stable Companies",
		Category:     "Value Stocks",
		RiskLevel:    "Medium",
		ExpenseRatio: "0.04%",
		BeginnerExplanation: "VTV owns established companies that the market thinks are underpriced - basically bargains. " +
			"These are often older, stable companies in traditional industries. They may grow slower, " +
			"but they're usually safer and pay dividends.",
		GoodFor:            "Stability, dividend income, defensive investing",
		WhyBeginnersLoveIt: "Buying quality at a discount",
		RealWorldExample:   "Companies like Berkshire Hathaway and Johnson & Johnson",
	},
	{
		Symbol:       "VB",
		Name:         "Vanguard Small-Cap ETF",
		SimpleName:   "Small Companies, Big Potential",
		Category:     "Small Company Stocks",
		RiskLevel:    "Higher",
		ExpenseRatio: "0.05%",
		BeginnerExplanation: "VB owns smaller companies that have room to grow into big companies. " +
			"Small companies can grow faster than giants, but they're also riskier - many fail. " +
			"Think of it as investing in the next potential Amazon when it was still small.",
		GoodFor:            "Long-term growth, higher risk tolerance, diversification",
		WhyBeginnersLoveIt: "Hunting for the next big success story",
		RealWorldExample:   "More volatile but historically outperforms large caps over long periods",
	},
	{
		Symbol:       "VNQ",
		Name:         "Vanguard Real Estate ETF",
		SimpleName:   "Owning Buildings Without the Hassle",
		Category:     "Real Estate",
		RiskLevel:    "Medium",
		ExpenseRatio: "0.12%",
		BeginnerExplanation: "VNQ lets you invest in real estate without buying actual property. You own pieces of companies " +
			"that own malls, apartment buildings, offices, and warehouses. They collect rent and share the " +
			"profits with you. It's like being a landlord without fixing toilets.",
		GoodFor:            "Diversification, passive real estate exposure, income",
		WhyBeginnersLoveIt: "Real estate exposure without buying a house",
		RealWorldExample:   "Paid good dividends from rental income",
	},
	{
		Symbol:       "ESGU",
		Name:         "iShares ESG Aware MSCI USA ETF",
		SimpleName:   "Responsible Investing",
		Category:     "Sustainable/ESG Investing",
		RiskLevel:    "Medium",
		ExpenseRatio: "0.15%",
		BeginnerExplanation: "ESGU invests in companies that score well on environmental, social, and governance (ESG) factors. " +
			"It avoids companies with bad environmental records or poor labor practices. " +
			"You can grow your money while supporting companies that do good.",
		GoodFor:            "Values-based investing, socially conscious investors",
		WhyBeginnersLoveIt: "Invest according to your values",
		RealWorldExample:   "Excludes tobacco, weapons, and major polluters",
	},
	{
		Symbol:       "GLD",
		Name:         "SPDR Gold Trust",
		SimpleName:   "Digital Gold",
		Category:     "Commodities - Gold",
		RiskLevel:    "Medium",
		ExpenseRatio: "0.40%",
		BeginnerExplanation: "GLD tracks the price of gold. When people get scared about the economy or inflation, " +
			"they buy gold, and GLD goes up. It's a hedge - insurance against your other investments falling. " +
			"Gold doesn't pay dividends or grow like companies, but it holds value when things get uncertain.",
		GoodFor:            "Portfolio insurance, inflation hedge, diversification",
		WhyBeginnersLoveIt: "Gold has been valuable for thousands of years",
		RealWorldExample:   "Surged during 2008 financial crisis and 2020 pandemic",
	},
	{
		Symbol:       "VTTVX",
		Name:         "Vanguard Target Retirement 2030",
		SimpleName:   "Auto-Pilot Retirement Fund",
		Category:     "Target Date Fund",
		RiskLevel:    "Medium (Auto-Adjusting)",
		ExpenseRatio: "0.08%",
		BeginnerExplanation: "This fund does all the work for you. If you plan to retire around 2030, it automatically " +
			"adjusts your mix of stocks and bonds as you get closer to retirement. More stocks when you're " +
			"young (risky = higher growth), more bonds as you age (safe = preserve wealth). Set it and forget it.",
		GoodFor:            "Hands-off investors, retirement planning, beginners",
		WhyBeginnersLoveIt: "You don't have to think about it - it rebalances automatically",
		RealWorldExample:   "Perfect for someone who wants to retire in 2030",
	},
	{
		Symbol:       "ITOT",
		Name:         "iShares Core S&P Total U.S. Stock Market ETF",
		SimpleName:   "Another Total Market Option",
		Category:     "US Total Market",
		RiskLevel:    "Medium",
		ExpenseRatio: "0.03%",
		BeginnerExplanation: "ITOT is similar to VTI - it owns the entire US stock market. Same concept, different company. " +
			"Both are excellent choices. Pick based on which broker you use or which has lower fees for you.",
		GoodFor:            "Total market exposure, diversification",
		WhyBeginnersLoveIt: "Simple, cheap, and effective",
		RealWorldExample:   "Owns about 3,500 US companies",
	},
	{
		Symbol:       "ARKK",
		Name:         "ARK Innovation ETF",
		SimpleName:   "Betting on Future Tech",
		Category:     "Innovation/Disruptive Tech",
		RiskLevel:    "Very High",
		ExpenseRatio: "0.75%",
		BeginnerExplanation: "ARKK invests in companies working on cutting-edge technology like AI, robotics, genomics, " +
			"and electric vehicles. It's very aggressive - big wins or big losses. Not for the faint of heart. " +
			"Managed by Cathie Wood, a famous (and controversial) investor.",
		GoodFor:            "Risk-takers, believers in disruptive innovation, small portion of portfolio",
		WhyBeginnersLoveIt: "Focuses on world-changing companies",
		RealWorldExample:   "Up 150% in 2020, down 70% in 2022 - very volatile!",
	},
}

var bySymbol = func() map[string]domain.KnowledgeEntry {
	m := make(map[string]domain.KnowledgeEntry, len(entries))
	for _, e := range entries {
		m[e.Symbol] = e
	}
	return m
}()

// All returns the entries in their canonical order.
func All() []domain.KnowledgeEntry {
	out := make([]domain.KnowledgeEntry, len(entries))
	copy(out, entries)
	return out
}

// Get looks up an entry by ticker symbol (case-insensitive).
func Get(symbol string) (domain.KnowledgeEntry, bool) {
	e, ok := bySymbol[strings.ToUpper(symbol)]
	return e, ok
}

// Metadata returns the slim snapshot stored next to an entry's embedding.
func Metadata(e domain.KnowledgeEntry) domain.EntryMetadata {
	return domain.EntryMetadata{
		Symbol:       e.Symbol,
		Name:         e.Name,
		SimpleName:   e.SimpleName,
		Category:     e.Category,
		RiskLevel:    e.RiskLevel,
		ExpenseRatio: e.ExpenseRatio,
	}
}

// Document serializes an entry into the text blob that gets embedded. The
// template is fixed: changing it changes the artifact content hash and
// forces a rebuild of the index.
func Document(e domain.KnowledgeEntry) string {
	return strings.TrimSpace(fmt.Sprintf(
		`Symbol: %s
Name: %s
Simple Name: %s
Category: %s
Risk Level: %s
Beginner Explanation: %s
Good For: %s
Why Beginners Love It: %s
Real World Example: %s`,
		e.Symbol,
		e.Name,
		e.SimpleName,
		e.Category,
		e.RiskLevel,
		e.BeginnerExplanation,
		e.GoodFor,
		e.WhyBeginnersLoveIt,
		e.RealWorldExample,
	))
}

// RecommendedSymbols is the shortlist surfaced on /etfs/recommended and
// kept warm by the quote refresh job.
func RecommendedSymbols() []string {
	return []string{"SPY", "VOO", "BND", "AGG"}
}
