package domain

// KnowledgeEntry is one ETF in the static knowledge base. Entries are
// created once at startup and never mutated; Symbol is the primary key.
type KnowledgeEntry struct {
	Symbol              string `json:"symbol" csv:"symbol"`
	Name                string `json:"name" csv:"name"`
	SimpleName          string `json:"simpleName" csv:"simple_name"`
	Category            string `json:"category" csv:"category"`
	RiskLevel           string `json:"riskLevel" csv:"risk_level"`
	ExpenseRatio        string `json:"expenseRatio" csv:"expense_ratio"`
	BeginnerExplanation string `json:"beginnerExplanation" csv:"beginner_explanation"`
	GoodFor             string `json:"goodFor" csv:"good_for"`
	WhyBeginnersLoveIt  string `json:"whyBeginnersLoveIt" csv:"why_beginners_love_it"`
	RealWorldExample    string `json:"realWorldExample" csv:"real_world_example"`
}

// EntryMetadata is the slim snapshot stored alongside each embedding.
type EntryMetadata struct {
	Symbol       string `json:"symbol" msgpack:"symbol"`
	Name         string `json:"name" msgpack:"name"`
	SimpleName   string `json:"simpleName" msgpack:"simple_name"`
	Category     string `json:"category" msgpack:"category"`
	RiskLevel    string `json:"riskLevel" msgpack:"risk_level"`
	ExpenseRatio string `json:"expenseRatio" msgpack:"expense_ratio"`
}

// SearchResult is one hit from the embedding index, ordered by descending
// relevance.
type SearchResult struct {
	Symbol   string         `json:"symbol"`
	Metadata EntryMetadata  `json:"metadata"`
	Score    float64        `json:"relevanceScore"`
	Entry    KnowledgeEntry `json:"fullInfo"`
}
