package model

// Trend is the predicted direction of a commodity price.
type Trend string

// Price trends.
const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// BudgetAllocation is one advisor-suggested share of the remaining income.
// Advisory results are derived view data: fetched fresh per view-mount and
// never merged back into the profile.
type BudgetAllocation struct {
	Category   string  `json:"category"`
	Color      string  `json:"color"`
	Advice     string  `json:"advice"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// PricePrediction is a commodity price forecast for next month.
type PricePrediction struct {
	Item           string  `json:"item"`
	Trend          Trend   `json:"trend"`
	Advice         string  `json:"advice"`
	CurrentPrice   float64 `json:"currentPrice"`
	PredictedPrice float64 `json:"predictedPrice"`
	Confidence     float64 `json:"confidence"`
}

// ShoppingItem is one entry of the advisor-generated grocery list.
type ShoppingItem struct {
	Name          string  `json:"name"`
	Quantity      string  `json:"quantity"`
	EstimatedCost float64 `json:"estimatedCost"`
	IsPriority    bool    `json:"isPriority"`
}

// InvestmentOption is a curated low-risk investment suggestion. Options are
// static content, not advisor output.
type InvestmentOption struct {
	Type           string
	Title          string
	ExpectedReturn string
	RiskLevel      string
	Description    string
	SafetyReason   string
}
