package models

// News impact constants
const (
	ImpactPositive = "positive"
	ImpactNeutral  = "neutral"
	ImpactNegative = "negative"
)

// News category constants
const (
	CategoryEconomy  = "Economy"
	CategoryEarnings = "Earnings"
	CategoryPolicy   = "Policy"
	CategoryGlobal   = "Global"
	CategorySector   = "Sector"
)

// NewsArticle is a single market news item. The article set is replaced
// wholesale on each successful fetch; there is no incremental merge.
type NewsArticle struct {
	ID       int      `json:"id"`
	Category string   `json:"cat"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Impact   string   `json:"impact"`
	Time     string   `json:"time"`
	Source   string   `json:"source"`
	Affected []string `json:"affected"`
}
