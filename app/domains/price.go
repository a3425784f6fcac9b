package domains

// Trend direction for a price snapshot.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// PriceSnapshot is one commodity entry on the market price dashboard.
// Trend and ChangePercent are independent inputs carried alongside the
// prices; they are not derived from the CurrentPrice/PreviousPrice delta.
type PriceSnapshot struct {
	ID            string  `json:"id"`
	Crop          string  `json:"crop"`
	CropFr        string  `json:"cropFr"`
	CurrentPrice  float64 `json:"currentPrice"`
	PreviousPrice float64 `json:"previousPrice"`
	Unit          string  `json:"unit"`
	LastUpdated   string  `json:"lastUpdated"`
	Trend         string  `json:"trend"`
	ChangePercent float64 `json:"changePercent"`
}
