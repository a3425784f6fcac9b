package domains

// SeedPrices returns the built-in price snapshots used when no cached or
// remote data is available. Prices are CFA per unit on the Togolese spot
// markets. lastUpdated stamps every snapshot with the caller's clock.
func SeedPrices(lastUpdated string) []PriceSnapshot {
	return []PriceSnapshot{
		{ID: "1", Crop: "Maize", CropFr: "Maïs", CurrentPrice: 185, PreviousPrice: 175, Unit: "kg", LastUpdated: lastUpdated, Trend: TrendUp, ChangePercent: 5.7},
		{ID: "2", Crop: "Cassava", CropFr: "Manioc", CurrentPrice: 120, PreviousPrice: 125, Unit: "kg", LastUpdated: lastUpdated, Trend: TrendDown, ChangePercent: -4.0},
		{ID: "3", Crop: "Yam", CropFr: "Igname", CurrentPrice: 350, PreviousPrice: 350, Unit: "kg", LastUpdated: lastUpdated, Trend: TrendStable, ChangePercent: 0.0},
		{ID: "4", Crop: "Cotton", CropFr: "Coton", CurrentPrice: 260, PreviousPrice: 240, Unit: "kg", LastUpdated: lastUpdated, Trend: TrendUp, ChangePercent: 8.3},
		{ID: "5", Crop: "Coffee", CropFr: "Café", CurrentPrice: 1450, PreviousPrice: 1500, Unit: "kg", LastUpdated: lastUpdated, Trend: TrendDown, ChangePercent: -3.3},
		{ID: "6", Crop: "Cocoa", CropFr: "Cacao", CurrentPrice: 1250, PreviousPrice: 1180, Unit: "kg", LastUpdated: lastUpdated, Trend: TrendUp, ChangePercent: 5.9},
		{ID: "7", Crop: "Rice", CropFr: "Riz", CurrentPrice: 450, PreviousPrice: 450, Unit: "kg", LastUpdated: lastUpdated, Trend: TrendStable, ChangePercent: 0.0},
		{ID: "8", Crop: "Beans", CropFr: "Haricots", CurrentPrice: 550, PreviousPrice: 520, Unit: "kg", LastUpdated: lastUpdated, Trend: TrendUp, ChangePercent: 5.8},
	}
}
