package store

// PnlHistoryItem is one point of the daily PnL curve.
type PnlHistoryItem struct {
	Date string  `json:"date"`
	Pnl  float64 `json:"pnl"`
}

// PerformanceData summarizes account performance.
type PerformanceData struct {
	WinRate     float64          `json:"winRate"`
	AvgPnl      float64          `json:"avgPnl"`
	TotalTrades int              `json:"totalTrades"`
	MonthlyPnl  float64          `json:"monthlyPnl"`
	PnlHistory  []PnlHistoryItem `json:"pnlHistory"`
}

var performanceFixture = PerformanceData{
	WinRate:     68.5,
	AvgPnl:      2.4,
	TotalTrades: 124,
	MonthlyPnl:  18.7,
	PnlHistory: []PnlHistoryItem{
		{Date: "2023-06-01", Pnl: 4.33},
		{Date: "2023-06-02", Pnl: 8.2},
		{Date: "2023-06-03", Pnl: 6.85},
		{Date: "2023-06-04", Pnl: 6.85},
		{Date: "2023-06-05", Pnl: 4.97},
		{Date: "2023-06-06", Pnl: 7.25},
		{Date: "2023-06-07", Pnl: 10.5},
		{Date: "2023-06-08", Pnl: 12.8},
		{Date: "2023-06-09", Pnl: 11.2},
		{Date: "2023-06-10", Pnl: 14.5},
		{Date: "2023-06-11", Pnl: 13.8},
		{Date: "2023-06-12", Pnl: 16.2},
		{Date: "2023-06-13", Pnl: 15.4},
		{Date: "2023-06-14", Pnl: 18.7},
	},
}

// Performance returns the performance summary fixture.
func Performance() PerformanceData {
	return performanceFixture
}
