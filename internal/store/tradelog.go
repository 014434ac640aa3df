package store

// TradeData is one entry of the trade log.
type TradeData struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Direction string  `json:"direction"` // BUY, SELL
	Entry     float64 `json:"entry"`
	Exit      float64 `json:"exit"`
	Pnl       float64 `json:"pnl"`
	Status    string  `json:"status"` // COMPLETED, OPEN, CANCELLED
}

var tradeLogFixture = []TradeData{
	{ID: "1", Date: "2023-06-01 14:30", Direction: "BUY", Entry: 0.5123, Exit: 0.5345, Pnl: 4.33, Status: "COMPLETED"},
	{ID: "2", Date: "2023-06-02 09:15", Direction: "SELL", Entry: 0.542, Exit: 0.521, Pnl: 3.87, Status: "COMPLETED"},
	{ID: "3", Date: "2023-06-03 11:45", Direction: "BUY", Entry: 0.518, Exit: 0.511, Pnl: -1.35, Status: "COMPLETED"},
	{ID: "4", Date: "2023-06-04 16:20", Direction: "BUY", Entry: 0.523, Exit: 0, Pnl: 0, Status: "OPEN"},
	{ID: "5", Date: "2023-06-05 10:05", Direction: "SELL", Entry: 0.531, Exit: 0.541, Pnl: -1.88, Status: "COMPLETED"},
	{ID: "6", Date: "2023-06-06 13:45", Direction: "BUY", Entry: 0.525, Exit: 0.538, Pnl: 2.48, Status: "COMPLETED"},
	{ID: "7", Date: "2023-06-07 15:30", Direction: "BUY", Entry: 0.54, Exit: 0.552, Pnl: 2.22, Status: "COMPLETED"},
	{ID: "8", Date: "2023-06-08 09:20", Direction: "SELL", Entry: 0.549, Exit: 0, Pnl: 0, Status: "OPEN"},
}

// TradeLog returns the trade log fixture in insertion order.
// Callers get a copy so the fixture stays untouched.
func TradeLog() []TradeData {
	trades := make([]TradeData, len(tradeLogFixture))
	copy(trades, tradeLogFixture)
	return trades
}
