package store

// SignalData is a trading signal for a single timeframe.
type SignalData struct {
	Signal      string  `json:"signal"` // BUY, SELL, HOLD
	EntryPoint  float64 `json:"entryPoint"`
	StopLoss    float64 `json:"stopLoss"`
	TargetPrice float64 `json:"targetPrice"`
	Confidence  int     `json:"confidence"`
	Reasoning   string  `json:"reasoning"`
	Timestamp   string  `json:"timestamp"`
}

// DefaultTimeframeKey is the fixture returned for unrecognized timeframes.
const DefaultTimeframeKey = "default"

var signalFixtures = map[string]SignalData{
	"default": {
		Signal:      "SELL",
		EntryPoint:  1589.9,
		StopLoss:    1610.5,
		TargetPrice: 1550.0,
		Confidence:  81,
		Reasoning:   "Hourly chart showing bearish divergence on RSI. Price rejected at key resistance level with increasing sell volume.",
		Timestamp:   "2023-07-21 14:00:00 (1h)",
	},
	"1m": {
		Signal:      "SELL",
		EntryPoint:  1589.9,
		StopLoss:    1595.0,
		TargetPrice: 1580.0,
		Confidence:  65,
		Reasoning:   "Short-term momentum showing downward pressure with increasing sell volume.",
		Timestamp:   "2023-07-21 14:45:12 (1m)",
	},
	"5m": {
		Signal:      "SELL",
		EntryPoint:  1589.9,
		StopLoss:    1600.0,
		TargetPrice: 1570.0,
		Confidence:  72,
		Reasoning:   "Price breaking below 5-minute support with strong volume confirmation. MACD showing bearish crossover.",
		Timestamp:   "2023-07-21 14:40:05 (5m)",
	},
	"15m": {
		Signal:      "SELL",
		EntryPoint:  1589.9,
		StopLoss:    1605.0,
		TargetPrice: 1560.0,
		Confidence:  78,
		Reasoning:   "15-minute chart showing clear downtrend with lower highs. RSI indicating bearish momentum.",
		Timestamp:   "2023-07-21 14:32:05 (15m)",
	},
	"1h": {
		Signal:      "SELL",
		EntryPoint:  1589.9,
		StopLoss:    1610.5,
		TargetPrice: 1550.0,
		Confidence:  81,
		Reasoning:   "Hourly chart showing bearish divergence on RSI. Price rejected at key resistance level with increasing sell volume.",
		Timestamp:   "2023-07-21 14:00:00 (1h)",
	},
	"4h": {
		Signal:      "SELL",
		EntryPoint:  1589.9,
		StopLoss:    1620.0,
		TargetPrice: 1540.0,
		Confidence:  85,
		Reasoning:   "4-hour chart showing clear bearish pattern with decreasing buy volume. Multiple resistance rejections.",
		Timestamp:   "2023-07-21 12:00:00 (4h)",
	},
	"1d": {
		Signal:      "HOLD",
		EntryPoint:  1589.9,
		StopLoss:    1550.0,
		TargetPrice: 1650.0,
		Confidence:  60,
		Reasoning:   "Daily chart showing consolidation pattern. Waiting for clear breakout direction.",
		Timestamp:   "2023-07-21 00:00:00 (1d)",
	},
}

// SignalForTimeframe returns the signal fixture for the given timeframe.
// Unrecognized timeframes fall back to the default fixture rather than
// erroring; the frontend always expects a signal.
func SignalForTimeframe(timeframe string) SignalData {
	if s, ok := signalFixtures[timeframe]; ok {
		return s
	}
	return signalFixtures[DefaultTimeframeKey]
}

// Timeframes returns the set of timeframe keys with a dedicated fixture.
func Timeframes() []string {
	keys := make([]string, 0, len(signalFixtures))
	for k := range signalFixtures {
		keys = append(keys, k)
	}
	return keys
}
