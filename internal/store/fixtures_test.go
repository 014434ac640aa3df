package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalForTimeframeKnownKeys(t *testing.T) {
	require.ElementsMatch(t,
		[]string{"default", "1m", "5m", "15m", "1h", "4h", "1d"},
		Timeframes())

	for _, tf := range []string{"default", "1m", "5m", "15m", "1h", "4h", "1d"} {
		got := SignalForTimeframe(tf)
		assert.NotEmpty(t, got.Signal, "timeframe %s", tf)
		assert.Equal(t, 1589.9, got.EntryPoint, "timeframe %s", tf)
	}

	assert.Equal(t, "HOLD", SignalForTimeframe("1d").Signal)
	assert.Equal(t, 85, SignalForTimeframe("4h").Confidence)
	assert.Equal(t, 78, SignalForTimeframe("15m").Confidence)
}

func TestSignalForTimeframeUnknownFallsBackToDefault(t *testing.T) {
	want := SignalForTimeframe(DefaultTimeframeKey)

	for _, tf := range []string{"", "2h", "1w", "bogus"} {
		assert.Equal(t, want, SignalForTimeframe(tf), "timeframe %q", tf)
	}
}

func TestTradeLogOrderAndUniqueIDs(t *testing.T) {
	trades := TradeLog()
	require.Len(t, trades, 8)

	seen := make(map[string]bool, len(trades))
	for i, tr := range trades {
		assert.False(t, seen[tr.ID], "duplicate id %s", tr.ID)
		seen[tr.ID] = true
		assert.Contains(t, []string{"BUY", "SELL"}, tr.Direction)
		assert.Contains(t, []string{"COMPLETED", "OPEN", "CANCELLED"}, tr.Status)
		if i > 0 {
			assert.Less(t, trades[i-1].Date, tr.Date, "insertion order broken at %d", i)
		}
	}
}

func TestTradeLogReturnsCopy(t *testing.T) {
	first := TradeLog()
	first[0].Pnl = 999

	assert.Equal(t, 4.33, TradeLog()[0].Pnl)
}

func TestPerformanceFixture(t *testing.T) {
	p := Performance()

	assert.Equal(t, 68.5, p.WinRate)
	assert.Equal(t, 124, p.TotalTrades)
	require.Len(t, p.PnlHistory, 14)
	assert.Equal(t, "2023-06-01", p.PnlHistory[0].Date)
	assert.Equal(t, "2023-06-14", p.PnlHistory[len(p.PnlHistory)-1].Date)
}

func TestSentimentFixture(t *testing.T) {
	sn := Sentiment()

	assert.Equal(t, 65, sn.OverallSentiment)
	require.Len(t, sn.Sources, 3)
	assert.Equal(t, "Social Media", sn.Sources[0].Name)
}

func TestRiskAnalysisFixture(t *testing.T) {
	r := RiskAnalysis()

	assert.Equal(t, 42, r.OverallRisk)
	require.Len(t, r.Metrics, 4)
	require.Len(t, r.Recommendations, 3)

	for _, m := range r.Metrics {
		assert.Equal(t, m.Value > m.Threshold, m.IsHighRisk, "metric %s", m.Name)
	}
}
