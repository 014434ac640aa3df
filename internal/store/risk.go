package store

// RiskMetric is one measured risk dimension.
type RiskMetric struct {
	Name        string `json:"name"`
	Value       int    `json:"value"`
	Threshold   int    `json:"threshold"`
	Description string `json:"description"`
	IsHighRisk  bool   `json:"isHighRisk"`
}

// RiskAnalysisData is the aggregate risk picture.
type RiskAnalysisData struct {
	OverallRisk     int          `json:"overallRisk"`
	Metrics         []RiskMetric `json:"metrics"`
	Recommendations []string     `json:"recommendations"`
}

var riskAnalysisFixture = RiskAnalysisData{
	OverallRisk: 42,
	Metrics: []RiskMetric{
		{
			Name:        "Volatility",
			Value:       68,
			Threshold:   60,
			Description: "30-day price volatility is above average",
			IsHighRisk:  true,
		},
		{
			Name:        "Liquidity",
			Value:       75,
			Threshold:   40,
			Description: "Market liquidity is healthy",
			IsHighRisk:  false,
		},
		{
			Name:        "Market Correlation",
			Value:       82,
			Threshold:   70,
			Description: "High correlation with BTC movements",
			IsHighRisk:  true,
		},
		{
			Name:        "Support Strength",
			Value:       65,
			Threshold:   50,
			Description: "Multiple support levels identified",
			IsHighRisk:  false,
		},
	},
	Recommendations: []string{
		"Reduce position size by 25%",
		"Tighten stop loss to 2%",
		"Consider diversifying into other trading pairs",
	},
}

// RiskAnalysis returns the risk analysis fixture.
func RiskAnalysis() RiskAnalysisData {
	return riskAnalysisFixture
}
