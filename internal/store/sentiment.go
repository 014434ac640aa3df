package store

// SentimentSource is one contributor to the overall sentiment score.
type SentimentSource struct {
	Name   string  `json:"name"`
	Score  int     `json:"score"`
	Change float64 `json:"change"`
}

// SentimentData is a snapshot of market sentiment.
type SentimentData struct {
	OverallSentiment int               `json:"overallSentiment"`
	Sources          []SentimentSource `json:"sources"`
	LastUpdated      string            `json:"lastUpdated"`
}

var sentimentFixture = SentimentData{
	OverallSentiment: 65,
	Sources: []SentimentSource{
		{Name: "Social Media", Score: 72, Change: 5.3},
		{Name: "News Articles", Score: 58, Change: -2.1},
		{Name: "Trading Volume", Score: 81, Change: 12.7},
	},
	LastUpdated: "2023-07-21 15:30:00",
}

// Sentiment returns the sentiment snapshot fixture.
func Sentiment() SentimentData {
	return sentimentFixture
}
