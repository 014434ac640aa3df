package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ethagent/internal/latency"
	"ethagent/internal/store"
)

// Per-endpoint base delays. The latency policy decides how much of each
// is actually spent per request.
const (
	signalDelay        = 500 * time.Millisecond
	performanceDelay   = 700 * time.Millisecond
	tradeLogDelay      = 600 * time.Millisecond
	settingsGetDelay   = 400 * time.Millisecond
	settingsPatchDelay = 500 * time.Millisecond
	sentimentDelay     = 600 * time.Millisecond
	riskAnalysisDelay  = 550 * time.Millisecond
)

// defaultTimeframe is used when the query parameter is absent.
const defaultTimeframe = "15m"

// SignalHandler handles signal-related API requests
type SignalHandler struct {
	latency latency.Policy
}

// NewSignalHandler creates a new signal handler
func NewSignalHandler(policy latency.Policy) *SignalHandler {
	return &SignalHandler{latency: policy}
}

// GetSignal returns the signal fixture for the requested timeframe.
// Unknown timeframes fall back to the default fixture.
func (h *SignalHandler) GetSignal(c *gin.Context) {
	if err := h.latency.Wait(c.Request.Context(), signalDelay); err != nil {
		c.Abort()
		return
	}

	timeframe := c.DefaultQuery("timeframe", defaultTimeframe)
	c.JSON(http.StatusOK, store.SignalForTimeframe(timeframe))
}

// PerformanceHandler handles performance-related API requests
type PerformanceHandler struct {
	latency latency.Policy
}

// NewPerformanceHandler creates a new performance handler
func NewPerformanceHandler(policy latency.Policy) *PerformanceHandler {
	return &PerformanceHandler{latency: policy}
}

// GetPerformance returns the performance summary fixture.
func (h *PerformanceHandler) GetPerformance(c *gin.Context) {
	if err := h.latency.Wait(c.Request.Context(), performanceDelay); err != nil {
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, store.Performance())
}

// TradeLogHandler handles trade-log API requests
type TradeLogHandler struct {
	latency latency.Policy
}

// NewTradeLogHandler creates a new trade log handler
func NewTradeLogHandler(policy latency.Policy) *TradeLogHandler {
	return &TradeLogHandler{latency: policy}
}

// GetTradeLog returns the trade log in insertion order.
func (h *TradeLogHandler) GetTradeLog(c *gin.Context) {
	if err := h.latency.Wait(c.Request.Context(), tradeLogDelay); err != nil {
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, store.TradeLog())
}

// SettingsHandler handles settings API requests
type SettingsHandler struct {
	settings *store.SettingsStore
	latency  latency.Policy
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *store.SettingsStore, policy latency.Policy) *SettingsHandler {
	return &SettingsHandler{settings: settings, latency: policy}
}

// GetSettings returns the current settings.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	if err := h.latency.Wait(c.Request.Context(), settingsGetDelay); err != nil {
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, h.settings.Get())
}

// UpdateSettings applies a partial settings update and returns the
// resulting full settings.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var patch store.SettingsUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid settings payload",
			Details: err.Error(),
		})
		return
	}

	if err := h.latency.Wait(c.Request.Context(), settingsPatchDelay); err != nil {
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, h.settings.Update(patch))
}

// SentimentHandler handles sentiment API requests
type SentimentHandler struct {
	latency latency.Policy
}

// NewSentimentHandler creates a new sentiment handler
func NewSentimentHandler(policy latency.Policy) *SentimentHandler {
	return &SentimentHandler{latency: policy}
}

// GetSentiment returns the sentiment snapshot fixture.
func (h *SentimentHandler) GetSentiment(c *gin.Context) {
	if err := h.latency.Wait(c.Request.Context(), sentimentDelay); err != nil {
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, store.Sentiment())
}

// RiskHandler handles risk-analysis API requests
type RiskHandler struct {
	latency latency.Policy
}

// NewRiskHandler creates a new risk handler
func NewRiskHandler(policy latency.Policy) *RiskHandler {
	return &RiskHandler{latency: policy}
}

// GetRiskAnalysis returns the risk analysis fixture.
func (h *RiskHandler) GetRiskAnalysis(c *gin.Context) {
	if err := h.latency.Wait(c.Request.Context(), riskAnalysisDelay); err != nil {
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, store.RiskAnalysis())
}
