package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ethagent/internal/config"
	"ethagent/internal/latency"
	"ethagent/internal/middleware"
	"ethagent/internal/monitoring"
	"ethagent/internal/store"
)

// Server represents the API server
type Server struct {
	config     *config.Config
	log        *logrus.Logger
	router     *gin.Engine
	httpServer *http.Server
	handlers   *Handlers
	metrics    *monitoring.Metrics
	settings   *store.SettingsStore
}

// Handlers contains all API handlers
type Handlers struct {
	Signal      *SignalHandler
	Performance *PerformanceHandler
	TradeLog    *TradeLogHandler
	Settings    *SettingsHandler
	Sentiment   *SentimentHandler
	Risk        *RiskHandler
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, log *logrus.Logger) (*Server, error) {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	settings := store.NewSettingsStore()
	policy := latency.FromConfig(cfg.Latency.Enabled, cfg.Latency.Scale)

	server := &Server{
		config:   cfg,
		log:      log,
		router:   gin.New(),
		metrics:  monitoring.NewMetrics(),
		settings: settings,
	}

	server.handlers = &Handlers{
		Signal:      NewSignalHandler(policy),
		Performance: NewPerformanceHandler(policy),
		TradeLog:    NewTradeLogHandler(policy),
		Settings:    NewSettingsHandler(settings, policy),
		Sentiment:   NewSentimentHandler(policy),
		Risk:        NewRiskHandler(policy),
	}

	server.setupRoutes()

	return server, nil
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Middleware
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.RequestLogger(s.log))
	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware(s.config.CORS))
	if s.config.RateLimit.Enabled {
		s.router.Use(middleware.RateLimit(s.config.RateLimit))
	}
	s.router.Use(s.metrics.MetricsMiddleware())

	// Prometheus metrics
	if s.config.Monitoring.PrometheusEnabled {
		s.router.GET(s.config.Monitoring.PrometheusPath, gin.WrapH(s.metrics.Handler()))
	}

	// API group
	api := s.router.Group("/api")
	{
		api.GET("/signal", s.handlers.Signal.GetSignal)
		api.GET("/performance", s.handlers.Performance.GetPerformance)
		api.GET("/tradeLog", s.handlers.TradeLog.GetTradeLog)
		api.GET("/settings", s.handlers.Settings.GetSettings)
		api.PATCH("/settings", s.handlers.Settings.UpdateSettings)
		api.GET("/sentiment", s.handlers.Sentiment.GetSentiment)
		api.GET("/riskAnalysis", s.handlers.Risk.GetRiskAnalysis)
	}

	// Liveness
	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, MessageResponse{
			Message: "ETH AI Trading Agent API is running",
		})
	})

	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC(),
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:        s.router,
		ReadTimeout:    s.config.Server.ReadTimeout.Std(),
		WriteTimeout:   s.config.Server.WriteTimeout.Std(),
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}

	s.log.Infof("Starting API server on %s:%d", s.config.Server.Host, s.config.Server.Port)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Shutting down server...")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
	}

	s.log.Info("Server stopped gracefully")
	return nil
}

// corsMiddleware adds CORS headers. The mock fronts a local prototype,
// so any origin is accepted.
func corsMiddleware(corsConfig config.CORSConfig) gin.HandlerFunc {
	origin := "*"
	if len(corsConfig.AllowedOrigins) == 1 && corsConfig.AllowedOrigins[0] != "*" {
		origin = corsConfig.AllowedOrigins[0]
	}
	methods := strings.Join(corsConfig.AllowedMethods, ", ")
	headers := strings.Join(corsConfig.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
