// Package httpapi exposes backtests and sentiment lookups over HTTP.
package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/backtest"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/market"
)

// Server wires the backtest engine behind a gin router. The price and
// sentiment sources are shared across requests; each backtest request builds
// its own runner.
type Server struct {
	prices    market.PriceSource
	sentiment backtest.SentimentSource
	cfg       backtest.Config
	log       *slog.Logger
}

func NewServer(prices market.PriceSource, sentiment backtest.SentimentSource, cfg backtest.Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		prices:    prices,
		sentiment: sentiment,
		cfg:       cfg,
		log:       log,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	{
		api.GET("/backtest/:symbol", s.handleBacktest)
		api.GET("/sentiment/:symbol", s.handleSentiment)
	}

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleBacktest runs a backtest for the symbol.
//
// GET /api/backtest/AAPL?days=90&capital=10000
func (s *Server) handleBacktest(c *gin.Context) {
	symbol := c.Param("symbol")

	days, err := strconv.Atoi(c.DefaultQuery("days", "90"))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "days must be a positive integer"})
		return
	}

	cfg := s.cfg
	if capStr := c.Query("capital"); capStr != "" {
		capital, err := strconv.ParseFloat(capStr, 64)
		if err != nil || capital <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "capital must be a positive number"})
			return
		}
		cfg.InitialCapital = capital
	}

	runner, err := backtest.NewRunner(s.prices, s.sentiment, cfg, s.log)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	res, err := runner.Run(c.Request.Context(), symbol, days)
	if err != nil {
		s.log.Error("backtest failed", "symbol", symbol, "error", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, newBacktestResponse(res))
}

// handleSentiment returns a single day's sentiment score.
//
// GET /api/sentiment/AAPL?date=2024-03-15
func (s *Server) handleSentiment(c *gin.Context) {
	symbol := c.Param("symbol")

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	score, err := s.sentiment.SentimentAt(c.Request.Context(), symbol, date, 0, 1)
	if err != nil {
		s.log.Error("sentiment lookup failed", "symbol", symbol, "error", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SentimentResponse{
		Symbol:    symbol,
		Date:      date.Format("2006-01-02"),
		Sentiment: score,
	})
}
