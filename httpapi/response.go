package httpapi

import (
	"time"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/backtest"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SentimentResponse struct {
	Symbol    string  `json:"symbol"`
	Date      string  `json:"date"`
	Sentiment float64 `json:"sentiment"`
}

type BacktestResponse struct {
	Symbol         string           `json:"symbol"`
	InitialCapital float64          `json:"initial_capital"`
	TradingDays    int              `json:"trading_days"`
	Metrics        backtest.Metrics `json:"metrics"`
	Trades         []TradeResponse  `json:"trades"`
	Daily          []DailyResponse  `json:"daily"`
}

type TradeResponse struct {
	Date          string  `json:"date"`
	Action        string  `json:"action"`
	Price         float64 `json:"price"`
	Shares        float64 `json:"shares"`
	Amount        float64 `json:"amount"`
	Sentiment     float64 `json:"sentiment"`
	CashAfter     float64 `json:"cash_after"`
	HoldingsAfter float64 `json:"holdings_after"`
}

type DailyResponse struct {
	Date           string  `json:"date"`
	Price          float64 `json:"price"`
	Sentiment      float64 `json:"sentiment"`
	Signal         string  `json:"signal"`
	PortfolioValue float64 `json:"portfolio_value"`
	BuyHoldValue   float64 `json:"buy_hold_value"`
}

func newBacktestResponse(res *backtest.Result) BacktestResponse {
	trades := make([]TradeResponse, 0, len(res.Trades))
	for _, tr := range res.Trades {
		trades = append(trades, TradeResponse{
			Date:          fmtDate(tr.Timestamp),
			Action:        string(tr.Action),
			Price:         tr.Price,
			Shares:        tr.Shares,
			Amount:        tr.Amount,
			Sentiment:     tr.Sentiment,
			CashAfter:     tr.CashAfter,
			HoldingsAfter: tr.HoldingsAfter,
		})
	}

	daily := make([]DailyResponse, 0, len(res.Daily))
	for _, d := range res.Daily {
		daily = append(daily, DailyResponse{
			Date:           fmtDate(d.Date),
			Price:          d.Price,
			Sentiment:      d.Sentiment,
			Signal:         string(d.Signal),
			PortfolioValue: d.PortfolioValue,
			BuyHoldValue:   d.BuyHoldValue,
		})
	}

	return BacktestResponse{
		Symbol:         res.Symbol,
		InitialCapital: res.InitialCapital,
		TradingDays:    len(res.Daily),
		Metrics:        res.Metrics,
		Trades:         trades,
		Daily:          daily,
	}
}

func fmtDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
