// Package sample generates synthetic trade ledgers.
//
// Prices follow a random walk over business days, one trade happens every
// Friday. The same Config always generates the same ledger.
package sample

import (
	"math/rand/v2"
	"time"

	"github.com/etnz/tradestats"
	"github.com/etnz/tradestats/date"
	"gonum.org/v1/gonum/stat/distuv"
)

// Config parameterizes the generator.
type Config struct {
	Seed         uint64
	Tickers      []string
	Start, End   date.Date
	InitialValue float64
	Currency     string

	// Volatility is the standard deviation of the daily price increments,
	// relative to the base price.
	Volatility float64
}

// DefaultConfig returns five tickers traded from 2022 to 2024 with a 10000
// initial portfolio value.
func DefaultConfig() Config {
	return Config{
		Seed:         42,
		Tickers:      []string{"AAPL", "MSFT", "NVDA", "TSLA", "AMZN"},
		Start:        date.New(2022, time.January, 1),
		End:          date.New(2024, time.December, 31),
		InitialValue: 10000,
		Volatility:   0.02,
	}
}

// minPrice is the floor of generated prices, a random walk can go below zero.
const minPrice = 0.01

// Generate returns the ledger for cfg.
//
// On each Friday a ticker is picked at random. It is bought when the ledger
// holds none of it, otherwise bought or sold at random. Buys are 1 to 19
// shares, sells at most the held quantity. The portfolio value moves by the
// trade total value: up on buys, down on sells.
func Generate(cfg Config) *tradestats.Ledger {
	if len(cfg.Tickers) == 0 {
		return tradestats.NewLedger()
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	step := distuv.Normal{Mu: 0, Sigma: cfg.Volatility, Src: rng}

	base := make([]float64, len(cfg.Tickers))
	walk := make([]float64, len(cfg.Tickers))
	for i := range base {
		base[i] = float64(100 + rng.IntN(900))
	}
	holdings := make([]int64, len(cfg.Tickers))
	value := tradestats.M(cfg.InitialValue, cfg.Currency).Round()

	var records []tradestats.TradeRecord
	for day := cfg.Start; !day.After(cfg.End); day = day.Add(1) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		for i := range walk {
			walk[i] += step.Rand()
		}
		if day.Weekday() != time.Friday {
			continue
		}

		i := rng.IntN(len(cfg.Tickers))
		price := tradestats.M(max(base[i]*(1+walk[i]), minPrice), cfg.Currency).Round()

		side := tradestats.Buy
		if holdings[i] > 0 && rng.IntN(2) == 1 {
			side = tradestats.Sell
		}
		var qty int64
		if side == tradestats.Buy {
			qty = 1 + rng.Int64N(19)
			holdings[i] += qty
		} else {
			qty = 1 + rng.Int64N(holdings[i])
			holdings[i] -= qty
		}

		rec := tradestats.NewTrade(day, cfg.Tickers[i], side, tradestats.Q(qty), price, tradestats.Money{})
		if side == tradestats.Buy {
			value = value.Add(rec.TotalValue)
		} else {
			value = value.Sub(rec.TotalValue)
		}
		rec.PortfolioValue = value
		records = append(records, rec)
	}
	return tradestats.NewLedger(records...)
}
