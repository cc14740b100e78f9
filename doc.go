// Package tradestats derives portfolio performance statistics and current
// holdings from a ledger of buy and sell trades.
//
// A ledger is a chronological list of [TradeRecord]. Each record carries the
// trade itself (symbol, side, quantity, unit price and total value) and the
// portfolio value recorded right after the trade. The package trusts that
// running value as the ground truth for performance: it never revalues the
// portfolio from prices.
//
// The analytics engine is made of pure functions over an immutable [Ledger]:
//   - [ComputePerformance] and [ComputeWindowPerformance] compute cumulative and
//     annualized return, volatility, Sharpe ratio and maximum drawdown over the
//     whole ledger or an inclusive date window.
//   - [ComputePositions] nets the quantities traded per symbol, values each open
//     position at the symbol's last traded price and weights it by exposure.
//   - [Analyze] combines them into a [Report]: the full period, one window per
//     calendar year found in the ledger (computed concurrently) and the
//     positions.
//
// Everything is date-level, single currency and uses average position
// accounting: there is no tax-lot tracking, no market data and no intraday
// analysis.
//
// Ledgers are read and written in CSV, TSV, XLSX and JSONL (see [DecodeLedger]
// and [EncodeLedger]) and the renderer package turns a [Report] into markdown.
// The pts command is the command-line front end of this package.
package tradestats
