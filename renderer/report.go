package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/tradestats"
	"github.com/etnz/tradestats/date"
	md "github.com/nao1215/markdown"
)

// DashboardOptions selects the sections of the dashboard.
type DashboardOptions struct {
	SkipYearly    bool
	SkipPositions bool
	SkipValues    bool

	SortByWeight bool        // positions by decreasing weight instead of ledger order.
	ValuesPeriod date.Period // sampling of the value series, Daily lists every recorded day.
}

// DashboardMarkdown renders every section of the report in a single document.
func DashboardMarkdown(r *tradestats.Report, opts DashboardOptions) string {
	var b strings.Builder
	b.WriteString(SummaryMarkdown(r))
	if !opts.SkipYearly {
		b.WriteString("\n")
		b.WriteString(YearlyMarkdown(r))
	}
	if !opts.SkipPositions {
		b.WriteString("\n")
		b.WriteString(PositionsMarkdown(r, opts.SortByWeight))
	}
	if !opts.SkipValues {
		b.WriteString("\n")
		b.WriteString(ValuesMarkdown(r, opts.ValuesPeriod))
	}
	return b.String()
}

// SummaryMarkdown renders the full period performance.
func SummaryMarkdown(r *tradestats.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	s := r.Full
	doc.H1("Portfolio Performance")
	doc.PlainText(fmt.Sprintf("Analysis period: %s to %s (%d days, %d trades)", s.StartDate, s.EndDate, s.Days, s.Trades))

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Start Value", s.StartValue.String()},
			{"End Value", s.EndValue.String()},
			{"Cumulative Return", s.CumulativeReturn.String()},
			{"Annualized Return", s.AnnualizedReturn.String()},
			{"Volatility", s.Volatility.String()},
			{"Sharpe Ratio", ratio(s.SharpeRatio)},
			{"Max Drawdown", s.MaxDrawdown.String()},
		},
	})
	if s.ZeroStart {
		doc.PlainText("The first portfolio value is zero, the cumulative return is reported as 0.")
	}
	return doc.String()
}

// YearlyMarkdown renders one row per calendar year with trades.
func YearlyMarkdown(r *tradestats.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Yearly Performance")
	if len(r.Years) == 0 {
		doc.PlainText("No yearly performance data to display.")
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Years))
	for _, year := range r.Years {
		s := r.Yearly[year]
		rows = append(rows, []string{
			strconv.Itoa(year),
			s.Period().String(),
			strconv.Itoa(s.Trades),
			s.EndValue.String(),
			s.CumulativeReturn.SignedString(),
			s.AnnualizedReturn.SignedString(),
			ratio(s.SharpeRatio),
			s.MaxDrawdown.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Year", "Period", "Trades", "Year End Value", "Cumulative Return", "Annualized Return", "Sharpe Ratio", "Max Drawdown"},
		Rows:   rows,
	})
	return doc.String()
}

// PositionsMarkdown renders the open positions and their weights.
func PositionsMarkdown(r *tradestats.Report, byWeight bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Positions")
	positions := r.Positions
	if len(positions) == 0 {
		doc.PlainText("No open position.")
		return doc.String()
	}
	if byWeight {
		positions = append([]tradestats.PositionRecord(nil), positions...)
		tradestats.SortPositionsByWeight(positions)
	}

	rows := make([][]string, 0, len(positions))
	for _, p := range positions {
		rows = append(rows, []string{
			p.Symbol,
			p.NetQuantity.String(),
			p.LastPrice.String(),
			p.CurrentValue.String(),
			p.Weight.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Net Quantity", "Price", "Current Value", "Weight"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Total portfolio exposure: %s", r.TotalExposure))
	return doc.String()
}

// barWidth is the width of the largest bar in the value chart.
const barWidth = 30

// ValuesMarkdown renders the portfolio value at the end of each period, with
// a bar proportional to the value.
func ValuesMarkdown(r *tradestats.Report, period date.Period) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Portfolio Value")
	if r.Values.Len() == 0 {
		doc.PlainText("No portfolio value recorded.")
		return doc.String()
	}

	type point struct {
		label string
		value float64
	}
	var points []point
	if period == date.Daily {
		for day, v := range r.Values.Values() {
			points = append(points, point{day.String(), v})
		}
	} else {
		for p := range r.Range.Periods(period) {
			end := p.To
			if end.After(r.Range.To) {
				end = r.Range.To
			}
			v, ok := r.Values.ValueAsOf(end)
			if !ok {
				continue
			}
			points = append(points, point{p.Identifier(), v})
		}
	}

	var top float64
	for _, p := range points {
		top = max(top, p.value)
	}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			p.label,
			tradestats.M(p.value, r.Currency).String(),
			bar(p.value, top),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Period", "Value", ""},
		Rows:   rows,
	})
	return doc.String()
}

func bar(v, top float64) string {
	if top <= 0 || v <= 0 {
		return ""
	}
	n := int(v / top * barWidth)
	return strings.Repeat("█", max(n, 1))
}

// ratio formats a plain ratio with two decimals.
func ratio(x float64) string { return fmt.Sprintf("%.2f", x) }

// FormatMarkdown describes the columns a ledger file must have, with a sample.
func FormatMarkdown() string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Required Data Format")
	doc.PlainText("A ledger file must contain the following columns, with a header row:")
	doc.BulletList(
		"**Date**: trade date (YYYY-MM-DD)",
		"**Symbol**: security symbol",
		"**Type**: trade type (Buy/Sell)",
		"**Quantity**: number of shares, a whole number",
		"**Price**: unit price",
		"**Total Value**: trade amount",
		"**Portfolio Value**: total portfolio value after the trade",
	)

	doc.H2("Sample")
	doc.Table(md.TableSet{
		Header: tradestats.Columns,
		Rows: [][]string{
			{"2024-01-02", "AAPL", "Buy", "10", "150", "1500", "5000"},
			{"2024-01-05", "TSLA", "Buy", "5", "700", "3500", "9000"},
			{"2024-01-10", "AAPL", "Sell", "5", "160", "800", "10000"},
			{"2024-01-15", "MSFT", "Buy", "8", "300", "2400", "12500"},
			{"2024-01-20", "TSLA", "Sell", "2", "750", "1500", "14000"},
		},
	})

	doc.H2("Supported Files")
	doc.BulletList(
		"CSV file (.csv)",
		"Excel file (.xlsx), first sheet",
		"Text file (.txt or .tsv), tab separated",
		"JSON lines (.jsonl), one trade object per line",
		"JSON (.json), an array of trade objects",
	)
	return doc.String()
}
