package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/stockwatch"
	md "github.com/nao1215/markdown"
)

// ValuationMarkdown renders a valuation snapshot of one or more instruments.
func ValuationMarkdown(valuations []stockwatch.Valuation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Valuation")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Ticker",
			"Price",
			"Market Cap",
			"P/E",
			"P/B",
			"Debt/Equity",
			"Dividend Yield",
		},
	}
	for _, v := range valuations {
		table.Rows = append(table.Rows, []string{
			v.Ticker,
			usd(v.LatestPrice),
			compactUSD(v.MarketCap),
			ratio(v.PERatio),
			ratio(v.PriceToBook),
			ratio(v.DebtToEquity),
			pctPlain(v.DividendYield),
		})
	}
	doc.Table(table)

	return doc.String()
}

// ratio formats a plain ratio with two decimals, "-" when unavailable.
func ratio(m stockwatch.Metric) string {
	v, ok := m.Value()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

// compactUSD renders large dollar amounts with a B/M suffix so market caps
// stay readable.
func compactUSD(m stockwatch.Metric) string {
	v, ok := m.Value()
	if !ok {
		return "-"
	}
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	}
	return usd(m)
}
