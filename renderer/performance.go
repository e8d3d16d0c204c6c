package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/stockwatch"
	md "github.com/nao1215/markdown"
)

// PerformanceMarkdown renders a performance report as a markdown table, one
// row per instrument in report order.
func PerformanceMarkdown(r *stockwatch.PerformanceReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance %s", r.Lookback))
	doc.PlainText(fmt.Sprintf("%s, vs %s", r.Date, r.Benchmark))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Ticker",
			"Total",
			"Annualized",
			"Volatility",
			"Sharpe",
			"Max DD",
			"Price",
			"vs " + r.Benchmark,
		},
	}
	for _, rec := range r.Records {
		table.Rows = append(table.Rows, []string{
			rec.Ticker,
			pct(rec.TotalReturn),
			pct(rec.AnnualizedReturn),
			pct(rec.Volatility),
			rec.Sharpe.String(),
			pctPlain(rec.MaxDrawdown),
			usd(rec.LatestPrice),
			pct(rec.VsBenchmark),
		})
	}
	doc.Table(table)

	return doc.String()
}
