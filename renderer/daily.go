package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/stockwatch"
	md "github.com/nao1215/markdown"
)

// DailyMarkdown renders the end-of-day summary: market breadth, sector mean
// returns, and the best and worst performers.
func DailyMarkdown(r *stockwatch.DailyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Daily Report %s", r.Date))

	doc.H2("Market Breadth")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Breadth", "Count"},
		Rows: [][]string{
			{"Advancing", fmt.Sprintf("%d", r.Winners)},
			{"Declining", fmt.Sprintf("%d", r.Losers)},
		},
	})

	if len(r.Sectors) > 0 {
		doc.H2("Sectors")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"GICS Sector", "Mean Return", "Members"},
		}
		for _, s := range r.Sectors {
			table.Rows = append(table.Rows, []string{
				s.Sector,
				pct(s.MeanReturn),
				fmt.Sprintf("%d", s.Count),
			})
		}
		doc.Table(table)
	}

	if len(r.Top) > 0 {
		doc.H2("Top Performers")
		doc.Table(rankingTable(r.Top))
	}
	if len(r.Bottom) > 0 {
		doc.H2("Bottom Performers")
		doc.Table(rankingTable(r.Bottom))
	}

	return doc.String()
}

func rankingTable(records []stockwatch.PerformanceRecord) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Ticker", "Total", "Price"},
	}
	for _, rec := range records {
		table.Rows = append(table.Rows, []string{
			rec.Ticker,
			pct(rec.TotalReturn),
			usd(rec.LatestPrice),
		})
	}
	return table
}
