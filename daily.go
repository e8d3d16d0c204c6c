package stockwatch

import (
	"sort"

	"github.com/etnz/stockwatch/date"
)

// DailyReport is the end-of-day console summary derived from a performance
// report: market breadth, mean return per sector, and the best and worst
// performers.
type DailyReport struct {
	Date     date.Date
	Lookback date.Lookback
	Winners  int // instruments with a positive total return
	Losers   int // instruments with a negative total return
	Sectors  []SectorPerformance
	Top      []PerformanceRecord
	Bottom   []PerformanceRecord
}

// SectorPerformance is the mean total return of the instruments of one GICS
// sector.
type SectorPerformance struct {
	Sector     string
	MeanReturn Metric
	Count      int
}

// reportDepth is how many top and bottom performers the daily report keeps.
const reportDepth = 5

// NewDailyReport derives the daily summary from a performance report.
// Records with an unavailable total return count neither as winners nor as
// losers and are excluded from the rankings.
func NewDailyReport(report *PerformanceReport) *DailyReport {
	d := &DailyReport{Date: report.Date, Lookback: report.Lookback}

	// Records are already sorted by descending total return with
	// unavailable ones last.
	var ranked []PerformanceRecord
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range report.Records {
		value, ok := rec.TotalReturn.Value()
		if !ok {
			continue
		}
		ranked = append(ranked, rec)
		switch {
		case value > 0:
			d.Winners++
		case value < 0:
			d.Losers++
		}
		if rec.Sector != "" {
			sums[rec.Sector] += value
			counts[rec.Sector]++
		}
	}

	d.Top = topOf(ranked, reportDepth)
	d.Bottom = bottomOf(ranked, reportDepth)

	for sector, count := range counts {
		d.Sectors = append(d.Sectors, SectorPerformance{
			Sector:     sector,
			MeanReturn: AvailableMetric(sums[sector] / float64(count)),
			Count:      count,
		})
	}
	sort.Slice(d.Sectors, func(i, j int) bool {
		vi, _ := d.Sectors[i].MeanReturn.Value()
		vj, _ := d.Sectors[j].MeanReturn.Value()
		if vi != vj {
			return vi > vj
		}
		return d.Sectors[i].Sector < d.Sectors[j].Sector
	})
	return d
}

func topOf(ranked []PerformanceRecord, n int) []PerformanceRecord {
	if len(ranked) < n {
		n = len(ranked)
	}
	return ranked[:n]
}

// bottomOf returns the n worst performers, worst first.
func bottomOf(ranked []PerformanceRecord, n int) []PerformanceRecord {
	if len(ranked) < n {
		n = len(ranked)
	}
	bottom := make([]PerformanceRecord, 0, n)
	for i := len(ranked) - 1; i >= len(ranked)-n; i-- {
		bottom = append(bottom, ranked[i])
	}
	return bottom
}
