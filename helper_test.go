package stockwatch

import (
	"fmt"

	"github.com/etnz/stockwatch/date"
)

// seriesStart is the first day of every test series.
var seriesStart = date.MustParse("2025-01-01")

// seriesOf is a helper for tests to build a price series from consecutive
// daily closes.
func seriesOf(ticker string, prices ...float64) PriceSeries {
	bars := make([]Bar, 0, len(prices))
	for i, p := range prices {
		b := NewBar(seriesStart.Add(i))
		b.Close = p
		bars = append(bars, b)
	}
	s, err := NewPriceSeries(ticker, bars)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// constantSeries is a helper for tests to build a flat price series.
func constantSeries(ticker string, price float64, n int) PriceSeries {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = price
	}
	return seriesOf(ticker, prices...)
}

// fakeMarket is an in-memory market data provider for tests. A ticker that
// is not in the map behaves like a provider failure.
type fakeMarket map[string][]float64

func (m fakeMarket) Daily(ticker string, _ date.Lookback) (PriceSeries, error) {
	prices, ok := m[ticker]
	if !ok || len(prices) == 0 {
		return PriceSeries{}, fmt.Errorf("no data for %s", ticker)
	}
	return seriesOf(ticker, prices...), nil
}
