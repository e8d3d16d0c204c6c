package stockwatch

import (
	"fmt"
	"iter"
	"math"

	"github.com/etnz/stockwatch/date"
)

// Bar is a single raw daily observation as returned by a market data
// provider. Fields the provider did not supply are NaN, never zero.
type Bar struct {
	Day      date.Date
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   float64
}

// NewBar returns a Bar with every price field marked absent.
func NewBar(day date.Date) Bar {
	nan := math.NaN()
	return Bar{Day: day, Open: nan, High: nan, Low: nan, Close: nan, AdjClose: nan, Volume: nan}
}

// PriceSeries is an ordered series of daily prices for one instrument,
// ascending by date with no duplicate dates.
//
// It is built from raw provider bars by selecting the best available price
// field: the adjusted close when the provider supplied one anywhere in the
// response, the raw close otherwise.
type PriceSeries struct {
	ticker string
	prices date.History[float64]
}

// NewPriceSeries builds a price series from raw daily bars.
//
// Days where the selected price field is absent are skipped. The series is
// invalid (an error) when no bar carries an adjusted close nor a close, or
// when no usable observation remains.
func NewPriceSeries(ticker string, bars []Bar) (PriceSeries, error) {
	hasAdj := false
	hasClose := false
	for _, b := range bars {
		hasAdj = hasAdj || !math.IsNaN(b.AdjClose)
		hasClose = hasClose || !math.IsNaN(b.Close)
	}
	if !hasAdj && !hasClose {
		return PriceSeries{}, fmt.Errorf("series %s has no usable price field (adjusted close or close)", ticker)
	}

	s := PriceSeries{ticker: ticker}
	for _, b := range bars {
		price := b.Close
		if hasAdj {
			price = b.AdjClose
		}
		if math.IsNaN(price) {
			continue
		}
		s.prices.Append(b.Day, price)
	}
	if s.prices.Len() == 0 {
		return PriceSeries{}, fmt.Errorf("series %s is empty", ticker)
	}
	return s, nil
}

// Ticker returns the instrument identifier of the series.
func (s PriceSeries) Ticker() string { return s.ticker }

// Len returns the number of observations.
func (s PriceSeries) Len() int { return s.prices.Len() }

// First returns the earliest observation.
func (s PriceSeries) First() (date.Date, float64) { return s.prices.First() }

// Latest returns the most recent observation.
func (s PriceSeries) Latest() (date.Date, float64) { return s.prices.Latest() }

// Values returns an iterator over all observations in chronological order.
func (s PriceSeries) Values() iter.Seq2[date.Date, float64] { return s.prices.Values() }

// Returns derives the simple periodic returns r = p_t/p_{t-1} - 1 between
// consecutive observations. Its length is Len()-1.
func (s PriceSeries) Returns() []float64 {
	if s.prices.Len() < 2 {
		return nil
	}
	returns := make([]float64, 0, s.prices.Len()-1)
	prev := math.NaN()
	for _, price := range s.prices.Values() {
		if !math.IsNaN(prev) {
			returns = append(returns, price/prev-1)
		}
		prev = price
	}
	return returns
}
