// Package renderer turns reports into markdown suitable for the console or
// for archiving alongside the CSV files.
package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/etnz/stockwatch"
)

// usd formats a metric as a USD amount, "-" when unavailable.
func usd(m stockwatch.Metric) string {
	v, ok := m.Value()
	if !ok {
		return "-"
	}
	return money.NewFromFloat(v, money.USD).Display()
}

// pct formats a metric holding a fraction as a signed percentage, "-" when
// unavailable.
func pct(m stockwatch.Metric) string {
	p, ok := m.Percent()
	if !ok {
		return "-"
	}
	return p.SignedString()
}

// pctPlain is pct without the sign convention, for metrics like drawdown
// where a zero is meaningful.
func pctPlain(m stockwatch.Metric) string {
	p, ok := m.Percent()
	if !ok {
		return "-"
	}
	return p.String()
}
