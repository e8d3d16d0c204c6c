package stockwatch

import "github.com/shopspring/decimal"

// Fundamentals is a sparse snapshot of the named fundamental fields a
// provider knows about one instrument. Any field may be unavailable.
type Fundamentals struct {
	Ticker            string
	QuoteType         string // provider classification, e.g. "EQUITY" or "ETF"
	SharesOutstanding Metric
	TrailingEPS       Metric
	PriceToBook       Metric
	PEGRatio          Metric
	DebtToEquity      Metric
	EBITDA            Metric
	DividendYield     Metric
}

// FundamentalsData is the fundamentals provider collaborator.
type FundamentalsData interface {
	Fundamentals(ticker string) (Fundamentals, error)
}

// Valuation holds per-instrument valuation metrics derived from the latest
// price and the fundamentals snapshot.
type Valuation struct {
	Ticker        string
	QuoteType     string
	LatestPrice   Metric
	MarketCap     Metric // latest price x shares outstanding
	PERatio       Metric // latest price / trailing EPS (approximation)
	PriceToBook   Metric
	PEGRatio      Metric
	DebtToEquity  Metric
	EBITDA        Metric
	DividendYield Metric
}

// NewValuation derives the valuation metrics of one instrument. The
// price x shares product is computed in decimal arithmetic: share counts in
// the billions multiplied by prices lose precision as plain floats.
func NewValuation(f Fundamentals, latestPrice Metric) Valuation {
	v := Valuation{
		Ticker:        f.Ticker,
		QuoteType:     f.QuoteType,
		LatestPrice:   latestPrice,
		PriceToBook:   f.PriceToBook,
		PEGRatio:      f.PEGRatio,
		DebtToEquity:  f.DebtToEquity,
		EBITDA:        f.EBITDA,
		DividendYield: f.DividendYield,
	}

	price, ok := latestPrice.Value()
	if !ok {
		return v
	}

	if shares, sok := f.SharesOutstanding.Value(); sok {
		mcap := decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(shares))
		v.MarketCap = AvailableMetric(mcap.InexactFloat64())
	}
	if eps, eok := f.TrailingEPS.Value(); eok && eps != 0 {
		pe := decimal.NewFromFloat(price).Div(decimal.NewFromFloat(eps))
		v.PERatio = AvailableMetric(pe.InexactFloat64())
	}
	return v
}
