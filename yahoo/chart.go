package yahoo

import (
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/etnz/stockwatch"
	"github.com/etnz/stockwatch/date"
)

// chartResponse is the payload of the v8 chart endpoint.
//
//	{ "chart": { "result": [ {
//	    "timestamp": [1735829400, ...],
//	    "indicators": {
//	      "quote": [ { "open": [...], "close": [...], ... } ],
//	      "adjclose": [ { "adjclose": [...] } ]
//	    } } ],
//	  "error": null } }
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*float64 `json:"volume"`
		} `json:"quote"`
		AdjClose []struct {
			AdjClose []*float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

// Daily returns the daily price series of a ticker over a lookback window.
func (c *Client) Daily(ticker string, lookback date.Lookback) (stockwatch.PriceSeries, error) {
	bars, err := c.History(ticker, lookback)
	if err != nil {
		return stockwatch.PriceSeries{}, err
	}
	return stockwatch.NewPriceSeries(ticker, bars)
}

// History returns the raw daily bars of a ticker over a lookback window,
// suitable for persistence.
func (c *Client) History(ticker string, lookback date.Lookback) ([]stockwatch.Bar, error) {
	addr := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?range=%s&interval=1d",
		url.PathEscape(ticker), lookback)

	var content chartResponse
	if err := jwget(c.http, addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch chart for %s: %w", ticker, err)
	}
	return content.bars(ticker)
}

// bars converts the columnar chart payload into daily bars, with NaN for
// every field the provider left null.
func (r *chartResponse) bars(ticker string) ([]stockwatch.Bar, error) {
	if e := r.Chart.Error; e != nil {
		return nil, fmt.Errorf("chart error for %s: %s: %s", ticker, e.Code, e.Description)
	}
	if len(r.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart result for %s", ticker)
	}
	result := r.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("empty chart for %s", ticker)
	}

	quote := result.Indicators.Quote[0]
	var adjclose []*float64
	if len(result.Indicators.AdjClose) > 0 {
		adjclose = result.Indicators.AdjClose[0].AdjClose
	}

	bars := make([]stockwatch.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		b := stockwatch.NewBar(date.FromTime(time.Unix(ts, 0).UTC()))
		b.Open = deref(quote.Open, i)
		b.High = deref(quote.High, i)
		b.Low = deref(quote.Low, i)
		b.Close = deref(quote.Close, i)
		b.Volume = deref(quote.Volume, i)
		b.AdjClose = deref(adjclose, i)
		bars = append(bars, b)
	}
	return bars, nil
}

// deref reads column[i], NaN when the column is short or the cell is null.
func deref(column []*float64, i int) float64 {
	if i >= len(column) || column[i] == nil {
		return math.NaN()
	}
	return *column[i]
}
