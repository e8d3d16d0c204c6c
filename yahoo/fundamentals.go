package yahoo

import (
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/stockwatch"
)

// quoteSummary modules carrying the fundamental fields we read.
const quoteSummaryModules = "defaultKeyStatistics,financialData,summaryDetail,quoteType"

// Fundamentals returns the sparse fundamentals snapshot of a ticker from the
// v10 quoteSummary endpoint. Individual fields missing from the payload are
// simply unavailable, not errors.
func (c *Client) Fundamentals(ticker string) (stockwatch.Fundamentals, error) {
	addr := fmt.Sprintf("https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=%s",
		url.PathEscape(ticker), url.QueryEscape(quoteSummaryModules))

	var doc any
	if err := jwget(c.http, addr, &doc); err != nil {
		return stockwatch.Fundamentals{}, fmt.Errorf("cannot fetch fundamentals for %s: %w", ticker, err)
	}
	return fundamentalsFrom(ticker, doc)
}

// fundamentalsFrom extracts the fundamental fields out of a decoded
// quoteSummary document.
func fundamentalsFrom(ticker string, doc any) (stockwatch.Fundamentals, error) {
	if _, err := jsonpath.Get("$.quoteSummary.result[0]", doc); err != nil {
		return stockwatch.Fundamentals{}, fmt.Errorf("no fundamentals for %s: %w", ticker, err)
	}

	f := stockwatch.Fundamentals{Ticker: ticker}
	f.QuoteType = jstring(doc, "$.quoteSummary.result[0].quoteType.quoteType")
	f.SharesOutstanding = jmetric(doc, "$.quoteSummary.result[0].defaultKeyStatistics.sharesOutstanding.raw")
	f.TrailingEPS = jmetric(doc, "$.quoteSummary.result[0].defaultKeyStatistics.trailingEps.raw")
	f.PriceToBook = jmetric(doc, "$.quoteSummary.result[0].defaultKeyStatistics.priceToBook.raw")
	f.PEGRatio = jmetric(doc, "$.quoteSummary.result[0].defaultKeyStatistics.pegRatio.raw")
	f.DebtToEquity = jmetric(doc, "$.quoteSummary.result[0].financialData.debtToEquity.raw")
	f.EBITDA = jmetric(doc, "$.quoteSummary.result[0].financialData.ebitda.raw")
	f.DividendYield = jmetric(doc, "$.quoteSummary.result[0].summaryDetail.trailingAnnualDividendYield.raw")
	return f, nil
}

// jmetric reads a single float at a jsonpath, unavailable when the path or
// the type doesn't match.
func jmetric(doc any, path string) stockwatch.Metric {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return stockwatch.Unavailable
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return stockwatch.Unavailable
	}
	return stockwatch.AvailableMetric(val)
}

// jstring reads a single string at a jsonpath, empty when absent.
func jstring(doc any, path string) string {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return ""
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}
