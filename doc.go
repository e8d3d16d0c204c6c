// Package stockwatch is a personal finance toolkit that downloads stock
// market data, computes valuation and performance metrics, and renders
// charts, CSV reports, and console reports.
//
// The core of the package is the performance summary engine: given a set of
// instruments, a lookback window and a benchmark, it produces one
// PerformanceRecord per instrument (total and annualized return, annualized
// volatility, Sharpe ratio, max drawdown, latest price and return relative
// to the benchmark), sorted by descending total return.
//
// Market data and fundamentals are supplied by provider collaborators (see
// the yahoo subpackage); persistence and presentation are handled by the
// store, chart and renderer subpackages, orchestrated by the sw command.
package stockwatch
