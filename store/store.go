// Package store persists price history and valuation snapshots in a local
// SQLite database, and writes the CSV report files of the daily workflow.
package store

import (
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/etnz/stockwatch"
	"github.com/etnz/stockwatch/date"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS finance_price_history (
	date      TEXT NOT NULL,
	ticker    TEXT NOT NULL,
	open      REAL,
	high      REAL,
	low       REAL,
	close     REAL,
	adj_close REAL,
	volume    REAL,
	PRIMARY KEY (date, ticker)
);
CREATE TABLE IF NOT EXISTS finance_fundamentals (
	date           TEXT NOT NULL,
	ticker         TEXT NOT NULL,
	market_cap     REAL,
	pe_ratio       REAL,
	dividend_yield REAL,
	PRIMARY KEY (date, ticker)
);`

// Store is a SQLite-backed archive of daily prices and fundamentals.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cannot create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// LastDay returns the most recent stored price date for a ticker, and
// whether any row exists.
func (s *Store) LastDay(ticker string) (date.Date, bool, error) {
	var day sql.NullString
	err := s.db.QueryRow(`SELECT MAX(date) FROM finance_price_history WHERE ticker = ?`, ticker).Scan(&day)
	if err != nil {
		return date.Date{}, false, err
	}
	if !day.Valid {
		return date.Date{}, false, nil
	}
	d, err := date.Parse(day.String)
	if err != nil {
		return date.Date{}, false, fmt.Errorf("invalid stored date %q for %s: %w", day.String, ticker, err)
	}
	return d, true, nil
}

// SavePrices upserts the bars of a ticker that are newer than the stored
// history, and returns how many rows were written. Absent price fields are
// stored as NULL.
func (s *Store) SavePrices(ticker string, bars []stockwatch.Bar) (int, error) {
	last, has, err := s.LastDay(ticker)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO finance_price_history
		(date, ticker, open, high, low, close, adj_close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	n := 0
	for _, b := range bars {
		if has && !b.Day.After(last) {
			continue
		}
		_, err := stmt.Exec(b.Day.String(), ticker,
			nullable(b.Open), nullable(b.High), nullable(b.Low),
			nullable(b.Close), nullable(b.AdjClose), nullable(b.Volume))
		if err != nil {
			return 0, fmt.Errorf("cannot store %s %s: %w", ticker, b.Day, err)
		}
		n++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// Prices returns the full stored price history of a ticker in chronological
// order.
func (s *Store) Prices(ticker string) ([]stockwatch.Bar, error) {
	rows, err := s.db.Query(`
		SELECT date, open, high, low, close, adj_close, volume
		FROM finance_price_history WHERE ticker = ? ORDER BY date`, ticker)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bars []stockwatch.Bar
	for rows.Next() {
		var day string
		var open, high, low, cls, adj, vol sql.NullFloat64
		if err := rows.Scan(&day, &open, &high, &low, &cls, &adj, &vol); err != nil {
			return nil, err
		}
		d, err := date.Parse(day)
		if err != nil {
			return nil, fmt.Errorf("invalid stored date %q for %s: %w", day, ticker, err)
		}
		b := stockwatch.NewBar(d)
		b.Open, b.High, b.Low = value(open), value(high), value(low)
		b.Close, b.AdjClose, b.Volume = value(cls), value(adj), value(vol)
		bars = append(bars, b)
	}
	return bars, rows.Err()
}

// SaveValuation upserts the fundamentals snapshot of one instrument for one
// day. Unavailable metrics are stored as NULL.
func (s *Store) SaveValuation(day date.Date, v stockwatch.Valuation) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO finance_fundamentals
		(date, ticker, market_cap, pe_ratio, dividend_yield)
		VALUES (?, ?, ?, ?, ?)`,
		day.String(), v.Ticker,
		nullMetric(v.MarketCap), nullMetric(v.PERatio), nullMetric(v.DividendYield))
	if err != nil {
		return fmt.Errorf("cannot store valuation of %s: %w", v.Ticker, err)
	}
	return nil
}

// LatestValuation returns the most recent stored fundamentals row of a
// ticker. The bool reports whether one exists.
func (s *Store) LatestValuation(ticker string) (day date.Date, marketCap, peRatio, dividendYield stockwatch.Metric, ok bool, err error) {
	var ds string
	var mc, pe, dy sql.NullFloat64
	err = s.db.QueryRow(`
		SELECT date, market_cap, pe_ratio, dividend_yield
		FROM finance_fundamentals WHERE ticker = ? ORDER BY date DESC LIMIT 1`, ticker).
		Scan(&ds, &mc, &pe, &dy)
	if err == sql.ErrNoRows {
		return date.Date{}, stockwatch.Unavailable, stockwatch.Unavailable, stockwatch.Unavailable, false, nil
	}
	if err != nil {
		return
	}
	day, err = date.Parse(ds)
	if err != nil {
		return
	}
	return day, metric(mc), metric(pe), metric(dy), true, nil
}

// nullable maps an absent (NaN) float to NULL.
func nullable(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

// value maps a NULL column back to NaN.
func value(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

func nullMetric(m stockwatch.Metric) any {
	if v, ok := m.Value(); ok {
		return v
	}
	return nil
}

func metric(v sql.NullFloat64) stockwatch.Metric {
	if !v.Valid {
		return stockwatch.Unavailable
	}
	return stockwatch.AvailableMetric(v.Float64)
}
