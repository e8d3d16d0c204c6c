package date

import (
	"fmt"
	"strings"
)

// Lookback is a named lookback window ending at a reference day, the way
// market data providers understand periods ("5d", "1mo", "ytd", ...).
type Lookback int

const (
	FiveDay Lookback = iota
	OneMonth
	ThreeMonth
	SixMonth
	YearToDate
	OneYear
	FiveYear
	TenYear
	MaxLookback
)

// String returns the canonical token of the lookback. It is also the range
// parameter understood by providers.
func (l Lookback) String() string {
	switch l {
	case FiveDay:
		return "5d"
	case OneMonth:
		return "1mo"
	case ThreeMonth:
		return "3mo"
	case SixMonth:
		return "6mo"
	case YearToDate:
		return "ytd"
	case OneYear:
		return "1y"
	case FiveYear:
		return "5y"
	case TenYear:
		return "10y"
	case MaxLookback:
		return "max"
	default:
		panic(fmt.Sprintf("unknown lookback %d", l))
	}
}

// Name returns a human friendly name, suitable for report file names.
func (l Lookback) Name() string {
	switch l {
	case FiveDay:
		return "1week"
	case OneMonth:
		return "1month"
	case ThreeMonth:
		return "3month"
	case SixMonth:
		return "6month"
	case YearToDate:
		return "ytd"
	case OneYear:
		return "1year"
	case FiveYear:
		return "5year"
	case TenYear:
		return "10year"
	case MaxLookback:
		return "max"
	default:
		panic(fmt.Sprintf("unknown lookback %d", l))
	}
}

// ParseLookback parses a lookback from its canonical token. It is lenient
// about case and accepts a few spelled out aliases.
func ParseLookback(s string) (Lookback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "5d", "1w", "1week", "week":
		return FiveDay, nil
	case "1mo", "1m", "1month", "month":
		return OneMonth, nil
	case "3mo", "3m", "3month":
		return ThreeMonth, nil
	case "6mo", "6m", "6month":
		return SixMonth, nil
	case "ytd":
		return YearToDate, nil
	case "1y", "1year", "year":
		return OneYear, nil
	case "5y", "5year":
		return FiveYear, nil
	case "10y", "10year":
		return TenYear, nil
	case "max", "all":
		return MaxLookback, nil
	default:
		return FiveDay, fmt.Errorf("unknown lookback %q", s)
	}
}

// RangeEnding returns the date range covered by the lookback when it ends on
// the given day.
func (l Lookback) RangeEnding(day Date) Range {
	var from Date
	switch l {
	case FiveDay:
		from = day.Add(-7) // 5 trading days span a calendar week
	case OneMonth:
		from = day.AddMonths(-1)
	case ThreeMonth:
		from = day.AddMonths(-3)
	case SixMonth:
		from = day.AddMonths(-6)
	case YearToDate:
		from = day.StartOfYear()
	case OneYear:
		from = day.AddYears(-1)
	case FiveYear:
		from = day.AddYears(-5)
	case TenYear:
		from = day.AddYears(-10)
	case MaxLookback:
		from = New(1970, 1, 1)
	default:
		panic(fmt.Sprintf("unknown lookback %d", l))
	}
	return Range{From: from, To: day}
}
