// Package chart renders PNG line charts of daily price series.
package chart

import (
	"errors"
	"fmt"
	"os"

	"github.com/etnz/stockwatch"
	"github.com/etnz/stockwatch/date"
	"github.com/vicanso/go-charts/v2"
)

// Render draws the price series over its lookback window and returns the PNG
// bytes.
func Render(series stockwatch.PriceSeries, lookback date.Lookback) ([]byte, error) {
	if series.Len() < 2 {
		return nil, errors.New("not enough data points to chart")
	}

	labels := make([]string, 0, series.Len())
	values := make([]float64, 0, series.Len())
	for day, price := range series.Values() {
		labels = append(labels, day.Format("Jan 02"))
		values = append(values, price)
	}

	yMin, yMax := pad(values)
	painter, err := charts.LineRender([][]float64{values},
		charts.TitleTextOptionFunc(fmt.Sprintf("%s • %s", series.Ticker(), lookback)),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 8}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot render chart for %s: %w", series.Ticker(), err)
	}
	return painter.Bytes()
}

// WritePNG renders the series and writes the PNG to path.
func WritePNG(path string, series stockwatch.PriceSeries, lookback date.Lookback) error {
	img, err := Render(series, lookback)
	if err != nil {
		return err
	}
	return os.WriteFile(path, img, 0o644)
}

// pad returns the y-axis bounds with a small margin so the line doesn't hug
// the frame.
func pad(values []float64) (float64, float64) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	margin := (max - min) * 0.05
	if margin < max*0.002 {
		margin = max * 0.002
	}
	min -= margin
	if min < 0 {
		min = 0
	}
	return min, max + margin
}
