package stockwatch

import (
	"fmt"
	"math"
)

// Metric is a numeric metric value that is either a finite real number or
// explicitly unavailable. It is never NaN or infinite: constructors downgrade
// those to unavailable instead of letting them leak into reports.
type Metric struct {
	value float64
	ok    bool
}

// Unavailable is the explicit "no value" marker.
var Unavailable = Metric{}

// AvailableMetric returns an available metric holding v, or Unavailable when
// v is NaN or infinite.
func AvailableMetric(v float64) Metric {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unavailable
	}
	return Metric{value: v, ok: true}
}

// Value returns the metric value and whether it is available.
func (m Metric) Value() (float64, bool) { return m.value, m.ok }

// Ok reports whether the metric is available.
func (m Metric) Ok() bool { return m.ok }

// Sub returns m - n, unavailable when either side is.
func (m Metric) Sub(n Metric) Metric {
	if !m.ok || !n.ok {
		return Unavailable
	}
	return AvailableMetric(m.value - n.value)
}

// Percent returns the metric as a Percent for rendering. Unavailable metrics
// render as "-" through Percent anyway, so the boolean is for callers that
// need to tell the two apart.
func (m Metric) Percent() (Percent, bool) { return Percent(100 * m.value), m.ok }

// String formats the raw value, or "-" when unavailable.
func (m Metric) String() string {
	if !m.ok {
		return "-"
	}
	return fmt.Sprintf("%.4f", m.value)
}
