package figure

import (
	"errors"
	"math"
	"slices"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// boxStats is the five-number summary of a box plot with outliers.
type boxStats struct {
	Q1, Median, Q3 float64
	Lower, Upper   float64 // whisker ends, the furthest points within 1.5 IQR
	Outliers       []float64
}

// newBoxStats summarizes values, quartiles use linear interpolation between ranks.
func newBoxStats(values []float64) (boxStats, bool) {
	if len(values) == 0 {
		return boxStats{}, false
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	res := boxStats{
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
	}
	iqr := res.Q3 - res.Q1
	lowFence, highFence := res.Q1-1.5*iqr, res.Q3+1.5*iqr

	res.Lower, res.Upper = math.Inf(1), math.Inf(-1)
	for _, v := range sorted {
		if v < lowFence || v > highFence {
			res.Outliers = append(res.Outliers, v)
			continue
		}
		res.Lower = math.Min(res.Lower, v)
		res.Upper = math.Max(res.Upper, v)
	}
	return res, true
}

// quantile of sorted values with linear interpolation.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// boxSeries draws a single box at position x, it implements chart.Series.
type boxSeries struct {
	name  string
	x     float64
	stats boxStats
	style chart.Style
}

func (b boxSeries) GetName() string { return b.name }
func (b boxSeries) GetStyle() chart.Style { return b.style }
func (b boxSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (b boxSeries) Validate() error {
	if b.stats.Q1 > b.stats.Q3 {
		return errors.New("box series: first quartile above third")
	}
	return nil
}

// Render draws box, median, whiskers and outliers in canvas coordinates.
func (b boxSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	cx := canvasBox.Left + xrange.Translate(b.x)
	half := (xrange.Translate(b.x+0.3) - xrange.Translate(b.x-0.3)) / 2
	yOf := func(v float64) int { return canvasBox.Bottom - yrange.Translate(v) }

	stroke := b.style.StrokeColor
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(1.5)
	r.SetFillColor(b.style.FillColor)

	// box between quartiles
	r.MoveTo(cx-half, yOf(b.stats.Q3))
	r.LineTo(cx+half, yOf(b.stats.Q3))
	r.LineTo(cx+half, yOf(b.stats.Q1))
	r.LineTo(cx-half, yOf(b.stats.Q1))
	r.Close()
	r.FillStroke()

	// median
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(2)
	r.MoveTo(cx-half, yOf(b.stats.Median))
	r.LineTo(cx+half, yOf(b.stats.Median))
	r.Stroke()

	// whiskers with caps
	r.SetStrokeWidth(1.5)
	for _, end := range []struct{ from, to float64 }{{b.stats.Q3, b.stats.Upper}, {b.stats.Q1, b.stats.Lower}} {
		if math.IsInf(end.to, 0) {
			continue
		}
		r.SetStrokeColor(stroke)
		r.MoveTo(cx, yOf(end.from))
		r.LineTo(cx, yOf(end.to))
		r.Stroke()
		r.SetStrokeColor(stroke)
		r.MoveTo(cx-half/2, yOf(end.to))
		r.LineTo(cx+half/2, yOf(end.to))
		r.Stroke()
	}

	for _, v := range b.stats.Outliers {
		r.SetStrokeColor(stroke)
		r.SetFillColor(drawing.ColorTransparent)
		r.Circle(3, cx, yOf(v))
		r.Stroke()
	}
}
