// Package figure provides chart specifications built from the dataset, the named
// template presets they reference and SVG rendering of a figure in its template.
//
// A Figure is created once and then changed only through Apply with a Patch, which
// bumps the figure revision when the value actually changes.
package figure

import (
	"slices"

	"github.com/umputun/vizdash/app/enum"
)

// Axis describes a chart axis.
type Axis struct {
	Title string `json:"title"`
}

// Layout holds the visual encoding of a figure and its template reference.
type Layout struct {
	Title    string  `json:"title,omitempty"`
	XAxis    Axis    `json:"xaxis"`
	YAxis    Axis    `json:"yaxis"`
	SizeMax  float64 `json:"sizemax,omitempty"`
	Template string  `json:"template"`
}

// Trace is one series of a figure, a continent in both dashboard charts.
type Trace struct {
	Name  string    `json:"name"`
	Type  string    `json:"type"`
	X     []float64 `json:"x,omitempty"`
	Y     []float64 `json:"y"`
	Size  []float64 `json:"size,omitempty"`
	Text  []string  `json:"text,omitempty"`
	Color int       `json:"color"` // index in the template colorway
}

// Figure is a chart specification: data, visual encoding and template reference.
type Figure struct {
	ID     string         `json:"id"`
	Kind   enum.ChartKind `json:"kind"`
	Data   []Trace        `json:"data"`
	Layout Layout         `json:"layout"`

	rev uint64
}

// Revision returns the number of effective changes applied to the figure.
func (f *Figure) Revision() uint64 {
	return f.rev
}

// Empty reports whether the figure has no data points.
func (f *Figure) Empty() bool {
	for _, tr := range f.Data {
		if len(tr.Y) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the figure, revision included.
func (f *Figure) Clone() Figure {
	res := *f
	res.Data = make([]Trace, len(f.Data))
	for i, tr := range f.Data {
		res.Data[i] = Trace{
			Name:  tr.Name,
			Type:  tr.Type,
			X:     slices.Clone(tr.X),
			Y:     slices.Clone(tr.Y),
			Size:  slices.Clone(tr.Size),
			Text:  slices.Clone(tr.Text),
			Color: tr.Color,
		}
	}
	return res
}
