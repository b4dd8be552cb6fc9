package figure

import (
	"github.com/umputun/vizdash/app/dataset"
	"github.com/umputun/vizdash/app/enum"
)

// DefaultSizeMax is the diameter in pixels of the largest bubble.
const DefaultSizeMax = 60

// NewScatter builds the bubble chart: gdp per capita against life expectancy,
// bubble size by population and one trace per continent.
func NewScatter(id string, rows []dataset.Row, sizeMax float64) *Figure {
	if sizeMax <= 0 {
		sizeMax = DefaultSizeMax
	}
	f := &Figure{
		ID:   id,
		Kind: enum.ChartKindScatter,
		Layout: Layout{
			XAxis:   Axis{Title: "gdpPercap"},
			YAxis:   Axis{Title: "lifeExp"},
			SizeMax: sizeMax,
		},
	}
	for i, group := range groupByContinent(rows) {
		tr := Trace{Name: group.name, Type: enum.ChartKindScatter.String(), Color: i}
		for _, r := range group.rows {
			tr.X = append(tr.X, r.GDPPercap)
			tr.Y = append(tr.Y, r.LifeExp)
			tr.Size = append(tr.Size, float64(r.Pop))
			tr.Text = append(tr.Text, r.Country)
		}
		f.Data = append(f.Data, tr)
	}
	if f.Data == nil {
		f.Data = []Trace{}
	}
	return f
}

// NewBox builds the box plot of life expectancy grouped by continent.
func NewBox(id string, rows []dataset.Row) *Figure {
	f := &Figure{
		ID:   id,
		Kind: enum.ChartKindBox,
		Layout: Layout{
			XAxis: Axis{Title: "continent"},
			YAxis: Axis{Title: "lifeExp"},
		},
	}
	for i, group := range groupByContinent(rows) {
		tr := Trace{Name: group.name, Type: enum.ChartKindBox.String(), Color: i}
		for _, r := range group.rows {
			tr.Y = append(tr.Y, r.LifeExp)
			tr.Text = append(tr.Text, r.Country)
		}
		f.Data = append(f.Data, tr)
	}
	if f.Data == nil {
		f.Data = []Trace{}
	}
	return f
}

type continentGroup struct {
	name string
	rows []dataset.Row
}

// groupByContinent splits rows by continent keeping first-seen order, so both
// charts assign the same colorway index to a continent.
func groupByContinent(rows []dataset.Row) []continentGroup {
	idx := make(map[string]int)
	var res []continentGroup
	for _, r := range rows {
		i, ok := idx[r.Continent]
		if !ok {
			i = len(res)
			idx[r.Continent] = i
			res = append(res, continentGroup{name: r.Continent})
		}
		res[i].rows = append(res[i].rows, r)
	}
	return res
}
