// Package dataset provides the gapminder sample data the dashboard charts are built from.
// Rows are loaded once at startup and never mutated afterwards.
package dataset

import (
	"errors"
	"slices"
)

// ErrNoRows is returned when a source yields no rows at all.
var ErrNoRows = errors.New("dataset has no rows")

// Row is a single gapminder observation.
type Row struct {
	Country   string  `db:"country" json:"country"`
	Continent string  `db:"continent" json:"continent"`
	Year      int     `db:"year" json:"year"`
	LifeExp   float64 `db:"life_exp" json:"lifeExp"`
	Pop       int64   `db:"pop" json:"pop"`
	GDPPercap float64 `db:"gdp_percap" json:"gdpPercap"`
}

// Dataset is an immutable set of rows.
type Dataset struct {
	rows []Row
}

// New makes a dataset from a copy of the given rows.
func New(rows []Row) Dataset {
	return Dataset{rows: slices.Clone(rows)}
}

// Len returns the number of rows.
func (d Dataset) Len() int {
	return len(d.rows)
}

// Rows returns a copy of all rows in load order.
func (d Dataset) Rows() []Row {
	return slices.Clone(d.rows)
}

// Year returns a snapshot with rows of the given year only.
// A year without rows gives an empty dataset, not an error.
func (d Dataset) Year(year int) Dataset {
	var res []Row
	for _, r := range d.rows {
		if r.Year == year {
			res = append(res, r)
		}
	}
	return Dataset{rows: res}
}

// Years returns distinct years, ascending.
func (d Dataset) Years() []int {
	seen := make(map[int]bool)
	var res []int
	for _, r := range d.rows {
		if !seen[r.Year] {
			seen[r.Year] = true
			res = append(res, r.Year)
		}
	}
	slices.Sort(res)
	return res
}

// Continents returns distinct continents in first-seen order.
func (d Dataset) Continents() []string {
	seen := make(map[string]bool)
	var res []string
	for _, r := range d.rows {
		if !seen[r.Continent] {
			seen[r.Continent] = true
			res = append(res, r.Continent)
		}
	}
	return res
}
