package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// csvColumns lists the columns a gapminder csv must have, extra columns are ignored.
var csvColumns = []string{"country", "continent", "year", "lifeExp", "pop", "gdpPercap"}

// ParseCSV reads gapminder rows from csv with a header line.
// Columns may come in any order. Any malformed row fails the whole parse.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, c := range csvColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("csv header misses column %q", c)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, readErr)
		}
		row, parseErr := parseRecord(rec, idx)
		if parseErr != nil {
			return nil, fmt.Errorf("line %d: %w", line, parseErr)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseRecord converts a single csv record to a Row using the header index.
func parseRecord(rec []string, idx map[string]int) (Row, error) {
	field := func(name string) string { return strings.TrimSpace(rec[idx[name]]) }

	year, err := strconv.Atoi(field("year"))
	if err != nil {
		return Row{}, fmt.Errorf("invalid year: %w", err)
	}
	lifeExp, err := strconv.ParseFloat(field("lifeExp"), 64)
	if err != nil {
		return Row{}, fmt.Errorf("invalid lifeExp: %w", err)
	}
	pop, err := strconv.ParseInt(field("pop"), 10, 64)
	if err != nil {
		return Row{}, fmt.Errorf("invalid pop: %w", err)
	}
	gdp, err := strconv.ParseFloat(field("gdpPercap"), 64)
	if err != nil {
		return Row{}, fmt.Errorf("invalid gdpPercap: %w", err)
	}

	return Row{
		Country:   field("country"),
		Continent: field("continent"),
		Year:      year,
		LifeExp:   lifeExp,
		Pop:       pop,
		GDPPercap: gdp,
	}, nil
}
