package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/vizdash/app/enum"
)

//go:embed data/gapminder.csv
var embeddedCSV []byte

// DetectSource determines the source type from the source string:
// empty or "embedded" is the bundled csv, postgres:// urls are postgres,
// .db/.sqlite/.sqlite3 files and file: urls are sqlite, anything else is a csv file.
func DetectSource(source string) enum.SourceType {
	lower := strings.ToLower(strings.TrimSpace(source))
	switch {
	case lower == "" || lower == enum.SourceTypeEmbedded.String():
		return enum.SourceTypeEmbedded
	case strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://"):
		return enum.SourceTypePostgres
	case strings.HasPrefix(lower, "file:"):
		return enum.SourceTypeSQLite
	}
	switch filepath.Ext(lower) {
	case ".db", ".sqlite", ".sqlite3":
		return enum.SourceTypeSQLite
	default:
		return enum.SourceTypeCSV
	}
}

// Load reads the full dataset from the source, see DetectSource for accepted forms.
// Any failure, including a source without rows, is returned to the caller as fatal.
func Load(ctx context.Context, source string) (Dataset, error) {
	st := DetectSource(source)

	var rows []Row
	var err error
	switch st {
	case enum.SourceTypeEmbedded:
		rows, err = ParseCSV(bytes.NewReader(embeddedCSV))
	case enum.SourceTypeCSV:
		rows, err = loadCSVFile(source)
	default:
		rows, err = loadSQL(ctx, source, st)
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to load %s dataset: %w", st, err)
	}
	if len(rows) == 0 {
		return Dataset{}, fmt.Errorf("%s source: %w", st, ErrNoRows)
	}

	log.Printf("[INFO] loaded %d rows from %s dataset", len(rows), st)
	return New(rows), nil
}

func loadCSVFile(path string) ([]Row, error) {
	fh, err := os.Open(path) //nolint:gosec // path comes from cli flag
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer fh.Close()
	return ParseCSV(fh)
}
