// Package enum defines the enumerated types used across the dashboard.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeLight theme = iota
	themeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type chartKind -lower
type chartKind int

const (
	chartKindScatter chartKind = iota
	chartKindBox
)

//go:generate go run github.com/go-pkgz/enum@latest -type sourceType -lower
type sourceType int

const (
	sourceTypeEmbedded sourceType = iota
	sourceTypeCSV
	sourceTypeSQLite
	sourceTypePostgres
)
