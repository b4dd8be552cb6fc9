package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/umputun/vizdash/app/enum"
	"github.com/umputun/vizdash/app/figure"
)

// Highlighter provides syntax highlighting for code.
type Highlighter struct{}

// NewHighlighter creates a new Highlighter instance.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// Code applies syntax highlighting to code based on format, colored for the page theme.
// returns HTML-safe highlighted code or plain escaped text if format is "text" or highlighting fails.
func (h *Highlighter) Code(code, format string, theme enum.Theme) template.HTML {
	if format == "" || format == "text" {
		return plain(code)
	}

	lexer := lexers.Get(strings.ToUpper(format))
	if lexer == nil {
		return plain(code)
	}
	lexer = chroma.Coalesce(lexer)

	// inline styles, the fragment is swapped into the page without a stylesheet
	formatter := chromahtml.New(
		chromahtml.WithClasses(false),
		chromahtml.PreventSurroundingPre(false),
		chromahtml.WithLineNumbers(false),
	)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plain(code)
	}

	style := styles.Get(styleName(theme))
	if style == nil {
		style = styles.Fallback
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return plain(code)
	}
	return template.HTML(buf.String()) //nolint:gosec // chroma output is safe
}

// styleName returns chroma style matching the page theme.
func styleName(theme enum.Theme) string {
	if theme == enum.ThemeLight {
		return "github"
	}
	return "github-dark"
}

func plain(code string) template.HTML {
	return template.HTML("<pre>" + html.EscapeString(code) + "</pre>") //nolint:gosec // escaped
}

// figureJSON returns indented json of the figure.
func figureJSON(f figure.Figure) (string, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal figure %s: %w", f.ID, err)
	}
	return string(data), nil
}
