package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/vizdash/app/enum"
	"github.com/umputun/vizdash/app/figure"
)

func TestHighlighter_Code(t *testing.T) {
	h := NewHighlighter()

	tests := []struct {
		name     string
		code     string
		format   string
		theme    enum.Theme
		contains []string
	}{
		{name: "text is escaped", code: "<b>x</b>", format: "text", theme: enum.ThemeDark,
			contains: []string{"<pre>&lt;b&gt;x&lt;/b&gt;</pre>"}},
		{name: "empty format", code: "a & b", format: "", theme: enum.ThemeDark, contains: []string{"a &amp; b"}},
		{name: "unknown lexer", code: "x", format: "nope-format", theme: enum.ThemeLight, contains: []string{"<pre>x</pre>"}},
		{name: "json dark", code: `{"key": "value"}`, format: "json", theme: enum.ThemeDark,
			contains: []string{"<pre", "key", "style="}},
		{name: "json light", code: `{"key": 1}`, format: "json", theme: enum.ThemeLight,
			contains: []string{"<pre", "key", "style="}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := string(h.Code(tc.code, tc.format, tc.theme))
			for _, c := range tc.contains {
				assert.Contains(t, res, c)
			}
		})
	}
}

func TestHighlighter_ThemeStyles(t *testing.T) {
	h := NewHighlighter()
	light := h.Code(`{"a": 1}`, "json", enum.ThemeLight)
	dark := h.Code(`{"a": 1}`, "json", enum.ThemeDark)
	assert.NotEqual(t, light, dark)
	assert.Equal(t, "github", styleName(enum.ThemeLight))
	assert.Equal(t, "github-dark", styleName(enum.ThemeDark))
	assert.Equal(t, "github-dark", styleName(enum.Theme{}))
}

func TestFigureJSON(t *testing.T) {
	res, err := figureJSON(figure.Figure{ID: "box", Kind: enum.ChartKindBox, Data: []figure.Trace{},
		Layout: figure.Layout{Template: "vizro"}})
	require.NoError(t, err)
	assert.Contains(t, res, `"template": "vizro"`)
	assert.Contains(t, res, "\n  ")
}
