package figure

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplates_Defaults(t *testing.T) {
	tpls, err := NewTemplates("")
	require.NoError(t, err)
	assert.Equal(t, []string{"vizro", "vizro_dark"}, tpls.Names())
	assert.Equal(t, uint64(0), tpls.Generation())

	light, err := tpls.Get("vizro")
	require.NoError(t, err)
	assert.Equal(t, "#FFFFFF", light.PaperColor)
	assert.Len(t, light.Colorway, 10)

	dark, err := tpls.Get("vizro_dark")
	require.NoError(t, err)
	assert.Equal(t, "#141721", dark.PaperColor)
	assert.NotEqual(t, light.FontColor, dark.FontColor)
}

func TestTemplates_GetUnknown(t *testing.T) {
	tpls, err := NewTemplates("")
	require.NoError(t, err)
	_, err = tpls.Get("plotly_white")
	require.ErrorIs(t, err, ErrUnknownTemplate)
	assert.Contains(t, err.Error(), `"plotly_white"`)
}

func TestNewTemplates_UserFile(t *testing.T) {
	t.Run("yaml overrides by name", func(t *testing.T) {
		tpls, err := NewTemplates("testdata/templates.yml")
		require.NoError(t, err)
		assert.Equal(t, []string{"corporate", "vizro", "vizro_dark"}, tpls.Names())

		light, err := tpls.Get("vizro")
		require.NoError(t, err)
		assert.Equal(t, "#FAFAFA", light.PaperColor)
		assert.Equal(t, []string{"#1F77B4", "#FF7F0E"}, light.Colorway)

		corp, err := tpls.Get("corporate")
		require.NoError(t, err)
		assert.InDelta(t, 14, corp.FontSize, 0.001)
	})

	t.Run("toml", func(t *testing.T) {
		tpls, err := NewTemplates("testdata/templates.toml")
		require.NoError(t, err)
		assert.Equal(t, []string{"solarized", "vizro", "vizro_dark"}, tpls.Names())
		sol, err := tpls.Get("solarized")
		require.NoError(t, err)
		assert.Equal(t, "#FDF6E3", sol.PaperColor)
		assert.InDelta(t, 11, sol.FontSize, 0.001)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewTemplates("testdata/not-there.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read templates file")
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := NewTemplates("testdata/unknown_field.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "templates validation failed")
	})

	t.Run("bad color", func(t *testing.T) {
		_, err := NewTemplates("testdata/bad_color.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "templates validation failed")
	})
}

func TestTemplates_Reload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "templates.yml")
	writeTemplate(t, file, "#101010")

	tpls, err := NewTemplates(file)
	require.NoError(t, err)
	tpl, err := tpls.Get("custom")
	require.NoError(t, err)
	assert.Equal(t, "#101010", tpl.PaperColor)

	writeTemplate(t, file, "#202020")
	require.NoError(t, tpls.Reload())
	assert.Equal(t, uint64(1), tpls.Generation())
	tpl, err = tpls.Get("custom")
	require.NoError(t, err)
	assert.Equal(t, "#202020", tpl.PaperColor)

	// broken file keeps the current set
	require.NoError(t, os.WriteFile(file, []byte("templates: [{name: custom}]"), 0o600))
	require.Error(t, tpls.Reload())
	assert.Equal(t, uint64(1), tpls.Generation())
	tpl, err = tpls.Get("custom")
	require.NoError(t, err)
	assert.Equal(t, "#202020", tpl.PaperColor)
}

func TestTemplates_Watch(t *testing.T) {
	file := filepath.Join(t.TempDir(), "templates.yml")
	writeTemplate(t, file, "#101010")

	tpls, err := NewTemplates(file)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, tpls.Watch(ctx))

	writeTemplate(t, file, "#303030")
	require.Eventually(t, func() bool {
		tpl, err := tpls.Get("custom")
		return err == nil && tpl.PaperColor == "#303030"
	}, 5*time.Second, 50*time.Millisecond)
	assert.GreaterOrEqual(t, tpls.Generation(), uint64(1))
}

func TestTemplates_WatchNoFile(t *testing.T) {
	tpls, err := NewTemplates("")
	require.NoError(t, err)
	assert.Error(t, tpls.Watch(context.Background()))
}

func writeTemplate(t *testing.T, file, paper string) {
	t.Helper()
	data := "templates:\n  - name: custom\n    paper_color: \"" + paper + "\"\n    plot_color: \"#FFFFFF\"\n" +
		"    font_color: \"#000000\"\n    grid_color: \"#EEEEEE\"\n    axis_color: \"#999999\"\n    colorway: [\"#FF0000\"]\n"
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))
}
