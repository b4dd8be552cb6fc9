package figure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/vizdash/app/dataset"
	"github.com/umputun/vizdash/app/enum"
)

func sampleRows() []dataset.Row {
	return []dataset.Row{
		{Country: "Japan", Continent: "Asia", Year: 2007, LifeExp: 82.6, Pop: 127467972, GDPPercap: 31656.07},
		{Country: "Kenya", Continent: "Africa", Year: 2007, LifeExp: 54.1, Pop: 35610177, GDPPercap: 1463.25},
		{Country: "China", Continent: "Asia", Year: 2007, LifeExp: 72.9, Pop: 1318683096, GDPPercap: 4959.11},
		{Country: "Egypt", Continent: "Africa", Year: 2007, LifeExp: 71.3, Pop: 80264543, GDPPercap: 5581.18},
		{Country: "France", Continent: "Europe", Year: 2007, LifeExp: 80.7, Pop: 61083916, GDPPercap: 30470.02},
	}
}

func TestNewScatter(t *testing.T) {
	f := NewScatter("scatter", sampleRows(), 0)
	assert.Equal(t, "scatter", f.ID)
	assert.Equal(t, enum.ChartKindScatter, f.Kind)
	assert.InDelta(t, DefaultSizeMax, f.Layout.SizeMax, 0.001)
	assert.Equal(t, "gdpPercap", f.Layout.XAxis.Title)
	assert.Equal(t, "lifeExp", f.Layout.YAxis.Title)
	assert.Empty(t, f.Layout.Template)

	require.Len(t, f.Data, 3)
	assert.Equal(t, "Asia", f.Data[0].Name)
	assert.Equal(t, "Africa", f.Data[1].Name)
	assert.Equal(t, "Europe", f.Data[2].Name)

	asia := f.Data[0]
	assert.Equal(t, "scatter", asia.Type)
	assert.Equal(t, 0, asia.Color)
	assert.Equal(t, []float64{31656.07, 4959.11}, asia.X)
	assert.Equal(t, []float64{82.6, 72.9}, asia.Y)
	assert.Equal(t, []float64{127467972, 1318683096}, asia.Size)
	assert.Equal(t, []string{"Japan", "China"}, asia.Text)
	assert.Equal(t, 2, f.Data[2].Color)
}

func TestNewScatter_CustomSizeMax(t *testing.T) {
	f := NewScatter("scatter", sampleRows(), 40)
	assert.InDelta(t, 40, f.Layout.SizeMax, 0.001)
}

func TestNewBox(t *testing.T) {
	f := NewBox("box", sampleRows())
	assert.Equal(t, enum.ChartKindBox, f.Kind)
	assert.Equal(t, "continent", f.Layout.XAxis.Title)
	require.Len(t, f.Data, 3)
	assert.Equal(t, "box", f.Data[0].Type)
	assert.Equal(t, []float64{82.6, 72.9}, f.Data[0].Y)
	assert.Empty(t, f.Data[0].X)
	assert.Equal(t, []float64{54.1, 71.3}, f.Data[1].Y)
}

func TestBuild_NoRows(t *testing.T) {
	for _, f := range []*Figure{NewScatter("scatter", nil, 60), NewBox("box", []dataset.Row{})} {
		assert.NotNil(t, f.Data, "data is an empty list, not nil")
		assert.Empty(t, f.Data)
		assert.True(t, f.Empty())
	}
}

func TestBuild_SameColorPerContinent(t *testing.T) {
	scatter, box := NewScatter("scatter", sampleRows(), 60), NewBox("box", sampleRows())
	require.Len(t, box.Data, len(scatter.Data))
	for i := range scatter.Data {
		assert.Equal(t, scatter.Data[i].Name, box.Data[i].Name)
		assert.Equal(t, scatter.Data[i].Color, box.Data[i].Color)
	}
}
