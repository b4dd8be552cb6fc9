package reactive

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDependency(t *testing.T) {
	tests := []struct {
		in      string
		want    Dependency
		wantErr bool
	}{
		{in: "switch.value", want: Dep("switch", "value")},
		{in: "scatter.figure", want: Dep("scatter", "figure")},
		{in: "my.graph.figure", want: Dep("my.graph", "figure")},
		{in: "switch", wantErr: true},
		{in: ".value", wantErr: true},
		{in: "switch.", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			dep, err := ParseDependency(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, dep)
			assert.Equal(t, tc.in, dep.String())
		})
	}
}

func TestStore(t *testing.T) {
	s := NewStore()
	sw := Dep("switch", "value")

	_, ok := s.Get(sw)
	assert.False(t, ok)
	assert.False(t, s.Bool(sw))

	s.Seed(sw, false)
	v, ok := s.Get(sw)
	require.True(t, ok)
	assert.Equal(t, false, v)

	s.set(sw, true)
	assert.True(t, s.Bool(sw))

	s.Seed(sw, false)
	assert.True(t, s.Bool(sw), "seed keeps existing value")

	s.set(sw, "yes")
	assert.False(t, s.Bool(sw), "non-bool reads as false")
}

func TestNoUpdate_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]any{"x": NoUpdate})
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":{"_dash_no_update":"_dash_no_update"}}`, string(data))
}
