package reactive

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	switchValue = Dep("switch", "value")
	switchID    = Dep("switch", "id")
	scatterFig  = Dep("scatter", "figure")
	boxFig      = Dep("box", "figure")
)

func TestRegistry_Callback(t *testing.T) {
	r := NewRegistry(NewStore())
	fn := func(context.Context, []any) ([]any, error) { return []any{1}, nil }

	require.NoError(t, r.Callback([]Dependency{scatterFig}, []Dependency{switchValue}, fn))

	err := r.Callback([]Dependency{scatterFig}, []Dependency{switchValue}, fn)
	require.ErrorIs(t, err, ErrDuplicateOutput)

	err = r.Callback([]Dependency{boxFig, boxFig}, []Dependency{switchValue}, fn)
	require.ErrorIs(t, err, ErrDuplicateOutput)

	err = r.Clientside("() => 1", []Dependency{scatterFig}, []Dependency{switchValue})
	require.ErrorIs(t, err, ErrDuplicateOutput, "client and server callbacks share outputs")

	assert.Error(t, r.Callback([]Dependency{boxFig}, []Dependency{switchValue}, nil))
	assert.Error(t, r.Callback(nil, []Dependency{switchValue}, fn))
	assert.Error(t, r.Callback([]Dependency{boxFig}, nil, fn))

	// failed registration doesn't claim outputs
	require.NoError(t, r.Callback([]Dependency{boxFig}, []Dependency{switchValue}, fn))
}

func TestRegistry_Clientside(t *testing.T) {
	r := NewRegistry(NewStore())
	require.NoError(t, r.Clientside("(on) => on", []Dependency{switchID}, []Dependency{switchValue}))
	assert.Error(t, r.Clientside("", []Dependency{boxFig}, []Dependency{switchValue}))

	cbs := r.ClientCallbacks()
	require.Len(t, cbs, 1)
	assert.Equal(t, "(on) => on", cbs[0].Script)
	assert.Equal(t, []Dependency{switchID}, cbs[0].Outputs)

	cbs[0].Script = "changed"
	assert.Equal(t, "(on) => on", r.ClientCallbacks()[0].Script)
}

func TestRegistry_Dispatch(t *testing.T) {
	store := NewStore()
	store.Seed(switchValue, false)
	r := NewRegistry(store)

	var calls atomic.Int32
	require.NoError(t, r.Callback([]Dependency{scatterFig, boxFig}, []Dependency{switchValue},
		func(_ context.Context, in []any) ([]any, error) {
			calls.Add(1)
			on, _ := in[0].(bool)
			return []any{on, NoUpdate}, nil
		}))
	require.NoError(t, r.Clientside("(on) => no_update", []Dependency{switchID}, []Dependency{switchValue}))

	resp, err := r.Dispatch(context.Background(), switchValue, true)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.EventID)
	assert.True(t, resp.Multi)
	assert.Equal(t, map[string]map[string]any{"scatter": {"figure": true}}, resp.Outputs)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, store.Bool(switchValue), "runtime wrote the input into the store")

	resp2, err := r.Dispatch(context.Background(), switchValue, false)
	require.NoError(t, err)
	assert.NotEqual(t, resp.EventID, resp2.EventID)
	assert.Equal(t, false, resp2.Outputs["scatter"]["figure"])
}

func TestRegistry_DispatchFanOut(t *testing.T) {
	r := NewRegistry(NewStore())
	for _, out := range []Dependency{scatterFig, boxFig} {
		name := out.ID
		require.NoError(t, r.Callback([]Dependency{out}, []Dependency{switchValue},
			func(_ context.Context, in []any) ([]any, error) { return []any{name}, nil }))
	}
	resp, err := r.Dispatch(context.Background(), switchValue, true)
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]any{"scatter": {"figure": "scatter"}, "box": {"figure": "box"}}, resp.Outputs)
}

func TestRegistry_DispatchClientOnly(t *testing.T) {
	store := NewStore()
	r := NewRegistry(store)
	require.NoError(t, r.Clientside("(on) => no_update", []Dependency{switchID}, []Dependency{switchValue}))

	resp, err := r.Dispatch(context.Background(), switchValue, true)
	require.NoError(t, err)
	assert.Empty(t, resp.Outputs)
	assert.True(t, store.Bool(switchValue))
}

func TestRegistry_DispatchErrors(t *testing.T) {
	t.Run("no callback", func(t *testing.T) {
		store := NewStore()
		r := NewRegistry(store)
		_, err := r.Dispatch(context.Background(), Dep("slider", "value"), 5)
		require.ErrorIs(t, err, ErrNoCallback)
		_, ok := store.Get(Dep("slider", "value"))
		assert.False(t, ok, "unknown input not stored")
	})

	t.Run("handler error", func(t *testing.T) {
		store := NewStore()
		store.Seed(switchValue, false)
		r := NewRegistry(store)
		boom := errors.New("boom")
		require.NoError(t, r.Callback([]Dependency{scatterFig}, []Dependency{switchValue},
			func(context.Context, []any) ([]any, error) { return nil, boom }))
		_, err := r.Dispatch(context.Background(), switchValue, true)
		require.ErrorIs(t, err, boom)
		v, ok := store.Get(switchValue)
		require.True(t, ok)
		assert.Equal(t, false, v, "failed event keeps the previous value")
	})

	t.Run("wrong number of outputs", func(t *testing.T) {
		r := NewRegistry(NewStore())
		require.NoError(t, r.Callback([]Dependency{scatterFig, boxFig}, []Dependency{switchValue},
			func(context.Context, []any) ([]any, error) { return []any{1}, nil }))
		_, err := r.Dispatch(context.Background(), switchValue, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "returned 1 value(s), expected 2")
	})

	t.Run("handler panic", func(t *testing.T) {
		r := NewRegistry(NewStore())
		require.NoError(t, r.Callback([]Dependency{scatterFig}, []Dependency{switchValue},
			func(context.Context, []any) ([]any, error) { panic("oops") }))
		_, err := r.Dispatch(context.Background(), switchValue, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "panicked: oops")
		_, ok := r.Store().Get(switchValue)
		assert.False(t, ok, "failed event not stored")
	})
}

func TestRegistry_DispatchStoresAfterHandlers(t *testing.T) {
	store := NewStore()
	store.Seed(switchValue, false)
	r := NewRegistry(store)

	var seen any
	require.NoError(t, r.Callback([]Dependency{scatterFig}, []Dependency{switchValue},
		func(_ context.Context, in []any) ([]any, error) {
			seen, _ = store.Get(switchValue)
			return []any{in[0]}, nil
		}))
	resp, err := r.Dispatch(context.Background(), switchValue, true)
	require.NoError(t, err)
	assert.Equal(t, false, seen, "value committed after handlers")
	assert.Equal(t, true, resp.Outputs["scatter"]["figure"])
	assert.True(t, store.Bool(switchValue))
}

func TestRegistry_DispatchSerialized(t *testing.T) {
	r := NewRegistry(NewStore())
	var active, maxActive atomic.Int32
	require.NoError(t, r.Callback([]Dependency{scatterFig}, []Dependency{switchValue},
		func(_ context.Context, in []any) ([]any, error) {
			n := active.Add(1)
			defer active.Add(-1)
			for {
				m := maxActive.Load()
				if n <= m || maxActive.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			return []any{in[0]}, nil
		}))

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Dispatch(context.Background(), switchValue, i%2 == 0)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxActive.Load(), "events are handled one at a time")
}

func TestRegistry_DispatchMultipleInputs(t *testing.T) {
	store := NewStore()
	year := Dep("year", "value")
	store.Seed(year, 2007)
	r := NewRegistry(store)

	var got []any
	require.NoError(t, r.Callback([]Dependency{scatterFig}, []Dependency{switchValue, year},
		func(_ context.Context, in []any) ([]any, error) {
			got = in
			return []any{"ok"}, nil
		}))
	_, err := r.Dispatch(context.Background(), switchValue, true)
	require.NoError(t, err)
	assert.Equal(t, []any{true, 2007}, got)
}
