package reactive

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Handler is a server callback. It gets current values of its inputs in registration order
// and returns one value per output, NoUpdate for outputs it leaves alone.
type Handler func(ctx context.Context, inputs []any) ([]any, error)

// ClientCallback is a callback executed by the browser runtime.
type ClientCallback struct {
	Script  string       `json:"script"`
	Outputs []Dependency `json:"outputs"`
	Inputs  []Dependency `json:"inputs"`
}

// Response is the result of a dispatched event: new values by component id and property.
type Response struct {
	EventID string                    `json:"event_id"`
	Multi   bool                      `json:"multi"`
	Outputs map[string]map[string]any `json:"response"`
}

type serverCallback struct {
	outputs []Dependency
	inputs  []Dependency
	fn      Handler
}

// Registry keeps callbacks and dispatches input events to them.
type Registry struct {
	store      *Store
	dispatchMu sync.Mutex // one event at a time, input value and handler effects commit together

	mu      sync.RWMutex
	server  []serverCallback
	client  []ClientCallback
	outputs map[Dependency]bool
}

// NewRegistry makes a registry over the store.
func NewRegistry(store *Store) *Registry {
	return &Registry{store: store, outputs: make(map[Dependency]bool)}
}

// Store returns the property store of the registry.
func (r *Registry) Store() *Store {
	return r.store
}

// Callback registers a server callback. An output can be owned by one callback only.
func (r *Registry) Callback(outputs, inputs []Dependency, fn Handler) error {
	if fn == nil {
		return fmt.Errorf("callback for %v has no handler", outputs)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.claimOutputs(outputs, inputs); err != nil {
		return err
	}
	r.server = append(r.server, serverCallback{outputs: outputs, inputs: inputs, fn: fn})
	return nil
}

// Clientside registers a callback executed in the browser by the given script.
func (r *Registry) Clientside(script string, outputs, inputs []Dependency) error {
	if script == "" {
		return fmt.Errorf("client callback for %v has no script", outputs)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.claimOutputs(outputs, inputs); err != nil {
		return err
	}
	r.client = append(r.client, ClientCallback{Script: script, Outputs: outputs, Inputs: inputs})
	return nil
}

// claimOutputs checks outputs against registered ones and marks them as owned, caller holds the lock.
func (r *Registry) claimOutputs(outputs, inputs []Dependency) error {
	if len(outputs) == 0 || len(inputs) == 0 {
		return fmt.Errorf("callback needs at least one output and one input, got %d/%d", len(outputs), len(inputs))
	}
	seen := make(map[Dependency]bool, len(outputs))
	for _, o := range outputs {
		if r.outputs[o] || seen[o] {
			return fmt.Errorf("%w: %s", ErrDuplicateOutput, o)
		}
		seen[o] = true
	}
	for o := range seen {
		r.outputs[o] = true
	}
	return nil
}

// ClientCallbacks returns registered client callbacks.
func (r *Registry) ClientCallbacks() []ClientCallback {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]ClientCallback, len(r.client))
	copy(res, r.client)
	return res
}

// Dispatch handles an input event: runs every server callback listening on the input
// concurrently and stores the new value once all of them succeeded. There is no ordering
// between callbacks of one event, events are handled one at a time.
// A failed event leaves the stored value unchanged. Outputs set to NoUpdate are left out
// of the response.
func (r *Registry) Dispatch(ctx context.Context, input Dependency, value any) (Response, error) {
	st := time.Now()
	resp := Response{EventID: uuid.NewString(), Multi: true, Outputs: map[string]map[string]any{}}

	r.mu.RLock()
	var matched []serverCallback
	for _, cb := range r.server {
		if slices.Contains(cb.inputs, input) {
			matched = append(matched, cb)
		}
	}
	hasClient := false
	for _, cb := range r.client {
		if slices.Contains(cb.Inputs, input) {
			hasClient = true
		}
	}
	r.mu.RUnlock()

	if len(matched) == 0 && !hasClient {
		return Response{}, fmt.Errorf("%w: %s", ErrNoCallback, input)
	}

	r.dispatchMu.Lock()
	defer r.dispatchMu.Unlock()
	log.Printf("[DEBUG] event %s: %s=%v, %d server callback(s)", resp.EventID, input, value, len(matched))

	results := make([][]any, len(matched))
	g, gctx := errgroup.WithContext(ctx)
	for i, cb := range matched {
		values := make([]any, len(cb.inputs))
		for j, in := range cb.inputs {
			if in == input {
				values[j] = value
				continue
			}
			values[j], _ = r.store.Get(in)
		}
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = fmt.Errorf("callback %v panicked: %v", cb.outputs, rec)
				}
			}()
			res, err := cb.fn(gctx, values)
			if err != nil {
				return fmt.Errorf("callback %v failed: %w", cb.outputs, err)
			}
			if len(res) != len(cb.outputs) {
				return fmt.Errorf("callback %v returned %d value(s), expected %d", cb.outputs, len(res), len(cb.outputs))
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Response{}, fmt.Errorf("event %s: %w", resp.EventID, err)
	}
	r.store.set(input, value)

	for i, cb := range matched {
		for j, out := range cb.outputs {
			if _, skip := results[i][j].(noUpdate); skip {
				continue
			}
			if resp.Outputs[out.ID] == nil {
				resp.Outputs[out.ID] = map[string]any{}
			}
			resp.Outputs[out.ID][out.Property] = results[i][j]
		}
	}
	log.Printf("[DEBUG] event %s done in %v, %d component(s) updated", resp.EventID, time.Since(st), len(resp.Outputs))
	return resp, nil
}
