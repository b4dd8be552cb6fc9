// Package reactive implements the callback contract of the dashboard: components expose
// properties, callbacks subscribe to input properties and produce output properties.
//
// Server callbacks run in the process on Dispatch, client callbacks are only registered here
// and shipped to the browser as scripts. Property values live in a Store written by Dispatch
// alone, handlers only read it.
package reactive

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNoCallback is returned when an event hits a property no callback listens to.
var ErrNoCallback = errors.New("no callback for input")

// ErrDuplicateOutput is returned when an output is already owned by another callback.
var ErrDuplicateOutput = errors.New("duplicate callback output")

// ErrInvalidValue is returned by handlers for input values they can't accept.
var ErrInvalidValue = errors.New("invalid input value")

// NoUpdate is returned by a callback for an output that must be left unchanged.
var NoUpdate = noUpdate{}

type noUpdate struct{}

// MarshalJSON encodes NoUpdate the way the browser runtime recognizes it.
func (noUpdate) MarshalJSON() ([]byte, error) {
	return []byte(`{"_dash_no_update":"_dash_no_update"}`), nil
}

// Dependency addresses a component property, e.g. switch.value.
type Dependency struct {
	ID       string `json:"id"`
	Property string `json:"property"`
}

// Dep is a shortcut to make a Dependency.
func Dep(id, property string) Dependency {
	return Dependency{ID: id, Property: property}
}

// String returns dependency in id.property form.
func (d Dependency) String() string {
	return d.ID + "." + d.Property
}

// ParseDependency parses id.property, the property is everything after the last dot.
func ParseDependency(s string) (Dependency, error) {
	idx := strings.LastIndex(s, ".")
	if idx <= 0 || idx == len(s)-1 {
		return Dependency{}, fmt.Errorf("invalid dependency %q, expected id.property", s)
	}
	return Dependency{ID: s[:idx], Property: s[idx+1:]}, nil
}

// Store keeps current property values of all components.
// A value is stored only after every server callback of its event succeeded.
type Store struct {
	mu     sync.RWMutex
	values map[Dependency]any
}

// NewStore makes an empty store.
func NewStore() *Store {
	return &Store{values: make(map[Dependency]any)}
}

// Seed sets the initial value of a property, existing values are kept.
func (s *Store) Seed(dep Dependency, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[dep]; !ok {
		s.values[dep] = value
	}
}

// Get returns the property value.
func (s *Store) Get(dep Dependency) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[dep]
	return v, ok
}

// Bool returns the property value as bool, false for missing or non-bool values.
func (s *Store) Bool(dep Dependency) bool {
	v, ok := s.Get(dep)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (s *Store) set(dep Dependency, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[dep] = value
}
