package figure

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLocation is returned when a patch addresses a field figures don't allow to patch.
var ErrUnknownLocation = errors.New("unknown patch location")

// OpAssign is the only patch operation, it replaces the value at a location.
const OpAssign = "Assign"

// Operation is a single change inside a Patch.
type Operation struct {
	Operation string         `json:"operation"`
	Location  []string       `json:"location"`
	Params    map[string]any `json:"params"`
}

// Patch is a partial update of a figure, applied in place instead of replacing the figure.
type Patch struct {
	Operations []Operation `json:"operations"`
}

// NewPatch makes an empty patch.
func NewPatch() *Patch {
	return &Patch{}
}

// Assign adds an operation setting value at location, e.g. Assign("vizro", "layout", "template").
func (p *Patch) Assign(value any, location ...string) *Patch {
	p.Operations = append(p.Operations, Operation{
		Operation: OpAssign,
		Location:  location,
		Params:    map[string]any{"value": value},
	})
	return p
}

// stringField returns a pointer to the patchable string field at location.
func (f *Figure) stringField(location []string) (*string, bool) {
	switch strings.Join(location, ".") {
	case "layout.template":
		return &f.Layout.Template, true
	case "layout.title":
		return &f.Layout.Title, true
	case "layout.xaxis.title":
		return &f.Layout.XAxis.Title, true
	case "layout.yaxis.title":
		return &f.Layout.YAxis.Title, true
	default:
		return nil, false
	}
}

// Apply applies the patch in place. All operations are checked before any is applied,
// so a failing patch leaves the figure untouched. Fields not named by the patch never change.
func (f *Figure) Apply(p Patch) error {
	type change struct {
		field *string
		value string
	}
	changes := make([]change, 0, len(p.Operations))
	for _, op := range p.Operations {
		if op.Operation != OpAssign {
			return fmt.Errorf("unsupported patch operation %q", op.Operation)
		}
		field, ok := f.stringField(op.Location)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownLocation, strings.Join(op.Location, "."))
		}
		value, ok := op.Params["value"].(string)
		if !ok {
			return fmt.Errorf("patch value for %s must be a string, got %T", strings.Join(op.Location, "."), op.Params["value"])
		}
		changes = append(changes, change{field: field, value: value})
	}

	changed := false
	for _, c := range changes {
		if *c.field != c.value {
			*c.field = c.value
			changed = true
		}
	}
	if changed {
		f.rev++
	}
	return nil
}
