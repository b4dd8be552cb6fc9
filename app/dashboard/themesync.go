package dashboard

import (
	"context"
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/vizdash/app/figure"
	"github.com/umputun/vizdash/app/reactive"
)

// themeScript sets the document theme attribute in the browser and never updates a property.
const themeScript = `(switchOn) => {
    switchOn
        ? document.documentElement.setAttribute('data-bs-theme', 'light')
        : document.documentElement.setAttribute('data-bs-theme', 'dark');
    return window.dash_clientside.no_update;
}`

// registerThemeSync adds the server callback patching chart templates and the client callback
// flipping the page theme, both listening on the switch value.
func (d *Dashboard) registerThemeSync() error {
	input := []reactive.Dependency{reactive.Dep(SwitchID, "value")}

	outputs := []reactive.Dependency{reactive.Dep(ScatterID, "figure"), reactive.Dep(BoxID, "figure")}
	if err := d.registry.Callback(outputs, input, d.syncTemplates); err != nil {
		return err
	}
	return d.registry.Clientside(themeScript, []reactive.Dependency{reactive.Dep(SwitchID, "id")}, input)
}

// syncTemplates sets the template of both figures from the switch value and returns the same
// patch for each of them. Only the template field is touched.
func (d *Dashboard) syncTemplates(_ context.Context, inputs []any) ([]any, error) {
	on, ok := inputs[0].(bool)
	if !ok && inputs[0] != nil {
		return nil, fmt.Errorf("%w: switch value must be bool, got %T", reactive.ErrInvalidValue, inputs[0])
	}
	name := d.TemplateFor(on)
	patch := figure.NewPatch().Assign(name, "layout", "template")

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range []string{ScatterID, BoxID} {
		if err := d.figures[id].Apply(*patch); err != nil {
			return nil, fmt.Errorf("failed to patch %s: %w", id, err)
		}
	}
	log.Printf("[DEBUG] switch %v, figures use template %s", on, name)
	return []any{patch, patch}, nil
}
