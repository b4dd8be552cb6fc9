// Package dashboard wires dataset, figures and callbacks into the single dashboard page.
// It owns the figures, the component tree and the theme sync between the switch and
// the template of both charts.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/vizdash/app/dataset"
	"github.com/umputun/vizdash/app/enum"
	"github.com/umputun/vizdash/app/figure"
	"github.com/umputun/vizdash/app/reactive"
)

// ErrNotFound is returned for unknown figure ids.
var ErrNotFound = errors.New("not found")

// component ids and defaults of the page
const (
	SwitchID  = "switch"
	ScatterID = "scatter"
	BoxID     = "box"

	DefaultTitle = "Vizro Bootstrap Demo"
	SwitchLabel  = "Switch between dark and light!"
	DefaultYear  = 2007
)

// TemplateSource resolves template presets by name.
type TemplateSource interface {
	Get(name string) (figure.Template, error)
}

// Config defines dashboard parameters.
type Config struct {
	Title         string
	Year          int
	LightTemplate string // template used with the switch on
	DarkTemplate  string // template used with the switch off
	SizeMax       float64
}

// Dashboard is the running dashboard: figures, page layout and the callback registry.
type Dashboard struct {
	cfg      Config
	page     Page
	registry *reactive.Registry

	mu      sync.RWMutex
	figures map[string]*figure.Figure
	order   []string
}

// New builds figures for the configured year and registers the theme sync callbacks.
// Both template names must resolve in the template source.
func New(ds dataset.Dataset, templates TemplateSource, cfg Config) (*Dashboard, error) {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Year == 0 {
		cfg.Year = DefaultYear
	}
	if cfg.LightTemplate == "" {
		cfg.LightTemplate = "vizro"
	}
	if cfg.DarkTemplate == "" {
		cfg.DarkTemplate = "vizro_dark"
	}
	for _, name := range []string{cfg.LightTemplate, cfg.DarkTemplate} {
		if _, err := templates.Get(name); err != nil {
			return nil, fmt.Errorf("failed to resolve template: %w", err)
		}
	}

	d := &Dashboard{cfg: cfg, registry: reactive.NewRegistry(reactive.NewStore())}

	scatter, box := Figures(ds, cfg.Year, cfg.SizeMax)
	sw := DefaultSwitch()
	initial := d.TemplateFor(sw.Value)
	scatter.Layout.Template, box.Layout.Template = initial, initial
	d.figures = map[string]*figure.Figure{ScatterID: scatter, BoxID: box}
	d.order = []string{ScatterID, BoxID}
	d.page = Assemble(cfg.Title, sw, Graph{ID: ScatterID, Kind: scatter.Kind}, Graph{ID: BoxID, Kind: box.Kind})

	d.registry.Store().Seed(reactive.Dep(SwitchID, "value"), sw.Value)
	if err := d.registerThemeSync(); err != nil {
		return nil, fmt.Errorf("failed to register theme sync: %w", err)
	}

	if scatter.Empty() {
		log.Printf("[WARN] no rows for year %d, figures are empty", cfg.Year)
	}
	log.Printf("[INFO] dashboard %q for year %d, templates %s/%s", cfg.Title, cfg.Year, cfg.LightTemplate, cfg.DarkTemplate)
	return d, nil
}

// Figures builds the scatter and box figures from rows of the given year.
func Figures(ds dataset.Dataset, year int, sizeMax float64) (scatter, box *figure.Figure) {
	rows := ds.Year(year).Rows()
	return figure.NewScatter(ScatterID, rows, sizeMax), figure.NewBox(BoxID, rows)
}

// TemplateFor returns the template name matching the switch state.
func (d *Dashboard) TemplateFor(on bool) string {
	if enum.ThemeFromSwitch(on) == enum.ThemeLight {
		return d.cfg.LightTemplate
	}
	return d.cfg.DarkTemplate
}

// Page returns the component tree with the switch in its current state.
func (d *Dashboard) Page() Page {
	res := d.page
	res.Tabs = append([]Tab(nil), d.page.Tabs...)
	res.Switch.Value = d.Theme().Switch()
	return res
}

// Theme returns the page theme derived from the current switch value.
func (d *Dashboard) Theme() enum.Theme {
	return enum.ThemeFromSwitch(d.registry.Store().Bool(reactive.Dep(SwitchID, "value")))
}

// Figure returns a copy of the figure by id.
func (d *Dashboard) Figure(id string) (figure.Figure, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	f, ok := d.figures[id]
	if !ok {
		return figure.Figure{}, fmt.Errorf("figure %q: %w", id, ErrNotFound)
	}
	return f.Clone(), nil
}

// AllFigures returns copies of all figures in page order.
func (d *Dashboard) AllFigures() []figure.Figure {
	d.mu.RLock()
	defer d.mu.RUnlock()
	res := make([]figure.Figure, 0, len(d.order))
	for _, id := range d.order {
		res = append(res, d.figures[id].Clone())
	}
	return res
}

// Dispatch passes an input event to the callback registry.
func (d *Dashboard) Dispatch(ctx context.Context, input reactive.Dependency, value any) (reactive.Response, error) {
	resp, err := d.registry.Dispatch(ctx, input, value)
	if err != nil {
		return reactive.Response{}, fmt.Errorf("failed to dispatch %s: %w", input, err)
	}
	return resp, nil
}

// ClientCallbacks returns callbacks executed by the browser.
func (d *Dashboard) ClientCallbacks() []reactive.ClientCallback {
	return d.registry.ClientCallbacks()
}
