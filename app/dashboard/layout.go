package dashboard

import (
	"github.com/umputun/vizdash/app/enum"
)

// Switch is the theme toggle component. Value on means light.
type Switch struct {
	ID          string `json:"id"`
	Value       bool   `json:"value"`
	Label       string `json:"label"`
	Persistence bool   `json:"persistence"`
}

// Graph is a chart component referencing a figure by id.
type Graph struct {
	ID   string         `json:"id"`
	Kind enum.ChartKind `json:"kind"`
}

// Tab is a labeled panel holding one graph.
type Tab struct {
	Label string `json:"label"`
	Graph Graph  `json:"graph"`
}

// Page is the component tree of the dashboard: heading, theme switch and tabs with graphs.
type Page struct {
	Title  string `json:"title"`
	Switch Switch `json:"switch"`
	Tabs   []Tab  `json:"tabs"`
}

// DefaultSwitch returns the theme switch in its initial state, off (dark) and persisted by the browser.
func DefaultSwitch() Switch {
	return Switch{ID: SwitchID, Value: false, Label: SwitchLabel, Persistence: true}
}

// Assemble composes the page from the title, the switch and graphs, one tab per graph in the given order.
func Assemble(title string, sw Switch, graphs ...Graph) Page {
	res := Page{Title: title, Switch: sw, Tabs: make([]Tab, 0, len(graphs))}
	for _, g := range graphs {
		res.Tabs = append(res.Tabs, Tab{Label: g.Kind.TabLabel(), Graph: g})
	}
	return res
}
