// Package web provides HTTP handlers for the dashboard page and its html fragments.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/vizdash/app/dashboard"
	"github.com/umputun/vizdash/app/enum"
	"github.com/umputun/vizdash/app/figure"
	"github.com/umputun/vizdash/app/reactive"
)

//go:generate moq -out mocks/dashboard.go -pkg mocks -skip-ensure -fmt goimports . Dashboard
//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Dashboard defines the dashboard state the web UI reads.
type Dashboard interface {
	Page() dashboard.Page
	Theme() enum.Theme
	Figure(id string) (figure.Figure, error)
	ClientCallbacks() []reactive.ClientCallback
}

// Renderer draws a figure as svg.
type Renderer interface {
	SVG(f figure.Figure) ([]byte, error)
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
	Version string
}

// Handler handles web UI requests.
type Handler struct {
	dash        Dashboard
	renderer    Renderer
	highlighter *Highlighter
	tmpl        *template.Template
	baseURL     string
	version     string
}

// New creates a new web handler.
func New(d Dashboard, rnd Renderer, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{
		dash:        d,
		renderer:    rnd,
		highlighter: NewHighlighter(),
		tmpl:        tmpl,
		baseURL:     cfg.BaseURL,
		version:     cfg.Version,
	}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("GET /web/graph/{id}", h.handleGraph)
	r.HandleFunc("GET /web/figure/{id}", h.handleFigure)
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"wrapGraph": func(g graphData) templateData { return templateData{Graph: g} },
	}
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(templateFuncs())

	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	if tmpl, err = tmpl.Parse(string(baseContent)); err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	indexContent, err := templatesFS.ReadFile("templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("read index.html: %w", err)
	}
	if _, err = tmpl.New("index.html").Parse(string(indexContent)); err != nil {
		return nil, fmt.Errorf("parse index.html: %w", err)
	}

	for _, name := range []string{"graph", "inspector"} {
		content, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		if _, parseErr := tmpl.New(name).Parse(string(content)); parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}
	return tmpl, nil
}

// clientConfig is passed to the browser runtime as json.
type clientConfig struct {
	BaseURL   string                    `json:"baseURL"`
	Switch    dashboard.Switch          `json:"switch"`
	Callbacks []reactive.ClientCallback `json:"callbacks"`
}

// graphData is a rendered graph of the page.
type graphData struct {
	ID       string
	Template string
	Revision uint64
	SVG      template.HTML
}

// templateData holds data passed to templates.
type templateData struct {
	Page      dashboard.Page
	Theme     string
	BaseURL   string
	Version   string
	Graphs    map[string]graphData
	Client    clientConfig
	Graph     graphData     // single graph fragment
	FigureID  string        // inspected figure
	Inspector template.HTML // highlighted figure json
}

// handleIndex renders the full dashboard page with all graphs drawn in their current template.
// GET /
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := h.dash.Page()
	graphs := make(map[string]graphData, len(page.Tabs))
	for _, tab := range page.Tabs {
		g, err := h.graph(tab.Graph.ID)
		if err != nil {
			log.Printf("[WARN] failed to render graph %s: %v", tab.Graph.ID, err)
			http.Error(w, "failed to render graph", http.StatusInternalServerError)
			return
		}
		graphs[tab.Graph.ID] = g
	}

	data := templateData{
		Page:    page,
		Theme:   h.dash.Theme().Attr(),
		BaseURL: h.baseURL,
		Version: h.version,
		Graphs:  graphs,
		Client: clientConfig{
			BaseURL:   h.baseURL,
			Switch:    page.Switch,
			Callbacks: h.dash.ClientCallbacks(),
		},
	}
	h.render(w, "base.html", data)
}

// handleGraph renders a single graph as an html fragment with inline svg.
// GET /web/graph/{id}
func (h *Handler) handleGraph(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	g, err := h.graph(id)
	if err != nil {
		h.sendError(w, id, err)
		return
	}
	h.render(w, "graph", templateData{Graph: g, BaseURL: h.baseURL})
}

// handleFigure renders the figure specification as highlighted json in the current page theme.
// GET /web/figure/{id}
func (h *Handler) handleFigure(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	f, err := h.dash.Figure(id)
	if err != nil {
		h.sendError(w, id, err)
		return
	}
	code, err := figureJSON(f)
	if err != nil {
		h.sendError(w, id, err)
		return
	}
	h.render(w, "inspector", templateData{
		FigureID:  id,
		Theme:     h.dash.Theme().Attr(),
		Inspector: h.highlighter.Code(code, "json", h.dash.Theme()),
	})
}

// graph renders the current state of a figure.
func (h *Handler) graph(id string) (graphData, error) {
	f, err := h.dash.Figure(id)
	if err != nil {
		return graphData{}, err
	}
	svg, err := h.renderer.SVG(f)
	if err != nil {
		return graphData{}, fmt.Errorf("failed to render %s: %w", id, err)
	}
	return graphData{
		ID:       id,
		Template: f.Layout.Template,
		Revision: f.Revision(),
		SVG:      template.HTML(svg), //nolint:gosec // svg is produced by the chart renderer
	}, nil
}

// render executes the named template.
func (h *Handler) render(w http.ResponseWriter, name string, data templateData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[WARN] failed to execute template %s: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// sendError maps dashboard errors to http responses.
func (h *Handler) sendError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, dashboard.ErrNotFound) {
		http.Error(w, "figure not found", http.StatusNotFound)
		return
	}
	log.Printf("[WARN] figure %s: %v", id, err)
	http.Error(w, "failed to render figure", http.StatusInternalServerError)
}
