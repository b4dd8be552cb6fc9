// Package api provides JSON handlers for callback dispatch, layout, figures and templates.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/vizdash/app/dashboard"
	"github.com/umputun/vizdash/app/enum"
	"github.com/umputun/vizdash/app/figure"
	"github.com/umputun/vizdash/app/reactive"
)

//go:generate moq -out mocks/dashboard.go -pkg mocks -skip-ensure -fmt goimports . Dashboard
//go:generate moq -out mocks/templatelister.go -pkg mocks -skip-ensure -fmt goimports . TemplateLister

// Dashboard defines dashboard operations used by the api.
type Dashboard interface {
	Page() dashboard.Page
	Theme() enum.Theme
	Figure(id string) (figure.Figure, error)
	TemplateFor(on bool) string
	ClientCallbacks() []reactive.ClientCallback
	Dispatch(ctx context.Context, input reactive.Dependency, value any) (reactive.Response, error)
}

// TemplateLister lists registered template names.
type TemplateLister interface {
	Names() []string
}

// Handler handles api requests.
type Handler struct {
	dash      Dashboard
	templates TemplateLister
}

// New creates a new API handler.
func New(d Dashboard, tl TemplateLister) *Handler {
	return &Handler{dash: d, templates: tl}
}

// RegisterCallbacks registers the callback protocol routes on the given router.
func (h *Handler) RegisterCallbacks(r *routegroup.Bundle) {
	r.HandleFunc("POST /_dash-update-component", h.handleUpdate)
	r.HandleFunc("GET /_dash-layout", h.handleLayout)
}

// Register registers read-only api routes, expected to be mounted under /api.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /figures/{id}", h.handleFigure)
	r.HandleFunc("GET /templates", h.handleTemplates)
}

// updateRequest is the body of a callback request.
type updateRequest struct {
	ChangedPropIDs []string     `json:"changedPropIds"`
	Inputs         []inputValue `json:"inputs"`
}

type inputValue struct {
	ID       string `json:"id"`
	Property string `json:"property"`
	Value    any    `json:"value"`
}

// handleUpdate dispatches changed input properties to callbacks and returns their outputs.
// POST /_dash-update-component
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}
	if len(req.ChangedPropIDs) == 0 {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, errors.New("no changed properties"), "no changed properties")
		return
	}

	resp := reactive.Response{Multi: true, Outputs: map[string]map[string]any{}}
	for _, changed := range req.ChangedPropIDs {
		dep, err := reactive.ParseDependency(changed)
		if err != nil {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid changed property")
			return
		}
		value, ok := req.value(dep)
		if !ok {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest,
				fmt.Errorf("no input value for %s", dep), "missing input value")
			return
		}

		res, err := h.dash.Dispatch(r.Context(), dep, value)
		if err != nil {
			code := http.StatusInternalServerError
			if errors.Is(err, reactive.ErrNoCallback) || errors.Is(err, reactive.ErrInvalidValue) {
				code = http.StatusBadRequest
			}
			rest.SendErrorJSON(w, r, log.Default(), code, err, "callback failed")
			return
		}
		if resp.EventID == "" {
			resp.EventID = res.EventID
		}
		for id, props := range res.Outputs {
			if resp.Outputs[id] == nil {
				resp.Outputs[id] = map[string]any{}
			}
			for prop, v := range props {
				resp.Outputs[id][prop] = v
			}
		}
	}
	log.Printf("[DEBUG] callback event %s, changed %v, %d output(s)", resp.EventID, req.ChangedPropIDs, len(resp.Outputs))
	rest.RenderJSON(w, resp)
}

// value returns the input value for dependency.
func (req updateRequest) value(dep reactive.Dependency) (any, bool) {
	for _, in := range req.Inputs {
		if in.ID == dep.ID && in.Property == dep.Property {
			return in.Value, true
		}
	}
	return nil, false
}

// layoutResponse is the page structure with the current theme and client callbacks.
type layoutResponse struct {
	Page      dashboard.Page            `json:"page"`
	Theme     string                    `json:"theme"`
	Callbacks []reactive.ClientCallback `json:"callbacks"`
}

// handleLayout returns the page component tree.
// GET /_dash-layout
func (h *Handler) handleLayout(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, layoutResponse{
		Page:      h.dash.Page(),
		Theme:     h.dash.Theme().Attr(),
		Callbacks: h.dash.ClientCallbacks(),
	})
}

// handleFigure returns figure specification as json.
// GET /api/figures/{id}
func (h *Handler) handleFigure(w http.ResponseWriter, r *http.Request) {
	f, err := h.dash.Figure(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, dashboard.ErrNotFound) {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, err, "figure not found")
			return
		}
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to get figure")
		return
	}
	rest.RenderJSON(w, f)
}

// templatesResponse lists templates and the one referenced by figures now.
type templatesResponse struct {
	Templates []string `json:"templates"`
	Active    string   `json:"active"`
	Light     string   `json:"light"`
	Dark      string   `json:"dark"`
}

// handleTemplates returns registered template names.
// GET /api/templates
func (h *Handler) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, templatesResponse{
		Templates: h.templates.Names(),
		Active:    h.dash.TemplateFor(h.dash.Theme().Switch()),
		Light:     h.dash.TemplateFor(true),
		Dark:      h.dash.TemplateFor(false),
	})
}
