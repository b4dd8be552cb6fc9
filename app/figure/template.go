package figure

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	log "github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ./internal/schema schema.json

// ErrUnknownTemplate is returned when a template name is not registered.
var ErrUnknownTemplate = errors.New("unknown template")

//go:embed templates.yaml
var defaultTemplates []byte

// Template is a named bundle of default visual styling applied to a figure.
type Template struct {
	Name       string   `yaml:"name" toml:"name" json:"name" jsonschema:"required,minLength=1"`
	PaperColor string   `yaml:"paper_color" toml:"paper_color" json:"paper_color" jsonschema:"required,pattern=^#[0-9a-fA-F]{6}$"`
	PlotColor  string   `yaml:"plot_color" toml:"plot_color" json:"plot_color" jsonschema:"required,pattern=^#[0-9a-fA-F]{6}$"`
	FontColor  string   `yaml:"font_color" toml:"font_color" json:"font_color" jsonschema:"required,pattern=^#[0-9a-fA-F]{6}$"`
	GridColor  string   `yaml:"grid_color" toml:"grid_color" json:"grid_color" jsonschema:"required,pattern=^#[0-9a-fA-F]{6}$"`
	AxisColor  string   `yaml:"axis_color" toml:"axis_color" json:"axis_color" jsonschema:"required,pattern=^#[0-9a-fA-F]{6}$"`
	FontSize   float64  `yaml:"font_size,omitempty" toml:"font_size,omitempty" json:"font_size,omitempty" jsonschema:"minimum=6,maximum=32"`
	Colorway   []string `yaml:"colorway" toml:"colorway" json:"colorway" jsonschema:"required,minItems=1"`
}

// TemplateFile is the layout of a templates file, yaml or toml.
type TemplateFile struct {
	Templates []Template `yaml:"templates" toml:"templates" json:"templates" jsonschema:"required,description=figure templates by name"`
}

// Templates is the registry of template presets: the built-in ones with an optional
// user file merged over them. It is safe for concurrent use.
type Templates struct {
	mu    sync.RWMutex
	file  string
	items map[string]Template
	gen   uint64
}

// NewTemplates loads the built-in templates and, if file is not empty, the user templates file.
func NewTemplates(file string) (*Templates, error) {
	t := &Templates{file: file}
	items, err := t.load()
	if err != nil {
		return nil, err
	}
	t.items = items
	return t, nil
}

// Get returns the template by name.
func (t *Templates) Get(name string) (Template, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tpl, ok := t.items[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return tpl, nil
}

// Names returns sorted template names.
func (t *Templates) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	res := make([]string, 0, len(t.items))
	for name := range t.items {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// Generation returns a counter incremented on every successful reload.
func (t *Templates) Generation() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.gen
}

// Reload re-reads the user templates file. On error the current templates are kept.
func (t *Templates) Reload() error {
	items, err := t.load()
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.items = items
	t.gen++
	t.mu.Unlock()
	log.Printf("[INFO] templates reloaded from %s, %d template(s)", t.file, len(items))
	return nil
}

// load builds the full template set: defaults first, user file entries replace them by name.
func (t *Templates) load() (map[string]Template, error) {
	base, err := parseTemplateFile("templates.yaml", defaultTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in templates: %w", err)
	}
	items := make(map[string]Template, len(base.Templates))
	for _, tpl := range base.Templates {
		items[tpl.Name] = tpl
	}
	if t.file == "" {
		return items, nil
	}

	data, err := os.ReadFile(t.file) //nolint:gosec // path is from cli flag
	if err != nil {
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}
	user, err := parseTemplateFile(t.file, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates file %s: %w", t.file, err)
	}
	for _, tpl := range user.Templates {
		items[tpl.Name] = tpl
	}
	return items, nil
}

// parseTemplateFile verifies and decodes templates, toml for .toml files and yaml otherwise.
func parseTemplateFile(name string, data []byte) (TemplateFile, error) {
	isTOML := strings.EqualFold(filepath.Ext(name), ".toml")
	if err := VerifyTemplates(data, isTOML); err != nil {
		return TemplateFile{}, err
	}

	var res TemplateFile
	if isTOML {
		if err := toml.Unmarshal(data, &res); err != nil {
			return TemplateFile{}, fmt.Errorf("failed to decode toml: %w", err)
		}
		return res, nil
	}
	if err := yaml.Unmarshal(data, &res); err != nil {
		return TemplateFile{}, fmt.Errorf("failed to decode yaml: %w", err)
	}
	return res, nil
}

// Watch reloads the user templates file on change until ctx is canceled.
// The directory is watched rather than the file to catch atomic renames by editors.
func (t *Templates) Watch(ctx context.Context) error {
	if t.file == "" {
		return errors.New("templates file not set")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(t.file)
	filename := filepath.Base(t.file)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	log.Printf("[INFO] watching templates file %s for changes", t.file)

	go func() {
		defer watcher.Close()

		var debounceTimer *time.Timer
		const debounceDelay = 100 * time.Millisecond

		for {
			select {
			case <-ctx.Done():
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				log.Printf("[INFO] templates watcher stopped")
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filename {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, func() {
					if err := t.Reload(); err != nil {
						log.Printf("[WARN] failed to reload templates: %v", err)
					}
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[WARN] templates watcher error: %v", err)
			}
		}
	}()

	return nil
}
