package templates

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pixil98/gonorth-export/internal/storage"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type templateKey struct {
	projectId string
	t         Type
}

// FileProvider answers template lookups from an asset store. A project specific
// template wins over a shared one (empty project id), which wins over the
// embedded default set.
type FileProvider struct {
	byKey    map[templateKey]*ExportTemplate
	defaults map[Type]*ExportTemplate

	mu sync.RWMutex
}

func NewFileProvider(store storage.Storer[*ExportTemplate]) (*FileProvider, error) {
	defaults, err := LoadDefaults()
	if err != nil {
		return nil, err
	}

	p := &FileProvider{
		byKey:    map[templateKey]*ExportTemplate{},
		defaults: defaults,
	}

	if store == nil {
		return p, nil
	}

	for id, tmpl := range store.GetAll() {
		key := templateKey{projectId: tmpl.ProjectId, t: tmpl.Type}
		if existing, ok := p.byKey[key]; ok && existing != tmpl {
			return nil, fmt.Errorf("template %s: %s already defined for project %q", id, tmpl.Type, tmpl.ProjectId)
		}
		p.byKey[key] = tmpl
	}

	slog.Debug("indexed export templates", "count", len(p.byKey), "defaults", len(defaults))

	return p, nil
}

func (p *FileProvider) GetTemplate(_ context.Context, projectId string, t Type) (*ExportTemplate, error) {
	if _, ok := typeNames[t]; !ok {
		return nil, fmt.Errorf("looking up template: unknown template type %d", int(t))
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if tmpl, ok := p.byKey[templateKey{projectId: projectId, t: t}]; ok {
		return tmpl, nil
	}
	if tmpl, ok := p.byKey[templateKey{t: t}]; ok {
		return tmpl, nil
	}
	if tmpl, ok := p.defaults[t]; ok {
		return tmpl, nil
	}

	return nil, fmt.Errorf("%w: %s for project %q", ErrTemplateNotFound, t, projectId)
}

// Put registers or replaces a template at runtime.
func (p *FileProvider) Put(tmpl *ExportTemplate) error {
	if err := tmpl.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.byKey[templateKey{projectId: tmpl.ProjectId, t: tmpl.Type}] = tmpl
	return nil
}

type defaultTemplate struct {
	Type            Type            `yaml:"type"`
	RenderingEngine RenderingEngine `yaml:"rendering_engine"`
	Code            string          `yaml:"code"`
}

// LoadDefaults decodes the embedded default template set.
func LoadDefaults() (map[Type]*ExportTemplate, error) {
	var entries []defaultTemplate
	if err := yaml.Unmarshal(defaultsYAML, &entries); err != nil {
		return nil, fmt.Errorf("decoding default templates: %w", err)
	}

	out := make(map[Type]*ExportTemplate, len(entries))
	for _, e := range entries {
		tmpl := &ExportTemplate{
			Type:            e.Type,
			RenderingEngine: e.RenderingEngine,
			Code:            e.Code,
		}
		if err := tmpl.Validate(); err != nil {
			return nil, fmt.Errorf("default template %s: %w", e.Type, err)
		}
		if _, ok := out[e.Type]; ok {
			return nil, fmt.Errorf("default template %s defined twice", e.Type)
		}
		out[e.Type] = tmpl
	}
	return out, nil
}
