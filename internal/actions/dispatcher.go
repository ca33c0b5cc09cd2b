package actions

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/pixil98/gonorth-export/internal/placeholder"
	"github.com/pixil98/gonorth-export/internal/templates"
)

// Dispatcher routes action nodes to the renderer of their type within the
// family matching the template's rendering engine. Previews and branching
// always use the template engine family.
type Dispatcher struct {
	families  map[templates.RenderingEngine]map[ActionType]Renderer
	templates templates.Provider
	data      DataSource
}

// NewDispatcher builds a renderer family for each engine. Without engines
// both families are built; the template engine family is always present.
func NewDispatcher(data DataSource, provider templates.Provider, engines ...templates.RenderingEngine) (*Dispatcher, error) {
	return newDispatcher(data, provider, catalog(), engines...)
}

func newDispatcher(data DataSource, provider templates.Provider, variants []binder, engines ...templates.RenderingEngine) (*Dispatcher, error) {
	if len(engines) == 0 {
		engines = []templates.RenderingEngine{templates.RenderingEngineLegacy, templates.RenderingEngineTemplate}
	}
	hasTemplate := false
	for _, e := range engines {
		hasTemplate = hasTemplate || e == templates.RenderingEngineTemplate
	}
	if !hasTemplate {
		engines = append(engines, templates.RenderingEngineTemplate)
	}

	if err := checkClaims(variants); err != nil {
		return nil, err
	}

	d := &Dispatcher{
		families:  make(map[templates.RenderingEngine]map[ActionType]Renderer, len(engines)),
		templates: provider,
		data:      data,
	}
	dp := &deps{data: data, templates: provider}

	for _, engine := range engines {
		expand, err := expanderFor(engine)
		if err != nil {
			return nil, err
		}
		family := make(map[ActionType]Renderer, len(variants))
		for _, v := range variants {
			family[v.actionType()] = v.bind(expand, dp)
		}
		d.families[engine] = family
	}

	slog.Debug("built action renderers", "engines", len(d.families), "actions", len(variants))

	return d, nil
}

// checkClaims rejects two variants for one action type or one template type.
func checkClaims(variants []binder) error {
	actions := map[ActionType]templates.Type{}
	claimed := map[templates.Type]ActionType{}
	for _, v := range variants {
		if t, ok := actions[v.actionType()]; ok {
			return fmt.Errorf("action %s registered twice (templates %s and %s)", v.actionType(), t, v.claims())
		}
		if a, ok := claimed[v.claims()]; ok {
			return fmt.Errorf("template %s claimed by %s and %s", v.claims(), a, v.actionType())
		}
		actions[v.actionType()] = v.claims()
		claimed[v.claims()] = v.actionType()
	}
	return nil
}

func (d *Dispatcher) renderer(engine templates.RenderingEngine, action ActionType) (Renderer, error) {
	family, ok := d.families[engine]
	if !ok {
		return nil, &ConfigurationError{Reason: "no renderer family for engine", ActionType: action, Engine: &engine}
	}
	r, ok := family[action]
	if !ok {
		return nil, &ConfigurationError{Reason: "no renderer for action type", ActionType: action, Engine: &engine}
	}
	return r, nil
}

// BuildActionElement renders node with the family of its template's engine.
func (d *Dispatcher) BuildActionElement(ctx context.Context, node *ActionNode, rc *RenderContext) (string, error) {
	base, err := d.renderer(templates.RenderingEngineTemplate, node.ActionType)
	if err != nil {
		return "", err
	}

	project, err := resolveProject(ctx, d.data, rc.Project)
	if err != nil {
		return "", err
	}

	tmpl, err := d.templates.GetTemplate(ctx, project.Id, base.TemplateType())
	if err != nil {
		return "", fmt.Errorf("loading template for %s: %w", node.ActionType, err)
	}

	engine := tmpl.RenderingEngine
	family, ok := d.families[engine]
	if !ok {
		return "", &ConfigurationError{
			Reason:       "no renderer family for engine",
			ActionType:   node.ActionType,
			TemplateType: base.TemplateType(),
			Engine:       &engine,
		}
	}

	withProject := *rc
	withProject.Project = project
	return family[node.ActionType].BuildActionElement(ctx, node, &withProject)
}

// BuildPreviewText renders the human readable summary of node.
func (d *Dispatcher) BuildPreviewText(ctx context.Context, node *ActionNode, pc *PreviewContext) (string, error) {
	r, err := d.renderer(templates.RenderingEngineTemplate, node.ActionType)
	if err != nil {
		return "", err
	}
	return r.BuildPreviewText(ctx, node, pc)
}

// GetNextStep returns the edge the flow continues with after node.
func (d *Dispatcher) GetNextStep(node *ActionNode) (*ActionChild, error) {
	r, err := d.renderer(templates.RenderingEngineTemplate, node.ActionType)
	if err != nil {
		return nil, err
	}
	if ns, ok := r.(NextStepper); ok {
		return ns.GetNextStep(node.Children), nil
	}
	return firstChild(node.Children), nil
}

// HasPlaceholdersForTemplateType reports whether any action renders with t.
func (d *Dispatcher) HasPlaceholdersForTemplateType(t templates.Type) bool {
	for _, r := range d.families[templates.RenderingEngineTemplate] {
		if r.HasPlaceholdersForTemplateType(t) {
			return true
		}
	}
	return false
}

// GetExportTemplatePlaceholdersForType lists the placeholders available to
// templates of type t.
func (d *Dispatcher) GetExportTemplatePlaceholdersForType(t templates.Type) []placeholder.Placeholder {
	for _, r := range d.families[templates.RenderingEngineTemplate] {
		if r.HasPlaceholdersForTemplateType(t) {
			return r.GetExportTemplatePlaceholdersForType(t)
		}
	}
	return nil
}

// ActionTypes lists the registered action types in ascending order.
func (d *Dispatcher) ActionTypes() []ActionType {
	family := d.families[templates.RenderingEngineTemplate]
	out := make([]ActionType, 0, len(family))
	for a := range family {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
