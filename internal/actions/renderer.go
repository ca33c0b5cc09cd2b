package actions

import (
	"context"
	"fmt"

	"github.com/pixil98/gonorth-export/internal/exporterr"
	"github.com/pixil98/gonorth-export/internal/localization"
	"github.com/pixil98/gonorth-export/internal/placeholder"
	"github.com/pixil98/gonorth-export/internal/templates"
)

// Renderer turns one kind of action node into export code or preview text.
type Renderer interface {
	ActionType() ActionType
	TemplateType() templates.Type
	BuildActionElement(ctx context.Context, node *ActionNode, rc *RenderContext) (string, error)
	BuildPreviewText(ctx context.Context, node *ActionNode, pc *PreviewContext) (string, error)
	HasPlaceholdersForTemplateType(t templates.Type) bool
	GetExportTemplatePlaceholdersForType(t templates.Type) []placeholder.Placeholder
}

// NextStepper picks the edge an action node continues with.
type NextStepper interface {
	GetNextStep(children []ActionChild) *ActionChild
}

// variant is the policy of one action kind. resolve and preview return a nil
// output or "" after recording the reason in the env's collection.
type variant[T any] struct {
	action       ActionType
	templateType templates.Type
	placeholders placeholder.List

	resolve  func(ctx context.Context, e *env, p T) (*output, error)
	preview  func(ctx context.Context, e *env, p T) (string, error)
	nextStep func(children []ActionChild) *ActionChild
}

type deps struct {
	data      DataSource
	templates templates.Provider
}

// binder erases the payload type so variants can share one registry.
type binder interface {
	bind(expand expandFunc, d *deps) Renderer
	actionType() ActionType
	claims() templates.Type
}

func (v variant[T]) bind(expand expandFunc, d *deps) Renderer {
	return &renderer[T]{v: v, expand: expand, deps: d}
}

func (v variant[T]) actionType() ActionType { return v.action }
func (v variant[T]) claims() templates.Type { return v.templateType }

type renderer[T any] struct {
	v      variant[T]
	expand expandFunc
	deps   *deps
}

func (r *renderer[T]) ActionType() ActionType       { return r.v.action }
func (r *renderer[T]) TemplateType() templates.Type { return r.v.templateType }

func (r *renderer[T]) HasPlaceholdersForTemplateType(t templates.Type) bool {
	return t == r.v.templateType
}

func (r *renderer[T]) GetExportTemplatePlaceholdersForType(t templates.Type) []placeholder.Placeholder {
	if t != r.v.templateType {
		return nil
	}
	out := make([]placeholder.Placeholder, len(r.v.placeholders))
	copy(out, r.v.placeholders)
	return out
}

func (r *renderer[T]) BuildActionElement(ctx context.Context, node *ActionNode, rc *RenderContext) (string, error) {
	project, err := resolveProject(ctx, r.deps.data, rc.Project)
	if err != nil {
		return "", err
	}

	settings := project.Settings()
	if rc.Settings != nil {
		settings = *rc.Settings
	}

	e := &env{
		data:      r.deps.data,
		templates: r.deps.templates,
		node:      node,
		project:   project,
		subject:   rc.Subject,
		errs:      collection(rc.Errors),
		settings:  settings,
	}

	tmpl, err := r.deps.templates.GetTemplate(ctx, project.Id, r.v.templateType)
	if err != nil {
		return "", fmt.Errorf("loading template for %s: %w", node.ActionType, err)
	}

	p, ok := decodePayload[T](node, e.errs)
	if !ok {
		return "", nil
	}

	out, err := r.v.resolve(ctx, e, p)
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", nil
	}

	return r.expand(tmpl.Code, out, e)
}

func (r *renderer[T]) BuildPreviewText(ctx context.Context, node *ActionNode, pc *PreviewContext) (string, error) {
	project, err := resolveProject(ctx, r.deps.data, pc.Project)
	if err != nil {
		return "", err
	}

	loc := pc.Localizer
	if loc == nil {
		loc = localization.English()
	}

	e := &env{
		data:      r.deps.data,
		templates: r.deps.templates,
		node:      node,
		project:   project,
		subject:   pc.Subject,
		errs:      collection(pc.Errors),
		settings:  project.Settings(),
		loc:       loc,
		child:     pc.Child,
	}

	p, ok := decodePayload[T](node, e.errs)
	if !ok {
		return "", nil
	}

	return r.v.preview(ctx, e, p)
}

// GetNextStep follows the first edge unless the variant overrides branching.
func (r *renderer[T]) GetNextStep(children []ActionChild) *ActionChild {
	if r.v.nextStep != nil {
		return r.v.nextStep(children)
	}
	return firstChild(children)
}

func collection(c *exporterr.Collection) *exporterr.Collection {
	if c == nil {
		return exporterr.New()
	}
	return c
}
