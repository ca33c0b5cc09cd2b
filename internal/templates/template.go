package templates

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/pixil98/go-errors"
)

// ErrTemplateNotFound is returned when neither the project nor the defaults
// provide a template for a type.
var ErrTemplateNotFound = errors.New("export template not found")

// ExportTemplate is the user authored code for one template type.
type ExportTemplate struct {
	ProjectId       string          `json:"project_id" yaml:"project_id"`
	Type            Type            `json:"type" yaml:"type"`
	RenderingEngine RenderingEngine `json:"rendering_engine" yaml:"rendering_engine"`
	Code            string          `json:"code" yaml:"code"`
}

func (t *ExportTemplate) Validate() error {
	el := goerrors.NewErrorList()
	if _, ok := typeNames[t.Type]; !ok {
		el.Add(fmt.Errorf("template type is required"))
	}
	switch t.RenderingEngine {
	case RenderingEngineLegacy, RenderingEngineTemplate:
	default:
		el.Add(fmt.Errorf("unknown rendering engine %d", int(t.RenderingEngine)))
	}
	return el.Err()
}

// Provider looks up the template a project uses for a type.
type Provider interface {
	GetTemplate(ctx context.Context, projectId string, t Type) (*ExportTemplate, error)
}
