// Package exportsvc answers render requests for single action nodes and
// export snippets.
package exportsvc

import (
	"context"
	"fmt"

	"github.com/pixil98/gonorth-export/internal/actions"
	"github.com/pixil98/gonorth-export/internal/content"
	"github.com/pixil98/gonorth-export/internal/exporterr"
	"github.com/pixil98/gonorth-export/internal/localization"
	"github.com/pixil98/gonorth-export/internal/snippets"
)

// Content is the data the service renders against.
type Content interface {
	actions.DataSource
	GetProject(ctx context.Context, id string) (*content.Project, error)
}

// RenderRequest asks for the code or preview of an action, or the functions
// of a snippet.
type RenderRequest struct {
	RequestId string `json:"request_id,omitempty"`
	// ProjectId defaults to the default project.
	ProjectId string `json:"project_id,omitempty"`
	// NpcId is the npc owning the dialog.
	NpcId    string `json:"npc_id,omitempty"`
	Language string `json:"language,omitempty"`
	Preview  bool   `json:"preview,omitempty"`

	Action  *actions.ActionNode     `json:"action,omitempty"`
	Snippet *snippets.ExportSnippet `json:"snippet,omitempty"`
}

// RenderResponse carries the rendered output. Error is set when the request
// could not be rendered at all; content problems are listed in Errors.
type RenderResponse struct {
	RequestId string               `json:"request_id"`
	Code      string               `json:"code,omitempty"`
	Preview   string               `json:"preview,omitempty"`
	NextStep  *actions.ActionChild `json:"next_step,omitempty"`
	Functions []snippets.Function  `json:"functions,omitempty"`
	Errors    []exporterr.Entry    `json:"errors,omitempty"`
	Error     string               `json:"error,omitempty"`
}

type Service struct {
	content    Content
	dispatcher *actions.Dispatcher
	snippets   *snippets.Renderer
	language   string
}

// NewService renders with dispatcher. language is used for previews of
// requests that do not name one.
func NewService(c Content, dispatcher *actions.Dispatcher, language string) *Service {
	return &Service{
		content:    c,
		dispatcher: dispatcher,
		snippets:   snippets.NewRenderer(dispatcher),
		language:   language,
	}
}

// Render handles one request.
func (s *Service) Render(ctx context.Context, req *RenderRequest) *RenderResponse {
	resp := &RenderResponse{RequestId: req.RequestId}
	errs := exporterr.New()

	if err := s.render(ctx, req, resp, errs); err != nil {
		resp.Error = err.Error()
	}
	resp.Errors = errs.Entries()

	return resp
}

func (s *Service) render(ctx context.Context, req *RenderRequest, resp *RenderResponse, errs *exporterr.Collection) error {
	if req.Action == nil && req.Snippet == nil {
		return fmt.Errorf("request has neither action nor snippet")
	}

	var project *content.Project
	if req.ProjectId != "" {
		p, err := s.content.GetProject(ctx, req.ProjectId)
		if err != nil {
			return fmt.Errorf("loading project %s: %w", req.ProjectId, err)
		}
		if p == nil {
			return fmt.Errorf("unknown project %q", req.ProjectId)
		}
		project = p
	}

	lang := req.Language
	if lang == "" {
		lang = s.language
	}
	loc, err := localization.New(lang)
	if err != nil {
		return err
	}

	rc := &actions.RenderContext{Project: project, Errors: errs}
	pc := &actions.PreviewContext{Project: project, Errors: errs, Localizer: loc}

	if req.NpcId != "" {
		npc, err := s.content.GetNpc(ctx, req.NpcId)
		if err != nil {
			return fmt.Errorf("loading npc %s: %w", req.NpcId, err)
		}
		if npc == nil {
			// Nothing is rendered for an unknown dialog npc.
			errs.AddNpcNotFound(req.NpcId)
			return nil
		}
		rc.Subject = npc
		pc.Subject = npc
	}

	if req.Action != nil {
		if req.Preview {
			resp.Preview, err = s.dispatcher.BuildPreviewText(ctx, req.Action, pc)
			if err != nil {
				return err
			}
		} else {
			resp.Code, err = s.dispatcher.BuildActionElement(ctx, req.Action, rc)
			if err != nil {
				return err
			}
			resp.NextStep, err = s.dispatcher.GetNextStep(req.Action)
			if err != nil {
				return err
			}
		}
	}

	if req.Snippet != nil {
		resp.Functions, err = s.snippets.RenderExportSnippetFunctions(ctx, req.Snippet, rc, pc)
		if err != nil {
			return err
		}
	}

	return nil
}
