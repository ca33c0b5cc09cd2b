// Package snippets renders export snippets into the functions an object's
// export script calls.
package snippets

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/gonorth-export/internal/actions"
	"github.com/pixil98/gonorth-export/internal/exporterr"
)

// Function is one generated script function.
type Function struct {
	FunctionName string `json:"function_name"`
	Code         string `json:"code"`
	// ParentPreviewText describes the step that calls the function. It is
	// empty for the snippet's entry function.
	ParentPreviewText string `json:"parent_preview_text,omitempty"`
}

// Renderer turns snippets into functions using the action dispatcher.
type Renderer struct {
	dispatcher *actions.Dispatcher
}

func NewRenderer(d *actions.Dispatcher) *Renderer {
	return &Renderer{dispatcher: d}
}

type pendingFunction struct {
	name    string
	start   string
	preview string
}

// RenderExportSnippetFunctions renders snippet. Code snippets become a single
// function. Node graphs are walked from the start action; every edge the
// flow does not continue with opens a function of its own, named after the
// snippet with a running number.
func (r *Renderer) RenderExportSnippetFunctions(ctx context.Context, snippet *ExportSnippet, rc *actions.RenderContext, pc *actions.PreviewContext) ([]Function, error) {
	switch snippet.ScriptType {
	case ScriptTypeCode:
		return []Function{{FunctionName: snippet.Name, Code: snippet.ScriptCode}}, nil
	case ScriptTypeNodeGraph:
		if snippet.ScriptNodeGraph == nil || snippet.ScriptNodeGraph.Start == "" {
			return nil, nil
		}
		return r.renderGraph(ctx, snippet, rc, pc)
	default:
		return nil, nil
	}
}

func (r *Renderer) renderGraph(ctx context.Context, snippet *ExportSnippet, rc *actions.RenderContext, pc *actions.PreviewContext) ([]Function, error) {
	graph := snippet.ScriptNodeGraph

	// The caller's contexts are left untouched. Without a collection, content
	// errors are discarded.
	render := *rc
	if render.Errors == nil {
		render.Errors = exporterr.New()
	}
	preview := actions.PreviewContext{Project: render.Project, Subject: render.Subject}
	if pc != nil {
		preview = *pc
	}
	if preview.Errors == nil {
		preview.Errors = render.Errors
	}
	rc, pc = &render, &preview

	if graph.node(graph.Start) == nil {
		rc.Errors.Add(exporterr.KindInvalidActionData, snippet.Name, "snippet %s: start action %q not found", snippet.Name, graph.Start)
		return nil, nil
	}

	// functionFor maps an action id to the function starting with it.
	functionFor := map[string]string{graph.Start: snippet.Name}
	queue := []pendingFunction{{name: snippet.Name, start: graph.Start}}
	counter := 0

	var out []Function
	for len(queue) > 0 {
		fn := queue[0]
		queue = queue[1:]

		var code strings.Builder
		visited := map[string]bool{}
		for node := graph.node(fn.start); node != nil && !visited[node.Id]; {
			visited[node.Id] = true

			next, err := r.dispatcher.GetNextStep(node)
			if err != nil {
				return nil, fmt.Errorf("snippet %s: %w", snippet.Name, err)
			}

			step := *node
			step.Children = make([]actions.ActionChild, len(node.Children))
			for i, child := range node.Children {
				if next != nil && child == *next {
					step.Children[i] = child
					continue
				}
				name, ok := functionFor[child.ChildId]
				if !ok {
					counter++
					name = fmt.Sprintf("%s_%d", snippet.Name, counter)
					functionFor[child.ChildId] = name

					edgePreview := *pc
					edgePreview.Child = &child
					preview, err := r.dispatcher.BuildPreviewText(ctx, node, &edgePreview)
					if err != nil {
						return nil, fmt.Errorf("snippet %s: %w", snippet.Name, err)
					}
					queue = append(queue, pendingFunction{name: name, start: child.ChildId, preview: preview})
				}
				child.FunctionName = name
				step.Children[i] = child
			}

			element, err := r.dispatcher.BuildActionElement(ctx, &step, rc)
			if err != nil {
				return nil, fmt.Errorf("snippet %s: %w", snippet.Name, err)
			}
			if element != "" {
				code.WriteString(element)
				if !strings.HasSuffix(element, "\n") {
					code.WriteString("\n")
				}
			}

			if next == nil {
				break
			}
			node = graph.node(next.ChildId)
		}

		out = append(out, Function{FunctionName: fn.name, Code: code.String(), ParentPreviewText: fn.preview})
	}

	return out, nil
}
