package snippets

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/gonorth-export/internal/actions"
)

// ScriptType is how a snippet's logic is stored.
type ScriptType int

const (
	ScriptTypeNone ScriptType = iota
	ScriptTypeCode
	ScriptTypeNodeGraph
)

var scriptTypeNames = map[ScriptType]string{
	ScriptTypeNone:      "none",
	ScriptTypeCode:      "code",
	ScriptTypeNodeGraph: "node_graph",
}

func (s ScriptType) String() string {
	if n, ok := scriptTypeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("ScriptType(%d)", int(s))
}

func (s ScriptType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ScriptType) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = ScriptTypeNone
		return nil
	}
	for t, n := range scriptTypeNames {
		if n == string(text) {
			*s = t
			return nil
		}
	}
	return fmt.Errorf("unknown script type %q", string(text))
}

// NodeGraph is an action flow. Start is the id of the first action.
type NodeGraph struct {
	Start   string               `json:"start" yaml:"start"`
	Actions []actions.ActionNode `json:"actions" yaml:"actions"`
}

func (g *NodeGraph) node(id string) *actions.ActionNode {
	for i := range g.Actions {
		if g.Actions[i].Id == id {
			return &g.Actions[i]
		}
	}
	return nil
}

// ExportSnippet is a named piece of logic spliced into an object's export.
type ExportSnippet struct {
	Name            string     `json:"name" yaml:"name"`
	ScriptType      ScriptType `json:"script_type" yaml:"script_type"`
	ScriptCode      string     `json:"script_code,omitempty" yaml:"script_code,omitempty"`
	ScriptNodeGraph *NodeGraph `json:"script_node_graph,omitempty" yaml:"script_node_graph,omitempty"`
}

func (s *ExportSnippet) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("snippet name is required"))
	}

	switch s.ScriptType {
	case ScriptTypeNone, ScriptTypeCode:
	case ScriptTypeNodeGraph:
		if s.ScriptNodeGraph == nil {
			el.Add(fmt.Errorf("snippet %q: script_node_graph is required", s.Name))
			break
		}
		seen := make(map[string]bool, len(s.ScriptNodeGraph.Actions))
		for _, a := range s.ScriptNodeGraph.Actions {
			if a.Id == "" {
				el.Add(fmt.Errorf("snippet %q: action id is required", s.Name))
				continue
			}
			if seen[a.Id] {
				el.Add(fmt.Errorf("snippet %q: duplicate action %q", s.Name, a.Id))
			}
			seen[a.Id] = true
		}
	default:
		el.Add(fmt.Errorf("snippet %q: unknown script type %s", s.Name, s.ScriptType))
	}

	return el.Err()
}
