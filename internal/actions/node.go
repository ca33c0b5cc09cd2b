package actions

// DirectContinueNodeChildId marks the child edge of a move action that is
// called once the movement completes.
const DirectContinueNodeChildId = 1

// ActionNode is one action step of a dialog or snippet graph.
type ActionNode struct {
	Id         string        `json:"id" yaml:"id"`
	ActionType ActionType    `json:"actionType" yaml:"action_type"`
	ActionData string        `json:"actionData" yaml:"action_data"`
	Children   []ActionChild `json:"children,omitempty" yaml:"children,omitempty"`
}

// ActionChild is an outgoing edge of an action node.
type ActionChild struct {
	NodeChildId  int    `json:"nodeChildId" yaml:"node_child_id"`
	ChildId      string `json:"childId" yaml:"child_id"`
	FunctionName string `json:"functionName,omitempty" yaml:"function_name,omitempty"`
}

// IsDirectContinue reports whether the edge is the direct continue edge of a
// move action.
func (c ActionChild) IsDirectContinue() bool {
	return c.NodeChildId == DirectContinueNodeChildId
}

// firstChild is the default branching: the first edge wins.
func firstChild(children []ActionChild) *ActionChild {
	if len(children) == 0 {
		return nil
	}
	c := children[0]
	return &c
}
