package actions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pixil98/gonorth-export/internal/exporterr"
	"github.com/pixil98/gonorth-export/internal/templates"
)

// decodePayload parses the stored action data of a node. Malformed data is
// recorded in errs and reported as not ok.
func decodePayload[T any](node *ActionNode, errs *exporterr.Collection) (T, bool) {
	var p T
	raw := strings.TrimSpace(node.ActionData)
	if raw == "" {
		raw = "{}"
	}
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		errs.Add(exporterr.KindInvalidActionData, node.Id, "action %s of type %s has invalid data: %v", node.Id, node.ActionType, err)
		return p, false
	}
	return p, true
}

// rawCode reads a JSON string or number as its textual form.
func rawCode(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(data), nil
}

// flexInt accepts 5 as well as "5".
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	s, err := rawCode(data)
	if err != nil {
		return err
	}
	if s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*n = flexInt(v)
	return nil
}

// flexFloat accepts 1.5 as well as "1.5".
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s, err := rawCode(data)
	if err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*f = flexFloat(v)
	return nil
}

func (f flexFloat) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

// QuestState is the target state of a ChangeQuestState action.
type QuestState int

const (
	QuestStateNotStarted QuestState = iota
	QuestStateInProgress
	QuestStateSuccess
	QuestStateFailed
)

var questStateCodes = map[string]QuestState{
	"0": QuestStateNotStarted,
	"1": QuestStateInProgress,
	"2": QuestStateSuccess,
	"3": QuestStateFailed,
}

func (s *QuestState) UnmarshalJSON(data []byte) error {
	code, err := rawCode(data)
	if err != nil {
		return err
	}
	v, ok := questStateCodes[code]
	if !ok {
		return fmt.Errorf("unknown quest state %q", code)
	}
	*s = v
	return nil
}

// WaitType selects the clock a Wait action counts on.
type WaitType int

const (
	WaitTypeRealTime WaitType = iota
	WaitTypeGameTime
)

func (w *WaitType) UnmarshalJSON(data []byte) error {
	code, err := rawCode(data)
	if err != nil {
		return err
	}
	switch code {
	case "0":
		*w = WaitTypeRealTime
	case "1":
		*w = WaitTypeGameTime
	default:
		return fmt.Errorf("unknown wait type %q", code)
	}
	return nil
}

// WaitUnit is the unit of a Wait action's amount.
type WaitUnit int

const (
	WaitUnitMilliseconds WaitUnit = iota
	WaitUnitSeconds
	WaitUnitMinutes
	WaitUnitHours
	WaitUnitDays
)

func (w *WaitUnit) UnmarshalJSON(data []byte) error {
	code, err := rawCode(data)
	if err != nil {
		return err
	}
	v, err := strconv.Atoi(code)
	if err != nil || v < int(WaitUnitMilliseconds) || v > int(WaitUnitDays) {
		return fmt.Errorf("unknown wait unit %q", code)
	}
	*w = WaitUnit(v)
	return nil
}

// OperatorKind is a recognized value change operator.
type OperatorKind int

const (
	OperatorUnknown OperatorKind = iota
	OperatorAssign
	OperatorAdd
	OperatorSubtract
	OperatorMultiply
	OperatorDivide
)

var operatorSymbols = map[string]OperatorKind{
	"=":  OperatorAssign,
	"+=": OperatorAdd,
	"-=": OperatorSubtract,
	"*=": OperatorMultiply,
	"/=": OperatorDivide,
}

var operatorTemplates = map[OperatorKind]templates.Type{
	OperatorAssign:   templates.GeneralLogicAssign,
	OperatorAdd:      templates.GeneralLogicAdd,
	OperatorSubtract: templates.GeneralLogicSubtract,
	OperatorMultiply: templates.GeneralLogicMultiply,
	OperatorDivide:   templates.GeneralLogicDivide,
}

// Operator keeps the stored symbol next to its decoded kind so unknown
// symbols can be reported at render time.
type Operator struct {
	Kind OperatorKind
	Raw  string
}

// ParseOperator decodes an operator symbol. Unrecognized symbols yield
// OperatorUnknown.
func ParseOperator(raw string) Operator {
	return Operator{
		Kind: operatorSymbols[strings.ToLower(strings.TrimSpace(raw))],
		Raw:  raw,
	}
}

func (o *Operator) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("operator must be a string: %w", err)
	}
	*o = ParseOperator(s)
	return nil
}

// TemplateType returns the project template holding the operator code.
func (o Operator) TemplateType() (templates.Type, bool) {
	t, ok := operatorTemplates[o.Kind]
	return t, ok
}

type valueChangePayload struct {
	ObjectId    string   `json:"objectId"`
	FieldId     string   `json:"fieldId"`
	FieldName   string   `json:"fieldName"`
	Operator    Operator `json:"operator"`
	ValueChange string   `json:"valueChange"`
}

type inventoryPayload struct {
	ItemId   string  `json:"itemId"`
	Quantity flexInt `json:"quantity"`
}

type questStatePayload struct {
	QuestId    string     `json:"questId"`
	QuestState QuestState `json:"questState"`
}

type questTextPayload struct {
	QuestId   string `json:"questId"`
	QuestText string `json:"questText"`
}

type waitPayload struct {
	WaitAmount flexInt  `json:"waitAmount"`
	WaitType   WaitType `json:"waitType"`
	WaitUnit   WaitUnit `json:"waitUnit"`
}

type gameTimePayload struct {
	Hours   flexInt `json:"hours"`
	Minutes flexInt `json:"minutes"`
}

type useItemPayload struct {
	ItemId string `json:"itemId"`
	NpcId  string `json:"npcId"`
}

type skillPayload struct {
	SkillId string `json:"skillId"`
}

type statePayload struct {
	State string `json:"state"`
}

type animationPayload struct {
	Animation string `json:"animation"`
}

type floatingTextPayload struct {
	FloatingText string `json:"floatingText"`
}

type fadePayload struct {
	FadeTime flexFloat `json:"fadeTime"`
}

type emptyPayload struct{}

type codePayload struct {
	ScriptName string `json:"scriptName"`
	ScriptCode string `json:"scriptCode"`
}

type dailyRoutinePayload struct {
	NpcId   string `json:"npcId"`
	EventId string `json:"eventId"`
}

type markerPayload struct {
	MapId    string `json:"mapId"`
	MarkerId string `json:"markerId"`
}

type spawnPayload struct {
	ObjectId string    `json:"objectId"`
	MapId    string    `json:"mapId"`
	MarkerId string    `json:"markerId"`
	Pitch    flexFloat `json:"pitch"`
	Yaw      flexFloat `json:"yaw"`
	Roll     flexFloat `json:"roll"`
}
