// Package templates holds the export templates of a project and the catalog of
// template types they are selected by.
package templates

import "fmt"

// Type names the template slot a piece of export code is authored for.
type Type int

const (
	TypeUnknown Type = iota

	TaleActionChangePlayerValue
	TaleActionChangeNpcValue
	TaleActionChangeQuestValue
	TaleActionSpawnItemInPlayerInventory
	TaleActionTransferItemToPlayerInventory
	TaleActionSpawnItemInNpcInventory
	TaleActionTransferItemToNpcInventory
	TaleActionChangeQuestState
	TaleActionAddQuestText
	TaleActionWait
	TaleActionSetGameTime
	TaleActionPlayerUseItem
	TaleActionNpcUseItem
	TaleActionPlayerLearnSkill
	TaleActionPlayerForgetSkill
	TaleActionChangePlayerState
	TaleActionChangeNpcState
	TaleActionPlayNpcAnimation
	TaleActionPlayPlayerAnimation
	TaleActionShowFloatingTextAboveNpc
	TaleActionShowFloatingTextAbovePlayer
	TaleActionFadeToBlack
	TaleActionFadeFromBlack
	TaleActionPersistDialogState
	TaleActionOpenShop
	TaleActionCodeAction
	TaleActionDisableDailyRoutineEvent
	TaleActionEnableDailyRoutineEvent
	TaleActionTeleportNpcToMarker
	TaleActionWalkNpcToMarker
	TaleActionTeleportPlayerToMarker
	TaleActionSpawnNpcAtMarker
	TaleActionSpawnItemAtMarker

	GeneralLogicAssign
	GeneralLogicAdd
	GeneralLogicSubtract
	GeneralLogicMultiply
	GeneralLogicDivide
)

var typeNames = map[Type]string{
	TaleActionChangePlayerValue:             "TaleActionChangePlayerValue",
	TaleActionChangeNpcValue:                "TaleActionChangeNpcValue",
	TaleActionChangeQuestValue:              "TaleActionChangeQuestValue",
	TaleActionSpawnItemInPlayerInventory:    "TaleActionSpawnItemInPlayerInventory",
	TaleActionTransferItemToPlayerInventory: "TaleActionTransferItemToPlayerInventory",
	TaleActionSpawnItemInNpcInventory:       "TaleActionSpawnItemInNpcInventory",
	TaleActionTransferItemToNpcInventory:    "TaleActionTransferItemToNpcInventory",
	TaleActionChangeQuestState:              "TaleActionChangeQuestState",
	TaleActionAddQuestText:                  "TaleActionAddQuestText",
	TaleActionWait:                          "TaleActionWait",
	TaleActionSetGameTime:                   "TaleActionSetGameTime",
	TaleActionPlayerUseItem:                 "TaleActionPlayerUseItem",
	TaleActionNpcUseItem:                    "TaleActionNpcUseItem",
	TaleActionPlayerLearnSkill:              "TaleActionPlayerLearnSkill",
	TaleActionPlayerForgetSkill:             "TaleActionPlayerForgetSkill",
	TaleActionChangePlayerState:             "TaleActionChangePlayerState",
	TaleActionChangeNpcState:                "TaleActionChangeNpcState",
	TaleActionPlayNpcAnimation:              "TaleActionPlayNpcAnimation",
	TaleActionPlayPlayerAnimation:           "TaleActionPlayPlayerAnimation",
	TaleActionShowFloatingTextAboveNpc:      "TaleActionShowFloatingTextAboveNpc",
	TaleActionShowFloatingTextAbovePlayer:   "TaleActionShowFloatingTextAbovePlayer",
	TaleActionFadeToBlack:                   "TaleActionFadeToBlack",
	TaleActionFadeFromBlack:                 "TaleActionFadeFromBlack",
	TaleActionPersistDialogState:            "TaleActionPersistDialogState",
	TaleActionOpenShop:                      "TaleActionOpenShop",
	TaleActionCodeAction:                    "TaleActionCodeAction",
	TaleActionDisableDailyRoutineEvent:      "TaleActionDisableDailyRoutineEvent",
	TaleActionEnableDailyRoutineEvent:       "TaleActionEnableDailyRoutineEvent",
	TaleActionTeleportNpcToMarker:           "TaleActionTeleportNpcToMarker",
	TaleActionWalkNpcToMarker:               "TaleActionWalkNpcToMarker",
	TaleActionTeleportPlayerToMarker:        "TaleActionTeleportPlayerToMarker",
	TaleActionSpawnNpcAtMarker:              "TaleActionSpawnNpcAtMarker",
	TaleActionSpawnItemAtMarker:             "TaleActionSpawnItemAtMarker",
	GeneralLogicAssign:                      "GeneralLogicAssign",
	GeneralLogicAdd:                         "GeneralLogicAdd",
	GeneralLogicSubtract:                    "GeneralLogicSubtract",
	GeneralLogicMultiply:                    "GeneralLogicMultiply",
	GeneralLogicDivide:                      "GeneralLogicDivide",
}

// AllTypes lists every known template type.
func AllTypes() []Type {
	out := make([]Type, 0, len(typeNames))
	for t := TaleActionChangePlayerValue; t <= GeneralLogicDivide; t++ {
		out = append(out, t)
	}
	return out
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType resolves a template type by name.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return TypeUnknown, fmt.Errorf("unknown template type: %s", name)
}

func (t Type) MarshalText() ([]byte, error) {
	if _, ok := typeNames[t]; !ok {
		return nil, fmt.Errorf("unknown template type: %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// RenderingEngine selects the implementation family interpreting a template.
type RenderingEngine int

const (
	// RenderingEngineLegacy expands {{Token}} placeholders and _Start/_End blocks.
	RenderingEngineLegacy RenderingEngine = iota
	// RenderingEngineTemplate executes the code as a text/template with sprig functions.
	RenderingEngineTemplate
)

func (e RenderingEngine) String() string {
	switch e {
	case RenderingEngineLegacy:
		return "legacy"
	case RenderingEngineTemplate:
		return "template"
	default:
		return fmt.Sprintf("engine(%d)", int(e))
	}
}

func (e RenderingEngine) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *RenderingEngine) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "legacy":
		*e = RenderingEngineLegacy
	case "template":
		*e = RenderingEngineTemplate
	default:
		return fmt.Errorf("unknown rendering engine: %s", text)
	}
	return nil
}
