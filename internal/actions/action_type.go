package actions

import "fmt"

// ActionType is the discriminant stored on an action node.
type ActionType int

const (
	ActionChangePlayerValue             ActionType = 1
	ActionChangeNpcValue                ActionType = 2
	ActionSpawnItemInPlayerInventory    ActionType = 3
	ActionTransferItemToPlayerInventory ActionType = 4
	ActionSpawnItemInNpcInventory       ActionType = 5
	ActionTransferItemToNpcInventory    ActionType = 6
	ActionChangeQuestValue              ActionType = 7
	ActionChangeQuestState              ActionType = 8
	ActionAddQuestText                  ActionType = 9
	ActionWait                          ActionType = 10
	ActionSetGameTime                   ActionType = 11
	ActionPlayerUseItem                 ActionType = 12
	ActionNpcUseItem                    ActionType = 13
	ActionPlayerLearnSkill              ActionType = 14
	ActionPlayerForgetSkill             ActionType = 15
	ActionChangePlayerState             ActionType = 16
	ActionChangeNpcState                ActionType = 17
	ActionPlayNpcAnimation              ActionType = 18
	ActionPlayPlayerAnimation           ActionType = 19
	ActionShowFloatingTextAboveNpc      ActionType = 20
	ActionShowFloatingTextAbovePlayer   ActionType = 21
	ActionFadeToBlack                   ActionType = 22
	ActionFadeFromBlack                 ActionType = 23
	ActionPersistDialogState            ActionType = 24
	ActionOpenShop                      ActionType = 25
	ActionCode                          ActionType = 26
	ActionDisableDailyRoutineEvent      ActionType = 27
	ActionEnableDailyRoutineEvent       ActionType = 28
	ActionTeleportNpcToMarker           ActionType = 29
	ActionWalkNpcToMarker               ActionType = 30
	ActionTeleportPlayerToMarker        ActionType = 31
	ActionSpawnNpcAtMarker              ActionType = 32
	ActionSpawnItemAtMarker             ActionType = 33
)

var actionTypeNames = map[ActionType]string{
	ActionChangePlayerValue:             "ChangePlayerValue",
	ActionChangeNpcValue:                "ChangeNpcValue",
	ActionSpawnItemInPlayerInventory:    "SpawnItemInPlayerInventory",
	ActionTransferItemToPlayerInventory: "TransferItemToPlayerInventory",
	ActionSpawnItemInNpcInventory:       "SpawnItemInNpcInventory",
	ActionTransferItemToNpcInventory:    "TransferItemToNpcInventory",
	ActionChangeQuestValue:              "ChangeQuestValue",
	ActionChangeQuestState:              "ChangeQuestState",
	ActionAddQuestText:                  "AddQuestText",
	ActionWait:                          "Wait",
	ActionSetGameTime:                   "SetGameTime",
	ActionPlayerUseItem:                 "PlayerUseItem",
	ActionNpcUseItem:                    "NpcUseItem",
	ActionPlayerLearnSkill:              "PlayerLearnSkill",
	ActionPlayerForgetSkill:             "PlayerForgetSkill",
	ActionChangePlayerState:             "ChangePlayerState",
	ActionChangeNpcState:                "ChangeNpcState",
	ActionPlayNpcAnimation:              "PlayNpcAnimation",
	ActionPlayPlayerAnimation:           "PlayPlayerAnimation",
	ActionShowFloatingTextAboveNpc:      "ShowFloatingTextAboveNpc",
	ActionShowFloatingTextAbovePlayer:   "ShowFloatingTextAbovePlayer",
	ActionFadeToBlack:                   "FadeToBlack",
	ActionFadeFromBlack:                 "FadeFromBlack",
	ActionPersistDialogState:            "PersistDialogState",
	ActionOpenShop:                      "OpenShop",
	ActionCode:                          "CodeAction",
	ActionDisableDailyRoutineEvent:      "DisableDailyRoutineEvent",
	ActionEnableDailyRoutineEvent:       "EnableDailyRoutineEvent",
	ActionTeleportNpcToMarker:           "TeleportNpcToMarker",
	ActionWalkNpcToMarker:               "WalkNpcToMarker",
	ActionTeleportPlayerToMarker:        "TeleportPlayerToMarker",
	ActionSpawnNpcAtMarker:              "SpawnNpcAtMarker",
	ActionSpawnItemAtMarker:             "SpawnItemAtMarker",
}

func (a ActionType) String() string {
	if n, ok := actionTypeNames[a]; ok {
		return n
	}
	return fmt.Sprintf("ActionType(%d)", int(a))
}

// ParseActionType resolves an action type by name.
func ParseActionType(name string) (ActionType, error) {
	for a, n := range actionTypeNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action type: %s", name)
}
