package actions

const (
	prefixPlayer       = "Tale_Action_Player"
	prefixNpc          = "Tale_Action_Npc"
	prefixQuest        = "Tale_Action_Quest"
	prefixSelectedItem = "Tale_Action_SelectedItem"
	prefixSkill        = "Tale_Action_Skill"

	phValueName          = "Tale_Action_ValueName"
	phOperator           = "Tale_Action_Operator"
	phValueChange        = "Tale_Action_ValueChange"
	phValueIsString      = "Tale_Action_ValueIsString"
	phValueIsNumber      = "Tale_Action_ValueIsNumber"
	phOperatorIsSetTo    = "Tale_Action_OperatorIsSetTo"
	phOperatorIsNotSetTo = "Tale_Action_OperatorIsNotSetTo"

	phQuestStateNotStarted = "Tale_Action_QuestState_NotStarted"
	phQuestStateInProgress = "Tale_Action_QuestState_InProgress"
	phQuestStateSuccess    = "Tale_Action_QuestState_Success"
	phQuestStateFailed     = "Tale_Action_QuestState_Failed"
	phQuestText            = "Tale_Action_QuestText"

	phWaitAmount             = "Tale_Action_WaitAmount"
	phWaitTypeIsRealTime     = "Tale_Action_WaitTypeIsRealTime"
	phWaitTypeIsGameTime     = "Tale_Action_WaitTypeIsGameTime"
	phWaitUnitIsMilliseconds = "Tale_Action_WaitUnitIsMilliseconds"
	phWaitUnitIsSeconds      = "Tale_Action_WaitUnitIsSeconds"
	phWaitUnitIsMinutes      = "Tale_Action_WaitUnitIsMinutes"
	phWaitUnitIsHours        = "Tale_Action_WaitUnitIsHours"
	phWaitUnitIsDays         = "Tale_Action_WaitUnitIsDays"

	phHours        = "Tale_Action_Hours"
	phMinutes      = "Tale_Action_Minutes"
	phTotalMinutes = "Tale_Action_TotalMinutes"

	phQuantity     = "Tale_Action_Quantity"
	phState        = "Tale_Action_State"
	phAnimation    = "Tale_Action_Animation"
	phFloatingText = "Tale_Action_FloatingText"
	phFadeTime     = "Tale_Action_FadeTime"
	phScriptName   = "Tale_Action_ScriptName"
	phScriptCode   = "Tale_Action_ScriptCode"
	phEventId      = "Tale_Action_EventId"

	phTargetMarkerName            = "Tale_Action_TargetMarker_Name"
	phPitch                       = "Tale_Action_Pitch"
	phYaw                         = "Tale_Action_Yaw"
	phRoll                        = "Tale_Action_Roll"
	phHasDirectContinueFunction   = "Tale_Action_HasDirectContinueFunction"
	phHasNoDirectContinueFunction = "Tale_Action_HasNoDirectContinueFunction"
	phDirectContinueFunction      = "Tale_Action_DirectContinueFunction"
)
