package actions

// catalog lists the policy of every supported action kind.
func catalog() []binder {
	return []binder{
		changePlayerValue(),
		changeNpcValue(),
		changeQuestValue(),
		inventory(true, false),
		inventory(true, true),
		inventory(false, false),
		inventory(false, true),
		changeQuestState(),
		addQuestText(),
		waitAction(),
		setGameTime(),
		playerUseItem(),
		npcUseItem(),
		playerSkill(true),
		playerSkill(false),
		changeState(true),
		changeState(false),
		playAnimation(false),
		playAnimation(true),
		showFloatingText(false),
		showFloatingText(true),
		fade(true),
		fade(false),
		persistDialogState(),
		openShop(),
		codeAction(),
		dailyRoutineEventState(true),
		dailyRoutineEventState(false),
		moveToMarker(moveTeleportNpc),
		moveToMarker(moveWalkNpc),
		moveToMarker(moveTeleportPlayer),
		spawnAtMarker(true),
		spawnAtMarker(false),
	}
}
