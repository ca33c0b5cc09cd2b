package actions

import (
	"context"

	"github.com/pixil98/gonorth-export/internal/content"
	"github.com/pixil98/gonorth-export/internal/flexfield"
	"github.com/pixil98/gonorth-export/internal/localization"
	"github.com/pixil98/gonorth-export/internal/placeholder"
	"github.com/pixil98/gonorth-export/internal/templates"
)

// moveTarget is who a move action moves.
type moveTarget int

const (
	moveTeleportNpc moveTarget = iota
	moveWalkNpc
	moveTeleportPlayer
)

func moveToMarker(target moveTarget) variant[markerPayload] {
	v := variant[markerPayload]{}
	prefix, objectType := prefixNpc, flexfield.ObjectTypeNpc
	var phrase string

	switch target {
	case moveTeleportNpc:
		v.action, v.templateType = ActionTeleportNpcToMarker, templates.TaleActionTeleportNpcToMarker
		phrase = localization.PhraseTeleportNpcToMarker
	case moveWalkNpc:
		v.action, v.templateType = ActionWalkNpcToMarker, templates.TaleActionWalkNpcToMarker
		phrase = localization.PhraseWalkNpcToMarker
	case moveTeleportPlayer:
		v.action, v.templateType = ActionTeleportPlayerToMarker, templates.TaleActionTeleportPlayerToMarker
		phrase = localization.PhraseTeleportPlayerToMarker
		prefix, objectType = prefixPlayer, flexfield.ObjectTypePlayer
	}

	v.placeholders = placeholder.List{}.
		Token(phTargetMarkerName, "Export name of the target marker").
		Block(phHasDirectContinueFunction, "Only rendered if a function is called once the movement completes").
		Block(phHasNoDirectContinueFunction, "Only rendered if no function is called once the movement completes").
		Token(phDirectContinueFunction, "Name of the function called once the movement completes").
		Append(flexfield.Placeholders(prefix, objectType))

	mover := func(ctx context.Context, e *env) content.FlexFieldExportable {
		if target == moveTeleportPlayer {
			if n := e.playerNpc(ctx); n != nil {
				return n
			}
			return nil
		}
		return e.dialogNpc()
	}

	v.resolve = func(ctx context.Context, e *env, p markerPayload) (*output, error) {
		obj := mover(ctx, e)
		if obj == nil {
			return nil, nil
		}
		marker := e.marker(ctx, p.MapId, p.MarkerId)
		if marker == nil {
			return nil, nil
		}

		direct := e.directContinueChild()
		function := ""
		if direct != nil {
			function = direct.FunctionName
		}

		return newOutput().
			block(phHasDirectContinueFunction, direct != nil).
			block(phHasNoDirectContinueFunction, direct == nil).
			object(prefix, flexfield.ObjectData{Object: obj, ObjectType: objectType}).
			token(phTargetMarkerName, marker.ExportedName()).
			token(phDirectContinueFunction, function), nil
	}
	v.preview = func(ctx context.Context, e *env, p markerPayload) (string, error) {
		if e.child != nil && e.child.IsDirectContinue() {
			return e.text(localization.PhraseDirectContinueOnMove), nil
		}
		if mover(ctx, e) == nil {
			return "", nil
		}
		marker := e.marker(ctx, p.MapId, p.MarkerId)
		if marker == nil {
			return "", nil
		}
		return e.phrase(phrase, marker.Name), nil
	}
	v.nextStep = skipDirectContinue
	return v
}

// skipDirectContinue continues with the first edge that is not the direct
// continue edge.
func skipDirectContinue(children []ActionChild) *ActionChild {
	for _, c := range children {
		if !c.IsDirectContinue() {
			return &c
		}
	}
	return nil
}

func spawnAtMarker(isNpc bool) variant[spawnPayload] {
	v := variant[spawnPayload]{
		action:       ActionSpawnItemAtMarker,
		templateType: templates.TaleActionSpawnItemAtMarker,
	}
	prefix, objectType := prefixSelectedItem, flexfield.ObjectTypeItem
	phrase := localization.PhraseSpawnItemAtMarker
	if isNpc {
		v.action, v.templateType = ActionSpawnNpcAtMarker, templates.TaleActionSpawnNpcAtMarker
		prefix, objectType = prefixNpc, flexfield.ObjectTypeNpc
		phrase = localization.PhraseSpawnNpcAtMarker
	}

	v.placeholders = placeholder.List{}.
		Token(phTargetMarkerName, "Export name of the target marker").
		Token(phPitch, "Pitch of the spawned object").
		Token(phYaw, "Yaw of the spawned object").
		Token(phRoll, "Roll of the spawned object").
		Append(flexfield.Placeholders(prefix, objectType))

	object := func(ctx context.Context, e *env, id string) content.FlexFieldExportable {
		if isNpc {
			if n := e.npc(ctx, id); n != nil {
				return n
			}
			return nil
		}
		if i := e.item(ctx, id); i != nil {
			return i
		}
		return nil
	}

	lookup := func(ctx context.Context, e *env, p spawnPayload) (content.FlexFieldExportable, *content.Marker) {
		obj := object(ctx, e, p.ObjectId)
		if obj == nil {
			return nil, nil
		}
		marker := e.marker(ctx, p.MapId, p.MarkerId)
		if marker == nil {
			return nil, nil
		}
		return obj, marker
	}

	v.resolve = func(ctx context.Context, e *env, p spawnPayload) (*output, error) {
		obj, marker := lookup(ctx, e, p)
		if marker == nil {
			return nil, nil
		}
		return newOutput().
			object(prefix, flexfield.ObjectData{Object: obj, ObjectType: objectType}).
			token(phTargetMarkerName, marker.ExportedName()).
			token(phPitch, p.Pitch.String()).
			token(phYaw, p.Yaw.String()).
			token(phRoll, p.Roll.String()), nil
	}
	v.preview = func(ctx context.Context, e *env, p spawnPayload) (string, error) {
		obj, marker := lookup(ctx, e, p)
		if marker == nil {
			return "", nil
		}
		return e.phrase(phrase, obj.GetName(), marker.Name), nil
	}
	return v
}
