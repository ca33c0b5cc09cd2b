package actions

import (
	"context"

	"github.com/pixil98/gonorth-export/internal/content"
	"github.com/pixil98/gonorth-export/internal/flexfield"
	"github.com/pixil98/gonorth-export/internal/localization"
	"github.com/pixil98/gonorth-export/internal/placeholder"
	"github.com/pixil98/gonorth-export/internal/templates"
)

func dailyRoutineEventState(isDisable bool) variant[dailyRoutinePayload] {
	v := variant[dailyRoutinePayload]{
		action:       ActionEnableDailyRoutineEvent,
		templateType: templates.TaleActionEnableDailyRoutineEvent,
		placeholders: placeholder.List{}.
			Token(phEventId, "Id of the daily routine event").
			Append(flexfield.Placeholders(prefixNpc, flexfield.ObjectTypeNpc)),
	}
	phrase := localization.PhraseEnableDailyRoutineEvent
	if isDisable {
		v.action, v.templateType = ActionDisableDailyRoutineEvent, templates.TaleActionDisableDailyRoutineEvent
		phrase = localization.PhraseDisableDailyRoutineEvent
	}

	lookup := func(ctx context.Context, e *env, p dailyRoutinePayload) (*content.Npc, *content.DailyRoutineEvent) {
		npc := e.npc(ctx, p.NpcId)
		if npc == nil {
			return nil, nil
		}
		event := e.dailyRoutineEvent(ctx, npc, p.EventId)
		if event == nil {
			return nil, nil
		}
		return npc, event
	}

	v.resolve = func(ctx context.Context, e *env, p dailyRoutinePayload) (*output, error) {
		npc, event := lookup(ctx, e, p)
		if event == nil {
			return nil, nil
		}
		return newOutput().
			object(prefixNpc, flexfield.ObjectData{Object: npc, ObjectType: flexfield.ObjectTypeNpc}).
			token(phEventId, event.EventId), nil
	}
	v.preview = func(ctx context.Context, e *env, p dailyRoutinePayload) (string, error) {
		npc, event := lookup(ctx, e, p)
		if event == nil {
			return "", nil
		}
		return e.phrase(phrase, event.TimeRange(), npc.Name), nil
	}
	return v
}
