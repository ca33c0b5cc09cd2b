package actions

import (
	"context"

	"github.com/pixil98/gonorth-export/internal/flexfield"
	"github.com/pixil98/gonorth-export/internal/localization"
	"github.com/pixil98/gonorth-export/internal/placeholder"
	"github.com/pixil98/gonorth-export/internal/templates"
)

var questStateBlocks = []struct {
	state  QuestState
	block  string
	phrase string
}{
	{QuestStateNotStarted, phQuestStateNotStarted, localization.PhraseQuestStateNotStarted},
	{QuestStateInProgress, phQuestStateInProgress, localization.PhraseQuestStateInProgress},
	{QuestStateSuccess, phQuestStateSuccess, localization.PhraseQuestStateSuccess},
	{QuestStateFailed, phQuestStateFailed, localization.PhraseQuestStateFailed},
}

func changeQuestState() variant[questStatePayload] {
	ph := placeholder.List{}
	for _, s := range questStateBlocks {
		ph = ph.Block(s.block, "Only rendered if the quest is set to this state")
	}

	return variant[questStatePayload]{
		action:       ActionChangeQuestState,
		templateType: templates.TaleActionChangeQuestState,
		placeholders: ph.Append(flexfield.Placeholders(prefixQuest, flexfield.ObjectTypeQuest)),
		resolve: func(ctx context.Context, e *env, p questStatePayload) (*output, error) {
			q := e.quest(ctx, p.QuestId)
			if q == nil {
				return nil, nil
			}
			out := newOutput()
			for _, s := range questStateBlocks {
				out.block(s.block, s.state == p.QuestState)
			}
			return out.object(prefixQuest, flexfield.ObjectData{Object: q, ObjectType: flexfield.ObjectTypeQuest}), nil
		},
		preview: func(ctx context.Context, e *env, p questStatePayload) (string, error) {
			q := e.quest(ctx, p.QuestId)
			if q == nil {
				return "", nil
			}
			state := ""
			for _, s := range questStateBlocks {
				if s.state == p.QuestState {
					state = e.text(s.phrase)
				}
			}
			return e.phrase(localization.PhraseChangeQuestState, q.Name, state), nil
		},
	}
}

func addQuestText() variant[questTextPayload] {
	return variant[questTextPayload]{
		action:       ActionAddQuestText,
		templateType: templates.TaleActionAddQuestText,
		placeholders: placeholder.List{}.
			Token(phQuestText, "Text to add to the quest").
			Append(flexfield.Placeholders(prefixQuest, flexfield.ObjectTypeQuest)),
		resolve: func(ctx context.Context, e *env, p questTextPayload) (*output, error) {
			q := e.quest(ctx, p.QuestId)
			if q == nil {
				return nil, nil
			}
			return newOutput().
				object(prefixQuest, flexfield.ObjectData{Object: q, ObjectType: flexfield.ObjectTypeQuest}).
				token(phQuestText, placeholder.Escape(p.QuestText, e.settings.EscapeSettings)), nil
		},
		preview: func(ctx context.Context, e *env, p questTextPayload) (string, error) {
			q := e.quest(ctx, p.QuestId)
			if q == nil {
				return "", nil
			}
			return e.phrase(localization.PhraseAddQuestText, q.Name), nil
		},
	}
}
