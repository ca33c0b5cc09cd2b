package actions

import (
	"context"

	"github.com/pixil98/gonorth-export/internal/exporterr"
	"github.com/pixil98/gonorth-export/internal/flexfield"
	"github.com/pixil98/gonorth-export/internal/localization"
	"github.com/pixil98/gonorth-export/internal/placeholder"
	"github.com/pixil98/gonorth-export/internal/scriptcheck"
	"github.com/pixil98/gonorth-export/internal/templates"
)

// textAction builds the actions that substitute a single escaped text value.
func textAction[T any](action ActionType, tt templates.Type, token string, desc string, phrase string, value func(T) string, withValue bool) variant[T] {
	return variant[T]{
		action:       action,
		templateType: tt,
		placeholders: placeholder.List{}.Token(token, desc),
		resolve: func(_ context.Context, e *env, p T) (*output, error) {
			return newOutput().token(token, placeholder.Escape(value(p), e.settings.EscapeSettings)), nil
		},
		preview: func(_ context.Context, e *env, p T) (string, error) {
			if withValue {
				return e.phrase(phrase, value(p)), nil
			}
			return e.text(phrase), nil
		},
	}
}

func changeState(isPlayer bool) variant[statePayload] {
	action, tt, phrase := ActionChangeNpcState, templates.TaleActionChangeNpcState, localization.PhraseChangeNpcState
	if isPlayer {
		action, tt, phrase = ActionChangePlayerState, templates.TaleActionChangePlayerState, localization.PhraseChangePlayerState
	}
	return textAction(action, tt, phState, "State to change to", phrase,
		func(p statePayload) string { return p.State }, true)
}

func playAnimation(isPlayer bool) variant[animationPayload] {
	action, tt, phrase := ActionPlayNpcAnimation, templates.TaleActionPlayNpcAnimation, localization.PhrasePlayNpcAnimation
	if isPlayer {
		action, tt, phrase = ActionPlayPlayerAnimation, templates.TaleActionPlayPlayerAnimation, localization.PhrasePlayPlayerAnimation
	}
	return textAction(action, tt, phAnimation, "Animation to play", phrase,
		func(p animationPayload) string { return p.Animation }, true)
}

func showFloatingText(isPlayer bool) variant[floatingTextPayload] {
	action, tt, phrase := ActionShowFloatingTextAboveNpc, templates.TaleActionShowFloatingTextAboveNpc, localization.PhraseShowFloatingTextAboveNpc
	if isPlayer {
		action, tt, phrase = ActionShowFloatingTextAbovePlayer, templates.TaleActionShowFloatingTextAbovePlayer, localization.PhraseShowFloatingTextAbovePlayer
	}
	return textAction(action, tt, phFloatingText, "Text to show", phrase,
		func(p floatingTextPayload) string { return p.FloatingText }, false)
}

func fade(toBlack bool) variant[fadePayload] {
	v := variant[fadePayload]{
		action:       ActionFadeFromBlack,
		templateType: templates.TaleActionFadeFromBlack,
		placeholders: placeholder.List{}.Token(phFadeTime, "Duration of the fade"),
	}
	phrase := localization.PhraseFadeFromBlack
	if toBlack {
		v.action, v.templateType = ActionFadeToBlack, templates.TaleActionFadeToBlack
		phrase = localization.PhraseFadeToBlack
	}

	v.resolve = func(_ context.Context, _ *env, p fadePayload) (*output, error) {
		return newOutput().token(phFadeTime, p.FadeTime.String()), nil
	}
	v.preview = func(_ context.Context, e *env, _ fadePayload) (string, error) {
		return e.text(phrase), nil
	}
	return v
}

func persistDialogState() variant[emptyPayload] {
	return variant[emptyPayload]{
		action:       ActionPersistDialogState,
		templateType: templates.TaleActionPersistDialogState,
		resolve: func(context.Context, *env, emptyPayload) (*output, error) {
			return newOutput(), nil
		},
		preview: func(_ context.Context, e *env, _ emptyPayload) (string, error) {
			return e.text(localization.PhrasePersistDialogState), nil
		},
	}
}

func openShop() variant[emptyPayload] {
	return variant[emptyPayload]{
		action:       ActionOpenShop,
		templateType: templates.TaleActionOpenShop,
		placeholders: placeholder.List{}.Append(flexfield.Placeholders(prefixNpc, flexfield.ObjectTypeNpc)),
		resolve: func(_ context.Context, e *env, _ emptyPayload) (*output, error) {
			npc := e.dialogNpc()
			if npc == nil {
				return nil, nil
			}
			return newOutput().object(prefixNpc, flexfield.ObjectData{Object: npc, ObjectType: flexfield.ObjectTypeNpc}), nil
		},
		preview: func(_ context.Context, e *env, _ emptyPayload) (string, error) {
			npc := e.dialogNpc()
			if npc == nil {
				return "", nil
			}
			return e.phrase(localization.PhraseOpenShop, npc.GetName()), nil
		},
	}
}

// codeAction passes user script through with CRLF line endings. Scripts in a
// checked language that do not compile are recorded but still exported.
func codeAction() variant[codePayload] {
	return variant[codePayload]{
		action:       ActionCode,
		templateType: templates.TaleActionCodeAction,
		placeholders: placeholder.List{}.
			Token(phScriptName, "Name of the script").
			Token(phScriptCode, "Code of the script"),
		resolve: func(_ context.Context, e *env, p codePayload) (*output, error) {
			code := placeholder.NormalizeLineEndings(p.ScriptCode)
			if checker := scriptcheck.ForLanguage(e.settings.ScriptLanguage); checker != nil {
				if err := checker.Check(p.ScriptName, code); err != nil {
					e.errs.Add(exporterr.KindScriptSyntax, p.ScriptName, "%v", err)
				}
			}
			return newOutput().
				token(phScriptName, p.ScriptName).
				token(phScriptCode, code), nil
		},
		preview: func(_ context.Context, e *env, p codePayload) (string, error) {
			return e.phrase(localization.PhraseCodeAction, p.ScriptName), nil
		},
	}
}
