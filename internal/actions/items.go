package actions

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/pixil98/gonorth-export/internal/content"
	"github.com/pixil98/gonorth-export/internal/exporterr"
	"github.com/pixil98/gonorth-export/internal/flexfield"
	"github.com/pixil98/gonorth-export/internal/localization"
	"github.com/pixil98/gonorth-export/internal/placeholder"
	"github.com/pixil98/gonorth-export/internal/templates"
)

// inventory covers spawning an item into, or transferring it to, the player's
// or the dialog npc's inventory.
func inventory(isPlayer bool, isTransfer bool) variant[inventoryPayload] {
	v := variant[inventoryPayload]{
		placeholders: placeholder.List{}.
			Token(phQuantity, "Quantity of the item").
			Append(flexfield.Placeholders(prefixSelectedItem, flexfield.ObjectTypeItem)),
	}

	var phrase string
	switch {
	case isPlayer && isTransfer:
		v.action, v.templateType = ActionTransferItemToPlayerInventory, templates.TaleActionTransferItemToPlayerInventory
		phrase = localization.PhraseTransferItemToPlayerInventory
	case isPlayer:
		v.action, v.templateType = ActionSpawnItemInPlayerInventory, templates.TaleActionSpawnItemInPlayerInventory
		phrase = localization.PhraseSpawnItemInPlayerInventory
	case isTransfer:
		v.action, v.templateType = ActionTransferItemToNpcInventory, templates.TaleActionTransferItemToNpcInventory
		phrase = localization.PhraseTransferItemToNpcInventory
	default:
		v.action, v.templateType = ActionSpawnItemInNpcInventory, templates.TaleActionSpawnItemInNpcInventory
		phrase = localization.PhraseSpawnItemInNpcInventory
	}

	v.resolve = func(ctx context.Context, e *env, p inventoryPayload) (*output, error) {
		item := e.item(ctx, p.ItemId)
		if item == nil {
			return nil, nil
		}
		return newOutput().
			object(prefixSelectedItem, flexfield.ObjectData{Object: item, ObjectType: flexfield.ObjectTypeItem}).
			token(phQuantity, strconv.Itoa(quantity(p.Quantity))), nil
	}
	v.preview = func(ctx context.Context, e *env, p inventoryPayload) (string, error) {
		item := e.item(ctx, p.ItemId)
		if item == nil {
			return "", nil
		}
		return e.phrase(phrase, quantity(p.Quantity), item.Name), nil
	}
	return v
}

// quantity defaults an unset quantity to a single item.
func quantity(q flexInt) int {
	if q <= 0 {
		return 1
	}
	return int(q)
}

func playerUseItem() variant[useItemPayload] {
	return variant[useItemPayload]{
		action:       ActionPlayerUseItem,
		templateType: templates.TaleActionPlayerUseItem,
		placeholders: placeholder.List{}.Append(flexfield.Placeholders(prefixSelectedItem, flexfield.ObjectTypeItem)),
		resolve: func(ctx context.Context, e *env, p useItemPayload) (*output, error) {
			item := e.item(ctx, p.ItemId)
			if item == nil {
				return nil, nil
			}
			return newOutput().object(prefixSelectedItem, flexfield.ObjectData{Object: item, ObjectType: flexfield.ObjectTypeItem}), nil
		},
		preview: func(ctx context.Context, e *env, p useItemPayload) (string, error) {
			item := e.item(ctx, p.ItemId)
			if item == nil {
				return "", nil
			}
			return e.phrase(localization.PhrasePlayerUseItem, item.Name), nil
		},
	}
}

// npcAndItem resolves the npc and the item of an action concurrently. Each
// lookup records into its own collection, merged once both are done.
func npcAndItem(ctx context.Context, e *env, npcId string, itemId string) (*content.Npc, *content.Item, error) {
	var npc *content.Npc
	var item *content.Item
	npcErrs, itemErrs := exporterr.New(), exporterr.New()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		npc = e.withErrors(npcErrs).npc(gctx, npcId)
		return nil
	})
	g.Go(func() error {
		item = e.withErrors(itemErrs).item(gctx, itemId)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	e.errs.Merge(npcErrs)
	e.errs.Merge(itemErrs)
	return npc, item, nil
}

func npcUseItem() variant[useItemPayload] {
	return variant[useItemPayload]{
		action:       ActionNpcUseItem,
		templateType: templates.TaleActionNpcUseItem,
		placeholders: placeholder.List{}.
			Append(flexfield.Placeholders(prefixNpc, flexfield.ObjectTypeNpc)).
			Append(flexfield.Placeholders(prefixSelectedItem, flexfield.ObjectTypeItem)),
		resolve: func(ctx context.Context, e *env, p useItemPayload) (*output, error) {
			npc, item, err := npcAndItem(ctx, e, p.NpcId, p.ItemId)
			if err != nil || npc == nil || item == nil {
				return nil, err
			}
			return newOutput().
				object(prefixNpc, flexfield.ObjectData{Object: npc, ObjectType: flexfield.ObjectTypeNpc}).
				object(prefixSelectedItem, flexfield.ObjectData{Object: item, ObjectType: flexfield.ObjectTypeItem}), nil
		},
		preview: func(ctx context.Context, e *env, p useItemPayload) (string, error) {
			npc, item, err := npcAndItem(ctx, e, p.NpcId, p.ItemId)
			if err != nil || npc == nil || item == nil {
				return "", err
			}
			return e.phrase(localization.PhraseNpcUseItem, npc.Name, item.Name), nil
		},
	}
}

func playerSkill(isLearn bool) variant[skillPayload] {
	v := variant[skillPayload]{
		action:       ActionPlayerForgetSkill,
		templateType: templates.TaleActionPlayerForgetSkill,
		placeholders: placeholder.List{}.Append(flexfield.Placeholders(prefixSkill, flexfield.ObjectTypeSkill)),
	}
	phrase := localization.PhrasePlayerForgetSkill
	if isLearn {
		v.action, v.templateType = ActionPlayerLearnSkill, templates.TaleActionPlayerLearnSkill
		phrase = localization.PhrasePlayerLearnSkill
	}

	v.resolve = func(ctx context.Context, e *env, p skillPayload) (*output, error) {
		skill := e.skill(ctx, p.SkillId)
		if skill == nil {
			return nil, nil
		}
		return newOutput().object(prefixSkill, flexfield.ObjectData{Object: skill, ObjectType: flexfield.ObjectTypeSkill}), nil
	}
	v.preview = func(ctx context.Context, e *env, p skillPayload) (string, error) {
		skill := e.skill(ctx, p.SkillId)
		if skill == nil {
			return "", nil
		}
		return e.phrase(phrase, skill.Name), nil
	}
	return v
}
