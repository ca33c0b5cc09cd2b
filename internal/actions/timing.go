package actions

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pixil98/gonorth-export/internal/exporterr"
	"github.com/pixil98/gonorth-export/internal/localization"
	"github.com/pixil98/gonorth-export/internal/placeholder"
	"github.com/pixil98/gonorth-export/internal/templates"
)

var waitUnitBlocks = []struct {
	unit   WaitUnit
	block  string
	phrase string
}{
	{WaitUnitMilliseconds, phWaitUnitIsMilliseconds, localization.PhraseUnitMilliseconds},
	{WaitUnitSeconds, phWaitUnitIsSeconds, localization.PhraseUnitSeconds},
	{WaitUnitMinutes, phWaitUnitIsMinutes, localization.PhraseUnitMinutes},
	{WaitUnitHours, phWaitUnitIsHours, localization.PhraseUnitHours},
	{WaitUnitDays, phWaitUnitIsDays, localization.PhraseUnitDays},
}

func waitAction() variant[waitPayload] {
	ph := placeholder.List{}.
		Token(phWaitAmount, "Amount to wait").
		Block(phWaitTypeIsRealTime, "Only rendered if the wait counts real time").
		Block(phWaitTypeIsGameTime, "Only rendered if the wait counts game time")
	for _, u := range waitUnitBlocks {
		ph = ph.Block(u.block, "Only rendered if the amount is given in this unit")
	}

	return variant[waitPayload]{
		action:       ActionWait,
		templateType: templates.TaleActionWait,
		placeholders: ph,
		resolve: func(_ context.Context, _ *env, p waitPayload) (*output, error) {
			out := newOutput().
				block(phWaitTypeIsRealTime, p.WaitType == WaitTypeRealTime).
				block(phWaitTypeIsGameTime, p.WaitType == WaitTypeGameTime)
			for _, u := range waitUnitBlocks {
				out.block(u.block, u.unit == p.WaitUnit)
			}
			return out.token(phWaitAmount, strconv.Itoa(int(p.WaitAmount))), nil
		},
		preview: func(_ context.Context, e *env, p waitPayload) (string, error) {
			unit := ""
			for _, u := range waitUnitBlocks {
				if u.unit == p.WaitUnit {
					unit = e.text(u.phrase)
				}
			}
			phrase := localization.PhraseWait
			if p.WaitType == WaitTypeGameTime {
				phrase = localization.PhraseWaitInGame
			}
			return e.phrase(phrase, int(p.WaitAmount), unit), nil
		},
	}
}

func setGameTime() variant[gameTimePayload] {
	// checkTime validates the time against the project calendar.
	checkTime := func(ctx context.Context, e *env, p gameTimePayload) (int, bool) {
		cfg := e.miscConfig(ctx)
		hours, minutes := int(p.Hours), int(p.Minutes)
		if hours < 0 || hours >= cfg.HoursPerDay || minutes < 0 || minutes >= cfg.MinutesPerHour {
			e.errs.Add(exporterr.KindInvalidActionData, e.node.Id,
				"game time %d:%d is outside of a %dh day with %d minutes per hour", hours, minutes, cfg.HoursPerDay, cfg.MinutesPerHour)
			return 0, false
		}
		return hours*cfg.MinutesPerHour + minutes, true
	}

	return variant[gameTimePayload]{
		action:       ActionSetGameTime,
		templateType: templates.TaleActionSetGameTime,
		placeholders: placeholder.List{}.
			Token(phHours, "Hours of the new game time").
			Token(phMinutes, "Minutes of the new game time").
			Token(phTotalMinutes, "New game time in minutes since midnight"),
		resolve: func(ctx context.Context, e *env, p gameTimePayload) (*output, error) {
			total, ok := checkTime(ctx, e, p)
			if !ok {
				return nil, nil
			}
			return newOutput().
				token(phHours, strconv.Itoa(int(p.Hours))).
				token(phMinutes, strconv.Itoa(int(p.Minutes))).
				token(phTotalMinutes, strconv.Itoa(total)), nil
		},
		preview: func(ctx context.Context, e *env, p gameTimePayload) (string, error) {
			if _, ok := checkTime(ctx, e, p); !ok {
				return "", nil
			}
			return e.phrase(localization.PhraseSetGameTime, fmt.Sprintf("%02d:%02d", int(p.Hours), int(p.Minutes))), nil
		},
	}
}
