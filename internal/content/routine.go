package content

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// TimeOfDay is an in-game clock time.
type TimeOfDay struct {
	Hours   int `json:"hours" yaml:"hours"`
	Minutes int `json:"minutes" yaml:"minutes"`
}

// Format renders the time as HH:MM.
func (t TimeOfDay) Format() string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}

// Equal compares hours and minutes.
func (t TimeOfDay) Equal(o TimeOfDay) bool {
	return t.Hours == o.Hours && t.Minutes == o.Minutes
}

// FormatTimeRange renders "HH:MM - HH:MM", or a single time when both ends match.
func FormatTimeRange(earliest TimeOfDay, latest TimeOfDay) string {
	if earliest.Equal(latest) {
		return earliest.Format()
	}
	return earliest.Format() + " - " + latest.Format()
}

// DailyRoutineEvent is one scheduled entry of an npc's day.
type DailyRoutineEvent struct {
	EventId          string    `json:"event_id" yaml:"event_id"`
	EarliestTime     TimeOfDay `json:"earliest_time" yaml:"earliest_time"`
	LatestTime       TimeOfDay `json:"latest_time" yaml:"latest_time"`
	ScriptName       string    `json:"script_name" yaml:"script_name"`
	EnabledByDefault bool      `json:"enabled_by_default" yaml:"enabled_by_default"`
}

func (e *DailyRoutineEvent) Validate() error {
	el := errors.NewErrorList()
	if e.EventId == "" {
		el.Add(fmt.Errorf("daily routine event_id is required"))
	}
	for _, t := range []TimeOfDay{e.EarliestTime, e.LatestTime} {
		if t.Hours < 0 || t.Minutes < 0 || t.Minutes > 59 {
			el.Add(fmt.Errorf("daily routine event %q: invalid time %s", e.EventId, t.Format()))
		}
	}
	return el.Err()
}

// TimeRange formats the event window.
func (e *DailyRoutineEvent) TimeRange() string {
	return FormatTimeRange(e.EarliestTime, e.LatestTime)
}
