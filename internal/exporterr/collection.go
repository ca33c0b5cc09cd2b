// Package exporterr collects user-facing problems found while rendering export
// templates. Entries never abort an export; authors fix the content and export again.
package exporterr

import (
	"fmt"
	"strings"
)

// Kind classifies an entry.
type Kind int

const (
	KindQuestNotFound Kind = iota + 1
	KindItemNotFound
	KindNpcNotFound
	KindSkillNotFound
	KindMarkerNotFound
	KindDailyRoutineEventNotFound
	KindNoPlayerNpc
	KindFlexFieldNotFound
	KindUnknownOperator
	KindInvalidActionData
	KindNestedBlock
	KindTemplateExecution
	KindScriptSyntax
)

var kindNames = map[Kind]string{
	KindQuestNotFound:             "quest_not_found",
	KindItemNotFound:              "item_not_found",
	KindNpcNotFound:               "npc_not_found",
	KindSkillNotFound:             "skill_not_found",
	KindMarkerNotFound:            "marker_not_found",
	KindDailyRoutineEventNotFound: "daily_routine_event_not_found",
	KindNoPlayerNpc:               "no_player_npc",
	KindFlexFieldNotFound:         "flex_field_not_found",
	KindUnknownOperator:           "unknown_operator",
	KindInvalidActionData:         "invalid_action_data",
	KindNestedBlock:               "nested_block",
	KindTemplateExecution:         "template_execution",
	KindScriptSyntax:              "script_syntax",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText renders the kind by name so reports stay readable.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown error kind: %s", text)
}

// Entry is one recorded problem.
type Entry struct {
	Kind    Kind   `json:"kind"`
	Ref     string `json:"ref,omitempty"`
	Message string `json:"message"`
}

func (e Entry) String() string {
	return e.Message
}

// Collection is an append-only list of entries scoped to one top-level render.
// It is not synchronized; concurrent branches use their own collection and Merge.
type Collection struct {
	entries []Entry
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{}
}

// Add appends an entry.
func (c *Collection) Add(kind Kind, ref string, format string, args ...any) {
	c.entries = append(c.entries, Entry{
		Kind:    kind,
		Ref:     ref,
		Message: fmt.Sprintf(format, args...),
	})
}

// AddQuestNotFound records a missing quest.
func (c *Collection) AddQuestNotFound(id string) {
	c.Add(KindQuestNotFound, id, "quest %q was not found", id)
}

// AddItemNotFound records a missing item.
func (c *Collection) AddItemNotFound(id string) {
	c.Add(KindItemNotFound, id, "item %q was not found", id)
}

// AddNpcNotFound records a missing npc.
func (c *Collection) AddNpcNotFound(id string) {
	c.Add(KindNpcNotFound, id, "npc %q was not found", id)
}

// AddSkillNotFound records a missing skill.
func (c *Collection) AddSkillNotFound(id string) {
	c.Add(KindSkillNotFound, id, "skill %q was not found", id)
}

// AddMarkerNotFound records a missing map marker.
func (c *Collection) AddMarkerNotFound(mapId string, markerId string) {
	c.Add(KindMarkerNotFound, markerId, "marker %q on map %q was not found", markerId, mapId)
}

// AddDailyRoutineEventNotFound records a missing daily routine event of an npc.
func (c *Collection) AddDailyRoutineEventNotFound(npcName string, eventId string) {
	c.Add(KindDailyRoutineEventNotFound, eventId, "daily routine event %q of npc %q was not found", eventId, npcName)
}

// AddNoPlayerNpc records a project without a player npc.
func (c *Collection) AddNoPlayerNpc() {
	c.Add(KindNoPlayerNpc, "", "no npc is marked as player npc")
}

// AddFlexFieldNotFound records a field reference that no longer resolves.
func (c *Collection) AddFlexFieldNotFound(objectName string, fieldName string) {
	c.Add(KindFlexFieldNotFound, fieldName, "field %q of %q was not found", fieldName, objectName)
}

// AddUnknownOperator records an operator outside the supported set.
func (c *Collection) AddUnknownOperator(operator string) {
	c.Add(KindUnknownOperator, operator, "unknown operator %q", operator)
}

// Entries returns a copy of the recorded entries.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.entries)
}

// HasErrors reports whether anything was recorded.
func (c *Collection) HasErrors() bool {
	return len(c.entries) > 0
}

// Count returns the number of entries of one kind.
func (c *Collection) Count(kind Kind) int {
	n := 0
	for _, e := range c.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Merge appends all entries of other.
func (c *Collection) Merge(other *Collection) {
	if other == nil {
		return
	}
	c.entries = append(c.entries, other.entries...)
}

func (c *Collection) String() string {
	lines := make([]string, len(c.entries))
	for i, e := range c.entries {
		lines[i] = e.Message
	}
	return strings.Join(lines, "\n")
}
