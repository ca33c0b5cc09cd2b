package exporterr

import (
	"encoding/json"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestCollection_Add(t *testing.T) {
	tests := map[string]struct {
		add     func(c *Collection)
		expKind Kind
		expMsg  string
	}{
		"quest": {
			add:     func(c *Collection) { c.AddQuestNotFound("q1") },
			expKind: KindQuestNotFound,
			expMsg:  `quest "q1" was not found`,
		},
		"marker": {
			add:     func(c *Collection) { c.AddMarkerNotFound("m1", "k1") },
			expKind: KindMarkerNotFound,
			expMsg:  `marker "k1" on map "m1" was not found`,
		},
		"daily routine event": {
			add:     func(c *Collection) { c.AddDailyRoutineEventNotFound("Bob", "e1") },
			expKind: KindDailyRoutineEventNotFound,
			expMsg:  `daily routine event "e1" of npc "Bob" was not found`,
		},
		"operator": {
			add:     func(c *Collection) { c.AddUnknownOperator("??") },
			expKind: KindUnknownOperator,
			expMsg:  `unknown operator "??"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := New()
			tt.add(c)
			testutil.AssertEqual(t, "len", c.Len(), 1)
			e := c.Entries()[0]
			testutil.AssertEqual(t, "kind", e.Kind, tt.expKind)
			testutil.AssertEqual(t, "message", e.Message, tt.expMsg)
		})
	}
}

func TestCollection_Merge(t *testing.T) {
	a := New()
	a.AddNoPlayerNpc()
	b := New()
	b.AddItemNotFound("i1")
	b.AddItemNotFound("i2")

	a.Merge(b)
	a.Merge(nil)

	testutil.AssertEqual(t, "len", a.Len(), 3)
	testutil.AssertEqual(t, "items", a.Count(KindItemNotFound), 2)
	testutil.AssertEqual(t, "has errors", a.HasErrors(), true)
}

func TestKind_JSON(t *testing.T) {
	b, err := json.Marshal(Entry{Kind: KindSkillNotFound, Message: "m"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "json", string(b), `{"kind":"skill_not_found","message":"m"}`)

	var e Entry
	if err := json.Unmarshal(b, &e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "kind", e.Kind, KindSkillNotFound)

	var k Kind
	testutil.AssertErrorContains(t, k.UnmarshalText([]byte("bogus")), "unknown error kind")
}
