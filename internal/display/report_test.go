package display

import (
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/gonorth-export/internal/exporterr"
)

func TestReport(t *testing.T) {
	tests := map[string]struct {
		entries []exporterr.Entry
		width   int
		exp     string
	}{
		"no entries": {},
		"single entry": {
			entries: []exporterr.Entry{{Kind: exporterr.KindNoPlayerNpc, Message: "no npc is marked as player npc"}},
			exp:     "1 problem(s) found:\n- No npc is marked as player npc [no_player_npc]\n",
		},
		"wrapped entry": {
			entries: []exporterr.Entry{{Message: "quest one was not found in the project"}},
			width:   20,
			exp:     "1 problem(s) found:\n- Quest one was not\n  found in the\n  project\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "report", Report(tt.entries, tt.width), tt.exp)
		})
	}
}

func TestCapitalize(t *testing.T) {
	testutil.AssertEqual(t, "empty", Capitalize(""), "")
	testutil.AssertEqual(t, "word", Capitalize("quest"), "Quest")
}
