package localization

import (
	"testing"

	"github.com/pixil98/go-testutil"
	"golang.org/x/text/language"
)

func TestNew_Language(t *testing.T) {
	tests := map[string]struct {
		lang   string
		exp    language.Tag
		expErr bool
	}{
		"default":     {lang: "", exp: language.English},
		"english":     {lang: "en-US", exp: language.English},
		"german":      {lang: "de-AT", exp: language.German},
		"unsupported": {lang: "fr", exp: language.English},
		"malformed":   {lang: "not a tag!", expErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l, err := New(tt.lang)
			if tt.expErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.lang)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "language", l.Language().String(), tt.exp.String())
		})
	}
}

func TestLocalizer_Phrase(t *testing.T) {
	de, err := New("de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		l    *Localizer
		key  string
		args []any
		exp  string
	}{
		"english": {
			l:    English(),
			key:  PhraseTeleportNpcToMarker,
			args: []any{"Harbor"},
			exp:  "Teleport npc to Harbor",
		},
		"english numbers": {
			l:    English(),
			key:  PhraseSpawnItemInPlayerInventory,
			args: []any{3, "Apple"},
			exp:  "Spawn 3x Apple in player inventory",
		},
		"german": {
			l:    de,
			key:  PhraseTeleportNpcToMarker,
			args: []any{"Hafen"},
			exp:  "NPC zu Hafen teleportieren",
		},
		"german without args": {
			l:   de,
			key: PhraseDirectContinueOnMove,
			exp: "Direkt bei Bewegung fortsetzen",
		},
		"nil localizer": {
			key:  PhraseWait,
			args: []any{5, PhraseUnitMinutes},
			exp:  "Wait 5 minutes",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "phrase", tt.l.Phrase(tt.key, tt.args...), tt.exp)
		})
	}
}

func TestLocalizer_Text(t *testing.T) {
	de, err := New("de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		l   *Localizer
		key string
		exp string
	}{
		"english":       {l: English(), key: PhraseQuestStateSuccess, exp: "Success"},
		"german":        {l: de, key: PhraseQuestStateSuccess, exp: "Erfolgreich"},
		"german unit":   {l: de, key: PhraseUnitMinutes, exp: "Minuten"},
		"unknown key":   {l: de, key: "Not a phrase", exp: "Not a phrase"},
		"nil localizer": {key: PhraseFadeToBlack, exp: "Fade to black"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "text", tt.l.Text(tt.key), tt.exp)
		})
	}
}
