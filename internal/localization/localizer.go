// Package localization formats the human readable preview phrases of dialog
// actions. Phrases are English format strings; other languages are served from
// an x/text message catalog.
package localization

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Preview phrases. Each is the English message and the catalog key.
const (
	PhraseChangePlayerValue = "Change player value %s"
	PhraseChangeNpcValue    = "Change npc value %s"
	PhraseChangeQuestValue  = "Change quest value %s"

	PhraseSpawnItemInPlayerInventory    = "Spawn %dx %s in player inventory"
	PhraseTransferItemToPlayerInventory = "Transfer %dx %s to player inventory"
	PhraseSpawnItemInNpcInventory       = "Spawn %dx %s in npc inventory"
	PhraseTransferItemToNpcInventory    = "Transfer %dx %s to npc inventory"

	PhraseChangeQuestState = "Set quest %s to %s"
	PhraseAddQuestText     = "Add text to quest %s"

	PhraseWait        = "Wait %d %s"
	PhraseWaitInGame  = "Wait %d %s game time"
	PhraseSetGameTime = "Set game time to %s"

	PhrasePlayerUseItem = "Player uses %s"
	PhraseNpcUseItem    = "%s uses %s"

	PhrasePlayerLearnSkill  = "Player learns %s"
	PhrasePlayerForgetSkill = "Player forgets %s"

	PhraseChangePlayerState           = "Change player state to %s"
	PhraseChangeNpcState              = "Change npc state to %s"
	PhrasePlayNpcAnimation            = "Play npc animation %s"
	PhrasePlayPlayerAnimation         = "Play player animation %s"
	PhraseShowFloatingTextAboveNpc    = "Show floating text above npc"
	PhraseShowFloatingTextAbovePlayer = "Show floating text above player"
	PhraseFadeToBlack                 = "Fade to black"
	PhraseFadeFromBlack               = "Fade from black"
	PhrasePersistDialogState          = "Persist dialog state"
	PhraseOpenShop                    = "Open shop of %s"
	PhraseCodeAction                  = "Code: %s"

	PhraseDisableDailyRoutineEvent = "Disable daily routine event %s of %s"
	PhraseEnableDailyRoutineEvent  = "Enable daily routine event %s of %s"

	PhraseTeleportNpcToMarker    = "Teleport npc to %s"
	PhraseWalkNpcToMarker        = "Walk npc to %s"
	PhraseTeleportPlayerToMarker = "Teleport player to %s"
	PhraseDirectContinueOnMove   = "Direct Continue On Move"

	PhraseSpawnNpcAtMarker  = "Spawn %s at %s"
	PhraseSpawnItemAtMarker = "Spawn %s at %s"

	PhraseQuestStateNotStarted = "Not started"
	PhraseQuestStateInProgress = "In progress"
	PhraseQuestStateSuccess    = "Success"
	PhraseQuestStateFailed     = "Failed"

	PhraseUnitMilliseconds = "milliseconds"
	PhraseUnitSeconds      = "seconds"
	PhraseUnitMinutes      = "minutes"
	PhraseUnitHours        = "hours"
	PhraseUnitDays         = "days"
)

var german = map[string]string{
	PhraseChangePlayerValue: "Spielerwert %s ändern",
	PhraseChangeNpcValue:    "NPC-Wert %s ändern",
	PhraseChangeQuestValue:  "Questwert %s ändern",

	PhraseSpawnItemInPlayerInventory:    "%dx %s im Spielerinventar erzeugen",
	PhraseTransferItemToPlayerInventory: "%dx %s ins Spielerinventar übertragen",
	PhraseSpawnItemInNpcInventory:       "%dx %s im NPC-Inventar erzeugen",
	PhraseTransferItemToNpcInventory:    "%dx %s ins NPC-Inventar übertragen",

	PhraseChangeQuestState: "Quest %s auf %s setzen",
	PhraseAddQuestText:     "Text zu Quest %s hinzufügen",

	PhraseWait:        "%d %s warten",
	PhraseWaitInGame:  "%d %s Spielzeit warten",
	PhraseSetGameTime: "Spielzeit auf %s setzen",

	PhrasePlayerUseItem: "Spieler benutzt %s",
	PhraseNpcUseItem:    "%s benutzt %s",

	PhrasePlayerLearnSkill:  "Spieler lernt %s",
	PhrasePlayerForgetSkill: "Spieler vergisst %s",

	PhraseChangePlayerState:           "Spielerzustand auf %s ändern",
	PhraseChangeNpcState:              "NPC-Zustand auf %s ändern",
	PhrasePlayNpcAnimation:            "NPC-Animation %s abspielen",
	PhrasePlayPlayerAnimation:         "Spieleranimation %s abspielen",
	PhraseShowFloatingTextAboveNpc:    "Schwebenden Text über NPC anzeigen",
	PhraseShowFloatingTextAbovePlayer: "Schwebenden Text über Spieler anzeigen",
	PhraseFadeToBlack:                 "Zu Schwarz ausblenden",
	PhraseFadeFromBlack:               "Von Schwarz einblenden",
	PhrasePersistDialogState:          "Dialogzustand speichern",
	PhraseOpenShop:                    "Laden von %s öffnen",
	PhraseCodeAction:                  "Code: %s",

	PhraseDisableDailyRoutineEvent: "Tagesablauf-Ereignis %s von %s deaktivieren",
	PhraseEnableDailyRoutineEvent:  "Tagesablauf-Ereignis %s von %s aktivieren",

	PhraseTeleportNpcToMarker:    "NPC zu %s teleportieren",
	PhraseWalkNpcToMarker:        "NPC zu %s laufen lassen",
	PhraseTeleportPlayerToMarker: "Spieler zu %s teleportieren",
	PhraseDirectContinueOnMove:   "Direkt bei Bewegung fortsetzen",

	PhraseSpawnNpcAtMarker: "%s bei %s erzeugen",

	PhraseQuestStateNotStarted: "Nicht gestartet",
	PhraseQuestStateInProgress: "In Bearbeitung",
	PhraseQuestStateSuccess:    "Erfolgreich",
	PhraseQuestStateFailed:     "Gescheitert",

	PhraseUnitMilliseconds: "Millisekunden",
	PhraseUnitSeconds:      "Sekunden",
	PhraseUnitMinutes:      "Minuten",
	PhraseUnitHours:        "Stunden",
	PhraseUnitDays:         "Tage",
}

var (
	buildOnce sync.Once
	builder   *catalog.Builder
	buildErr  error
	matcher   = language.NewMatcher([]language.Tag{language.English, language.German})
)

func phraseCatalog() (*catalog.Builder, error) {
	buildOnce.Do(func() {
		builder = catalog.NewBuilder(catalog.Fallback(language.English))
		for key, msg := range german {
			if err := builder.SetString(language.German, key, msg); err != nil {
				buildErr = fmt.Errorf("registering phrase %q: %w", key, err)
				return
			}
		}
	})
	return builder, buildErr
}

// Localizer formats phrases for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a localizer for the closest supported match of lang. An empty
// lang selects English.
func New(lang string) (*Localizer, error) {
	tag := language.English
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("parsing language %q: %w", lang, err)
		}
		_, idx, _ := matcher.Match(parsed)
		tag = []language.Tag{language.English, language.German}[idx]
	}

	cat, err := phraseCatalog()
	if err != nil {
		return nil, err
	}

	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}, nil
}

// English is the localizer used when none is configured.
func English() *Localizer {
	l, err := New("")
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Phrase formats the phrase key with args in the localizer's language.
func (l *Localizer) Phrase(key string, args ...any) string {
	if l == nil {
		return fmt.Sprintf(key, args...)
	}
	return l.printer.Sprintf(key, args...)
}

// Text returns the phrase key without arguments in the localizer's language.
func (l *Localizer) Text(key string) string {
	if l == nil {
		return key
	}
	return l.printer.Sprintf(message.Key(key, key))
}
