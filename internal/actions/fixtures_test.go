package actions

import (
	"context"
	"testing"

	"github.com/pixil98/gonorth-export/internal/content"
	"github.com/pixil98/gonorth-export/internal/exporterr"
	"github.com/pixil98/gonorth-export/internal/templates"
)

type mockData struct {
	project  *content.Project
	npcs     map[string]*content.Npc
	items    map[string]*content.Item
	quests   map[string]*content.Quest
	skills   map[string]*content.Skill
	markers  map[string]*content.Marker
	misc     *content.MiscConfig
	noPlayer bool
	itemErr  error
}

func (m *mockData) GetQuest(_ context.Context, id string) (*content.Quest, error) {
	return m.quests[id], nil
}

func (m *mockData) GetItem(_ context.Context, id string) (*content.Item, error) {
	if m.itemErr != nil {
		return nil, m.itemErr
	}
	return m.items[id], nil
}

func (m *mockData) GetNpc(_ context.Context, id string) (*content.Npc, error) {
	return m.npcs[id], nil
}

func (m *mockData) GetSkill(_ context.Context, id string) (*content.Skill, error) {
	return m.skills[id], nil
}

func (m *mockData) GetDefaultProject(_ context.Context) (*content.Project, error) {
	return m.project, nil
}

func (m *mockData) GetPlayerNpc(_ context.Context, _ string) (*content.Npc, error) {
	if m.noPlayer {
		return nil, nil
	}
	return m.npcs["player"], nil
}

func (m *mockData) GetMarker(_ context.Context, mapId string, markerId string) (*content.Marker, error) {
	return m.markers[mapId+"/"+markerId], nil
}

func (m *mockData) GetMiscProjectConfig(_ context.Context, _ string) (*content.MiscConfig, error) {
	return m.misc, nil
}

func (m *mockData) GetDailyRoutineEvents(_ context.Context, npcId string) ([]content.DailyRoutineEvent, error) {
	if n, ok := m.npcs[npcId]; ok {
		return n.DailyRoutine, nil
	}
	return nil, nil
}

func newMockData() *mockData {
	return &mockData{
		project: &content.Project{Id: "p1", Name: "Demo", IsDefault: true},
		npcs: map[string]*content.Npc{
			"player": {
				Id:          "player",
				ProjectId:   "p1",
				Name:        "Hero",
				IsPlayerNpc: true,
				Fields: []content.FlexField{
					{Id: "f1", Name: "Gold", FieldType: content.FieldTypeNumber, Value: "10"},
					{Id: "f2", Name: "Title", FieldType: content.FieldTypeString, Value: "Sir"},
				},
			},
			"npc1": {
				Id:        "npc1",
				ProjectId: "p1",
				Name:      "Bob",
				Fields: []content.FlexField{
					{Id: "n1", Name: "Mood", FieldType: content.FieldTypeString, Value: "happy"},
					{Id: "n2", Name: "Health", FieldType: content.FieldTypeNumber, Value: "5"},
				},
				DailyRoutine: []content.DailyRoutineEvent{
					{EventId: "e1", EarliestTime: content.TimeOfDay{Hours: 8, Minutes: 30}, LatestTime: content.TimeOfDay{Hours: 8, Minutes: 30}},
					{EventId: "e2", EarliestTime: content.TimeOfDay{Hours: 8}, LatestTime: content.TimeOfDay{Hours: 9}},
				},
			},
		},
		items: map[string]*content.Item{
			"i1": {Id: "i1", ProjectId: "p1", Name: "Apple"},
		},
		quests: map[string]*content.Quest{
			"q1": {
				Id:        "q1",
				ProjectId: "p1",
				Name:      "Find the key",
				Fields: []content.FlexField{
					{Id: "qf1", Name: "Keys", FieldType: content.FieldTypeNumber, Value: "0"},
				},
			},
		},
		skills: map[string]*content.Skill{
			"s1": {Id: "s1", ProjectId: "p1", Name: "Fireball"},
		},
		markers: map[string]*content.Marker{
			"m1/mk1": {Id: "mk1", Name: "Harbor", ExportName: "harbor_01"},
		},
	}
}

// validPayloads holds action data that resolves against newMockData.
var validPayloads = map[ActionType]string{
	ActionChangePlayerValue:             `{"fieldId":"f1","fieldName":"Gold","operator":"+=","valueChange":"5"}`,
	ActionChangeNpcValue:                `{"fieldId":"n1","fieldName":"Mood","operator":"=","valueChange":"grumpy"}`,
	ActionChangeQuestValue:              `{"objectId":"q1","fieldId":"qf1","fieldName":"Keys","operator":"-=","valueChange":"1"}`,
	ActionSpawnItemInPlayerInventory:    `{"itemId":"i1","quantity":2}`,
	ActionTransferItemToPlayerInventory: `{"itemId":"i1","quantity":"3"}`,
	ActionSpawnItemInNpcInventory:       `{"itemId":"i1"}`,
	ActionTransferItemToNpcInventory:    `{"itemId":"i1","quantity":1}`,
	ActionChangeQuestState:              `{"questId":"q1","questState":"2"}`,
	ActionAddQuestText:                  `{"questId":"q1","questText":"The key is \"hidden\""}`,
	ActionWait:                          `{"waitAmount":5,"waitType":"0","waitUnit":"2"}`,
	ActionSetGameTime:                   `{"hours":8,"minutes":30}`,
	ActionPlayerUseItem:                 `{"itemId":"i1"}`,
	ActionNpcUseItem:                    `{"npcId":"npc1","itemId":"i1"}`,
	ActionPlayerLearnSkill:              `{"skillId":"s1"}`,
	ActionPlayerForgetSkill:             `{"skillId":"s1"}`,
	ActionChangePlayerState:             `{"state":"sleeping"}`,
	ActionChangeNpcState:                `{"state":"angry"}`,
	ActionPlayNpcAnimation:              `{"animation":"wave"}`,
	ActionPlayPlayerAnimation:           `{"animation":"bow"}`,
	ActionShowFloatingTextAboveNpc:      `{"floatingText":"Hello!"}`,
	ActionShowFloatingTextAbovePlayer:   `{"floatingText":"Hmm"}`,
	ActionFadeToBlack:                   `{"fadeTime":1.5}`,
	ActionFadeFromBlack:                 `{"fadeTime":"2"}`,
	ActionPersistDialogState:            ``,
	ActionOpenShop:                      `{}`,
	ActionCode:                          `{"scriptName":"greet","scriptCode":"local x = 1\nprint(x)"}`,
	ActionDisableDailyRoutineEvent:      `{"npcId":"npc1","eventId":"e1"}`,
	ActionEnableDailyRoutineEvent:       `{"npcId":"npc1","eventId":"e2"}`,
	ActionTeleportNpcToMarker:           `{"mapId":"m1","markerId":"mk1"}`,
	ActionWalkNpcToMarker:               `{"mapId":"m1","markerId":"mk1"}`,
	ActionTeleportPlayerToMarker:        `{"mapId":"m1","markerId":"mk1"}`,
	ActionSpawnNpcAtMarker:              `{"objectId":"npc1","mapId":"m1","markerId":"mk1","pitch":90,"yaw":0,"roll":"12.5"}`,
	ActionSpawnItemAtMarker:             `{"objectId":"i1","mapId":"m1","markerId":"mk1"}`,
}

func newTestDispatcher(t *testing.T, data *mockData, overrides ...*templates.ExportTemplate) *Dispatcher {
	t.Helper()

	provider, err := templates.NewFileProvider(nil)
	if err != nil {
		t.Fatalf("creating provider: %v", err)
	}
	for _, o := range overrides {
		if o.ProjectId == "" {
			o.ProjectId = "p1"
		}
		if err := provider.Put(o); err != nil {
			t.Fatalf("registering template: %v", err)
		}
	}

	d, err := NewDispatcher(data, provider)
	if err != nil {
		t.Fatalf("creating dispatcher: %v", err)
	}
	return d
}

func legacy(t templates.Type, code string) *templates.ExportTemplate {
	return &templates.ExportTemplate{Type: t, Code: code, RenderingEngine: templates.RenderingEngineLegacy}
}

func engine(t templates.Type, code string) *templates.ExportTemplate {
	return &templates.ExportTemplate{Type: t, Code: code, RenderingEngine: templates.RenderingEngineTemplate}
}

func renderCtx(data *mockData, errs *exporterr.Collection) *RenderContext {
	return &RenderContext{
		Subject: data.npcs["npc1"],
		Errors:  errs,
	}
}

func previewCtx(data *mockData, errs *exporterr.Collection) *PreviewContext {
	return &PreviewContext{
		Subject: data.npcs["npc1"],
		Errors:  errs,
	}
}
