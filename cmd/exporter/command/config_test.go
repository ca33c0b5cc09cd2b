package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/gonorth-export/internal/actions"
	"github.com/pixil98/gonorth-export/internal/content"
	"github.com/pixil98/gonorth-export/internal/exportsvc"
	"github.com/pixil98/gonorth-export/internal/templates"
)

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// testStorage lays out a small content tree and returns its config.
func testStorage(t *testing.T) StorageConfig {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "projects", "main.yaml"), "version: 1\nid: main\nspec:\n  name: Main\n  is_default: true\n")
	writeFile(t, filepath.Join(root, "npcs", "bob.yaml"), "version: 1\nid: bob\nspec:\n  project_id: main\n  name: Bob\n")
	writeFile(t, filepath.Join(root, "templates", "shop.json"), `{"version":1,"id":"shop","spec":{"project_id":"main","type":"TaleActionOpenShop","code":"shop(\"{{Tale_Action_Npc_Id}}\")"}}`)
	for _, dir := range []string{"items", "quests", "skills", "maps"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("creating dir: %v", err)
		}
	}

	return StorageConfig{
		Projects:  AssetConfig[*content.Project]{Path: filepath.Join(root, "projects")},
		Npcs:      AssetConfig[*content.Npc]{Path: filepath.Join(root, "npcs")},
		Items:     AssetConfig[*content.Item]{Path: filepath.Join(root, "items")},
		Quests:    AssetConfig[*content.Quest]{Path: filepath.Join(root, "quests")},
		Skills:    AssetConfig[*content.Skill]{Path: filepath.Join(root, "skills")},
		Maps:      AssetConfig[*content.Map]{Path: filepath.Join(root, "maps")},
		Templates: AssetConfig[*templates.ExportTemplate]{Path: filepath.Join(root, "templates")},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		modify func(*Config)
		expErr string
	}{
		"valid": {},
		"templates optional": {
			modify: func(c *Config) { c.Storage.Templates.Path = "" },
		},
		"missing npc path": {
			modify: func(c *Config) { c.Storage.Npcs.Path = "" },
			expErr: "npcs: path is required",
		},
		"unknown path": {
			modify: func(c *Config) { c.Storage.Items.Path = "/does/not/exist" },
			expErr: "items: invalid path",
		},
		"bad nats timeout": {
			modify: func(c *Config) { c.Nats.StartTimeout = "soon" },
			expErr: "parsing start_timeout",
		},
		"bad nats port": {
			modify: func(c *Config) { c.Nats.Port = 70000 },
			expErr: "out of range",
		},
		"bad cache ttl": {
			modify: func(c *Config) { c.Cache = CacheConfig{RedisURL: "redis://localhost:6379", TTL: "-1s"} },
			expErr: "cache ttl must be positive",
		},
		"ttl without redis": {
			modify: func(c *Config) { c.Cache.TTL = "1m" },
			expErr: "without redis_url",
		},
		"bad language": {
			modify: func(c *Config) { c.Export.Language = "!!" },
			expErr: "parsing export language",
		},
		"events on request subject": {
			modify: func(c *Config) { c.Export.EventsSubject = defaultSubject },
			expErr: "events_subject must differ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := &Config{Storage: testStorage(t)}
			if tt.modify != nil {
				tt.modify(cfg)
			}

			err := cfg.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestBuildService(t *testing.T) {
	cfg := &Config{Storage: testStorage(t), Export: ExportConfig{Language: "de"}}

	svc, dict, err := BuildService(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	npc, _ := dict.GetNpc(context.Background(), "bob")
	testutil.AssertEqual(t, "npc id", npc.Id, "bob")

	resp := svc.Render(context.Background(), &exportsvc.RenderRequest{
		NpcId:  "bob",
		Action: &actions.ActionNode{Id: "a1", ActionType: actions.ActionOpenShop},
	})
	testutil.AssertEqual(t, "error", resp.Error, "")
	testutil.AssertEqual(t, "code", resp.Code, `shop("bob")`)

	preview := svc.Render(context.Background(), &exportsvc.RenderRequest{
		NpcId:   "bob",
		Preview: true,
		Action:  &actions.ActionNode{Id: "a1", ActionType: actions.ActionOpenShop},
	})
	testutil.AssertEqual(t, "preview", preview.Preview, "Laden von Bob öffnen")
}

func TestBuildService_UnknownProjectReference(t *testing.T) {
	cfg := &Config{Storage: testStorage(t)}
	writeFile(t, filepath.Join(cfg.Storage.Npcs.Path, "eve.yaml"), "version: 1\nid: eve\nspec:\n  project_id: nope\n  name: Eve\n")

	_, _, err := BuildService(context.Background(), cfg)
	testutil.AssertErrorContains(t, err, `unknown project "nope"`)
}

func TestCacheConfig_Wrap(t *testing.T) {
	files, err := templates.NewFileProvider(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := &CacheConfig{}
	got, err := c.wrap(context.Background(), files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != templates.Provider(files) {
		t.Errorf("expected provider to be returned unchanged")
	}

	testutil.AssertEqual(t, "default ttl", c.ttl(), defaultCacheTTL)
}

func TestNatsConfig_Options(t *testing.T) {
	tests := map[string]struct {
		cfg     NatsConfig
		expOpts int
		expErr  string
	}{
		"defaults":    {},
		"all set":     {cfg: NatsConfig{Host: "0.0.0.0", Port: -1, StartTimeout: "2s"}, expOpts: 3},
		"port only":   {cfg: NatsConfig{Port: 4333}, expOpts: 1},
		"bad timeout": {cfg: NatsConfig{StartTimeout: "later"}, expErr: "parsing start_timeout"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts, err := tt.cfg.options()
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "options", len(opts), tt.expOpts)
		})
	}
}

func TestNatsConfig_BuildNatsServer(t *testing.T) {
	cfg := NatsConfig{Port: -1, StartTimeout: "1s"}
	s, err := cfg.buildNatsServer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s == nil {
		t.Fatal("expected a server")
	}
}
