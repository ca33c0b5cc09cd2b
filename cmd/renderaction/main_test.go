package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
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

// setup writes a content tree, a config pointing at it and an open shop
// action. It returns the config and action paths.
func setup(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "projects", "main.yaml"), "version: 1\nid: main\nspec:\n  name: Main\n  is_default: true\n")
	writeFile(t, filepath.Join(root, "npcs", "bob.yaml"), "version: 1\nid: bob\nspec:\n  project_id: main\n  name: Bob\n")
	writeFile(t, filepath.Join(root, "templates", "shop.json"), `{"version":1,"id":"shop","spec":{"project_id":"main","type":"TaleActionOpenShop","code":"shop(\"{{Tale_Action_Npc_Id}}\")"}}`)

	storage := map[string]any{}
	for _, dir := range []string{"projects", "npcs", "items", "quests", "skills", "maps", "templates"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("creating dir: %v", err)
		}
		storage[dir] = map[string]string{"path": filepath.Join(root, dir)}
	}
	cfg, err := json.Marshal(map[string]any{
		"storage": storage,
		"export":  map[string]string{"language": "de"},
	})
	if err != nil {
		t.Fatalf("encoding config: %v", err)
	}
	configPath := filepath.Join(root, "config.json")
	writeFile(t, configPath, string(cfg))

	actionPath := filepath.Join(root, "shop.yaml")
	writeFile(t, actionPath, "id: a1\naction_type: 25\n")

	return configPath, actionPath
}

func TestRun(t *testing.T) {
	configPath, actionPath := setup(t)

	tests := map[string]struct {
		args      []string
		expCode   int
		expStdout string
		expStderr string
	}{
		"code": {
			args:      []string{"-config", configPath, "-npc", "bob", "-action", actionPath},
			expCode:   0,
			expStdout: `shop("bob")`,
		},
		"preview": {
			args:      []string{"-config", configPath, "-npc", "bob", "-action", actionPath, "-preview"},
			expCode:   0,
			expStdout: "Laden von Bob öffnen\n",
		},
		"preview language override": {
			args:      []string{"-config", configPath, "-npc", "bob", "-action", actionPath, "-preview", "-lang", "en"},
			expCode:   0,
			expStdout: "Open shop of Bob\n",
		},
		"no action": {
			args:      []string{"-config", configPath},
			expCode:   2,
			expStderr: "exactly one of -action and -snippet",
		},
		"missing config": {
			args:      []string{"-config", filepath.Join(t.TempDir(), "none.json"), "-action", actionPath},
			expCode:   1,
			expStderr: "loading config",
		},
		"unknown project": {
			args:      []string{"-config", configPath, "-project", "nope", "-action", actionPath},
			expCode:   1,
			expStderr: `unknown project "nope"`,
		},
		"missing action file": {
			args:      []string{"-config", configPath, "-action", filepath.Join(t.TempDir(), "none.json")},
			expCode:   1,
			expStderr: "none.json",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, &stdout, &stderr)

			testutil.AssertEqual(t, "exit code", code, tt.expCode)
			if tt.expStdout != "" {
				testutil.AssertEqual(t, "stdout", stdout.String(), tt.expStdout)
			}
			if tt.expStderr != "" && !strings.Contains(stderr.String(), tt.expStderr) {
				t.Errorf("stderr %q does not contain %q", stderr.String(), tt.expStderr)
			}
		})
	}
}
