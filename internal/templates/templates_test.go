package templates

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/gonorth-export/internal/storage"
)

func TestType_TextRoundTrip(t *testing.T) {
	for _, typ := range AllTypes() {
		text, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("marshal %d: %v", int(typ), err)
		}
		var got Type
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %s: %v", text, err)
		}
		testutil.AssertEqual(t, "type", got, typ)
	}
}

func TestParseType(t *testing.T) {
	tests := map[string]struct {
		name   string
		exp    Type
		expErr string
	}{
		"action type": {
			name: "TaleActionWait",
			exp:  TaleActionWait,
		},
		"operator type": {
			name: "GeneralLogicDivide",
			exp:  GeneralLogicDivide,
		},
		"unknown": {
			name:   "TaleActionDance",
			expErr: "unknown template type",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseType(tt.name)
			checkErr(t, err, tt.expErr)
			testutil.AssertEqual(t, "type", got, tt.exp)
		})
	}
}

func TestRenderingEngine_UnmarshalText(t *testing.T) {
	tests := map[string]struct {
		text   string
		exp    RenderingEngine
		expErr string
	}{
		"empty is legacy": {text: "", exp: RenderingEngineLegacy},
		"legacy":          {text: "legacy", exp: RenderingEngineLegacy},
		"template":        {text: "template", exp: RenderingEngineTemplate},
		"unknown":         {text: "scriban", expErr: "unknown rendering engine"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got RenderingEngine
			err := got.UnmarshalText([]byte(tt.text))
			checkErr(t, err, tt.expErr)
			testutil.AssertEqual(t, "engine", got, tt.exp)
		})
	}
}

func TestExportTemplate_Validate(t *testing.T) {
	tests := map[string]struct {
		tmpl   ExportTemplate
		expErr string
	}{
		"valid": {
			tmpl: ExportTemplate{Type: TaleActionWait, Code: "wait()"},
		},
		"missing type": {
			tmpl:   ExportTemplate{Code: "wait()"},
			expErr: "template type is required",
		},
		"bad engine": {
			tmpl:   ExportTemplate{Type: TaleActionWait, RenderingEngine: RenderingEngine(7)},
			expErr: "unknown rendering engine",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			checkErr(t, tt.tmpl.Validate(), tt.expErr)
		})
	}
}

func TestLoadDefaults_CoversEveryType(t *testing.T) {
	defaults, err := LoadDefaults()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, typ := range AllTypes() {
		if _, ok := defaults[typ]; !ok {
			t.Errorf("no default template for %s", typ)
		}
	}
	testutil.AssertEqual(t, "assign code", defaults[GeneralLogicAssign].Code, "=")
}

type memStore map[string]*ExportTemplate

func (m memStore) Get(id string) *ExportTemplate      { return m[id] }
func (m memStore) GetAll() map[string]*ExportTemplate { return m }

func TestFileProvider_GetTemplate(t *testing.T) {
	store := memStore{
		"p1-wait": {ProjectId: "p1", Type: TaleActionWait, Code: "p1 wait"},
		"shared":  {Type: TaleActionWait, Code: "shared wait", RenderingEngine: RenderingEngineTemplate},
	}

	p, err := NewFileProvider(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		project string
		typ     Type
		expCode string
		expErr  string
	}{
		"project override": {
			project: "p1",
			typ:     TaleActionWait,
			expCode: "p1 wait",
		},
		"shared template": {
			project: "p2",
			typ:     TaleActionWait,
			expCode: "shared wait",
		},
		"embedded default": {
			project: "p1",
			typ:     GeneralLogicAdd,
			expCode: "+",
		},
		"unknown type": {
			project: "p1",
			typ:     Type(999),
			expErr:  "unknown template type",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := p.GetTemplate(context.Background(), tt.project, tt.typ)
			checkErr(t, err, tt.expErr)
			if tt.expErr != "" {
				return
			}
			testutil.AssertEqual(t, "code", got.Code, tt.expCode)
		})
	}
}

func TestFileProvider_NotFound(t *testing.T) {
	p := &FileProvider{
		byKey:    map[templateKey]*ExportTemplate{},
		defaults: map[Type]*ExportTemplate{},
	}

	_, err := p.GetTemplate(context.Background(), "p1", TaleActionWait)
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestFileProvider_Put(t *testing.T) {
	p, err := NewFileProvider(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = p.Put(&ExportTemplate{ProjectId: "p1", Type: TaleActionFadeToBlack, Code: "fade()"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := p.GetTemplate(context.Background(), "p1", TaleActionFadeToBlack)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "code", got.Code, "fade()")

	testutil.AssertErrorContains(t, p.Put(&ExportTemplate{}), "template type is required")
}

func TestFileProvider_FromYAMLStore(t *testing.T) {
	dir := t.TempDir()
	asset := `version: 1
id: wait-template
spec:
  project_id: p1
  type: TaleActionWait
  rendering_engine: template
  code: "wait({{ .Tale_Action_WaitAmount }})"
`
	if err := os.WriteFile(filepath.Join(dir, "wait.yaml"), []byte(asset), 0644); err != nil {
		t.Fatalf("writing asset: %v", err)
	}

	store, err := storage.NewFileStore[*ExportTemplate](dir)
	if err != nil {
		t.Fatalf("loading store: %v", err)
	}
	p, err := NewFileProvider(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := p.GetTemplate(context.Background(), "p1", TaleActionWait)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "engine", got.RenderingEngine, RenderingEngineTemplate)
	testutil.AssertEqual(t, "code", got.Code, "wait({{ .Tale_Action_WaitAmount }})")
}

func checkErr(t *testing.T, err error, expErr string) {
	t.Helper()
	if expErr == "" {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		return
	}
	testutil.AssertErrorContains(t, err, expErr)
}
