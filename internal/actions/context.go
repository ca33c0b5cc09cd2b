package actions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pixil98/gonorth-export/internal/content"
	"github.com/pixil98/gonorth-export/internal/exporterr"
	"github.com/pixil98/gonorth-export/internal/localization"
	"github.com/pixil98/gonorth-export/internal/templates"
)

// ErrNoProject is returned when a render has no project and none is marked
// as default.
var ErrNoProject = errors.New("no project to render for")

// DataSource resolves the objects referenced by action data. Lookups return
// (nil, nil) for unknown ids.
type DataSource interface {
	GetQuest(ctx context.Context, id string) (*content.Quest, error)
	GetItem(ctx context.Context, id string) (*content.Item, error)
	GetNpc(ctx context.Context, id string) (*content.Npc, error)
	GetSkill(ctx context.Context, id string) (*content.Skill, error)
	GetDefaultProject(ctx context.Context) (*content.Project, error)
	GetPlayerNpc(ctx context.Context, projectId string) (*content.Npc, error)
	GetMarker(ctx context.Context, mapId string, markerId string) (*content.Marker, error)
	GetMiscProjectConfig(ctx context.Context, projectId string) (*content.MiscConfig, error)
	GetDailyRoutineEvents(ctx context.Context, npcId string) ([]content.DailyRoutineEvent, error)
}

// RenderContext carries everything an action needs besides its own data.
type RenderContext struct {
	// Project defaults to the data source's default project.
	Project *content.Project
	// Subject is the npc owning the dialog.
	Subject content.FlexFieldExportable
	Errors  *exporterr.Collection
	// Settings overrides the project's export settings.
	Settings *content.ExportSettings
}

// PreviewContext carries everything a preview needs besides the action data.
type PreviewContext struct {
	Project *content.Project
	Subject content.FlexFieldExportable
	Errors  *exporterr.Collection
	// Child is the outgoing edge whose step is being previewed, if any.
	Child     *ActionChild
	Localizer *localization.Localizer
}

// ConfigurationError reports a renderer setup problem rather than bad content.
type ConfigurationError struct {
	Reason       string
	ActionType   ActionType
	TemplateType templates.Type
	Engine       *templates.RenderingEngine
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("export configuration: %s (action %s", e.Reason, e.ActionType)
	if e.TemplateType != templates.TypeUnknown {
		msg += fmt.Sprintf(", template %s", e.TemplateType)
	}
	if e.Engine != nil {
		msg += fmt.Sprintf(", engine %s", *e.Engine)
	}
	return msg + ")"
}

// env is the per call state handed to variant policies.
type env struct {
	data      DataSource
	templates templates.Provider

	node     *ActionNode
	project  *content.Project
	subject  content.FlexFieldExportable
	errs     *exporterr.Collection
	settings content.ExportSettings
	loc      *localization.Localizer
	child    *ActionChild
}

func resolveProject(ctx context.Context, data DataSource, p *content.Project) (*content.Project, error) {
	if p != nil {
		return p, nil
	}
	p, err := data.GetDefaultProject(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading default project: %w", err)
	}
	if p == nil {
		return nil, ErrNoProject
	}
	return p, nil
}

// withErrors returns a copy of e recording into errs.
func (e *env) withErrors(errs *exporterr.Collection) *env {
	c := *e
	c.errs = errs
	return &c
}

func (e *env) phrase(key string, args ...any) string {
	return e.loc.Phrase(key, args...)
}

func (e *env) text(key string) string {
	return e.loc.Text(key)
}

func logLookupFailure(ctx context.Context, kind string, id string, err error) {
	slog.WarnContext(ctx, "lookup failed", "kind", kind, "id", id, "error", err)
}

func (e *env) quest(ctx context.Context, id string) *content.Quest {
	q, err := e.data.GetQuest(ctx, id)
	if err != nil {
		logLookupFailure(ctx, "quest", id, err)
	}
	if q == nil {
		e.errs.AddQuestNotFound(id)
		return nil
	}
	return q
}

func (e *env) item(ctx context.Context, id string) *content.Item {
	i, err := e.data.GetItem(ctx, id)
	if err != nil {
		logLookupFailure(ctx, "item", id, err)
	}
	if i == nil {
		e.errs.AddItemNotFound(id)
		return nil
	}
	return i
}

func (e *env) npc(ctx context.Context, id string) *content.Npc {
	n, err := e.data.GetNpc(ctx, id)
	if err != nil {
		logLookupFailure(ctx, "npc", id, err)
	}
	if n == nil {
		e.errs.AddNpcNotFound(id)
		return nil
	}
	return n
}

func (e *env) skill(ctx context.Context, id string) *content.Skill {
	s, err := e.data.GetSkill(ctx, id)
	if err != nil {
		logLookupFailure(ctx, "skill", id, err)
	}
	if s == nil {
		e.errs.AddSkillNotFound(id)
		return nil
	}
	return s
}

func (e *env) playerNpc(ctx context.Context) *content.Npc {
	n, err := e.data.GetPlayerNpc(ctx, e.project.Id)
	if err != nil {
		logLookupFailure(ctx, "player npc", e.project.Id, err)
	}
	if n == nil {
		e.errs.AddNoPlayerNpc()
		return nil
	}
	return n
}

// dialogNpc is the subject of the render. A render without subject records a
// missing npc.
func (e *env) dialogNpc() content.FlexFieldExportable {
	if e.subject == nil {
		e.errs.AddNpcNotFound("")
		return nil
	}
	return e.subject
}

func (e *env) marker(ctx context.Context, mapId string, markerId string) *content.Marker {
	m, err := e.data.GetMarker(ctx, mapId, markerId)
	if err != nil {
		logLookupFailure(ctx, "marker", mapId+"/"+markerId, err)
	}
	if m == nil {
		e.errs.AddMarkerNotFound(mapId, markerId)
		return nil
	}
	return m
}

func (e *env) miscConfig(ctx context.Context) content.MiscConfig {
	cfg, err := e.data.GetMiscProjectConfig(ctx, e.project.Id)
	if err != nil {
		logLookupFailure(ctx, "misc project config", e.project.Id, err)
	}
	if cfg == nil || cfg.HoursPerDay <= 0 || cfg.MinutesPerHour <= 0 {
		return content.DefaultMiscConfig()
	}
	return *cfg
}

func (e *env) dailyRoutineEvent(ctx context.Context, npc *content.Npc, eventId string) *content.DailyRoutineEvent {
	events, err := e.data.GetDailyRoutineEvents(ctx, npc.Id)
	if err != nil {
		logLookupFailure(ctx, "daily routine events", npc.Id, err)
	}
	for i := range events {
		if events[i].EventId == eventId {
			return &events[i]
		}
	}
	e.errs.AddDailyRoutineEventNotFound(npc.Name, eventId)
	return nil
}

// directContinueChild returns the direct continue edge of the node, if any.
func (e *env) directContinueChild() *ActionChild {
	for _, c := range e.node.Children {
		if c.IsDirectContinue() {
			return &c
		}
	}
	return nil
}
