package content

import (
	"context"
	"fmt"

	"github.com/pixil98/gonorth-export/internal/storage"
)

type identifiable interface {
	storage.ValidatingSpec
	setId(string)
}

// Dictionary holds the content stores of all projects and answers the lookups
// the export renderers need. Lookups return (nil, nil) for unknown ids.
type Dictionary struct {
	Projects storage.Storer[*Project]
	Npcs     storage.Storer[*Npc]
	Items    storage.Storer[*Item]
	Quests   storage.Storer[*Quest]
	Skills   storage.Storer[*Skill]
	Maps     storage.Storer[*Map]
}

// Resolve copies asset ids onto the records and checks project references.
// Call it once after the stores are loaded.
func (d *Dictionary) Resolve() error {
	assignIds(d.Projects)
	assignIds(d.Npcs)
	assignIds(d.Items)
	assignIds(d.Quests)
	assignIds(d.Skills)
	assignIds(d.Maps)

	projects := d.Projects.GetAll()
	check := func(kind string, id string, projectId string) error {
		if projectId == "" {
			return nil
		}
		if _, ok := projects[projectId]; !ok {
			return fmt.Errorf("%s %s: unknown project %q", kind, id, projectId)
		}
		return nil
	}

	for id, n := range d.Npcs.GetAll() {
		if err := check("npc", id, n.ProjectId); err != nil {
			return err
		}
	}
	for id, i := range d.Items.GetAll() {
		if err := check("item", id, i.ProjectId); err != nil {
			return err
		}
	}
	for id, q := range d.Quests.GetAll() {
		if err := check("quest", id, q.ProjectId); err != nil {
			return err
		}
	}
	for id, s := range d.Skills.GetAll() {
		if err := check("skill", id, s.ProjectId); err != nil {
			return err
		}
	}
	for id, m := range d.Maps.GetAll() {
		if err := check("map", id, m.ProjectId); err != nil {
			return err
		}
	}

	defaults := 0
	for _, p := range projects {
		if p.IsDefault {
			defaults++
		}
	}
	if defaults > 1 {
		return fmt.Errorf("%d projects are marked as default", defaults)
	}

	return nil
}

func assignIds[T identifiable](st storage.Storer[T]) {
	if st == nil {
		return
	}
	for id, v := range st.GetAll() {
		v.setId(id)
	}
}

func (d *Dictionary) GetProject(_ context.Context, id string) (*Project, error) {
	return d.Projects.Get(id), nil
}

// GetDefaultProject returns the project flagged as default, or the only project.
func (d *Dictionary) GetDefaultProject(_ context.Context) (*Project, error) {
	all := d.Projects.GetAll()
	for _, p := range all {
		if p.IsDefault {
			return p, nil
		}
	}
	if len(all) == 1 {
		for _, p := range all {
			return p, nil
		}
	}
	return nil, nil
}

func (d *Dictionary) GetQuest(_ context.Context, id string) (*Quest, error) {
	return d.Quests.Get(id), nil
}

func (d *Dictionary) GetItem(_ context.Context, id string) (*Item, error) {
	return d.Items.Get(id), nil
}

func (d *Dictionary) GetNpc(_ context.Context, id string) (*Npc, error) {
	return d.Npcs.Get(id), nil
}

func (d *Dictionary) GetSkill(_ context.Context, id string) (*Skill, error) {
	return d.Skills.Get(id), nil
}

// GetPlayerNpc returns the npc of the project marked as player.
func (d *Dictionary) GetPlayerNpc(_ context.Context, projectId string) (*Npc, error) {
	for _, n := range d.Npcs.GetAll() {
		if n.IsPlayerNpc && n.ProjectId == projectId {
			return n, nil
		}
	}
	return nil, nil
}

func (d *Dictionary) GetMarker(_ context.Context, mapId string, markerId string) (*Marker, error) {
	m := d.Maps.Get(mapId)
	if m == nil {
		return nil, nil
	}
	return m.FindMarker(markerId), nil
}

// GetMiscProjectConfig returns the project calendar, falling back to a 24h day.
func (d *Dictionary) GetMiscProjectConfig(_ context.Context, projectId string) (*MiscConfig, error) {
	p := d.Projects.Get(projectId)
	if p == nil || p.Misc == nil {
		cfg := DefaultMiscConfig()
		return &cfg, nil
	}
	return p.Misc, nil
}

func (d *Dictionary) GetDailyRoutineEvents(_ context.Context, npcId string) ([]DailyRoutineEvent, error) {
	n := d.Npcs.Get(npcId)
	if n == nil {
		return nil, nil
	}
	return n.DailyRoutine, nil
}
