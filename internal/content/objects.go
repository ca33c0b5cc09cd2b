package content

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Npc is a character. The project's player is an npc with IsPlayerNpc set.
type Npc struct {
	Id           string              `json:"-" yaml:"-"`
	ProjectId    string              `json:"project_id" yaml:"project_id"`
	Name         string              `json:"name" yaml:"name"`
	IsPlayerNpc  bool                `json:"is_player_npc" yaml:"is_player_npc"`
	Fields       []FlexField         `json:"fields" yaml:"fields"`
	DailyRoutine []DailyRoutineEvent `json:"daily_routine" yaml:"daily_routine"`
}

func (n *Npc) GetId() string          { return n.Id }
func (n *Npc) GetName() string        { return n.Name }
func (n *Npc) GetFields() []FlexField { return n.Fields }

func (n *Npc) setId(id string) { n.Id = id }

func (n *Npc) Validate() error {
	el := errors.NewErrorList()

	if n.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	el.Add(validateFields(n.Fields))

	seen := map[string]bool{}
	for i := range n.DailyRoutine {
		ev := &n.DailyRoutine[i]
		el.Add(ev.Validate())
		if seen[ev.EventId] {
			el.Add(fmt.Errorf("duplicate daily routine event %q", ev.EventId))
		}
		seen[ev.EventId] = true
	}

	return el.Err()
}

// FindDailyRoutineEvent scans the routine for an event id.
func (n *Npc) FindDailyRoutineEvent(eventId string) *DailyRoutineEvent {
	for i := range n.DailyRoutine {
		if n.DailyRoutine[i].EventId == eventId {
			return &n.DailyRoutine[i]
		}
	}
	return nil
}

// Item is an inventory object.
type Item struct {
	Id        string      `json:"-" yaml:"-"`
	ProjectId string      `json:"project_id" yaml:"project_id"`
	Name      string      `json:"name" yaml:"name"`
	Fields    []FlexField `json:"fields" yaml:"fields"`
}

func (i *Item) GetId() string          { return i.Id }
func (i *Item) GetName() string        { return i.Name }
func (i *Item) GetFields() []FlexField { return i.Fields }

func (i *Item) setId(id string) { i.Id = id }

func (i *Item) Validate() error {
	el := errors.NewErrorList()
	if i.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	el.Add(validateFields(i.Fields))
	return el.Err()
}

// Quest is a quest definition.
type Quest struct {
	Id          string      `json:"-" yaml:"-"`
	ProjectId   string      `json:"project_id" yaml:"project_id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	IsMainQuest bool        `json:"is_main_quest" yaml:"is_main_quest"`
	Fields      []FlexField `json:"fields" yaml:"fields"`
}

func (q *Quest) GetId() string          { return q.Id }
func (q *Quest) GetName() string        { return q.Name }
func (q *Quest) GetFields() []FlexField { return q.Fields }

func (q *Quest) setId(id string) { q.Id = id }

func (q *Quest) Validate() error {
	el := errors.NewErrorList()
	if q.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	el.Add(validateFields(q.Fields))
	return el.Err()
}

// Skill is a learnable ability.
type Skill struct {
	Id        string      `json:"-" yaml:"-"`
	ProjectId string      `json:"project_id" yaml:"project_id"`
	Name      string      `json:"name" yaml:"name"`
	Fields    []FlexField `json:"fields" yaml:"fields"`
}

func (s *Skill) GetId() string          { return s.Id }
func (s *Skill) GetName() string        { return s.Name }
func (s *Skill) GetFields() []FlexField { return s.Fields }

func (s *Skill) setId(id string) { s.Id = id }

func (s *Skill) Validate() error {
	el := errors.NewErrorList()
	if s.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	el.Add(validateFields(s.Fields))
	return el.Err()
}
