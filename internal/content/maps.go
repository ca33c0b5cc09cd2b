package content

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// MarkerType is the kind of a map marker.
type MarkerType string

const (
	MarkerTypeNpc   MarkerType = "npc"
	MarkerTypeItem  MarkerType = "item"
	MarkerTypeQuest MarkerType = "quest"
	MarkerTypeNote  MarkerType = "note"
	MarkerTypeMap   MarkerType = "map_change"
)

// Marker is a named point on a map.
type Marker struct {
	Id         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	ExportName string     `json:"export_name" yaml:"export_name"`
	Type       MarkerType `json:"type" yaml:"type"`
}

// Map is a world map carrying markers.
type Map struct {
	Id        string   `json:"-" yaml:"-"`
	ProjectId string   `json:"project_id" yaml:"project_id"`
	Name      string   `json:"name" yaml:"name"`
	Markers   []Marker `json:"markers" yaml:"markers"`
}

func (m *Map) setId(id string) { m.Id = id }

func (m *Map) Validate() error {
	el := errors.NewErrorList()
	if m.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	seen := map[string]bool{}
	for _, mk := range m.Markers {
		if mk.Id == "" {
			el.Add(fmt.Errorf("marker id is required"))
		}
		if seen[mk.Id] {
			el.Add(fmt.Errorf("duplicate marker %q", mk.Id))
		}
		seen[mk.Id] = true
	}
	return el.Err()
}

// FindMarker looks up a marker by id.
func (m *Map) FindMarker(markerId string) *Marker {
	for i := range m.Markers {
		if m.Markers[i].Id == markerId {
			return &m.Markers[i]
		}
	}
	return nil
}

// ExportedName is the name scripts refer to the marker by.
func (m *Marker) ExportedName() string {
	if m.ExportName != "" {
		return m.ExportName
	}
	return m.Name
}
