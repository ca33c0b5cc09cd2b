package content

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/gonorth-export/internal/placeholder"
)

// MiscConfig holds project wide calendar settings.
type MiscConfig struct {
	HoursPerDay    int `json:"hours_per_day" yaml:"hours_per_day"`
	MinutesPerHour int `json:"minutes_per_hour" yaml:"minutes_per_hour"`
}

func (m *MiscConfig) Validate() error {
	el := errors.NewErrorList()
	if m.HoursPerDay <= 0 {
		el.Add(fmt.Errorf("hours_per_day must be positive"))
	}
	if m.MinutesPerHour <= 0 {
		el.Add(fmt.Errorf("minutes_per_hour must be positive"))
	}
	return el.Err()
}

// DefaultMiscConfig is used for projects without a calendar.
func DefaultMiscConfig() MiscConfig {
	return MiscConfig{HoursPerDay: 24, MinutesPerHour: 60}
}

// ExportSettings controls how generated script text is written.
type ExportSettings struct {
	ScriptLanguage  string `json:"script_language" yaml:"script_language"`
	ScriptExtension string `json:"script_extension" yaml:"script_extension"`

	placeholder.EscapeSettings `yaml:",inline"`
}

// DefaultExportSettings matches the default Lua templates.
func DefaultExportSettings() ExportSettings {
	return ExportSettings{
		ScriptLanguage:  "lua",
		ScriptExtension: "lua",
		EscapeSettings: placeholder.EscapeSettings{
			EscapeCharacter:           `\`,
			CharactersNeedingEscaping: `"'\`,
			NewlineCharacter:          `\n`,
		},
	}
}

// Project groups all content of one game.
type Project struct {
	Id             string          `json:"-" yaml:"-"`
	Name           string          `json:"name" yaml:"name"`
	IsDefault      bool            `json:"is_default" yaml:"is_default"`
	Misc           *MiscConfig     `json:"misc,omitempty" yaml:"misc,omitempty"`
	ExportSettings *ExportSettings `json:"export_settings,omitempty" yaml:"export_settings,omitempty"`
}

func (p *Project) setId(id string) { p.Id = id }

func (p *Project) Validate() error {
	el := errors.NewErrorList()
	if p.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if p.Misc != nil {
		el.Add(p.Misc.Validate())
	}
	return el.Err()
}

// Settings returns the export settings or the defaults.
func (p *Project) Settings() ExportSettings {
	if p == nil || p.ExportSettings == nil {
		return DefaultExportSettings()
	}
	return *p.ExportSettings
}
