package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/gonorth-export/internal/content"
	"github.com/pixil98/gonorth-export/internal/storage"
	"github.com/pixil98/gonorth-export/internal/templates"
)

type StorageConfig struct {
	Projects AssetConfig[*content.Project] `json:"projects"`
	Npcs     AssetConfig[*content.Npc]     `json:"npcs"`
	Items    AssetConfig[*content.Item]    `json:"items"`
	Quests   AssetConfig[*content.Quest]   `json:"quests"`
	Skills   AssetConfig[*content.Skill]   `json:"skills"`
	Maps     AssetConfig[*content.Map]     `json:"maps"`

	// Templates is optional; without it only the built-in defaults are used.
	Templates AssetConfig[*templates.ExportTemplate] `json:"templates"`
}

func (c *StorageConfig) BuildDictionary() (*content.Dictionary, error) {
	projects, err := c.Projects.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating project store: %w", err)
	}
	npcs, err := c.Npcs.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating npc store: %w", err)
	}
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	quests, err := c.Quests.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating quest store: %w", err)
	}
	skills, err := c.Skills.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating skill store: %w", err)
	}
	maps, err := c.Maps.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating map store: %w", err)
	}

	dict := &content.Dictionary{
		Projects: projects,
		Npcs:     npcs,
		Items:    items,
		Quests:   quests,
		Skills:   skills,
		Maps:     maps,
	}

	if err := dict.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return dict, nil
}

// BuildTemplateProvider indexes the template store on top of the defaults.
func (c *StorageConfig) BuildTemplateProvider() (*templates.FileProvider, error) {
	if c.Templates.Path == "" {
		return templates.NewFileProvider(nil)
	}
	store, err := c.Templates.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating template store: %w", err)
	}
	return templates.NewFileProvider(store)
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Projects.Validate("projects"))
	el.Add(c.Npcs.Validate("npcs"))
	el.Add(c.Items.Validate("items"))
	el.Add(c.Quests.Validate("quests"))
	el.Add(c.Skills.Validate("skills"))
	el.Add(c.Maps.Validate("maps"))
	if c.Templates.Path != "" {
		el.Add(c.Templates.Validate("templates"))
	}
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
