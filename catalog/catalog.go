// Package catalog holds the fixed registry of eco missions.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ecoquest/models"
)

// Catalog is a read-only mission lookup.
type Catalog struct {
	missions []models.Mission
	byID     map[int]models.Mission
}

// New builds a catalog from the given missions. Every id must be unique
// and every point value positive.
func New(missions []models.Mission) (*Catalog, error) {
	if len(missions) == 0 {
		return nil, fmt.Errorf("catalog: no missions defined")
	}

	byID := make(map[int]models.Mission, len(missions))
	for _, m := range missions {
		if m.Points <= 0 {
			return nil, fmt.Errorf("catalog: mission %d %q has non-positive points", m.ID, m.Title)
		}
		if _, dup := byID[m.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate mission id %d", m.ID)
		}
		byID[m.ID] = m
	}

	return &Catalog{missions: missions, byID: byID}, nil
}

// Default returns the built-in 25-mission catalog.
func Default() *Catalog {
	c, err := New(defaultMissions)
	if err != nil {
		// The built-in list is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}

// LoadFile reads a YAML mission list and builds a catalog from it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var missions []models.Mission
	if err := yaml.Unmarshal(data, &missions); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	return New(missions)
}

// Get looks up a mission by id.
func (c *Catalog) Get(id int) (models.Mission, error) {
	m, ok := c.byID[id]
	if !ok {
		return models.Mission{}, fmt.Errorf("mission %d: %w", id, models.ErrNotFound)
	}
	return m, nil
}

// All returns the missions in catalog order. The returned slice is a copy.
func (c *Catalog) All() []models.Mission {
	out := make([]models.Mission, len(c.missions))
	copy(out, c.missions)
	return out
}

// Len reports the number of missions in the catalog.
func (c *Catalog) Len() int {
	return len(c.missions)
}
