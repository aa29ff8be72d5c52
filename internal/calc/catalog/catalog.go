package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"Thermowall/internal/calc/climate"
	"Thermowall/internal/calc/wall"

	"gopkg.in/yaml.v3"
)

//go:embed materials.yaml
var defaultCatalog []byte

var ErrNotFound = errors.New("not found in catalog")

type Kind string

const (
	KindMain      Kind = "main"
	KindInsulator Kind = "insulator"
)

type Entry struct {
	Name         string  `json:"name" yaml:"name"`
	Conductivity float64 `json:"conductivity" yaml:"conductivity"`
	Kind         Kind    `json:"kind" yaml:"kind"`
	Thickness    float64 `json:"thickness,omitempty" yaml:"thickness,omitempty"` // typical thickness of a main layer, m
}

type Catalog struct {
	Materials []Entry        `json:"materials" yaml:"materials"`
	Cities    []climate.City `json:"cities" yaml:"cities"`
}

func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file; an empty path yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, e := range c.Materials {
		if e.Kind != KindMain && e.Kind != KindInsulator {
			return nil, fmt.Errorf("material %d (%s): unknown kind %q", i, e.Name, e.Kind)
		}
		var err error
		if e.Kind == KindMain {
			_, err = wall.NewMainMaterial(e.Name, e.Conductivity, e.Thickness)
		} else {
			_, err = wall.NewMaterial(e.Name, e.Conductivity)
		}
		if err != nil {
			return nil, fmt.Errorf("material %d: %w", i, err)
		}
	}
	return &c, nil
}

func (c *Catalog) Material(name string) (Entry, error) {
	for _, e := range c.Materials {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("material %q: %w", name, ErrNotFound)
}

func (c *Catalog) Insulators() []Entry {
	var out []Entry
	for _, e := range c.Materials {
		if e.Kind == KindInsulator {
			out = append(out, e)
		}
	}
	return out
}

func (c *Catalog) City(name string) (climate.City, error) {
	for _, city := range c.Cities {
		if strings.EqualFold(city.Name, name) {
			return city, nil
		}
	}
	return climate.City{}, fmt.Errorf("city %q: %w", name, ErrNotFound)
}

// Insulator builds a validated wall.Material from a catalog entry.
func (e Entry) Insulator() (wall.Material, error) {
	return wall.NewMaterial(e.Name, e.Conductivity)
}
