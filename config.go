package steroids

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed assets/shapes.yaml assets/rules.yaml
var assets embed.FS

// ShapeDef is one asteroid hull from shapes.yaml: a convex polygon as
// flattened x, y pairs plus the default scale of a medium asteroid.
type ShapeDef struct {
	Verts []float64 `yaml:"verts"`
	Scale float64   `yaml:"scale"`
}

// Catalog holds the asteroid hulls the game can spawn.
type Catalog struct {
	shapes []ShapeDef
}

// LoadCatalog parses the embedded shape definitions.
func LoadCatalog() (*Catalog, error) {
	buf, err := assets.ReadFile("assets/shapes.yaml")
	if err != nil {
		return nil, fmt.Errorf("read shape definitions: %w", err)
	}

	var parsed struct {
		Shapes []ShapeDef `yaml:"shapes"`
	}

	if err := yaml.Unmarshal(buf, &parsed); err != nil {
		return nil, fmt.Errorf("parse shape definitions: %w", err)
	}

	if len(parsed.Shapes) == 0 {
		return nil, fmt.Errorf("shape definitions are empty")
	}

	for i, shape := range parsed.Shapes {
		if len(shape.Verts)%2 != 0 || len(shape.Verts) < 6 {
			return nil, fmt.Errorf("shape %d: need an even number of at least 6 coordinates, got %d", i, len(shape.Verts))
		}

		if shape.Scale <= 0 {
			return nil, fmt.Errorf("shape %d: scale must be positive, got %v", i, shape.Scale)
		}
	}

	return &Catalog{shapes: parsed.Shapes}, nil
}

// Len returns the number of hulls in the catalog.
func (c *Catalog) Len() int {
	return len(c.shapes)
}

// SizeWeights holds the relative spawn likelihood per asteroid size.
type SizeWeights struct {
	Small  float64 `yaml:"small"`
	Medium float64 `yaml:"medium"`
	Large  float64 `yaml:"large"`
	Huge   float64 `yaml:"huge"`
}

// Rules define how asteroids are generated: how likely each size is, how
// many generated asteroids may be in play at once and how long the pause
// between two spawns may be.
type Rules struct {
	Weights  SizeWeights `yaml:"weights"`
	MaxTotal int         `yaml:"max_total"`
	MinTime  float64     `yaml:"min_time"`
	MaxTime  float64     `yaml:"max_time"`
}

// LoadRules parses the embedded spawn rules and returns the rules for the
// given difficulty (easy, normal or hard).
func LoadRules(difficulty string) (Rules, error) {
	buf, err := assets.ReadFile("assets/rules.yaml")
	if err != nil {
		return Rules{}, fmt.Errorf("read spawn rules: %w", err)
	}

	var parsed struct {
		Difficulties map[string]Rules `yaml:"difficulties"`
	}

	if err := yaml.Unmarshal(buf, &parsed); err != nil {
		return Rules{}, fmt.Errorf("parse spawn rules: %w", err)
	}

	rules, ok := parsed.Difficulties[difficulty]
	if !ok {
		return Rules{}, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	return rules, nil
}
