package steroids

import (
	"math/rand/v2"

	"github.com/mmays/steroids/gm"
	"github.com/mmays/steroids/sat"
)

// Size classifies an asteroid. Destroying an asteroid breaks it into
// smaller ones, a small asteroid just disappears.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
	SizeHuge
)

const (
	asteroidMaxLinSpeed = 2.5
	asteroidMinLinSpeed = 0.5
	asteroidMaxRotSpeed = 2.5
)

// scaleFactor is applied on top of a hull's default scale. A medium
// asteroid uses the default scale as is.
func (s Size) scaleFactor() float64 {
	switch s {
	case SizeSmall:
		return 0.7
	case SizeLarge:
		return 1.2
	case SizeHuge:
		return 1.5
	default:
		return 1.0
	}
}

// Score is the number of points awarded for shooting an asteroid of this
// size. Smaller asteroids are harder to hit and worth more.
func (s Size) Score() int {
	switch s {
	case SizeSmall:
		return 100
	case SizeMedium:
		return 50
	case SizeLarge:
		return 30
	default:
		return 20
	}
}

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeHuge:
		return "huge"
	default:
		return "unknown"
	}
}

// Asteroid is a drifting rock. It remembers which hull it was built from so
// its fragments reuse the same hull.
type Asteroid struct {
	*Entity

	Size Size

	catalog    *Catalog
	shapeIndex int
}

// NewAsteroid builds an asteroid of the given size from hull shapeIndex.
// Pass a negative shapeIndex to pick a random hull, fragments of a destroyed
// asteroid pass their parent's index instead.
func (c *Catalog) NewAsteroid(rng *rand.Rand, size Size, shapeIndex int, direction gm.Vec, linSpeed, rotSpeed float64, pos gm.Vec) *Asteroid {
	if shapeIndex < 0 {
		shapeIndex = rng.IntN(len(c.shapes))
	}

	def := c.shapes[shapeIndex]

	shape, err := sat.NewShape(def.Verts...)
	if err != nil {
		// the catalog validates its shapes on load
		panic(err)
	}

	shape.Pos = pos
	shape.Scale = def.Scale * size.scaleFactor()

	return &Asteroid{
		Entity:     NewEntity(shape, direction, linSpeed, rotSpeed),
		Size:       size,
		catalog:    c,
		shapeIndex: shapeIndex,
	}
}

// Destroy breaks the asteroid apart and returns the fragments: nothing for
// a small one, two smalls for a medium, two mediums for a large and three
// mediums for a huge asteroid. Fragments start at the parent's position with
// random speeds and directions.
func (a *Asteroid) Destroy(rng *rand.Rand, bounds gm.Rect) []*Asteroid {
	switch a.Size {
	case SizeMedium:
		return []*Asteroid{
			a.fragment(rng, SizeSmall, bounds),
			a.fragment(rng, SizeSmall, bounds),
		}
	case SizeLarge:
		return []*Asteroid{
			a.fragment(rng, SizeMedium, bounds),
			a.fragment(rng, SizeMedium, bounds),
		}
	case SizeHuge:
		return []*Asteroid{
			a.fragment(rng, SizeMedium, bounds),
			a.fragment(rng, SizeMedium, bounds),
			a.fragment(rng, SizeMedium, bounds),
		}
	default:
		return nil
	}
}

func (a *Asteroid) fragment(rng *rand.Rand, size Size, bounds gm.Rect) *Asteroid {
	linSpeed := asteroidMinLinSpeed + rng.Float64()*(asteroidMaxLinSpeed-asteroidMinLinSpeed)
	rotSpeed := rng.Float64() * asteroidMaxRotSpeed
	direction := RandDirection(rng, a.Shape.Pos, bounds)

	return a.catalog.NewAsteroid(rng, size, a.shapeIndex, direction, linSpeed, rotSpeed, a.Shape.Pos)
}
