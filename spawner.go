package steroids

import (
	"math/rand/v2"

	"github.com/mmays/steroids/gm"
)

// spawnMargin is how far outside the screen bounds new asteroids appear.
const spawnMargin = 60

// Spawner generates asteroids off screen according to a set of Rules and
// keeps the live ones updated.
type Spawner struct {
	Asteroids []*Asteroid

	rules   Rules
	catalog *Catalog
	bounds  gm.Rect
	rng     *rand.Rand

	// number of asteroids this spawner generated itself, fragments of
	// destroyed asteroids do not count against the maximum
	spawned     int
	nextGenTime float64
	lastGenTime float64
}

func NewSpawner(catalog *Catalog, rules Rules, bounds gm.Rect, rng *rand.Rand) *Spawner {
	return &Spawner{
		rules:   rules,
		catalog: catalog,
		bounds:  bounds,
		rng:     rng,
	}
}

// Update advances all live asteroids and spawns a new one once the random
// spawn interval has elapsed, as long as the rules' maximum is not reached.
func (s *Spawner) Update(dt float64) {
	for _, asteroid := range s.Asteroids {
		asteroid.Update(s.bounds)
	}

	if s.lastGenTime >= s.nextGenTime && s.spawned < s.rules.MaxTotal {
		s.Asteroids = append(s.Asteroids, s.generate())
		s.spawned++

		s.nextGenTime = s.rules.MinTime + s.rng.Float64()*(s.rules.MaxTime-s.rules.MinTime)
		s.lastGenTime = 0
	}

	s.lastGenTime += dt
}

// Remove replaces a destroyed asteroid with its fragments.
func (s *Spawner) Remove(asteroid *Asteroid) []*Asteroid {
	fragments := asteroid.Destroy(s.rng, s.bounds)

	alive := s.Asteroids[:0]
	for _, a := range s.Asteroids {
		if a != asteroid {
			alive = append(alive, a)
		}
	}

	s.Asteroids = append(alive, fragments...)
	return fragments
}

func (s *Spawner) generate() *Asteroid {
	size := s.randomSize()
	pos := s.offscreenPosition()

	direction := RandDirection(s.rng, pos, s.bounds)
	linSpeed := asteroidMinLinSpeed + s.rng.Float64()*(asteroidMaxLinSpeed-asteroidMinLinSpeed)
	rotSpeed := s.rng.Float64() * asteroidMaxRotSpeed

	return s.catalog.NewAsteroid(s.rng, size, -1, direction, linSpeed, rotSpeed, pos)
}

func (s *Spawner) randomSize() Size {
	weights := []float64{
		s.rules.Weights.Small,
		s.rules.Weights.Medium,
		s.rules.Weights.Large,
		s.rules.Weights.Huge,
	}

	return Size(weightedChoice(s.rng, weights))
}

// offscreenPosition picks a point just outside the screen bounds so a new
// asteroid never pops into view.
func (s *Spawner) offscreenPosition() gm.Vec {
	x := s.bounds.Min.X - spawnMargin + s.rng.Float64()*spawnMargin*0.8
	if s.rng.IntN(2) == 0 {
		x = s.bounds.Max.X + spawnMargin*0.2 + s.rng.Float64()*spawnMargin*0.8
	}

	y := s.bounds.Min.Y - spawnMargin + s.rng.Float64()*spawnMargin*0.8
	if s.rng.IntN(2) == 0 {
		y = s.bounds.Max.Y + spawnMargin*0.2 + s.rng.Float64()*spawnMargin*0.8
	}

	return gm.Vec{X: x, Y: y}
}
