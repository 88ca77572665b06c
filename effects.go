package steroids

import (
	"math/rand/v2"

	"github.com/mmays/steroids/gm"
	"github.com/mmays/steroids/sat"
)

// AnimationPlayerDead is the burst of fragments played where the ship died.
const AnimationPlayerDead = "player-dead"

const (
	playerDeadFragments = 40
	playerDeadLifespan  = 2.0
)

// Animation is a short particle effect: a set of Entities that drift apart
// from the position the animation is played at until the lifespan elapses.
type Animation struct {
	Particles []*Entity

	lifespan float64
	age      float64
	active   bool

	// regenerates the particle set after every run, nil for animations
	// with a fixed particle set
	generate func() []*Entity
}

func NewAnimation(particles []*Entity, lifespan float64) *Animation {
	return &Animation{
		Particles: particles,
		lifespan:  lifespan,
	}
}

// NewRandomAnimation builds an animation whose particles are re-randomized
// via generate every time it finishes playing.
func NewRandomAnimation(lifespan float64, generate func() []*Entity) *Animation {
	return &Animation{
		Particles: generate(),
		lifespan:  lifespan,
		generate:  generate,
	}
}

func (a *Animation) Active() bool {
	return a.active
}

// Play starts the animation with all particles gathered at pos.
func (a *Animation) Play(pos gm.Vec) {
	a.active = true

	for _, particle := range a.Particles {
		particle.Shape.Pos = pos
	}
}

// Update advances all particles by one tick. Once the lifespan is over the
// animation deactivates and a random animation rolls a fresh particle set
// for its next run.
func (a *Animation) Update(dt float64, bounds gm.Rect) {
	for _, particle := range a.Particles {
		particle.Update(bounds)
	}

	a.age += dt
	if a.age >= a.lifespan {
		a.age = 0
		a.active = false

		if a.generate != nil {
			a.Particles = a.generate()
		}
	}
}

// Effects holds the game's animations and plays them on demand. Only one
// instance of each animation exists, playing an animation that is already
// running does nothing.
type Effects struct {
	animations map[string]*Animation
	active     []*Animation
	bounds     gm.Rect
}

func NewEffects(rng *rand.Rand, bounds gm.Rect) *Effects {
	return &Effects{
		animations: map[string]*Animation{
			AnimationPlayerDead: playerDeadAnimation(rng, bounds),
		},
		bounds: bounds,
	}
}

// Play starts the named animation at the given position. Unknown names and
// animations that are already playing are ignored.
func (e *Effects) Play(name string, pos gm.Vec) {
	animation, ok := e.animations[name]
	if !ok || animation.Active() {
		return
	}

	animation.Play(pos)
	e.active = append(e.active, animation)
}

// Update advances all playing animations and drops the finished ones.
func (e *Effects) Update(dt float64) {
	alive := e.active[:0]
	for _, animation := range e.active {
		animation.Update(dt, e.bounds)
		if animation.Active() {
			alive = append(alive, animation)
		}
	}

	e.active = alive
}

// Active returns the animations currently playing, for the renderer.
func (e *Effects) Active() []*Animation {
	return e.active
}

// playerDeadAnimation scatters little squares from the point of death.
func playerDeadAnimation(rng *rand.Rand, bounds gm.Rect) *Animation {
	generate := func() []*Entity {
		fragments := make([]*Entity, 0, playerDeadFragments)

		for range playerDeadFragments {
			shape, err := sat.NewShape(-1, 1, 1, 1, 1, -1, -1, -1)
			if err != nil {
				panic(err)
			}

			linSpeed := 0.5 + rng.Float64()

			// directions are rolled relative to the screen center so the
			// fragments spread evenly no matter where the ship died
			direction := RandDirection(rng, bounds.Center(), bounds)

			fragments = append(fragments, NewEntity(shape, direction, linSpeed, 0))
		}

		return fragments
	}

	return NewRandomAnimation(playerDeadLifespan, generate)
}
