package steroids

import (
	"math/rand/v2"

	"github.com/mmays/steroids/gm"
)

// World ties the player and the asteroid spawner together and runs the
// per-tick collision pass.
type World struct {
	Player  *Player
	Spawner *Spawner
	Effects *Effects
	Bounds  gm.Rect
}

// NewWorld creates a game world covering the given bounds, with the player
// spawning in the middle of the screen.
func NewWorld(catalog *Catalog, rules Rules, bounds gm.Rect, rng *rand.Rand) *World {
	return &World{
		Player:  NewPlayer(bounds.Center()),
		Spawner: NewSpawner(catalog, rules, bounds, rng),
		Effects: NewEffects(rng, bounds),
		Bounds:  bounds,
	}
}

// Update advances the world by one tick: player input and movement, asteroid
// spawning and movement, bullet and ship collisions, then the effects.
func (w *World) Update(in Input, dt float64) {
	w.Player.Update(in, dt, w.Bounds)
	w.Spawner.Update(dt)

	w.collideBullets()
	w.collideShip()

	w.Effects.Update(dt)
}

// collideBullets tests every live bullet against every asteroid. A hit
// removes the bullet, breaks the asteroid apart and scores.
func (w *World) collideBullets() {
	ship := w.Player.Ship

	alive := ship.Bullets[:0]
	for _, bullet := range ship.Bullets {
		if hit := w.hitAsteroid(bullet.Entity); hit != nil {
			w.Player.Score += hit.Size.Score()
			w.Spawner.Remove(hit)
			continue
		}

		alive = append(alive, bullet)
	}

	ship.Bullets = alive
}

func (w *World) collideShip() {
	if !w.Player.Vulnerable() {
		return
	}

	if hit := w.hitAsteroid(w.Player.Ship.Entity); hit != nil {
		pos := w.Player.Ship.Shape.Pos
		w.Player.Kill()
		w.Effects.Play(AnimationPlayerDead, pos)
	}
}

func (w *World) hitAsteroid(entity *Entity) *Asteroid {
	for _, asteroid := range w.Spawner.Asteroids {
		if entity.Collides(asteroid.Entity) {
			return asteroid
		}
	}

	return nil
}
