package steroids

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmays/steroids/gm"
)

func TestAnimation_PlayAndExpire(t *testing.T) {
	effects := NewEffects(testRng(), testBounds())

	effects.Play(AnimationPlayerDead, gm.Vec{X: 200, Y: 200})
	require.Len(t, effects.Active(), 1)

	burst := effects.Active()[0]
	require.Len(t, burst.Particles, 40)

	for _, particle := range burst.Particles {
		require.Equal(t, gm.Vec{X: 200, Y: 200}, particle.Shape.Pos)
		require.InDelta(t, 1.0, particle.Direction().Length(), 1e-9)
		require.GreaterOrEqual(t, particle.LinSpeed, 0.5)
		require.LessOrEqual(t, particle.LinSpeed, 1.5)
	}

	// one tick in, the fragments have scattered
	effects.Update(1.0 / 60)
	moved := 0
	for _, particle := range burst.Particles {
		if particle.Shape.Pos != (gm.Vec{X: 200, Y: 200}) {
			moved++
		}
	}
	require.Equal(t, 40, moved)

	// after the lifespan the animation is gone
	for range 200 {
		effects.Update(1.0 / 60)
	}

	require.Empty(t, effects.Active())
	require.False(t, burst.Active())
}

func TestAnimation_RegeneratesParticles(t *testing.T) {
	effects := NewEffects(testRng(), testBounds())

	effects.Play(AnimationPlayerDead, gm.VecZero)
	burst := effects.Active()[0]
	first := burst.Particles

	for range 200 {
		effects.Update(1.0 / 60)
	}

	// a random animation rolls a fresh particle set for its next run
	require.NotSame(t, first[0], burst.Particles[0])
	require.Len(t, burst.Particles, 40)
}

func TestEffects_PlayIgnoresUnknownAndRunning(t *testing.T) {
	effects := NewEffects(testRng(), testBounds())

	effects.Play("warp-drive", gm.VecZero)
	require.Empty(t, effects.Active())

	effects.Play(AnimationPlayerDead, gm.VecZero)
	effects.Play(AnimationPlayerDead, gm.VecZero)
	require.Len(t, effects.Active(), 1)
}

func TestWorld_ShipDeathPlaysExplosion(t *testing.T) {
	world := testWorld(t)
	catalog := testCatalog(t)
	rng := testRng()

	deathPos := world.Player.Ship.Shape.Pos
	asteroid := catalog.NewAsteroid(rng, SizeHuge, 0, gm.Vec{X: 1, Y: 0}, 0, 0, deathPos)
	world.Spawner.Asteroids = append(world.Spawner.Asteroids, asteroid)

	world.Update(Input{}, 1.0/60)

	require.True(t, world.Player.Dead())
	require.Len(t, world.Effects.Active(), 1)

	// the burst plays out during the respawn wait and is gone afterwards
	for range 200 {
		world.Update(Input{}, 1.0/60)
	}

	require.Empty(t, world.Effects.Active())
}
