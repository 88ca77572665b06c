package steroids

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmays/steroids/gm"
)

func TestShip_ThrustAndDrift(t *testing.T) {
	ship := NewShip(gm.Vec{X: 400, Y: 300}, 0)
	bounds := testBounds()

	ship.Update(Input{Thrust: true}, 1.0, bounds)
	require.Greater(t, ship.Shape.Pos.X, 400.0)

	// no thrust: the momentum keeps carrying the ship
	before := ship.Shape.Pos
	ship.Update(Input{}, 1.0, bounds)
	require.Greater(t, ship.Shape.Pos.X, before.X)
}

func TestShip_MaxSpeed(t *testing.T) {
	ship := NewShip(gm.Vec{X: 400, Y: 300}, 0)
	bounds := testBounds()

	for range 100 {
		ship.Update(Input{Thrust: true}, 1.0, bounds)
	}

	before := ship.Shape.Pos
	ship.Update(Input{}, 1.0, bounds)

	// momentum is clamped to the maximum speed
	require.InDelta(t, shipMaxSpeed, ship.Shape.Pos.Sub(before).Length(), 1e-9)
}

func TestShip_Rotate(t *testing.T) {
	ship := NewShip(gm.Vec{X: 400, Y: 300}, 0)
	bounds := testBounds()

	ship.Update(Input{Left: true}, 1.0/60, bounds)
	require.Equal(t, shipRotSpeed, ship.Shape.Rot)

	// the facing direction follows the rotation
	angle := gm.DegToRad(ship.Shape.Rot)
	require.InDelta(t, angle.Cos(), ship.Direction().X, 1e-9)
	require.InDelta(t, angle.Sin(), ship.Direction().Y, 1e-9)

	ship.Update(Input{Right: true}, 1.0/60, bounds)
	require.Equal(t, 0.0, ship.Shape.Rot)
}

func TestShip_ShootCooldown(t *testing.T) {
	ship := NewShip(gm.Vec{X: 400, Y: 300}, 0)
	bounds := testBounds()

	ship.Update(Input{Shoot: true}, 1.0/60, bounds)
	require.Len(t, ship.Bullets, 1)

	// holding the trigger does not fire again before the delay elapsed
	ship.Update(Input{Shoot: true}, 1.0/60, bounds)
	require.Len(t, ship.Bullets, 1)

	for range 30 {
		ship.Update(Input{}, 1.0/60, bounds)
	}

	ship.Update(Input{Shoot: true}, 1.0/60, bounds)
	require.Len(t, ship.Bullets, 2)
}

func TestShip_BulletsExpire(t *testing.T) {
	ship := NewShip(gm.Vec{X: 400, Y: 300}, 0)
	bounds := testBounds()

	ship.Update(Input{Shoot: true}, 1.0/60, bounds)
	require.Len(t, ship.Bullets, 1)

	// a bullet lives for three seconds
	for range 200 {
		ship.Update(Input{}, 1.0/60, bounds)
	}

	require.Empty(t, ship.Bullets)
}

func TestBullet_SpawnsAheadOfShip(t *testing.T) {
	ship := NewShip(gm.Vec{X: 400, Y: 300}, 0)
	ship.Update(Input{Shoot: true}, 1.0/60, testBounds())

	require.Len(t, ship.Bullets, 1)
	bullet := ship.Bullets[0]

	// the muzzle sits three units ahead, plus one tick of bullet movement
	require.Greater(t, bullet.Shape.Pos.X, 400.0)
	require.Equal(t, ship.Direction(), bullet.Direction())
}
