package steroids

import (
	"github.com/mmays/steroids/gm"
	"github.com/mmays/steroids/sat"
)

const (
	shipMaxSpeed   = 1.5
	shipShootDelay = 0.4
	shipLinSpeed   = 1.0
	shipRotSpeed   = 1.8
	shipScale      = 0.5
)

// Input is the player intent for one tick. The game binary translates
// keyboard state into this, the game logic itself never touches a keyboard.
type Input struct {
	Thrust bool
	Left   bool
	Right  bool
	Shoot  bool
}

// Ship is the player's entity. Movement is zero-gravity drift: thrust adds
// to a momentum vector which keeps carrying the ship even when it faces a
// different direction.
type Ship struct {
	*Entity

	Bullets []*Bullet

	movement  gm.Vec
	lastShoot float64
}

func NewShip(pos gm.Vec, rot float64) *Ship {
	shape, err := sat.NewShape(20, 0, -30, 20, -30, -20)
	if err != nil {
		panic(err)
	}

	shape.Pos = pos
	shape.Rot = rot
	shape.Scale = shipScale

	ship := &Ship{
		Entity:    NewEntity(shape, directionOf(rot), shipLinSpeed, shipRotSpeed),
		lastShoot: shipShootDelay,
	}

	return ship
}

// Update applies the player input, moves the ship by its momentum and
// advances all live bullets. Expired bullets are dropped.
func (s *Ship) Update(in Input, dt float64, bounds gm.Rect) {
	s.handleInput(in, dt)
	s.Shape.Pos = s.Shape.Pos.Add(s.movement)
	s.wrapAcross(bounds)

	alive := s.Bullets[:0]
	for _, bullet := range s.Bullets {
		bullet.Update(dt, bounds)
		if !bullet.Expired() {
			alive = append(alive, bullet)
		}
	}
	s.Bullets = alive
}

func (s *Ship) handleInput(in Input, dt float64) {
	if in.Thrust {
		s.movement = s.movement.Add(s.direction.Mul(s.LinSpeed * dt))
	}

	// cap the momentum at the maximum speed
	speed := Clamp(s.movement.Length(), -shipMaxSpeed, shipMaxSpeed)
	s.movement = s.movement.Normalized().Mul(speed)

	switch {
	case in.Left:
		s.SetRot(s.Shape.Rot + s.RotSpeed)
	case in.Right:
		s.SetRot(s.Shape.Rot - s.RotSpeed)
	}

	if in.Shoot && s.lastShoot >= shipShootDelay {
		muzzle := s.Shape.Pos.Add(s.direction.Mul(3))
		s.Bullets = append(s.Bullets, NewBullet(muzzle, s.Shape.Rot, s.direction))
		s.lastShoot = 0
	} else {
		s.lastShoot += dt
	}
}

// SetRot rotates the ship and re-derives its facing direction from the new
// angle. The ship is the only entity whose direction is coupled to its
// rotation.
func (s *Ship) SetRot(rot float64) {
	s.Shape.Rot = rot
	s.direction = directionOf(rot)
}

func directionOf(rotDegrees float64) gm.Vec {
	angle := gm.DegToRad(rotDegrees)
	return gm.Vec{X: angle.Cos(), Y: angle.Sin()}
}
