package steroids

import (
	"github.com/mmays/steroids/gm"
	"github.com/mmays/steroids/sat"
)

// Entity is anything that moves through the play field: the ship, the
// asteroids and the bullets. It couples a collision Shape with a movement
// direction and per-tick linear and rotational speeds.
//
// The entity moves along its direction and leaves the pose mutation to the
// Shape's public fields, so collision queries always see the current pose.
type Entity struct {
	Shape *sat.Shape

	// LinSpeed is the distance travelled per update.
	LinSpeed float64
	// RotSpeed is the rotation per update in degrees.
	RotSpeed float64

	direction gm.Vec
}

func NewEntity(shape *sat.Shape, direction gm.Vec, linSpeed, rotSpeed float64) *Entity {
	return &Entity{
		Shape:     shape,
		LinSpeed:  linSpeed,
		RotSpeed:  rotSpeed,
		direction: direction.Normalized(),
	}
}

// Direction returns the entity's movement direction, always unit length.
func (e *Entity) Direction() gm.Vec {
	return e.direction
}

func (e *Entity) SetDirection(direction gm.Vec) {
	e.direction = direction.Normalized()
}

// Update advances the entity one tick: it moves along its direction, spins
// by its rotational speed and wraps around the screen bounds.
func (e *Entity) Update(bounds gm.Rect) {
	e.Shape.Pos = e.Shape.Pos.Add(e.direction.Mul(e.LinSpeed))
	e.Shape.Rot = WrapAngle(e.Shape.Rot + e.RotSpeed)

	e.wrapAcross(bounds)
}

// Collides reports whether the two entities' shapes intersect.
func (e *Entity) Collides(other *Entity) bool {
	return e.Shape.Collides(other.Shape)
}

// wrapPadding is added to an entity's bounding radius before it wraps, so
// the transition to the other side is not so sudden.
const wrapPadding = 20

// wrapAcross moves an entity that has fully left the bounds on one side to
// the opposite side, keeping the overshoot distance so fast entities do not
// get stuck at the border.
func (e *Entity) wrapAcross(bounds gm.Rect) {
	pos := e.Shape.Pos
	reach := e.Shape.EffectiveLength() + wrapPadding

	if pos.X+reach < bounds.Min.X {
		pos.X = bounds.Max.X + (bounds.Min.X - (pos.X + reach))
	} else if pos.X-reach > bounds.Max.X {
		pos.X = bounds.Min.X - ((pos.X - reach) - bounds.Max.X)
	}

	if pos.Y+reach < bounds.Min.Y {
		pos.Y = bounds.Max.Y + (bounds.Min.Y - (pos.Y + reach))
	} else if pos.Y-reach > bounds.Max.Y {
		pos.Y = bounds.Min.Y - ((pos.Y - reach) - bounds.Max.Y)
	}

	e.Shape.Pos = pos
}
