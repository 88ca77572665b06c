package steroids

import (
	"github.com/mmays/steroids/gm"
	"github.com/mmays/steroids/sat"
)

const (
	bulletLifespan = 3.0
	bulletLinSpeed = 3.0
	bulletScale    = 0.25
)

// Bullet is a short-lived projectile fired by the ship.
type Bullet struct {
	*Entity

	age float64
}

func NewBullet(pos gm.Vec, rot float64, direction gm.Vec) *Bullet {
	shape, err := sat.NewShape(10, 10, 10, -10, -10, -10, -10, 10)
	if err != nil {
		panic(err)
	}

	shape.Pos = pos
	shape.Rot = rot
	shape.Scale = bulletScale

	return &Bullet{
		Entity: NewEntity(shape, direction, bulletLinSpeed, 0),
	}
}

func (b *Bullet) Update(dt float64, bounds gm.Rect) {
	b.Entity.Update(bounds)
	b.age += dt
}

// Expired reports whether the bullet has outlived its lifespan and should
// be removed.
func (b *Bullet) Expired() bool {
	return b.age >= bulletLifespan
}
