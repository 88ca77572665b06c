package steroids

import "github.com/mmays/steroids/gm"

const (
	playerLives          = 3
	playerRespawnDelay   = 3.0
	playerProtectionTime = 2.0
)

// Player wraps the Ship and tracks lives, score and the respawn cycle.
// After a respawn the player is briefly invulnerable in case an asteroid
// sits in the middle of the screen.
type Player struct {
	Ship *Ship

	Lives    int
	Score    int
	GameOver bool

	dead       bool
	vulnerable bool

	respawnIn    float64
	protectedFor float64
	spawnAt      gm.Vec
}

// NewPlayer creates the player with a ship at the given position, facing
// upwards.
func NewPlayer(spawnAt gm.Vec) *Player {
	return &Player{
		Ship:       NewShip(spawnAt, 90),
		Lives:      playerLives,
		vulnerable: true,
		spawnAt:    spawnAt,
	}
}

// Dead reports whether the player is currently waiting for a respawn.
func (p *Player) Dead() bool {
	return p.dead
}

// Vulnerable reports whether the player's ship can be destroyed right now.
func (p *Player) Vulnerable() bool {
	return p.vulnerable && !p.dead
}

// Update steps the ship when the player is alive, otherwise it counts down
// the respawn and protection timers.
func (p *Player) Update(in Input, dt float64, bounds gm.Rect) {
	if p.GameOver {
		return
	}

	if p.dead {
		p.respawnIn -= dt
		if p.respawnIn <= 0 {
			p.respawn()
		}

		return
	}

	if !p.vulnerable {
		p.protectedFor -= dt
		if p.protectedFor <= 0 {
			p.vulnerable = true
		}
	}

	p.Ship.Update(in, dt, bounds)
}

// Kill destroys the ship, costs a life and schedules the respawn. With no
// lives left the game is over.
func (p *Player) Kill() {
	if p.dead || p.GameOver {
		return
	}

	p.dead = true
	p.Lives--

	if p.Lives == 0 {
		p.GameOver = true
		return
	}

	p.respawnIn = playerRespawnDelay
}

func (p *Player) respawn() {
	p.Ship = NewShip(p.spawnAt, 90)
	p.dead = false

	p.vulnerable = false
	p.protectedFor = playerProtectionTime
}
