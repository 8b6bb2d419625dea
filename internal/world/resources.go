package world

import "github.com/starshot/shooter/internal/component"

// PlayState is the game-wide life counter. Collision systems decrement it;
// everything else only reads it. It never increases.
type PlayState struct {
	lives   uint8
	initial uint8
}

func NewPlayState(lives uint8) *PlayState {
	return &PlayState{lives: lives, initial: lives}
}

func (p *PlayState) Lives() uint8   { return p.lives }
func (p *PlayState) Initial() uint8 { return p.initial }
func (p *PlayState) GameOver() bool { return p.lives == 0 }

// LoseLife decrements the counter, floored at zero. It reports whether a
// life was actually taken.
func (p *PlayState) LoseLife() bool {
	if p.lives == 0 {
		return false
	}
	p.lives--
	return true
}

// LaserTemplate is stamped onto every fired laser. Set once at setup.
type LaserTemplate struct {
	Laser  component.Laser
	Sprite string
}

// Screen is the visible arena in world units. The origin is bottom-left.
type Screen struct {
	Width  float32
	Height float32
}

// Stats are run counters fed from lifecycle events.
type Stats struct {
	LasersFired     int
	AsteroidsShot   int
	AsteroidsRammed int
	LivesLost       int
	DeletesRejected int
}
