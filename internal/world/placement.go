package world

import "github.com/starshot/shooter/internal/component"

// Rand is the random source used for placement. *rand.Rand satisfies it.
type Rand interface {
	Float32() float32
}

// Spawning holds the tunables that shape asteroid arrivals.
type Spawning struct {
	AsteroidVelocity     float32
	WaitForFirstAsteroid float32
	AsteroidDensity      float32
}

// PlaceAsteroid picks a spawn point strictly above the visible screen. The
// band starts WaitForFirstAsteroid seconds of fall above the top edge and
// is as tall as velocity/density screens, so a denser setting packs the
// pool into a tighter band and asteroids arrive more often.
func PlaceAsteroid(screen Screen, width float32, sp Spawning, rng Rand) component.Position {
	maxWidth := screen.Width - width
	if maxWidth < 0 {
		maxWidth = 0
	}
	minHeight := screen.Height + sp.WaitForFirstAsteroid*sp.AsteroidVelocity
	maxHeight := minHeight + (screen.Height*sp.AsteroidVelocity)/sp.AsteroidDensity
	return component.Position{
		X: uniform(rng, 0, maxWidth),
		Y: uniform(rng, minHeight, maxHeight),
	}
}

func uniform(rng Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
