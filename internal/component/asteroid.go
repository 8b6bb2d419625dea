package component

// Asteroid is a member of the recycled asteroid pool.
type Asteroid struct {
	Velocity float32 // falling speed
	Width    float32
	Height   float32
	// IsDestroyed marks the asteroid for relocation by the asteroid system.
	IsDestroyed bool
}
