package component

type Laser struct {
	Velocity float32
	Width    float32
	Height   float32
}
