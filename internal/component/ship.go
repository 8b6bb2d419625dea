package component

// Ship is the player's craft. Exactly one exists for the whole run.
type Ship struct {
	Velocity          float32 // signed horizontal speed
	Width             float32
	Height            float32
	TriggerResetTimer float32 // seconds left before the next shot is allowed
}
