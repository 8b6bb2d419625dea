package component

// Position is the bottom-left corner of an entity's bounding box.
type Position struct {
	X float32
	Y float32
}
