package system

import "github.com/starshot/shooter/internal/component"

// box is an axis-aligned bounding box.
type box struct {
	left, right float32
	bottom, top float32
}

func boxAt(pos *component.Position, width, height float32) box {
	return box{
		left:   pos.X,
		right:  pos.X + width,
		bottom: pos.Y,
		top:    pos.Y + height,
	}
}

// collides is the hit test shared by both collision systems. It checks that
// one horizontal edge of the mover lies inside the asteroid's span and that
// the mover's top has reached the asteroid's bottom. It is not a full
// interval overlap: a mover wider than the asteroid on both sides, or one
// entirely above it, can still register or miss. Existing tuning relies on
// this exact behavior.
func collides(mover, asteroid box) bool {
	return ((mover.left <= asteroid.right && mover.left >= asteroid.left) ||
		(mover.right <= asteroid.left && mover.right >= asteroid.right)) &&
		mover.top >= asteroid.bottom
}
