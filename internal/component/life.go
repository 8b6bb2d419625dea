package component

// Life ties a UI life icon to its 0-based rank. The icon is deleted once the
// remaining lives drop to its rank or below.
type Life struct {
	LifeNumber uint8
}
