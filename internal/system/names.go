package system

// System names, also used as dependency keys.
const (
	NameInput          = "input"
	NameEventDispatch  = "event_dispatch"
	NameShip           = "ship"
	NameShipCollision  = "ship_collision"
	NameAsteroid       = "asteroid"
	NameLaser          = "laser"
	NameLaserCollision = "laser_collision"
	NameLives          = "lives"
	NameCleanup        = "cleanup"
)
