package component

// Shared state names used in system access declarations. Positions are split
// per owner so each movement system holds exclusive write access to its own.
const (
	AccessInput            = "input"
	AccessShip             = "ship"
	AccessShipPosition     = "ship.position"
	AccessAsteroid         = "asteroid"
	AccessAsteroidPosition = "asteroid.position"
	AccessLaser            = "laser"
	AccessLaserPosition    = "laser.position"
	AccessLife             = "life"
	AccessPlayState        = "play_state"
	AccessCommands         = "commands"
	AccessEvents           = "events"
	AccessEntities         = "entities"
)

// Entity kinds carried by command buffer changes and lifecycle events.
const (
	KindShip     = "ship"
	KindAsteroid = "asteroid"
	KindLaser    = "laser"
	KindLife     = "life"
)
