package input

// Signal names consumed by the simulation.
const (
	AxisShip   = "ship"
	ActionFire = "fire"
)

// Source is the abstract input the ship system reads each tick. A missing
// signal reports ok=false and means "no input", never an error.
type Source interface {
	Axis(name string) (value float32, ok bool)
	Action(name string) (pressed bool, ok bool)
}

// State is a mutable Source filled by the driver before each tick.
type State struct {
	axes    map[string]float32
	actions map[string]bool
}

func NewState() *State {
	return &State{
		axes:    make(map[string]float32, 2),
		actions: make(map[string]bool, 2),
	}
}

// SetAxis stores v clamped to [-1, 1].
func (s *State) SetAxis(name string, v float32) {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	s.axes[name] = v
}

func (s *State) SetAction(name string, pressed bool) {
	s.actions[name] = pressed
}

// Clear drops every signal.
func (s *State) Clear() {
	clear(s.axes)
	clear(s.actions)
}

func (s *State) Axis(name string) (float32, bool) {
	v, ok := s.axes[name]
	return v, ok
}

func (s *State) Action(name string) (bool, bool) {
	v, ok := s.actions[name]
	return v, ok
}

// None is a Source with no signals.
type None struct{}

func (None) Axis(string) (float32, bool) { return 0, false }
func (None) Action(string) (bool, bool)  { return false, false }
