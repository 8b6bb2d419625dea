package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput     Phase = iota // 0: sample input signals
	PhasePreUpdate              // 1: dispatch last tick's events
	PhaseUpdate                 // 2: movement, collision, reconciliation
	PhaseCleanup                // 3: apply the command buffer
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePreUpdate:
		return "pre_update"
	case PhaseUpdate:
		return "update"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// Access declares the shared state a system reads and writes during Update.
// The Runner uses it to prove that every conflicting pair is ordered.
type Access struct {
	Reads  []string
	Writes []string
}

// Conflicts reports whether a and b touch the same state with at least one write.
func (a Access) Conflicts(b Access) bool {
	return overlaps(a.Writes, b.Writes) || overlaps(a.Writes, b.Reads) || overlaps(a.Reads, b.Writes)
}

func overlaps(x, y []string) bool {
	for _, a := range x {
		for _, b := range y {
			if a == b {
				return true
			}
		}
	}
	return false
}

// System is the interface every ECS system implements.
type System interface {
	Name() string
	Phase() Phase
	Access() Access
	Update(dt time.Duration)
}
