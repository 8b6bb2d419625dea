package system

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	ErrDuplicateSystem    = errors.New("duplicate system name")
	ErrUnknownDependency  = errors.New("unknown dependency")
	ErrBackwardDependency = errors.New("dependency runs in a later phase")
	ErrDependencyCycle    = errors.New("dependency cycle")
	ErrUnorderedConflict  = errors.New("conflicting systems are not ordered")
)

type entry struct {
	sys   System
	after []string
	seq   int
}

// Runner executes systems once per tick: by phase, and inside a phase in
// dependency order. Build validates the graph; Tick runs it.
type Runner struct {
	entries []*entry
	order   []System
	built   bool
}

func NewRunner() *Runner {
	return &Runner{
		entries: make([]*entry, 0, 16),
	}
}

// Register adds s, to run after the named systems.
func (r *Runner) Register(s System, after ...string) {
	r.entries = append(r.entries, &entry{sys: s, after: after, seq: len(r.entries)})
	r.built = false
}

// Build computes the execution order. Within a phase, systems with no
// ordering constraint between them keep their registration order.
func (r *Runner) Build() error {
	byName := make(map[string]*entry, len(r.entries))
	for _, e := range r.entries {
		name := e.sys.Name()
		if _, dup := byName[name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateSystem, name)
		}
		byName[name] = e
	}

	phases := make(map[Phase][]*entry)
	for _, e := range r.entries {
		for _, dep := range e.after {
			d, ok := byName[dep]
			if !ok {
				return fmt.Errorf("%w: %s after %s", ErrUnknownDependency, e.sys.Name(), dep)
			}
			if d.sys.Phase() > e.sys.Phase() {
				return fmt.Errorf("%w: %s (%s) after %s (%s)", ErrBackwardDependency,
					e.sys.Name(), e.sys.Phase(), dep, d.sys.Phase())
			}
		}
		phases[e.sys.Phase()] = append(phases[e.sys.Phase()], e)
	}

	keys := make([]Phase, 0, len(phases))
	for p := range phases {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	order := make([]System, 0, len(r.entries))
	for _, p := range keys {
		sorted, err := sortPhase(phases[p], byName)
		if err != nil {
			return err
		}
		if err := checkConflicts(sorted, byName); err != nil {
			return err
		}
		for _, e := range sorted {
			order = append(order, e.sys)
		}
	}
	r.order = order
	r.built = true
	return nil
}

// sortPhase is Kahn's algorithm restricted to one phase; the ready set is
// drained in registration order.
func sortPhase(group []*entry, byName map[string]*entry) ([]*entry, error) {
	in := make(map[*entry]bool, len(group))
	for _, e := range group {
		in[e] = true
	}
	indegree := make(map[*entry]int, len(group))
	next := make(map[*entry][]*entry, len(group))
	for _, e := range group {
		for _, dep := range e.after {
			d := byName[dep]
			if !in[d] {
				continue // earlier phase, already satisfied
			}
			indegree[e]++
			next[d] = append(next[d], e)
		}
	}

	ready := make([]*entry, 0, len(group))
	for _, e := range group {
		if indegree[e] == 0 {
			ready = append(ready, e)
		}
	}
	out := make([]*entry, 0, len(group))
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return ready[i].seq < ready[j].seq })
		e := ready[0]
		ready = ready[1:]
		out = append(out, e)
		for _, n := range next[e] {
			indegree[n]--
			if indegree[n] == 0 {
				ready = append(ready, n)
			}
		}
	}
	if len(out) != len(group) {
		var stuck []string
		for _, e := range group {
			if indegree[e] > 0 {
				stuck = append(stuck, e.sys.Name())
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrDependencyCycle, stuck)
	}
	return out, nil
}

// checkConflicts requires an explicit dependency path between every pair of
// systems in the phase whose accesses conflict.
func checkConflicts(sorted []*entry, byName map[string]*entry) error {
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			a, b := sorted[i], sorted[j]
			if !a.sys.Access().Conflicts(b.sys.Access()) {
				continue
			}
			if !dependsOn(b, a, byName, make(map[*entry]bool)) {
				return fmt.Errorf("%w: %s and %s", ErrUnorderedConflict, a.sys.Name(), b.sys.Name())
			}
		}
	}
	return nil
}

func dependsOn(e, target *entry, byName map[string]*entry, seen map[*entry]bool) bool {
	if seen[e] {
		return false
	}
	seen[e] = true
	for _, dep := range e.after {
		d := byName[dep]
		if d == target || dependsOn(d, target, byName, seen) {
			return true
		}
	}
	return false
}

// Order returns system names in execution order.
func (r *Runner) Order() []string {
	r.ensureBuilt()
	names := make([]string, len(r.order))
	for i, s := range r.order {
		names[i] = s.Name()
	}
	return names
}

func (r *Runner) Tick(dt time.Duration) {
	r.ensureBuilt()
	for _, s := range r.order {
		s.Update(dt)
	}
}

func (r *Runner) ensureBuilt() {
	if r.built {
		return
	}
	if err := r.Build(); err != nil {
		panic(fmt.Sprintf("system runner: %v", err))
	}
}
