package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSystem struct {
	name   string
	phase  Phase
	access Access
	log    *[]string
}

func (s *stubSystem) Name() string   { return s.name }
func (s *stubSystem) Phase() Phase   { return s.phase }
func (s *stubSystem) Access() Access { return s.access }

func (s *stubSystem) Update(time.Duration) {
	*s.log = append(*s.log, s.name)
}

func stub(log *[]string, name string, phase Phase, reads, writes []string) *stubSystem {
	return &stubSystem{name: name, phase: phase, access: Access{Reads: reads, Writes: writes}, log: log}
}

func TestRunnerOrdersByPhaseThenDependencies(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(stub(&log, "cleanup", PhaseCleanup, nil, []string{"entities"}))
	r.Register(stub(&log, "lives", PhaseUpdate, []string{"play_state"}, nil), "collide")
	r.Register(stub(&log, "collide", PhaseUpdate, []string{"pos"}, []string{"play_state"}), "move")
	r.Register(stub(&log, "move", PhaseUpdate, nil, []string{"pos"}))
	r.Register(stub(&log, "dispatch", PhasePreUpdate, nil, []string{"events"}))
	require.NoError(t, r.Build())

	want := []string{"dispatch", "move", "collide", "lives", "cleanup"}
	assert.Equal(t, want, r.Order())

	r.Tick(16 * time.Millisecond)
	assert.Equal(t, want, log)
}

func TestRunnerKeepsRegistrationOrderForIndependentSystems(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(stub(&log, "b", PhaseUpdate, []string{"x"}, nil))
	r.Register(stub(&log, "a", PhaseUpdate, []string{"x"}, nil))
	require.NoError(t, r.Build())
	assert.Equal(t, []string{"b", "a"}, r.Order())
}

func TestRunnerRejectsInvalidGraphs(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *Runner, log *[]string)
		want  error
	}{
		{
			name: "unknown dependency",
			setup: func(r *Runner, log *[]string) {
				r.Register(stub(log, "a", PhaseUpdate, nil, nil), "ghost")
			},
			want: ErrUnknownDependency,
		},
		{
			name: "duplicate name",
			setup: func(r *Runner, log *[]string) {
				r.Register(stub(log, "a", PhaseUpdate, nil, nil))
				r.Register(stub(log, "a", PhaseUpdate, nil, nil))
			},
			want: ErrDuplicateSystem,
		},
		{
			name: "cycle",
			setup: func(r *Runner, log *[]string) {
				r.Register(stub(log, "a", PhaseUpdate, nil, nil), "b")
				r.Register(stub(log, "b", PhaseUpdate, nil, nil), "a")
			},
			want: ErrDependencyCycle,
		},
		{
			name: "backward dependency",
			setup: func(r *Runner, log *[]string) {
				r.Register(stub(log, "late", PhaseCleanup, nil, nil))
				r.Register(stub(log, "early", PhaseUpdate, nil, nil), "late")
			},
			want: ErrBackwardDependency,
		},
		{
			name: "unordered writer and reader",
			setup: func(r *Runner, log *[]string) {
				r.Register(stub(log, "writer", PhaseUpdate, nil, []string{"play_state"}))
				r.Register(stub(log, "reader", PhaseUpdate, []string{"play_state"}, nil))
			},
			want: ErrUnorderedConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log []string
			r := NewRunner()
			tt.setup(r, &log)
			assert.ErrorIs(t, r.Build(), tt.want)
		})
	}
}

func TestRunnerTransitiveOrderingSatisfiesConflicts(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(stub(&log, "a", PhaseUpdate, nil, []string{"s"}))
	r.Register(stub(&log, "b", PhaseUpdate, nil, nil), "a")
	r.Register(stub(&log, "c", PhaseUpdate, []string{"s"}, nil), "b")
	assert.NoError(t, r.Build())
}

func TestAccessConflicts(t *testing.T) {
	w := Access{Writes: []string{"a"}}
	r := Access{Reads: []string{"a"}}
	assert.True(t, w.Conflicts(r))
	assert.True(t, r.Conflicts(w))
	assert.False(t, r.Conflicts(r), "readers share")
	assert.False(t, w.Conflicts(Access{Writes: []string{"b"}}))
}
