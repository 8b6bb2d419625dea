package data

import (
	"fmt"
	"os"
	"sort"

	"github.com/starshot/shooter/internal/config"
	"gopkg.in/yaml.v3"
)

// TuningProfile is a named difficulty preset. Nil fields keep the
// configured value.
type TuningProfile struct {
	Name                 string   `yaml:"name"`
	ShipThrust           *float32 `yaml:"ship_thrust"`
	AsteroidVelocity     *float32 `yaml:"asteroid_velocity"`
	WaitForFirstAsteroid *float32 `yaml:"wait_for_first_asteroid"`
	AsteroidDensity      *float32 `yaml:"asteroid_density"`
	LaserVelocity        *float32 `yaml:"laser_velocity"`
	TriggerResetTimeout  *float32 `yaml:"trigger_reset_timeout"`
}

type tuningListFile struct {
	Profiles []TuningProfile `yaml:"profiles"`
}

// TuningTable holds tuning presets indexed by name.
type TuningTable struct {
	profiles map[string]*TuningProfile
}

// LoadTuningTable loads tuning.yaml.
func LoadTuningTable(path string) (*TuningTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning list: %w", err)
	}
	return ParseTuningTable(raw)
}

func ParseTuningTable(raw []byte) (*TuningTable, error) {
	var f tuningListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse tuning list: %w", err)
	}
	t := &TuningTable{
		profiles: make(map[string]*TuningProfile, len(f.Profiles)),
	}
	for i := range f.Profiles {
		p := &f.Profiles[i]
		if p.Name == "" {
			return nil, fmt.Errorf("tuning profile #%d has no name", i)
		}
		if _, dup := t.profiles[p.Name]; dup {
			return nil, fmt.Errorf("duplicate tuning profile %q", p.Name)
		}
		t.profiles[p.Name] = p
	}
	return t, nil
}

// Get returns the named profile, or nil if none.
func (t *TuningTable) Get(name string) *TuningProfile {
	return t.profiles[name]
}

// Names returns the profile names in sorted order.
func (t *TuningTable) Names() []string {
	names := make([]string, 0, len(t.profiles))
	for n := range t.profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Count returns the total number of profiles loaded.
func (t *TuningTable) Count() int {
	return len(t.profiles)
}

// Apply returns base with the profile's overrides applied and validated.
func (p *TuningProfile) Apply(base config.TuningConfig) (config.TuningConfig, error) {
	out := base
	override(&out.ShipThrust, p.ShipThrust)
	override(&out.AsteroidVelocity, p.AsteroidVelocity)
	override(&out.WaitForFirstAsteroid, p.WaitForFirstAsteroid)
	override(&out.AsteroidDensity, p.AsteroidDensity)
	override(&out.LaserVelocity, p.LaserVelocity)
	override(&out.TriggerResetTimeout, p.TriggerResetTimeout)
	if err := out.Validate(); err != nil {
		return base, fmt.Errorf("tuning profile %q: %w", p.Name, err)
	}
	return out, nil
}

func override(dst *float32, v *float32) {
	if v != nil {
		*dst = *v
	}
}
