package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileProfile is the YAML shape of a user-defined bus profile.
type fileProfile struct {
	ID           string        `yaml:"id"`
	Label        string        `yaml:"label"`
	AC           bool          `yaml:"ac"`
	NominalVolts float64       `yaml:"nominal_volts"`
	Steady       fileRange     `yaml:"steady_volts"`
	Frequency    *fileRange    `yaml:"frequency_hz"`
	RippleMaxPct float64       `yaml:"ripple_max_pct"`
	Undervoltage fileTransient `yaml:"undervoltage"`
	Overvoltage  fileTransient `yaml:"overvoltage"`
}

type fileRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type fileTransient struct {
	MaxPct        float64 `yaml:"max_pct"`
	MaxDurationMS float64 `yaml:"max_duration_ms"`
}

type profileFile struct {
	Profiles []fileProfile `yaml:"profiles"`
}

// LoadFile merges user-defined profiles from a YAML file into the registry.
// Each profile is validated before registration; a built-in id cannot be
// redefined. On error the registry is left unchanged.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading profile file: %w", err)
	}

	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parsing profile file: %w", err)
	}
	if len(pf.Profiles) == 0 {
		return fmt.Errorf("profile file %s defines no profiles", path)
	}

	loaded := make([]*Profile, 0, len(pf.Profiles))
	for i, fp := range pf.Profiles {
		p, err := fp.toProfile()
		if err != nil {
			return fmt.Errorf("profile[%d]: %w", i, err)
		}
		if r.builtin[p.ID] {
			return fmt.Errorf("profile[%d]: %q is built in and cannot be redefined", i, p.ID)
		}
		loaded = append(loaded, p)
	}
	for _, p := range loaded {
		r.add(p, false)
	}
	return nil
}

func (fp fileProfile) toProfile() (*Profile, error) {
	if fp.ID == "" {
		return nil, fmt.Errorf("id is required")
	}
	if fp.NominalVolts <= 0 {
		return nil, fmt.Errorf("%s: nominal_volts must be > 0, got %g", fp.ID, fp.NominalVolts)
	}
	if err := validRange(fp.Steady, "steady_volts"); err != nil {
		return nil, fmt.Errorf("%s: %w", fp.ID, err)
	}
	if fp.AC && fp.Frequency == nil {
		return nil, fmt.Errorf("%s: AC profiles must define frequency_hz", fp.ID)
	}
	if fp.Frequency != nil {
		if err := validRange(*fp.Frequency, "frequency_hz"); err != nil {
			return nil, fmt.Errorf("%s: %w", fp.ID, err)
		}
	}
	if fp.RippleMaxPct <= 0 {
		return nil, fmt.Errorf("%s: ripple_max_pct must be > 0, got %g", fp.ID, fp.RippleMaxPct)
	}
	if err := validTransient(fp.Undervoltage, "undervoltage"); err != nil {
		return nil, fmt.Errorf("%s: %w", fp.ID, err)
	}
	if err := validTransient(fp.Overvoltage, "overvoltage"); err != nil {
		return nil, fmt.Errorf("%s: %w", fp.ID, err)
	}

	label := fp.Label
	if label == "" {
		label = fp.ID
	}
	p := &Profile{
		ID:           fp.ID,
		Label:        label,
		AC:           fp.AC,
		NominalVolts: fp.NominalVolts,
		Steady:       Range{Min: fp.Steady.Min, Max: fp.Steady.Max},
		RippleMaxPct: fp.RippleMaxPct,
		Undervoltage: Transient{MaxPct: fp.Undervoltage.MaxPct, MaxDurationMS: fp.Undervoltage.MaxDurationMS},
		Overvoltage:  Transient{MaxPct: fp.Overvoltage.MaxPct, MaxDurationMS: fp.Overvoltage.MaxDurationMS},
	}
	if fp.Frequency != nil {
		p.Frequency = &Range{Min: fp.Frequency.Min, Max: fp.Frequency.Max}
	}
	return p, nil
}

func validRange(r fileRange, field string) error {
	if r.Min <= 0 || r.Max <= 0 {
		return fmt.Errorf("%s: min and max must be > 0, got %g–%g", field, r.Min, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%s: min %g exceeds max %g", field, r.Min, r.Max)
	}
	return nil
}

func validTransient(t fileTransient, field string) error {
	if t.MaxPct <= 0 {
		return fmt.Errorf("%s: max_pct must be > 0, got %g", field, t.MaxPct)
	}
	if t.MaxDurationMS <= 0 {
		return fmt.Errorf("%s: max_duration_ms must be > 0, got %g", field, t.MaxDurationMS)
	}
	return nil
}
