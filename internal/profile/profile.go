// Package profile holds the bus profile registry: the named sets of
// electrical limits that measurements are checked against.
package profile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Get for an unrecognized bus identifier.
var ErrNotFound = errors.New("bus profile not found")

// Range is an inclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range, boundaries included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Transient bounds a transient excursion by depth and duration.
// An event passes only when both are within limits.
type Transient struct {
	MaxPct        float64 // max deviation from nominal, percent
	MaxDurationMS float64 // max event duration, milliseconds
}

// Profile defines the electrical limits for a named power bus.
// Limits are illustrative, not a statement of MIL-STD-704 authority.
type Profile struct {
	ID           string
	Label        string
	AC           bool
	NominalVolts float64
	Steady       Range  // steady-state voltage, volts
	Frequency    *Range // steady-state frequency, Hz; nil for DC buses
	RippleMaxPct float64
	Undervoltage Transient
	Overvoltage  Transient
}

// Registry maps bus identifiers to profiles. It is populated once at
// startup (built-ins, optionally merged with a YAML file) and read-only
// afterwards; Get hands out copies so no caller can mutate registry state.
type Registry struct {
	profiles map[string]*Profile
	order    []string
	builtin  map[string]bool
}

// Builtin returns a registry seeded with the built-in bus profiles.
func Builtin() *Registry {
	r := &Registry{
		profiles: make(map[string]*Profile),
		builtin:  make(map[string]bool),
	}
	for _, p := range []*Profile{dc28(), ac115_400()} {
		r.add(p, true)
	}
	return r
}

func (r *Registry) add(p *Profile, builtin bool) {
	if _, exists := r.profiles[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.profiles[p.ID] = p
	if builtin {
		r.builtin[p.ID] = true
	}
}

// Get returns a copy of the profile registered under id. Lookup is
// exact-match; an unknown id fails with ErrNotFound.
func (r *Registry) Get(id string) (*Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("unknown bus %q (known buses: %s): %w",
			id, strings.Join(r.IDs(), ", "), ErrNotFound)
	}
	cp := *p
	if p.Frequency != nil {
		f := *p.Frequency
		cp.Frequency = &f
	}
	return &cp, nil
}

// IDs returns the registered bus identifiers in registration order,
// built-ins first.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}
