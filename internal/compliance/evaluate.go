// Package compliance implements the power-quality rule evaluation:
// a fixed, ordered set of limit checks over one measurement set.
package compliance

import (
	"fmt"

	"github.com/rgordon/buscheck/internal/profile"
	"github.com/rgordon/buscheck/internal/schema"
)

// Check labels, in report order.
const (
	LabelSteadyVoltage   = "Steady-State Voltage"
	LabelSteadyFrequency = "Steady-State Frequency"
	LabelDistortionAC    = "AC Distortion / THD"
	LabelRippleDC        = "DC Ripple Voltage"
	LabelUndervoltage    = "Transient Undervoltage"
	LabelOvervoltage     = "Transient Overvoltage"
)

const notProvided = "not provided"

// Evaluate checks m against p and returns one CheckResult per applicable
// check, in fixed order: steady voltage, steady frequency (AC buses only),
// ripple/distortion, transient undervoltage, transient overvoltage.
//
// All comparisons are inclusive: a value exactly at a limit passes. A
// missing value fails its check with a "not provided" detail; it is never
// skipped, except that the frequency check is absent entirely for a bus
// with no frequency concept (DC).
//
// Evaluate has no side effects and is deterministic: the same (p, m) pair
// always yields the same results.
func Evaluate(p *profile.Profile, m *schema.Measurement) []schema.CheckResult {
	checks := make([]schema.CheckResult, 0, 5)
	checks = append(checks, rangeCheck(LabelSteadyVoltage, m.SteadyVoltage, p.Steady, "V"))
	if p.Frequency != nil {
		checks = append(checks, rangeCheck(LabelSteadyFrequency, m.SteadyFrequency, *p.Frequency, "Hz"))
	}
	checks = append(checks, rippleCheck(p, m.Ripple))
	checks = append(checks, transientCheck(LabelUndervoltage, "dip", m.UVDipPercent, m.UVDipDurationMS, p.Undervoltage))
	checks = append(checks, transientCheck(LabelOvervoltage, "surge", m.OVSurgePercent, m.OVSurgeDurationMS, p.Overvoltage))
	return checks
}

// Overall reports whether every check passed. This is the AND over the
// report: one failed check makes the whole evaluation non-compliant.
func Overall(checks []schema.CheckResult) bool {
	for _, c := range checks {
		if !c.Pass {
			return false
		}
	}
	return true
}

// Verdict derives the overall verdict from the checks.
func Verdict(checks []schema.CheckResult) schema.Verdict {
	if Overall(checks) {
		return schema.VerdictCompliant
	}
	return schema.VerdictNotCompliant
}

// Counts returns the number of passed and failed checks.
func Counts(checks []schema.CheckResult) (pass, fail int) {
	for _, c := range checks {
		if c.Pass {
			pass++
		} else {
			fail++
		}
	}
	return
}

// rangeCheck evaluates a single value against an inclusive range.
// Volts and hertz are reported to 2 decimal places.
func rangeCheck(label string, v *float64, r profile.Range, unit string) schema.CheckResult {
	allowed := fmt.Sprintf("%.2f–%.2f %s", r.Min, r.Max, unit)
	if v == nil {
		return schema.CheckResult{
			Label:  label,
			Detail: fmt.Sprintf("%s (allowed %s)", notProvided, allowed),
		}
	}
	ok := r.Contains(*v)
	state := "within"
	if !ok {
		state = "outside"
	}
	return schema.CheckResult{
		Label:  label,
		Pass:   ok,
		Detail: fmt.Sprintf("measured %.2f %s %s allowed %s", *v, unit, state, allowed),
	}
}

// rippleCheck evaluates ripple (DC) or distortion (AC) against the profile
// ceiling. Percentages are reported to 1 decimal place.
func rippleCheck(p *profile.Profile, v *float64) schema.CheckResult {
	label := LabelRippleDC
	if p.AC {
		label = LabelDistortionAC
	}
	allowed := fmt.Sprintf("≤%.1f%%", p.RippleMaxPct)
	if v == nil {
		return schema.CheckResult{
			Label:  label,
			Detail: fmt.Sprintf("%s (allowed %s)", notProvided, allowed),
		}
	}
	ok := *v <= p.RippleMaxPct
	state := "within"
	if !ok {
		state = "exceeds"
	}
	return schema.CheckResult{
		Label:  label,
		Pass:   ok,
		Detail: fmt.Sprintf("measured %.1f%% %s allowed %s", *v, state, allowed),
	}
}

// transientCheck evaluates a transient event by depth and duration. Both
// values are required and both must individually be within limits.
// Durations are reported as whole milliseconds.
func transientCheck(label, kind string, pct, durMS *float64, t profile.Transient) schema.CheckResult {
	allowed := fmt.Sprintf("≤%.1f%% for ≤%.0f ms", t.MaxPct, t.MaxDurationMS)
	if pct == nil || durMS == nil {
		return schema.CheckResult{
			Label:  label,
			Detail: fmt.Sprintf("%s (allowed %s)", notProvided, allowed),
		}
	}
	ok := *pct <= t.MaxPct && *durMS <= t.MaxDurationMS
	state := "within"
	if !ok {
		state = "outside"
	}
	return schema.CheckResult{
		Label:  label,
		Pass:   ok,
		Detail: fmt.Sprintf("%s of %.1f%% for %.0f ms %s allowed %s", kind, *pct, *durMS, state, allowed),
	}
}
