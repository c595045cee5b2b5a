package schema

// Report is the top-level output envelope for one evaluation run.
type Report struct {
	Tool    string        `json:"tool"`
	Version string        `json:"version"`
	Input   Input         `json:"input"`
	Summary Summary       `json:"summary"`
	Checks  []CheckResult `json:"checks"`
	Meta    Meta          `json:"meta"`
}

// Input echoes the parameters used for this run.
type Input struct {
	Bus         string `json:"bus"`
	ProfileFile string `json:"profile_file,omitempty"`
}

// Summary holds the derived verdict and check counts.
// OverallPass is true iff every check in the report passed.
type Summary struct {
	Verdict     Verdict `json:"verdict"`
	OverallPass bool    `json:"overall_pass"`
	PassCount   int     `json:"pass_count"`
	FailCount   int     `json:"fail_count"`
}

// Meta holds runtime metadata about the run.
type Meta struct {
	RunID string `json:"run_id"`
}

// Verdict represents the overall assessment of the measurements.
type Verdict string

const (
	VerdictCompliant    Verdict = "COMPLIANT"
	VerdictNotCompliant Verdict = "NOT_COMPLIANT"
)

// CheckResult is the outcome of a single limit check. Detail always names
// the measured value(s) and the allowed range or threshold.
type CheckResult struct {
	Label  string `json:"label"`
	Pass   bool   `json:"pass"`
	Detail string `json:"detail"`
}

// Measurement carries the measured values for one evaluation.
// A nil field means the value was not provided, which is distinct from zero:
// an absent value fails its check rather than being compared as 0.
type Measurement struct {
	SteadyVoltage     *float64 `json:"steady_voltage,omitempty"`
	SteadyFrequency   *float64 `json:"steady_frequency,omitempty"`
	Ripple            *float64 `json:"ripple,omitempty"`
	UVDipPercent      *float64 `json:"uv_dip_percent,omitempty"`
	UVDipDurationMS   *float64 `json:"uv_dip_duration_ms,omitempty"`
	OVSurgePercent    *float64 `json:"ov_surge_percent,omitempty"`
	OVSurgeDurationMS *float64 `json:"ov_surge_duration_ms,omitempty"`
}
