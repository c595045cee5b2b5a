// Package measure normalizes raw form input into measurement values.
package measure

import (
	"math"
	"strconv"
	"strings"

	"github.com/rgordon/buscheck/internal/schema"
)

// Field parses a single raw input value. Empty, whitespace-only,
// unparseable, or non-finite input is normalized to nil ("not provided"),
// never an error: malformed input degrades into a failed check downstream
// rather than aborting the evaluation.
func Field(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Fields carries the seven raw input strings for one evaluation.
type Fields struct {
	SteadyVoltage     string
	SteadyFrequency   string
	Ripple            string
	UVDipPercent      string
	UVDipDurationMS   string
	OVSurgePercent    string
	OVSurgeDurationMS string
}

// Measurement normalizes every field into a schema.Measurement.
func (f Fields) Measurement() *schema.Measurement {
	return &schema.Measurement{
		SteadyVoltage:     Field(f.SteadyVoltage),
		SteadyFrequency:   Field(f.SteadyFrequency),
		Ripple:            Field(f.Ripple),
		UVDipPercent:      Field(f.UVDipPercent),
		UVDipDurationMS:   Field(f.UVDipDurationMS),
		OVSurgePercent:    Field(f.OVSurgePercent),
		OVSurgeDurationMS: Field(f.OVSurgeDurationMS),
	}
}
