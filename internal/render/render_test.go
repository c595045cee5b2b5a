package render

import (
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgordon/buscheck/internal/schema"
)

func sampleReport() *schema.Report {
	return &schema.Report{
		Tool:    "buscheck",
		Version: "1.0",
		Input:   schema.Input{Bus: "115vac400"},
		Summary: schema.Summary{
			Verdict:     schema.VerdictNotCompliant,
			OverallPass: false,
			PassCount:   4,
			FailCount:   1,
		},
		Checks: []schema.CheckResult{
			{Label: "Steady-State Voltage", Pass: true, Detail: "measured 113.50 V within allowed 108.00–118.00 V"},
			{Label: "Steady-State Frequency", Pass: true, Detail: "measured 402.00 Hz within allowed 393.00–407.00 Hz"},
			{Label: "AC Distortion / THD", Pass: true, Detail: "measured 4.0% within allowed ≤5.0%"},
			{Label: "Transient Undervoltage", Pass: true, Detail: "dip of 15.0% for 40 ms within allowed ≤20.0% for ≤50 ms"},
			{Label: "Transient Overvoltage", Pass: false, Detail: "surge of 25.0% for 40 ms outside allowed ≤20.0% for ≤50 ms"},
		},
		Meta: schema.Meta{RunID: "8e39bd2e-0000-0000-0000-000000000000"},
	}
}

// assertEqualText fails with a character-level diff so mismatched report
// output is readable.
func assertEqualText(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("rendered output mismatch:\n%s", dmp.DiffPrettyText(diffs))
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	_, err := NewRenderer("xml", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestNewRenderer_JSON(t *testing.T) {
	r, err := NewRenderer("json", false)
	require.NoError(t, err)

	out, err := r.Render(sampleReport())
	require.NoError(t, err)

	var decoded schema.Report
	require.NoError(t, json.Unmarshal(out, &decoded), "output is not valid JSON: %s", out)
	assert.Equal(t, schema.VerdictNotCompliant, decoded.Summary.Verdict)
	assert.Len(t, decoded.Checks, 5)
	assert.Equal(t, "buscheck", decoded.Tool)
}

func TestNewRenderer_Markdown(t *testing.T) {
	r, err := NewRenderer("md", false)
	require.NoError(t, err)

	out, err := r.Render(sampleReport())
	require.NoError(t, err)
	md := string(out)

	assert.Contains(t, md, "# Bus Compliance Report")
	assert.Contains(t, md, "**Verdict:** NOT_COMPLIANT")
	assert.Contains(t, md, "| Transient Overvoltage | FAIL |")
	assert.Contains(t, md, "| Steady-State Voltage | PASS |")
	assert.Contains(t, md, "run 8e39bd2e-0000-0000-0000-000000000000")
}

func TestNewRenderer_TextPlain(t *testing.T) {
	r, err := NewRenderer("text", false)
	require.NoError(t, err)

	out, err := r.Render(sampleReport())
	require.NoError(t, err)

	want := "Bus: 115vac400\n" +
		"\n" +
		"  [PASS] Steady-State Voltage     measured 113.50 V within allowed 108.00–118.00 V\n" +
		"  [PASS] Steady-State Frequency   measured 402.00 Hz within allowed 393.00–407.00 Hz\n" +
		"  [PASS] AC Distortion / THD      measured 4.0% within allowed ≤5.0%\n" +
		"  [PASS] Transient Undervoltage   dip of 15.0% for 40 ms within allowed ≤20.0% for ≤50 ms\n" +
		"  [FAIL] Transient Overvoltage    surge of 25.0% for 40 ms outside allowed ≤20.0% for ≤50 ms\n" +
		"\n" +
		"Verdict: NOT_COMPLIANT (4 passed, 1 failed)\n"
	assertEqualText(t, want, string(out))
}

func TestNewRenderer_TextColored(t *testing.T) {
	// The color package disables itself off-TTY; force it on for this test.
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })

	r, err := NewRenderer("text", true)
	require.NoError(t, err)

	out, err := r.Render(sampleReport())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "\x1b[", "expected ANSI escapes in colored output")
	assert.Contains(t, text, "PASS")
	assert.Contains(t, text, "FAIL")
}

func TestRender_Deterministic(t *testing.T) {
	for _, format := range []string{"text", "json", "md"} {
		r, err := NewRenderer(format, false)
		require.NoError(t, err)
		a, err := r.Render(sampleReport())
		require.NoError(t, err)
		b, err := r.Render(sampleReport())
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), "format %s", format)
	}
}
