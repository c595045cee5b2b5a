package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"

	"github.com/rgordon/buscheck/internal/schema"
)

// textRenderer writes a terminal report with PASS/FAIL badges.
type textRenderer struct {
	colored bool
}

func (r *textRenderer) Render(report *schema.Report) ([]byte, error) {
	passBadge := "PASS"
	failBadge := "FAIL"
	verdictText := string(report.Summary.Verdict)
	if r.colored {
		passBadge = color.New(color.FgGreen, color.Bold).Sprint(passBadge)
		failBadge = color.New(color.FgRed, color.Bold).Sprint(failBadge)
		if report.Summary.OverallPass {
			verdictText = color.New(color.FgGreen, color.Bold).Sprint(verdictText)
		} else {
			verdictText = color.New(color.FgRed, color.Bold).Sprint(verdictText)
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Bus: %s\n\n", report.Input.Bus)
	for _, c := range report.Checks {
		badge := passBadge
		if !c.Pass {
			badge = failBadge
		}
		fmt.Fprintf(&buf, "  [%s] %-24s %s\n", badge, c.Label, c.Detail)
	}
	fmt.Fprintf(&buf, "\nVerdict: %s (%d passed, %d failed)\n",
		verdictText, report.Summary.PassCount, report.Summary.FailCount)
	return buf.Bytes(), nil
}
