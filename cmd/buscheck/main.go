package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rgordon/buscheck/internal/compliance"
	"github.com/rgordon/buscheck/internal/measure"
	"github.com/rgordon/buscheck/internal/profile"
	"github.com/rgordon/buscheck/internal/render"
	"github.com/rgordon/buscheck/internal/schema"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// checkFlags holds the parsed flags for the check command.
type checkFlags struct {
	bus                string
	inputs             measure.Fields
	profileFile        string
	format             string
	out                string
	failOnNoncompliant bool
	verbose            bool
}

func main() {
	root := &cobra.Command{
		Use:   "buscheck",
		Short: "Check power-bus measurements against bus profile limits",
		Long: "Buscheck evaluates steady-state and transient electrical measurements\n" +
			"against the limits of a named power-bus profile and reports a pass/fail\n" +
			"result per check plus an overall verdict.",
	}

	var flags checkFlags
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate a set of measurements against a bus profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(flags, os.Stdout)
		},
	}

	f := checkCmd.Flags()
	f.StringVar(&flags.bus, "bus", "", "Bus profile identifier (e.g. 28vdc, 115vac400)")
	f.StringVar(&flags.inputs.SteadyVoltage, "steady-voltage", "", "Steady-state voltage, volts")
	f.StringVar(&flags.inputs.SteadyFrequency, "frequency", "", "Steady-state frequency, Hz (AC buses only)")
	f.StringVar(&flags.inputs.Ripple, "ripple", "", "Ripple (DC) or distortion/THD (AC), percent")
	f.StringVar(&flags.inputs.UVDipPercent, "uv-percent", "", "Undervoltage dip depth, percent")
	f.StringVar(&flags.inputs.UVDipDurationMS, "uv-duration", "", "Undervoltage dip duration, milliseconds")
	f.StringVar(&flags.inputs.OVSurgePercent, "ov-percent", "", "Overvoltage surge height, percent")
	f.StringVar(&flags.inputs.OVSurgeDurationMS, "ov-duration", "", "Overvoltage surge duration, milliseconds")
	f.StringVar(&flags.profileFile, "profiles", "", "YAML file with additional bus profiles")
	f.StringVar(&flags.format, "format", "text", "Output format: text, json, or md")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.BoolVar(&flags.failOnNoncompliant, "fail-on-noncompliant", false, "Exit 2 when the verdict is NOT_COMPLIANT")
	f.BoolVar(&flags.verbose, "verbose", false, "Print processing steps to stderr")

	var profilesFile string
	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the registered bus profiles and their limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfiles(profilesFile, os.Stdout)
		},
	}
	profilesCmd.Flags().StringVar(&profilesFile, "profiles", "", "YAML file with additional bus profiles")

	root.AddCommand(checkCmd)
	root.AddCommand(profilesCmd)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func runCheck(flags checkFlags, stdout *os.File) error {
	// --- Step 1: Validate flags ---
	if err := validateFlags(flags); err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	// --- Step 2: Build the registry ---
	reg := profile.Builtin()
	if flags.profileFile != "" {
		logVerbose(flags.verbose, "Loading profiles: %s", flags.profileFile)
		if err := reg.LoadFile(flags.profileFile); err != nil {
			return codeError(3, "loading profiles: %s", err)
		}
	}

	// --- Step 3: Resolve the bus profile ---
	prof, err := reg.Get(flags.bus)
	if err != nil {
		return codeError(3, "%s", err)
	}

	// --- Step 4: Normalize raw input ---
	// Empty or unparseable values become "not provided", never an error.
	m := flags.inputs.Measurement()

	// --- Step 5: Evaluate ---
	logVerbose(flags.verbose, "Evaluating against %s", prof.Label)
	checks := compliance.Evaluate(prof, m)

	// --- Step 6: Assemble the report envelope ---
	passCount, failCount := compliance.Counts(checks)
	report := &schema.Report{
		Tool:    "buscheck",
		Version: version,
		Input: schema.Input{
			Bus:         flags.bus,
			ProfileFile: flags.profileFile,
		},
		Summary: schema.Summary{
			Verdict:     compliance.Verdict(checks),
			OverallPass: compliance.Overall(checks),
			PassCount:   passCount,
			FailCount:   failCount,
		},
		Checks: checks,
		Meta:   schema.Meta{RunID: uuid.NewString()},
	}

	// --- Step 7: Render ---
	colored := flags.out == "" && isatty.IsTerminal(stdout.Fd())
	logVerbose(flags.verbose, "Rendering output (format: %s)", flags.format)
	renderer, err := render.NewRenderer(flags.format, colored)
	if err != nil {
		return codeError(3, "invalid format: %s", err)
	}
	outputBytes, err := renderer.Render(report)
	if err != nil {
		return codeError(3, "rendering output: %s", err)
	}

	// --- Step 8: Write output ---
	if flags.out != "" {
		if err := os.WriteFile(flags.out, outputBytes, 0o644); err != nil {
			return codeError(3, "writing output file: %s", err)
		}
	} else {
		if _, err := stdout.Write(outputBytes); err != nil {
			return codeError(3, "writing output: %s", err)
		}
		// Ensure output ends with a newline for terminal friendliness.
		if len(outputBytes) > 0 && outputBytes[len(outputBytes)-1] != '\n' {
			fmt.Fprintln(stdout)
		}
	}

	// --- Step 9: Evaluate --fail-on-noncompliant ---
	if flags.failOnNoncompliant && !report.Summary.OverallPass {
		return codeError(2, "verdict %s with --fail-on-noncompliant set", report.Summary.Verdict)
	}

	return nil
}

// runProfiles prints every registered profile with its limits.
func runProfiles(profileFile string, stdout *os.File) error {
	reg := profile.Builtin()
	if profileFile != "" {
		if err := reg.LoadFile(profileFile); err != nil {
			return codeError(3, "loading profiles: %s", err)
		}
	}

	for _, id := range reg.IDs() {
		p, err := reg.Get(id)
		if err != nil {
			return codeError(3, "%s", err)
		}
		fmt.Fprintf(stdout, "%s (%s)\n", p.ID, p.Label)
		fmt.Fprintf(stdout, "  steady voltage:  %.2f–%.2f V (nominal %.0f V)\n", p.Steady.Min, p.Steady.Max, p.NominalVolts)
		if p.Frequency != nil {
			fmt.Fprintf(stdout, "  frequency:       %.2f–%.2f Hz\n", p.Frequency.Min, p.Frequency.Max)
		}
		if p.AC {
			fmt.Fprintf(stdout, "  distortion/THD:  ≤%.1f%%\n", p.RippleMaxPct)
		} else {
			fmt.Fprintf(stdout, "  ripple:          ≤%.1f%%\n", p.RippleMaxPct)
		}
		fmt.Fprintf(stdout, "  undervoltage:    ≤%.1f%% for ≤%.0f ms\n", p.Undervoltage.MaxPct, p.Undervoltage.MaxDurationMS)
		fmt.Fprintf(stdout, "  overvoltage:     ≤%.1f%% for ≤%.0f ms\n", p.Overvoltage.MaxPct, p.Overvoltage.MaxDurationMS)
		fmt.Fprintln(stdout)
	}
	return nil
}

// validateFlags returns an error if any flag value is invalid.
func validateFlags(flags checkFlags) error {
	if strings.TrimSpace(flags.bus) == "" {
		return fmt.Errorf("--bus is required")
	}

	switch flags.format {
	case "text", "json", "md":
	default:
		return fmt.Errorf("--format must be text, json, or md, got %q", flags.format)
	}

	return nil
}

// logVerbose writes a progress message to stderr when verbose mode is enabled.
func logVerbose(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "INFO: "+format+"\n", args...)
	}
}
