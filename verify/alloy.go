package verify

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"regexp"
	"time"

	"github.com/gongahkia/yuho/internal/diag"
)

// AlloyAssertionResult is one line of the analyzer's verdict on a single
// named assertion.
type AlloyAssertionResult struct {
	Assertion string
	Violated  bool
}

// AlloyResult is the parsed outcome of one `alloy` subprocess invocation.
type AlloyResult struct {
	Assertions []AlloyAssertionResult
	RawStdout  string
	RawStderr  string
}

// assertionMayBeViolated and assertionIsValid mirror the two stdout/stderr
// phrasings the Alloy Analyzer's command-line driver emits per checked
// assertion, per spec.md §9's note on narrow regexes over the subprocess
// output.
var (
	assertionMayBeViolated = regexp.MustCompile(`Assertion (\S+) may be violated`)
	assertionIsValid       = regexp.MustCompile(`Assertion (\S+) is valid`)
)

// RunAlloy writes model to a temporary .als file and invokes the
// alloyPath binary against it, honoring ctx's deadline (the resource model
// mandates a 30s timeout for this boundary; callers derive ctx from
// internal/config's AlloyTimeout). Any failure to invoke, or a timeout, is
// wrapped into a ClassBoundary diagnostic rather than returned raw.
func RunAlloy(ctx context.Context, alloyPath, model string) (*AlloyResult, *diag.Diagnostic) {
	tmp, err := os.CreateTemp("", "yuho-*.als")
	if err != nil {
		d := diag.Boundary("alloy", err)
		return nil, &d
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(model); err != nil {
		tmp.Close()
		d := diag.Boundary("alloy", err)
		return nil, &d
	}
	if err := tmp.Close(); err != nil {
		d := diag.Boundary("alloy", err)
		return nil, &d
	}

	cmd := exec.CommandContext(ctx, alloyPath, tmp.Name())
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			d := diag.Boundary("alloy", context.DeadlineExceeded)
			return nil, &d
		}
		if _, ok := err.(*exec.Error); ok {
			d := diag.Boundary("alloy", errAlloyUnavailable)
			return nil, &d
		}
		// A nonzero exit with assertion-violation output is not itself a
		// boundary failure: the analyzer exits nonzero on a found
		// counterexample. Fall through and parse stdout regardless.
		if len(stdout.Bytes()) == 0 {
			d := diag.Boundary("alloy", err)
			return nil, &d
		}
	}

	return parseAlloyOutput(stdout.String(), stderr.String()), nil
}

func parseAlloyOutput(stdout, stderr string) *AlloyResult {
	res := &AlloyResult{RawStdout: stdout, RawStderr: stderr}
	for _, m := range assertionMayBeViolated.FindAllStringSubmatch(stdout, -1) {
		res.Assertions = append(res.Assertions, AlloyAssertionResult{Assertion: m[1], Violated: true})
	}
	for _, m := range assertionIsValid.FindAllStringSubmatch(stdout, -1) {
		res.Assertions = append(res.Assertions, AlloyAssertionResult{Assertion: m[1], Violated: false})
	}
	return res
}

// WithDefaultAlloyTimeout returns a context derived from parent that expires
// after d, the resource model's boundary-timeout convention applied to the
// Alloy subprocess.
func WithDefaultAlloyTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, d)
}
