// Package difftool renders a unified diff between two renderings of the same
// artifact, used by the round-trip and format-idempotence test properties to
// produce a readable failure message instead of a raw string mismatch.
package difftool

import "github.com/pmezard/go-difflib/difflib"

// Unified returns a unified diff of a versus b, labelled with fromFile and
// toFile. An empty string means a and b were identical.
func Unified(a, b, fromFile, toFile string) (string, error) {
	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(d)
}
