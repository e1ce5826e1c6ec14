//go:build integration

package verify

import (
	"context"
	"os/exec"
	"testing"
	"time"
)

func TestRunAlloyAgainstRealBinary(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	alloyPath, err := exec.LookPath("alloy")
	if err != nil {
		t.Skip("alloy not installed")
	}
	model := `sig A {}
run {} for 3`
	ctx, cancel := WithDefaultAlloyTimeout(context.Background(), 30*time.Second)
	defer cancel()
	res, d := RunAlloy(ctx, alloyPath, model)
	if d != nil {
		t.Fatalf("RunAlloy failed: %v", d)
	}
	if res == nil {
		t.Fatal("expected non-nil result")
	}
}
