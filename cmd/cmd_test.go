package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("zenmed %v: %v", args, err)
	}
	return out.String()
}

func TestRoutesCommand(t *testing.T) {
	out := run(t, "routes")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header + 11 routes + not-found
	if len(lines) != 13 {
		t.Fatalf("expected 13 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "/ ") {
		t.Errorf("expected landing first, got %q", lines[1])
	}
	if !strings.Contains(out, "/dashboard/reminders") || !strings.Contains(out, "not-found") {
		t.Errorf("unexpected table:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	if out := run(t, "version"); out != "zenmed dev\n" {
		t.Errorf("unexpected version output %q", out)
	}
}
