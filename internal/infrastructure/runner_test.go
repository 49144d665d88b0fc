package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/doeshing/promptline/internal/pkg/logger"
)

func TestRunStripsAllWhitespace(t *testing.T) {
	runner := NewExecRunner(logger.NewStd(false))

	res := runner.Run(context.Background(), "sh", "-c", "printf 'a b\\tc\\n'")
	if !res.OK {
		t.Fatalf("expected OK result, got %+v", res)
	}
	if res.Text != "abc" {
		t.Fatalf("Text = %q, want abc", res.Text)
	}
}

func TestRunNonZeroExitIsFailure(t *testing.T) {
	runner := NewExecRunner(nil)

	res := runner.Run(context.Background(), "sh", "-c", "echo output; exit 3")
	if res.OK {
		t.Fatalf("expected failure, got %+v", res)
	}
	if _, ok := res.Value(); ok {
		t.Fatal("failed query must yield an absent value regardless of stdout")
	}
}

func TestRunMissingBinaryIsFailure(t *testing.T) {
	runner := NewExecRunner(nil)

	res := runner.Run(context.Background(), "definitely-not-a-real-command-7f3a")
	if res.OK {
		t.Fatalf("expected failure, got %+v", res)
	}
}

func TestRunEmptyOutputIsAbsent(t *testing.T) {
	runner := NewExecRunner(nil)

	res := runner.Run(context.Background(), "true")
	if !res.OK {
		t.Fatalf("expected OK, got %+v", res)
	}
	if _, ok := res.Value(); ok {
		t.Fatal("empty trimmed output must be absent")
	}
}

func TestRunWhitespaceOnlyOutputIsAbsent(t *testing.T) {
	runner := NewExecRunner(nil)

	res := runner.Run(context.Background(), "sh", "-c", "printf '  \\n\\t '")
	if !res.OK {
		t.Fatalf("expected OK, got %+v", res)
	}
	if _, ok := res.Value(); ok {
		t.Fatal("whitespace-only output must be absent")
	}
}

func TestRunTimeoutKillsSlowCommand(t *testing.T) {
	runner := NewExecRunner(nil)

	start := time.Now()
	res := runner.RunTimeout(context.Background(), 50*time.Millisecond, "sleep", "5")
	elapsed := time.Since(start)

	if res.OK {
		t.Fatalf("expected timeout failure, got %+v", res)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("timeout did not bound the call, took %v", elapsed)
	}
}

func TestRunTimeoutFastCommandSucceeds(t *testing.T) {
	runner := NewExecRunner(nil)

	res := runner.RunTimeout(context.Background(), time.Second, "sh", "-c", "echo fast")
	if !res.OK || res.Text != "fast" {
		t.Fatalf("expected fast success, got %+v", res)
	}
}
