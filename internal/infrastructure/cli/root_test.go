package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/doeshing/promptline/internal/domain"
)

func executeRoot(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PROMPTLINE_CONFIG", "")

	root := NewRootCmd(context.Background(), Options{})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("ExecuteContext(%v) returned error: %v", args, err)
	}
	return out.String()
}

func TestBareInvocationRendersPrompt(t *testing.T) {
	out := executeRoot(t)
	if strings.Contains(out, "Usage:") {
		t.Fatalf("bare invocation printed usage text:\n%s", out)
	}
	if got, want := strings.Count(out, domain.DefaultPromptSymbol), 3; got != want {
		t.Fatalf("output has %d prompt symbols, want %d:\n%q", got, want, out)
	}
}

func TestBareInvocationAcceptsPromptFlags(t *testing.T) {
	out := executeRoot(t, "-e", "1", "-m", "build-failed")
	if !strings.Contains(out, "build-failed") {
		t.Fatalf("message flag not rendered:\n%q", out)
	}
	if strings.Count(out, domain.DefaultPromptSymbol) != 3 {
		t.Fatalf("indicator row missing:\n%q", out)
	}
}
