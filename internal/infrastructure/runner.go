package infrastructure

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/doeshing/promptline/internal/domain"
	"github.com/doeshing/promptline/internal/pkg/logger"
	"github.com/doeshing/promptline/internal/ports"
)

// ExecRunner runs external queries as child processes. It is the single entry
// point for every subprocess the prompt issues: one invocation, stdout
// captured, no retries. Failures are logged at debug level and otherwise
// degrade silently into a failed QueryResult.
type ExecRunner struct {
	logger ports.Logger
}

// NewExecRunner builds a runner.
func NewExecRunner(log ports.Logger) *ExecRunner {
	if log == nil {
		log = logger.NewStd(false)
	}
	return &ExecRunner{logger: log}
}

// Run implements ports.CommandRunner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) domain.QueryResult {
	return r.run(ctx, 0, name, args...)
}

// RunTimeout implements ports.CommandRunner. The deadline applies to this call
// only; on expiry the child is killed best-effort and the result is a failure.
func (r *ExecRunner) RunTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) domain.QueryResult {
	return r.run(ctx, timeout, name, args...)
}

func (r *ExecRunner) run(ctx context.Context, timeout time.Duration, name string, args ...string) domain.QueryResult {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		r.logger.Debug("external query failed", map[string]interface{}{
			"command": name,
			"args":    strings.Join(args, " "),
			"error":   err.Error(),
		})
		return domain.QueryResult{}
	}

	raw := stdout.Bytes()
	if !utf8.Valid(raw) {
		r.logger.Debug("external query produced non-text output", map[string]interface{}{
			"command": name,
		})
		return domain.QueryResult{}
	}

	return domain.QueryResult{Text: stripWhitespace(string(raw)), OK: true}
}

// stripWhitespace removes every whitespace rune, not just the outer ones. The
// queries here return single short tokens, so interior whitespace is noise.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

var _ ports.CommandRunner = (*ExecRunner)(nil)
