package cli

import (
	"strings"

	"github.com/doeshing/promptline/internal/domain"
)

// RenderPrompt produces the prompt block: a blank separator line, the context
// line with absent fields skipped, and the three-indicator row the cursor
// sits after. Exactly one block per invocation, never partial.
func RenderPrompt(pc domain.PromptContext, symbol string) string {
	if symbol == "" {
		symbol = domain.DefaultPromptSymbol
	}

	fields := make([]string, 0, 7)
	fields = append(fields, DirStyle.Render(pc.WorkingDir))
	if pc.Message != "" {
		fields = append(fields, MessageStyle.Render(pc.Message))
	}
	if pc.Identity != nil {
		fields = append(fields, IdentityStyle.Render(pc.Identity.Display()))
	}
	if pc.KubeContext != "" {
		fields = append(fields, ClusterStyle.Render(pc.KubeContext))
	}
	if pc.KubeNamespace != "" {
		fields = append(fields, ClusterStyle.Render(pc.KubeNamespace))
	}
	if pc.CloudProfile != "" {
		fields = append(fields, CloudStyle.Render(pc.CloudProfile))
	}
	if pc.CloudRegion != "" {
		fields = append(fields, CloudStyle.Render(pc.CloudRegion))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(strings.Join(fields, " "))
	b.WriteString("\n")
	b.WriteString(exitIndicator(pc.ExitCode, symbol))
	b.WriteString(unstagedIndicator(pc, symbol))
	b.WriteString(unpushedIndicator(pc, symbol))
	b.WriteString(" ")
	return b.String()
}

func exitIndicator(exitCode int, symbol string) string {
	if exitCode == 0 {
		return SuccessIndicator.Render(symbol)
	}
	return FailureIndicator.Render(symbol)
}

func unstagedIndicator(pc domain.PromptContext, symbol string) string {
	if !pc.InRepository {
		return PlainIndicator.Render(symbol)
	}
	switch pc.Unstaged {
	case domain.UnstagedClean:
		return SuccessIndicator.Render(symbol)
	case domain.UnstagedFilesChanged:
		return DirtyIndicator.Render(symbol)
	case domain.UnstagedFilesUntracked:
		return UntrackedIndicator.Render(symbol)
	default:
		return PlainIndicator.Render(symbol)
	}
}

func unpushedIndicator(pc domain.PromptContext, symbol string) string {
	if !pc.InRepository {
		return PlainIndicator.Render(symbol)
	}
	switch pc.Unpushed {
	case domain.UnpushedSynced:
		return SuccessIndicator.Render(symbol)
	case domain.UnpushedAhead:
		return DirtyIndicator.Render(symbol)
	case domain.UnpushedBehind:
		return UntrackedIndicator.Render(symbol)
	case domain.UnpushedNoUpstream:
		return DetachedIndicator.Render(symbol)
	default:
		return PlainIndicator.Render(symbol)
	}
}
