package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/promptline/internal/app"
	"github.com/doeshing/promptline/internal/domain"
)

// newPromptCommand creates the explicit form of the render invocation; the
// bare root command runs the same path.
func newPromptCommand(container *app.Container) *cobra.Command {
	var (
		exitCode int
		message  string
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Render the prompt for the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, container, exitCode, message)
		},
	}

	addPromptFlags(cmd, &exitCode, &message)
	return cmd
}

func addPromptFlags(cmd *cobra.Command, exitCode *int, message *string) {
	cmd.Flags().IntVarP(exitCode, "exit-code", "e", 0, "Exit code of the previous command")
	cmd.Flags().StringVarP(message, "message", "m", "", "Extra message to show on the context line")
}

// runPrompt is the hot path invoked by the shell hook on every prompt render.
func runPrompt(cmd *cobra.Command, container *app.Container, exitCode int, message string) error {
	ForceColor()

	pc, err := container.PromptService.Build(cmd.Context(), domain.PromptRequest{
		ExitCode: exitCode,
		Message:  message,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), RenderPrompt(pc, container.Config.Prompt.Symbol))
	return nil
}
