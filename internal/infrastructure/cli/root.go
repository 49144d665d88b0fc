package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/promptline/internal/app"
	"github.com/doeshing/promptline/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) *cobra.Command {
	container := app.BuildContainer(ctx, opts.Verbose)

	var (
		exitCode int
		message  string
	)

	// The bare invocation renders the prompt so the shell hook can call the
	// binary with no subcommand at all.
	root := &cobra.Command{
		Use:   "promptline",
		Short: "promptline - concurrent status prompt for your shell",
		Long: "promptline renders a two-line shell prompt showing git, kubernetes and AWS\n" +
			"context for the current directory, collected concurrently on every render.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, container, exitCode, message)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addPromptFlags(root, &exitCode, &message)

	root.AddCommand(newPromptCommand(container))
	root.AddCommand(commands.NewInstallCommand(container))
	root.AddCommand(commands.NewUninstallCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root
}
