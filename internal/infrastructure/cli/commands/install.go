package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/promptline/internal/app"
)

// NewInstallCommand creates the installation command for shell integration.
func NewInstallCommand(container *app.Container) *cobra.Command {
	var (
		shellFlag string
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the promptline shell hook",
		Long: `Install the promptline shell hook.

This command will:
1. Detect your current shell (or use --shell flag)
2. Copy the hook script to ~/.promptline/shell/
3. Add a source line to your shell RC file (~/.zshrc or ~/.bashrc)

Example:
  promptline install              # Auto-detect shell
  promptline install --shell zsh  # Install for zsh
  promptline install --shell bash # Install for bash`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.OutOrStdout(), container, shellFlag, force)
		},
	}

	cmd.Flags().StringVar(&shellFlag, "shell", "", "Shell type (zsh, bash). Auto-detected if not specified")
	cmd.Flags().BoolVar(&force, "force", false, "Rewrite the RC line even if already present")

	return cmd
}

func runInstall(out io.Writer, container *app.Container, shellFlag string, force bool) error {
	result, err := container.ShellIntegrator.Install(shellFlag, force)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Installing promptline hook for %s...\n\n", result.Shell)
	fmt.Fprintf(out, "✓ Wrote hook script: %s\n", result.HookPath)
	if result.RCUpdated {
		fmt.Fprintf(out, "✓ Added source line to %s\n", result.RCFile)
	} else {
		fmt.Fprintf(out, "✓ Source line already present in %s\n", result.RCFile)
	}

	fmt.Fprintf(out, "\n✨ Installation complete!\n\n")
	fmt.Fprintf(out, "Configuration:\n")
	fmt.Fprintf(out, "  Config: %s\n", container.ConfigLoader.Path())
	fmt.Fprintf(out, "  Hook:   %s\n", result.HookPath)
	fmt.Fprintf(out, "\nTo activate, run:\n  source %s\n", result.RCFile)

	return nil
}

