package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/promptline/internal/app"
)

// NewUninstallCommand creates the command that removes the shell hook.
func NewUninstallCommand(container *app.Container) *cobra.Command {
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the promptline shell hook",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUninstall(cmd.OutOrStdout(), container, shellFlag)
		},
	}

	cmd.Flags().StringVar(&shellFlag, "shell", "", "Shell type (zsh, bash). Auto-detected if not specified")

	return cmd
}

func runUninstall(out io.Writer, container *app.Container, shellFlag string) error {
	result, err := container.ShellIntegrator.Uninstall(shellFlag)
	if err != nil {
		return err
	}

	if result.RCUpdated {
		fmt.Fprintf(out, "✓ Removed source line from %s\n", result.RCFile)
	} else {
		fmt.Fprintf(out, "No promptline source line found in %s\n", result.RCFile)
	}
	fmt.Fprintf(out, "Hook script kept at %s; delete it manually if unwanted.\n", result.HookPath)

	return nil
}
