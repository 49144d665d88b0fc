package domain

// ShellName enumerates shells with prompt hook support.
type ShellName string

const (
	ShellUnknown ShellName = "unknown"
	ShellZsh     ShellName = "zsh"
	ShellBash    ShellName = "bash"
)

// ShellInstallResult describes hook install/uninstall outcomes.
type ShellInstallResult struct {
	Shell       ShellName
	HookPath    string
	RCFile      string
	HookUpdated bool
	RCUpdated   bool
}

// ShellStatus captures current hook integration state.
type ShellStatus struct {
	Shell       ShellName
	HookPath    string
	RCFile      string
	HookExists  bool
	LinePresent bool
	Error       string
}
