// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the application to remain independent of specific
// implementations like subprocess execution, the filesystem, or CLI frameworks.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., CommandRunner, RepositoryInspector)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"
	"time"

	"github.com/doeshing/promptline/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.promptline/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CommandRunner executes one external query as a child process and classifies
// the outcome. Failures of any kind (launch error, non-zero exit, undecodable
// output, expired deadline) collapse to a failed QueryResult; nothing is
// retried and nothing propagates as a hard error.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) domain.QueryResult
	// RunTimeout behaves like Run but bounds this single call with its own
	// wall-clock deadline.
	RunTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) domain.QueryResult
}

// RepositoryInspector answers version-control queries about the working
// directory. InRepository gates the other three: callers skip them entirely
// when it reports false.
type RepositoryInspector interface {
	InRepository(ctx context.Context) bool
	Identity(ctx context.Context) *domain.RepoIdentity
	UnstagedChanges(ctx context.Context) domain.UnstagedState
	UnpushedChanges(ctx context.Context) domain.UnpushedState
}

// ClusterCollector reports the active orchestrator configuration.
type ClusterCollector interface {
	CurrentContext(ctx context.Context) (string, bool)
	CurrentNamespace(ctx context.Context) (string, bool)
}

// CloudCollector reports cloud credential context. Implementations read the
// environment only; no subprocess is involved.
type CloudCollector interface {
	Profile() (string, bool)
	Region() (string, bool)
}

// ShellIntegrator manages the prompt hook in shell rc files (bash, zsh).
type ShellIntegrator interface {
	Install(shell string, force bool) (domain.ShellInstallResult, error)
	Uninstall(shell string) (domain.ShellInstallResult, error)
	Status(shell string) domain.ShellStatus
	DetectShell() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
