package domain

// PromptRequest carries the per-invocation inputs supplied by the shell hook.
type PromptRequest struct {
	ExitCode int
	Message  string
}

// PromptContext is the aggregate state for one prompt render. It is assembled
// once per invocation, immutable afterwards, and consumed only by the
// rendering step.
type PromptContext struct {
	WorkingDir    string
	Message       string
	InRepository  bool
	Identity      *RepoIdentity
	Unstaged      UnstagedState
	Unpushed      UnpushedState
	KubeContext   string
	KubeNamespace string
	CloudProfile  string
	CloudRegion   string
	ExitCode      int
}
