package domain

// UnstagedState classifies the working tree relative to the last commit.
type UnstagedState string

const (
	// UnstagedUnknown means the classifier never ran (not in a repository).
	UnstagedUnknown        UnstagedState = ""
	UnstagedClean          UnstagedState = "clean"
	UnstagedFilesChanged   UnstagedState = "files_changed"
	UnstagedFilesUntracked UnstagedState = "files_untracked"
)

// UnpushedState classifies the local branch tip relative to its upstream.
type UnpushedState string

const (
	// UnpushedUnknown means the classifier never ran (not in a repository).
	UnpushedUnknown    UnpushedState = ""
	UnpushedSynced     UnpushedState = "synced"
	UnpushedAhead      UnpushedState = "ahead"
	UnpushedBehind     UnpushedState = "behind"
	UnpushedNoUpstream UnpushedState = "no_upstream"
)

// RepoIdentity labels the current revision. A nil *RepoIdentity means none of
// branch, tag, or commit resolved; that renders as a skipped field, which is
// not the same as an identity with an empty label.
type RepoIdentity struct {
	Label string // branch name if available, else short commit hash, else ""
	Tag   string // tag pointing at HEAD, "" when none
}

// Display returns the identity in "label [tag]" form.
func (r RepoIdentity) Display() string {
	if r.Tag == "" {
		return r.Label
	}
	return r.Label + " [" + r.Tag + "]"
}
