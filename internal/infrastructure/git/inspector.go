// Package git answers version-control queries for the prompt. Every method
// degrades to an absent or conservative value when git is missing, the
// directory is not a repository, or an individual query fails.
package git

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/doeshing/promptline/internal/domain"
	"github.com/doeshing/promptline/internal/pkg/logger"
	"github.com/doeshing/promptline/internal/ports"
)

// Inspector implements ports.RepositoryInspector over a CommandRunner.
type Inspector struct {
	runner      ports.CommandRunner
	diffTimeout time.Duration
	logger      ports.Logger
}

// NewInspector builds an Inspector. A non-positive diffTimeout falls back to
// the default working-tree diff deadline.
func NewInspector(runner ports.CommandRunner, diffTimeout time.Duration, log ports.Logger) *Inspector {
	if diffTimeout <= 0 {
		diffTimeout = domain.DefaultDiffTimeout
	}
	if log == nil {
		log = logger.NewStd(false)
	}
	return &Inspector{
		runner:      runner,
		diffTimeout: diffTimeout,
		logger:      log,
	}
}

// InRepository reports whether the working directory is inside a git work
// tree. Anything other than a clean "true" answer counts as no.
func (i *Inspector) InRepository(ctx context.Context) bool {
	v, ok := i.runner.Run(ctx, "git", "rev-parse", "--is-inside-work-tree").Value()
	return ok && v == "true"
}

// Identity resolves the best available label for the current revision: branch
// name first, then short commit hash. A tag pointing at HEAD is carried
// alongside. When none of the three queries yields anything, the identity is
// nil rather than empty.
func (i *Inspector) Identity(ctx context.Context) *domain.RepoIdentity {
	var branch, tag, commit domain.QueryResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		branch = i.runner.Run(gctx, "git", "branch", "--show-current")
		return nil
	})
	g.Go(func() error {
		tag = i.runner.Run(gctx, "git", "tag", "--points-at", "HEAD")
		return nil
	})
	g.Go(func() error {
		commit = i.runner.Run(gctx, "git", "rev-parse", "--short", "HEAD")
		return nil
	})
	_ = g.Wait()

	branchName, haveBranch := branch.Value()
	tagName, haveTag := tag.Value()
	commitHash, haveCommit := commit.Value()

	if !haveBranch && !haveTag && !haveCommit {
		return nil
	}

	label := branchName
	if !haveBranch {
		label = commitHash
	}
	return &domain.RepoIdentity{Label: label, Tag: tagName}
}

// UnstagedChanges classifies the working tree. The two quiet diffs run
// concurrently; the working-tree diff alone carries a deadline because its
// cost scales with tree size. Any diff failure, including a timeout, counts
// as dirty, so the untracked-file listing only runs when both diffs came back
// clean.
func (i *Inspector) UnstagedChanges(ctx context.Context) domain.UnstagedState {
	var worktree, index domain.QueryResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		worktree = i.runner.RunTimeout(gctx, i.diffTimeout, "git", "diff", "--quiet")
		return nil
	})
	g.Go(func() error {
		index = i.runner.Run(gctx, "git", "diff", "--cached", "--quiet")
		return nil
	})
	_ = g.Wait()

	if !worktree.OK || !index.OK {
		return domain.UnstagedFilesChanged
	}

	untracked := i.runner.Run(ctx, "git", "ls-files", "--other", "--directory", "--exclude-standard")
	if !untracked.OK || untracked.Text != "" {
		return domain.UnstagedFilesUntracked
	}
	return domain.UnstagedClean
}

// UnpushedChanges classifies the local tip against its upstream. A non-empty
// upstream..HEAD log means commits are waiting to be pushed; a failed log is
// treated like an empty one, deferring the no-upstream determination to the
// ref resolution below.
func (i *Inspector) UnpushedChanges(ctx context.Context) domain.UnpushedState {
	ahead := i.runner.Run(ctx, "git", "log", "@{u}..")
	if ahead.Text != "" {
		return domain.UnpushedAhead
	}

	var head, upstream domain.QueryResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		head = i.runner.Run(gctx, "git", "rev-parse", "HEAD")
		return nil
	})
	g.Go(func() error {
		upstream = i.runner.Run(gctx, "git", "rev-parse", "@{u}")
		return nil
	})
	_ = g.Wait()

	upstreamHash, haveUpstream := upstream.Value()
	if !haveUpstream {
		return domain.UnpushedNoUpstream
	}

	headHash, _ := head.Value()
	if headHash == upstreamHash {
		return domain.UnpushedSynced
	}
	// Behind or diverged; the prompt does not distinguish the two.
	return domain.UnpushedBehind
}

var _ ports.RepositoryInspector = (*Inspector)(nil)
