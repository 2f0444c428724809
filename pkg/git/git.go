// Package git reads repository information attached to run reports.
package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepo is returned when path is not inside a git repository.
var ErrNotRepo = errors.New("not a git repository")

const shortHashLen = 7

// Info describes the checked-out state of a repository.
type Info struct {
	Root   string // worktree root
	Branch string // branch name, "HEAD" when detached
	Commit string // short hash, empty when the repository has no commits
	Dirty  bool   // uncommitted changes in the worktree
}

// Read returns repository info for path, searching parent directories for .git.
func Read(path string) (Info, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Info{}, fmt.Errorf("resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return Info{}, fmt.Errorf("%s: %w", absPath, ErrNotRepo)
		}
		return Info{}, fmt.Errorf("open git repository %s: %w", absPath, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return Info{}, fmt.Errorf("get worktree: %w", err)
	}
	info := Info{Root: wt.Filesystem.Root()}

	head, err := repo.Head()
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// no commits yet, HEAD points to an unborn branch
		ref, refErr := repo.Storer.Reference(plumbing.HEAD)
		if refErr != nil {
			return Info{}, fmt.Errorf("read HEAD: %w", refErr)
		}
		info.Branch = ref.Target().Short()
		return info, nil
	case err != nil:
		return Info{}, fmt.Errorf("get HEAD: %w", err)
	}

	info.Branch = "HEAD"
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	info.Commit = head.Hash().String()[:shortHashLen]

	st, err := wt.Status()
	if err != nil {
		return Info{}, fmt.Errorf("get status: %w", err)
	}
	info.Dirty = !st.IsClean()
	return info, nil
}

// Revision formats branch and commit as "branch @ commit", marking dirty worktrees.
func (i Info) Revision() string {
	if i.Branch == "" {
		return ""
	}
	rev := i.Branch
	if i.Commit != "" {
		rev += " @ " + i.Commit
	}
	if i.Dirty {
		rev += " (dirty)"
	}
	return rev
}
