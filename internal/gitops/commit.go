// Package gitops stages and commits patched documentation files.
package gitops

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Committer commits documentation changes to the enclosing git repository.
type Committer struct {
	AuthorName  string
	AuthorEmail string
}

// Commit stages the given files (paths relative to docsRoot) and creates a
// commit with the given message. It returns the commit hash, or an empty
// string when there is nothing to commit.
func (c Committer) Commit(docsRoot string, files []string, message string) (string, error) {
	if len(files) == 0 {
		return "", nil
	}

	repo, err := git.PlainOpenWithOptions(docsRoot, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}

	absRoot, err := filepath.Abs(docsRoot)
	if err != nil {
		return "", fmt.Errorf("resolve docs root: %w", err)
	}

	for _, file := range files {
		rel, err := filepath.Rel(wt.Filesystem.Root(), filepath.Join(absRoot, file))
		if err != nil {
			return "", fmt.Errorf("resolve path %s: %w", file, err)
		}
		if _, err := wt.Add(rel); err != nil {
			return "", fmt.Errorf("stage %s: %w", rel, err)
		}
	}

	status, err := wt.Status()
	if err != nil {
		return "", fmt.Errorf("worktree status: %w", err)
	}
	if status.IsClean() {
		return "", nil
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  c.AuthorName,
			Email: c.AuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return hash.String(), nil
}
