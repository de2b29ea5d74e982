package git

import (
	"fmt"
	"os"
	"path/filepath"
)

// ErrRepositoryNotFound indicates no .git marker was found within the
// search bound.
var ErrRepositoryNotFound = fmt.Errorf("not inside a git repository")

// DefaultSearchDepth bounds how many directory levels FindRepoRoot
// ascends before giving up.
const DefaultSearchDepth = 10

// FindRepoRoot ascends from start looking for a directory containing a
// .git marker, checking at most maxDepth levels (start itself
// included). Returns the repository root, or ErrRepositoryNotFound
// wrapped with the start path when the bound is exhausted.
func FindRepoRoot(start string, maxDepth int) (string, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultSearchDepth
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}

	for i := 0; i < maxDepth; i++ {
		if isGitRepo(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w (searched %d levels up from %s)", ErrRepositoryNotFound, maxDepth, start)
}

// isGitRepo checks if a path is a git repository (has .git dir or file)
func isGitRepo(path string) bool {
	gitPath := filepath.Join(path, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return false
	}
	// .git can be a directory (regular repo) or file (worktree)
	return info.IsDir() || info.Mode().IsRegular()
}
