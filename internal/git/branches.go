package git

import (
	"context"
	"fmt"
	"strings"
)

// ListBranchNames returns the repository's local branch names with the
// currently checked-out branch first. Listing markers and indentation
// are stripped, blank lines and duplicates removed, and detached-HEAD
// pseudo entries dropped.
func ListBranchNames(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "branch", "--list")
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	return parseBranchListing(string(out)), nil
}

// parseBranchListing turns `git branch --list` output into a clean,
// ordered name list. Git marks the current branch with "* " and
// worktree-checked-out branches with "+ "; the current branch is moved
// to the front.
func parseBranchListing(out string) []string {
	var (
		names   []string
		current string
		seen    = map[string]bool{}
	)

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		isCurrent := strings.HasPrefix(trimmed, "* ")
		trimmed = strings.TrimPrefix(trimmed, "* ")
		trimmed = strings.TrimPrefix(trimmed, "+ ")
		trimmed = strings.TrimSpace(trimmed)

		if trimmed == "" || seen[trimmed] {
			continue
		}
		// "(HEAD detached at abc1234)" is not a branch name.
		if strings.HasPrefix(trimmed, "(") {
			continue
		}

		seen[trimmed] = true
		if isCurrent {
			current = trimmed
			continue
		}
		names = append(names, trimmed)
	}

	if current != "" {
		return append([]string{current}, names...)
	}
	return names
}

// CurrentBranch returns the current branch name, or "" for a detached
// HEAD.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("current branch: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CreateBranch creates and switches to a new branch.
func CreateBranch(ctx context.Context, dir, name string) error {
	if err := runGit(ctx, dir, "switch", "-c", name); err != nil {
		return fmt.Errorf("create branch %s: %w", name, err)
	}
	return nil
}
