package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashifen/git-branch/internal/branch"
	"github.com/dashifen/git-branch/internal/git"
	"github.com/dashifen/git-branch/internal/output"
)

func newCurrentCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "current",
		Short:   "Parse the currently checked-out branch",
		GroupID: GroupRepo,
		Args:    cobra.NoArgs,
		Example: `  git-branch current
  git-branch current --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			root, err := repoRoot()
			if err != nil {
				return err
			}

			name, err := git.CurrentBranch(ctx, root)
			if err != nil {
				return err
			}
			if name == "" {
				return fmt.Errorf("HEAD is detached, no current branch")
			}

			b, err := branch.Parse(name, cfg.Strict)
			if err != nil {
				return err
			}

			names, err := git.ListBranchNames(ctx, root)
			if err != nil {
				return err
			}

			if jsonOutput {
				return printBranchJSON(out, b, names, name)
			}
			printBranchDetails(out, b)
			if b.IsParent(names) {
				out.Printf("children:    yes\n")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
