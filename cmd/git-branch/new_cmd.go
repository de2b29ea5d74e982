package main

import (
	"github.com/spf13/cobra"

	"github.com/dashifen/git-branch/internal/branch"
	"github.com/dashifen/git-branch/internal/git"
	"github.com/dashifen/git-branch/internal/output"
)

func newNewCmd() *cobra.Command {
	var (
		typeStr string
		date    int
		from    string
		create  bool
	)

	cmd := &cobra.Command{
		Use:     "new <description>",
		Short:   "Build a conforming branch name",
		GroupID: GroupNaming,
		Args:    cobra.ExactArgs(1),
		Long: `Build a branch name following the naming convention.

By default the name is dated today and typed per the default_type
config setting. With --from, the description is appended to the given
parent name with the double-hyphen separator instead.`,
		Example: `  git-branch new add-login-form
  git-branch new -t bugfix fix-logout-crash
  git-branch new --from 220622f-parent child-tweak
  git-branch new --create -t release summer-launch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			name, err := buildName(typeStr, date, from, args[0])
			if err != nil {
				return err
			}

			if create {
				if err := git.CheckGit(); err != nil {
					return err
				}
				root, err := repoRoot()
				if err != nil {
					return err
				}
				if err := git.CreateBranch(ctx, root, name); err != nil {
					return err
				}
			}

			out.Println(name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeStr, "type", "t", "", "Branch type: release, feature or bugfix (default from config)")
	cmd.Flags().IntVar(&date, "date", 0, "Branch date as YYMMDD (default today)")
	cmd.Flags().StringVar(&from, "from", "", "Full parent branch name to derive a child from")
	cmd.Flags().BoolVar(&create, "create", false, "Also create and switch to the branch")

	return cmd
}

// buildName assembles a branch name from the new command's inputs.
func buildName(typeStr string, date int, from, description string) (string, error) {
	if from != "" {
		return branch.ChildName(from, description)
	}

	if typeStr == "" {
		typeStr = cfg.DefaultType
	}
	t, err := branch.ParseType(typeStr)
	if err != nil {
		return "", err
	}
	if date == 0 {
		date = branch.Today()
	}

	b, err := branch.New(t, date, description)
	if err != nil {
		return "", err
	}
	return b.Name(), nil
}
