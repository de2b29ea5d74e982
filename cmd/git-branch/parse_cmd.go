package main

import (
	"github.com/spf13/cobra"

	"github.com/dashifen/git-branch/internal/branch"
	"github.com/dashifen/git-branch/internal/output"
)

func newParseCmd() *cobra.Command {
	var (
		strict     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "parse <name>",
		Short:   "Parse and classify a branch name",
		GroupID: GroupNaming,
		Args:    cobra.ExactArgs(1),
		Long: `Parse a branch name against the <YYMMDD><r|f|b>-<description> convention.

Without --strict, non-conforming names degrade to an unknown-type
branch dated today instead of failing.`,
		Example: `  git-branch parse 220622f-new-feature
  git-branch parse --strict 220622f-parent--child
  git-branch parse --json main`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			b, err := branch.Parse(args[0], strict || cfg.Strict)
			if err != nil {
				return err
			}

			if jsonOutput {
				return printBranchJSON(out, b, nil, "")
			}
			printBranchDetails(out, b)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on names outside the convention")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
