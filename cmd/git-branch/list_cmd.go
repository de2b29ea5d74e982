package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashifen/git-branch/internal/branch"
	"github.com/dashifen/git-branch/internal/git"
	"github.com/dashifen/git-branch/internal/log"
	"github.com/dashifen/git-branch/internal/output"
	"github.com/dashifen/git-branch/internal/ui"
)

func newListCmd() *cobra.Command {
	var (
		jsonOutput bool
		typeFilter string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List and classify repository branches",
		Aliases: []string{"ls"},
		GroupID: GroupRepo,
		Args:    cobra.NoArgs,
		Long: `List the repository's branches, classified by naming convention.

The currently checked-out branch is listed first and marked with *.
Branches outside the convention show up with type "unknown".`,
		Example: `  git-branch list
  git-branch list -t feature
  git-branch list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			root, err := repoRoot()
			if err != nil {
				return err
			}

			if l.Verbose() {
				if url, err := git.OriginURL(root); err == nil {
					l.Printf("repository: %s (%s)\n", git.RepoNameFromURL(url), root)
				}
			}

			names, err := git.ListBranchNames(ctx, root)
			if err != nil {
				return err
			}
			current, err := git.CurrentBranch(ctx, root)
			if err != nil {
				return err
			}

			branches, err := classifyAll(names, typeFilter)
			if err != nil {
				return err
			}

			if jsonOutput {
				rows := make([]branchJSON, len(branches))
				for i, b := range branches {
					rows[i] = toBranchJSON(b, names, current)
				}
				data, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return err
				}
				out.Println(string(data))
				return nil
			}

			if len(branches) == 0 {
				l.Println("no branches found")
				return nil
			}

			color := ui.ColorEnabled()
			rows := make([][]string, len(branches))
			for i, b := range branches {
				rows[i] = listRow(b, names, current, color)
			}
			ui.RenderTable(out.Writer(), []string{"", "BRANCH", "TYPE", "DATE", "PARENT"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVarP(&typeFilter, "type", "t", "", "Only show branches of this type (release, feature, bugfix, unknown)")

	return cmd
}

// classifyAll parses every name non-strictly and applies the optional
// type filter.
func classifyAll(names []string, typeFilter string) ([]branch.Branch, error) {
	var filter branch.Type
	if typeFilter != "" {
		t, err := branch.ParseType(typeFilter)
		if err != nil {
			return nil, err
		}
		filter = t
	}

	var branches []branch.Branch
	for _, name := range names {
		b, err := branch.Parse(name, false)
		if err != nil {
			// Non-strict parsing never fails; surface it anyway.
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if typeFilter != "" && b.Type() != filter {
			continue
		}
		branches = append(branches, b)
	}
	return branches, nil
}

// listRow builds one table row for a branch.
func listRow(b branch.Branch, names []string, current string, color bool) []string {
	marker := ""
	name := b.Name()
	if name == current {
		marker = "*"
		if color {
			name = ui.CurrentStyle.Render(name)
		}
	}

	date := fmt.Sprintf("%06d", b.Date())
	if b.IsTypeUnknown() {
		date = "-"
	}

	parent := b.Parent()
	if parent == "" {
		parent = "-"
	}

	return []string{marker, name, ui.TypeLabel(b.Type(), color), date, parent}
}
