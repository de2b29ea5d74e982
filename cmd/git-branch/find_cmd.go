package main

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/dashifen/git-branch/internal/git"
	"github.com/dashifen/git-branch/internal/log"
	"github.com/dashifen/git-branch/internal/output"
	"github.com/dashifen/git-branch/internal/ui"
)

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "find <query>",
		Short:   "Fuzzy-search branch names",
		GroupID: GroupRepo,
		Args:    cobra.ExactArgs(1),
		Long:    `Fuzzy-match the query against the repository's branch names, best match first.`,
		Example: `  git-branch find login
  git-branch find 2206`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			root, err := repoRoot()
			if err != nil {
				return err
			}

			names, err := git.ListBranchNames(ctx, root)
			if err != nil {
				return err
			}

			matches := fuzzy.Find(args[0], names)
			if len(matches) == 0 {
				l.Printf("no branches match %q\n", args[0])
				return nil
			}

			color := ui.ColorEnabled()
			for _, m := range matches {
				out.Println(highlightMatch(m, color))
			}
			return nil
		},
	}

	return cmd
}

// highlightMatch bolds the matched runes of a fuzzy match result.
func highlightMatch(m fuzzy.Match, color bool) string {
	if !color {
		return m.Str
	}

	matched := make(map[int]bool, len(m.MatchedIndexes))
	for _, i := range m.MatchedIndexes {
		matched[i] = true
	}

	var sb strings.Builder
	for i, r := range m.Str {
		if matched[i] {
			sb.WriteString(ui.CurrentStyle.Render(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
