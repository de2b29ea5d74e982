package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/dashifen/git-branch/internal/git"
	"github.com/dashifen/git-branch/internal/log"
	"github.com/dashifen/git-branch/internal/output"
)

func newTagsCmd() *cobra.Command {
	var (
		onlySemVer bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "tags",
		Short:   "List repository tags",
		GroupID: GroupRepo,
		Args:    cobra.NoArgs,
		Long: `List the repository's tags.

With --semver, only tags parseable as MAJOR.MINOR.PATCH semantic
versions are shown, highest version first.`,
		Example: `  git-branch tags
  git-branch tags --semver`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			root, err := repoRoot()
			if err != nil {
				return err
			}

			tags, err := git.ListTags(ctx, root, onlySemVer)
			if err != nil {
				return err
			}

			if jsonOutput {
				data, err := json.MarshalIndent(tags, "", "  ")
				if err != nil {
					return err
				}
				out.Println(string(data))
				return nil
			}

			if len(tags) == 0 {
				l.Println("no tags found")
				return nil
			}
			for _, tag := range tags {
				out.Println(tag)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&onlySemVer, "semver", false, "Only semantic-version tags, sorted descending")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
