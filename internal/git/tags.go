package git

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ListTags returns the repository's tag names. When onlySemVer is set,
// tags not parseable as MAJOR.MINOR.PATCH semantic versions are
// dropped and the remainder is sorted descending by semver precedence.
func ListTags(ctx context.Context, dir string, onlySemVer bool) ([]string, error) {
	out, err := outputGit(ctx, dir, "tag", "--list")
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	var tags []string
	for _, line := range strings.Split(string(out), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}

	if onlySemVer {
		return filterSemVer(tags), nil
	}
	return tags, nil
}

// filterSemVer keeps only strict MAJOR.MINOR.PATCH tags and sorts them
// highest version first.
func filterSemVer(tags []string) []string {
	type taggedVersion struct {
		tag     string
		version *semver.Version
	}

	var versions []taggedVersion
	for _, tag := range tags {
		v, err := semver.StrictNewVersion(tag)
		if err != nil {
			continue
		}
		versions = append(versions, taggedVersion{tag: tag, version: v})
	}

	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].version.GreaterThan(versions[j].version)
	})

	sorted := make([]string, len(versions))
	for i, v := range versions {
		sorted[i] = v.tag
	}
	return sorted
}
