package git

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// OriginURL reads the origin remote url straight from the repository's
// config file. No subprocess needed; the config is plain ini.
func OriginURL(repoRoot string) (string, error) {
	cfgPath := filepath.Join(repoRoot, ".git", "config")

	cfg, err := ini.Load(cfgPath)
	if err != nil {
		return "", fmt.Errorf("read git config: %w", err)
	}

	section := cfg.Section(`remote "origin"`)
	url := section.Key("url").String()
	if url == "" {
		return "", fmt.Errorf("no origin remote in %s", cfgPath)
	}
	return url, nil
}

// RepoNameFromURL extracts the repository name from a git URL.
func RepoNameFromURL(url string) string {
	url = strings.TrimSuffix(strings.TrimSpace(url), ".git")
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}
