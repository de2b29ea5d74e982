package branch

import (
	"fmt"
	"regexp"
)

// descriptionPattern is the character class the grammar allows for
// descriptions.
var descriptionPattern = regexp.MustCompile(`^[-\w]+$`)

// New builds a Branch from its parts, validating each before
// construction. The resulting name is <date><marker>-<description> and
// parses back to an identical Branch.
func New(t Type, date int, description string) (Branch, error) {
	marker, err := t.Marker()
	if err != nil {
		return Branch{}, err
	}
	if err := ValidateDate(date); err != nil {
		return Branch{}, err
	}
	if !descriptionPattern.MatchString(description) {
		return Branch{}, fmt.Errorf("invalid description %q: only letters, digits, underscores and hyphens are allowed", description)
	}

	return Branch{
		date:        date,
		typ:         t,
		description: description,
		name:        fmt.Sprintf("%06d%s-%s", date, marker, description),
	}, nil
}

// ChildName derives a child branch name from a full parent name and a
// child description, joined by the double-hyphen separator.
func ChildName(parent, description string) (string, error) {
	if parent == "" {
		return "", fmt.Errorf("parent branch name is empty")
	}
	if !descriptionPattern.MatchString(description) {
		return "", fmt.Errorf("invalid description %q: only letters, digits, underscores and hyphens are allowed", description)
	}
	return parent + ParentSeparator + description, nil
}
