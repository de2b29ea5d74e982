package branch

import "strings"

// ParentSeparator joins a parent branch name and a child description.
const ParentSeparator = "--"

// IsChild reports whether the branch was derived from a parent, i.e.
// its name contains the double-hyphen separator.
func (b Branch) IsChild() bool {
	return strings.Contains(b.name, ParentSeparator)
}

// Parent returns the name of the branch's parent: everything before the
// last double-hyphen separator. For a chain A--B--C this is A--B, not
// A. Returns "" when the branch has no recorded ancestor.
func (b Branch) Parent() string {
	idx := strings.LastIndex(b.name, ParentSeparator)
	if idx < 0 {
		return ""
	}
	return b.name[:idx]
}

// IsParent reports whether some other branch in allNames was derived
// from this one. Detection is by string prefix: children are named
// <parent>--<description>, so any other name starting with this
// branch's full name counts. A coincidental prefix overlap on names
// outside the convention is misreported as parenthood; that is a known
// limit of prefix matching.
func (b Branch) IsParent(allNames []string) bool {
	for _, name := range allNames {
		if name != b.name && strings.HasPrefix(name, b.name) {
			return true
		}
	}
	return false
}
