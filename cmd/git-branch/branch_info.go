package main

import (
	"encoding/json"

	"github.com/dashifen/git-branch/internal/branch"
	"github.com/dashifen/git-branch/internal/output"
)

// branchJSON is the JSON shape shared by parse, current and list.
type branchJSON struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Date        int    `json:"date"`
	Description string `json:"description"`
	Parent      string `json:"parent,omitempty"`
	IsChild     bool   `json:"is_child"`
	IsParent    bool   `json:"is_parent"`
	Current     bool   `json:"current,omitempty"`
}

// toBranchJSON converts a parsed branch. allNames may be nil when no
// repository listing is available; is_parent is then always false.
func toBranchJSON(b branch.Branch, allNames []string, current string) branchJSON {
	return branchJSON{
		Name:        b.Name(),
		Type:        b.Type().String(),
		Date:        b.Date(),
		Description: b.Description(),
		Parent:      b.Parent(),
		IsChild:     b.IsChild(),
		IsParent:    b.IsParent(allNames),
		Current:     current != "" && b.Name() == current,
	}
}

// printBranchJSON writes a single branch as indented JSON.
func printBranchJSON(out *output.Printer, b branch.Branch, allNames []string, current string) error {
	data, err := json.MarshalIndent(toBranchJSON(b, allNames, current), "", "  ")
	if err != nil {
		return err
	}
	out.Println(string(data))
	return nil
}

// printBranchDetails writes the parsed fields one per line.
func printBranchDetails(out *output.Printer, b branch.Branch) {
	out.Printf("name:        %s\n", b.Name())
	out.Printf("type:        %s\n", b.Type())
	out.Printf("date:        %06d\n", b.Date())
	out.Printf("description: %s\n", b.Description())
	if parent := b.Parent(); parent != "" {
		out.Printf("parent:      %s\n", parent)
	}
}
