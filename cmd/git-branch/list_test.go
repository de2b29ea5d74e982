package main

import (
	"reflect"
	"testing"

	"github.com/dashifen/git-branch/internal/branch"
)

func TestClassifyAll(t *testing.T) {
	t.Parallel()

	names := []string{"main", "220622f-feature", "220622r-release", "220622f-feature--child"}

	t.Run("classifies every name", func(t *testing.T) {
		t.Parallel()
		branches, err := classifyAll(names, "")
		if err != nil {
			t.Fatalf("classifyAll() error = %v", err)
		}
		if len(branches) != len(names) {
			t.Fatalf("classifyAll() returned %d branches, want %d", len(branches), len(names))
		}

		got := make([]branch.Type, len(branches))
		for i, b := range branches {
			got[i] = b.Type()
		}
		want := []branch.Type{branch.TypeUnknown, branch.TypeFeature, branch.TypeRelease, branch.TypeFeature}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("types = %v, want %v", got, want)
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		t.Parallel()
		branches, err := classifyAll(names, "feature")
		if err != nil {
			t.Fatalf("classifyAll() error = %v", err)
		}
		if len(branches) != 2 {
			t.Fatalf("classifyAll(feature) returned %d branches, want 2", len(branches))
		}
		for _, b := range branches {
			if !b.IsFeature() {
				t.Errorf("branch %s is not a feature branch", b.Name())
			}
		}
	})

	t.Run("filter accepts markers", func(t *testing.T) {
		t.Parallel()
		branches, err := classifyAll(names, "r")
		if err != nil {
			t.Fatalf("classifyAll() error = %v", err)
		}
		if len(branches) != 1 || !branches[0].IsRelease() {
			t.Errorf("classifyAll(r) = %v, want the one release branch", branches)
		}
	})

	t.Run("unknown filter value", func(t *testing.T) {
		t.Parallel()
		if _, err := classifyAll(names, "hotfix"); err == nil {
			t.Error("classifyAll(hotfix) = nil error, want failure")
		}
	})
}

func TestListRow(t *testing.T) {
	t.Parallel()

	parse := func(t *testing.T, name string) branch.Branch {
		t.Helper()
		b, err := branch.Parse(name, false)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", name, err)
		}
		return b
	}

	t.Run("conforming branch", func(t *testing.T) {
		t.Parallel()
		b := parse(t, "220622f-parent--child")
		row := listRow(b, nil, "", false)
		want := []string{"", "220622f-parent--child", "feature", "220622", "220622f-parent"}
		if !reflect.DeepEqual(row, want) {
			t.Errorf("listRow() = %v, want %v", row, want)
		}
	})

	t.Run("current branch marked", func(t *testing.T) {
		t.Parallel()
		b := parse(t, "main")
		row := listRow(b, nil, "main", false)
		if row[0] != "*" {
			t.Errorf("current marker = %q, want *", row[0])
		}
	})

	t.Run("unknown branch blanks date and parent", func(t *testing.T) {
		t.Parallel()
		b := parse(t, "main")
		row := listRow(b, nil, "", false)
		if row[2] != "unknown" || row[3] != "-" || row[4] != "-" {
			t.Errorf("listRow() = %v, want unknown type with - placeholders", row)
		}
	})
}

func TestToBranchJSON(t *testing.T) {
	t.Parallel()

	b, err := branch.Parse("220622f-parent", false)
	if err != nil {
		t.Fatal(err)
	}

	got := toBranchJSON(b, []string{"220622f-parent", "220622f-parent--child"}, "220622f-parent")
	if !got.IsParent {
		t.Error("IsParent = false, want true")
	}
	if got.IsChild {
		t.Error("IsChild = true, want false")
	}
	if !got.Current {
		t.Error("Current = false, want true")
	}
	if got.Name != "220622f-parent" || got.Type != "feature" || got.Date != 220622 {
		t.Errorf("unexpected fields: %+v", got)
	}

	// Without a name list parenthood is unknowable and reported false.
	got = toBranchJSON(b, nil, "")
	if got.IsParent || got.Current {
		t.Errorf("nil list should report no parenthood: %+v", got)
	}
}
