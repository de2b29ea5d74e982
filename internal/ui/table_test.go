package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dashifen/git-branch/internal/branch"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	t.Run("renders headers and rows", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		RenderTable(&buf, []string{"BRANCH", "TYPE"}, [][]string{
			{"220622f-feature", "feature"},
			{"main", "unknown"},
		})
		out := buf.String()
		for _, want := range []string{"BRANCH", "TYPE", "220622f-feature", "main", "unknown"} {
			if !strings.Contains(out, want) {
				t.Errorf("table output %q missing %q", out, want)
			}
		}
	})

	t.Run("empty rows render nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		RenderTable(&buf, []string{"BRANCH"}, nil)
		if buf.Len() != 0 {
			t.Errorf("empty table wrote %q", buf.String())
		}
	})
}

func TestTypeLabel(t *testing.T) {
	t.Parallel()

	// Without color the label is the plain type name.
	for _, typ := range []branch.Type{branch.TypeRelease, branch.TypeFeature, branch.TypeBugFix, branch.TypeUnknown} {
		if got := TypeLabel(typ, false); got != typ.String() {
			t.Errorf("TypeLabel(%v, false) = %q, want %q", typ, got, typ.String())
		}
	}

	// With color the plain name must still be contained in the styled
	// output.
	got := TypeLabel(branch.TypeFeature, true)
	if !strings.Contains(got, "feature") {
		t.Errorf("TypeLabel(feature, true) = %q, want to contain %q", got, "feature")
	}
}
