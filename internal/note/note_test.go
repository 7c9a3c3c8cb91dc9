package note

import (
	"slices"
	"testing"
)

func TestSplitAttachmentsTrimsAndDropsEmpties(t *testing.T) {
	got := SplitAttachments(" 3_1_Recipes.jpg, 3_2_Recipes.jpg ,,")
	want := []string{"3_1_Recipes.jpg", "3_2_Recipes.jpg"}
	if !slices.Equal(got, want) {
		t.Fatalf("SplitAttachments returned %v, want %v", got, want)
	}
}

func TestSplitAttachmentsEmptyColumn(t *testing.T) {
	if got := SplitAttachments(""); got != nil {
		t.Fatalf("expected nil for empty column, got %v", got)
	}
	if got := SplitAttachments("  "); got != nil {
		t.Fatalf("expected nil for blank column, got %v", got)
	}
}

func TestJoinAttachmentsRoundTrip(t *testing.T) {
	files := []string{"5_1_plan.jpg", "5_2_plan.jpg"}
	if got := SplitAttachments(JoinAttachments(files)); !slices.Equal(got, files) {
		t.Fatalf("round trip returned %v, want %v", got, files)
	}
	if JoinAttachments(nil) != "" {
		t.Fatal("empty list should serialize to the empty string")
	}
}

func TestDecodeBodyUnescapesEntities(t *testing.T) {
	n := Note{Body: "if a &lt; b &amp;&amp; b &gt; c"}
	if got := n.DecodeBody(); got != "if a < b && b > c" {
		t.Fatalf("DecodeBody returned %q", got)
	}
}

func TestDisplayDate(t *testing.T) {
	if got := (Note{Created: "2025-10-02"}).DisplayDate(); got != "2025-10-02" {
		t.Fatalf("DisplayDate returned %q", got)
	}
	// Unparseable dates fall back to the raw column text.
	if got := (Note{Created: "sometime"}).DisplayDate(); got != "sometime" {
		t.Fatalf("DisplayDate fallback returned %q", got)
	}
	if got := (Note{}).DisplayDate(); got != "" {
		t.Fatalf("empty created should render empty, got %q", got)
	}
}
