package antipasto

import "testing"

func TestBuildMenuSkipsHiddenWithoutRenumbering(t *testing.T) {
	style := testStyle()
	labels := []string{"Copy", "Paste", "Delete"}

	list := BuildMenu(labels, 1<<1, 1<<2, style)

	if len(list) != 2 {
		t.Fatalf("got %d rows, want 2", len(list))
	}
	first := list[0].(*TextItem)
	if first.Label() != "Copy" || first.Result() != 0 || first.Masked() {
		t.Fatalf("row 0 = %q/%d/masked=%v", first.Label(), first.Result(), first.Masked())
	}
	second := list[1].(*TextItem)
	if second.Label() != "Delete" || second.Result() != 2 {
		t.Fatalf("row 1 = %q/%d, want Delete/2", second.Label(), second.Result())
	}
	if !second.Masked() {
		t.Fatal("disabled row should be masked")
	}
}

func TestBuildMenuAllHidden(t *testing.T) {
	list := BuildMenu([]string{"a", "b"}, 0b11, 0, testStyle())
	if len(list) != 0 {
		t.Fatalf("got %d rows, want none", len(list))
	}
}

func TestSortNatural(t *testing.T) {
	style := testStyle()
	list := textList(style, "slot 10", "Slot 2", "slot 1")

	SortNatural(list)

	want := []string{"slot 1", "Slot 2", "slot 10"}
	for i, w := range want {
		if got := list[i].(Labeled).Label(); got != w {
			t.Fatalf("position %d = %q, want %q", i, got, w)
		}
	}
}

func TestSortNaturalStableAcrossCase(t *testing.T) {
	style := testStyle()
	list := textList(style, "alpha", "Alpha")

	SortNatural(list)

	// Case is ignored, so equal labels keep their insertion order.
	if got := list[0].(Labeled).Label(); got != "alpha" {
		t.Fatalf("first = %q, want the original first entry", got)
	}
}
