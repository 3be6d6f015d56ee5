package antipasto

import (
	"sort"

	"github.com/BrandonKowalski/antipasto/pkg/antipasto/internal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// List is the ordered set of rows a popup displays. Insertion order is
// display order. A list must not be mutated once its popup is open.
type List []Item

// Dimension is a width/height pair in output pixels.
type Dimension struct {
	W int32
	H int32
}

// ListDimension returns the size required to display every row in full:
// the sum of row heights and the widest row width.
func ListDimension(list List) Dimension {
	var dim Dimension
	for _, item := range list {
		dim.H += item.Height()
		dim.W = internal.Max32(dim.W, item.Width())
	}
	return dim
}

// BuildMenu builds a list from parallel label message IDs. The result value
// of each row is its index in labels, so hidden entries do not shift the
// results of the entries after them. Entries with their bit set in
// hiddenMask are left out entirely; entries with their bit set in
// disabledMask are included but masked.
func BuildMenu(labels []string, hiddenMask, disabledMask uint32, style *Style) List {
	var list List
	for i, id := range labels {
		if hasBit(hiddenMask, uint(i)) {
			continue
		}
		list = append(list, NewTextItem(id, i, hasBit(disabledMask, uint(i)), style))
	}
	return list
}

func hasBit(mask uint32, bit uint) bool {
	return mask&(1<<bit) != 0
}

// SortNatural sorts the list by label using natural ordering, so "entry 10"
// sorts after "entry 9". Every item in the list must implement Labeled.
func SortNatural(list List) {
	c := collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
	sort.SliceStable(list, func(i, j int) bool {
		a := list[i].(Labeled).Label()
		b := list[j].(Labeled).Label()
		return c.CompareString(a, b) < 0
	})
}
