// Package thread turns the flat, unordered comment collections the API
// returns into a deterministic, hierarchy-respecting presentation
// order, and tracks drill-down navigation over the result.
package thread

import (
	"sort"
	"strings"

	"github.com/threadiverse/temi/domain"
)

// Compare is a total order over comments. The key is the parsed
// ancestry path compared element-wise, so every comment sorts
// immediately after its chain of ancestors and before any unrelated
// subtree; when one path is a strict prefix of the other, the ancestor
// sorts first. Fully equal paths fall back to child count, id, then
// published timestamp so the order stays total even for degenerate
// input. Comments whose claimed ancestors are missing from the
// collection still land where that part of the tree would have been.
func Compare(a, b domain.Comment) int {
	ap := domain.ParsePath(a.Path)
	bp := domain.ParsePath(b.Path)

	for i := 0; i < len(ap) && i < len(bp); i++ {
		switch {
		case ap[i] < bp[i]:
			return -1
		case ap[i] > bp[i]:
			return 1
		}
	}
	switch {
	case len(ap) < len(bp):
		return -1
	case len(ap) > len(bp):
		return 1
	}

	switch {
	case a.ChildCount < b.ChildCount:
		return -1
	case a.ChildCount > b.ChildCount:
		return 1
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return strings.Compare(a.Published, b.Published)
}

// Sort orders items in place with Compare. One whole-collection pass;
// no per-level recursion needed.
func Sort(items []domain.Comment) {
	sort.SliceStable(items, func(i, j int) bool {
		return Compare(items[i], items[j]) < 0
	})
}
