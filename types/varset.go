package types

import (
	"sort"

	"github.com/xtgo/set"
)

// UnionVars returns the sorted, deduplicated union of two variable-id sets.
// Both a and b must already be sorted and deduplicated.
func UnionVars(a, b []int) []int {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	combined := append(append([]int{}, a...), b...)
	n := set.Union(sort.IntSlice(combined), len(a))
	return combined[:n]
}

// UnionAll folds UnionVars over every set in vs.
func UnionAll(vs ...[]int) []int {
	var out []int
	for _, v := range vs {
		out = UnionVars(out, v)
	}
	return out
}

// Diff returns a \ b (every id in a that is not in b). Both must be sorted
// and deduplicated.
func Diff(a, b []int) []int {
	if len(a) == 0 || len(b) == 0 {
		return a
	}
	combined := append(append([]int{}, a...), b...)
	n := set.Diff(sort.IntSlice(combined), len(a))
	return combined[:n]
}

// Contains reports whether id is present in the sorted set vars.
func Contains(vars []int, id int) bool {
	i := sort.SearchInts(vars, id)
	return i < len(vars) && vars[i] == id
}
