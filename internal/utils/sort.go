package utils

import "sort"

// SortedKeys returns the integer keys of a map in ascending order, so
// per-region iteration stays deterministic.
func SortedKeys[T any](m map[int]T) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
