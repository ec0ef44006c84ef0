package utils

import "testing"

func TestSortedKeys(t *testing.T) {
	m := map[int]float64{3: 0.3, 1: 0.1, 2: 0.2}
	got := SortedKeys(m)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %d, want %d", i, got[i], want[i])
		}
	}

	if keys := SortedKeys(map[int]string{}); len(keys) != 0 {
		t.Errorf("empty map: got %v, want no keys", keys)
	}
}
