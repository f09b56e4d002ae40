package functional

import "testing"

func TestIterator(t *testing.T) {
	t.Run("FromSlice yields in index order", func(t *testing.T) {
		got := Collect(FromSlice([]int{3, 1, 2}))
		want := []int{3, 1, 2}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})

	t.Run("yield false stops early", func(t *testing.T) {
		seen := 0
		FromSlice([]int{1, 2, 3})(func(int) bool {
			seen++
			return seen < 2
		})
		if seen != 2 {
			t.Errorf("expected 2 elements seen, got %d", seen)
		}
	})

	t.Run("Collect on empty source is empty", func(t *testing.T) {
		if len(Collect(FromSlice[int](nil))) != 0 {
			t.Error("expected empty collection")
		}
	})
}
