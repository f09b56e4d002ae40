package optics

import "testing"

func TestSetIso(t *testing.T) {
	iso := SetIso[string]()
	raw := map[string]struct{}{"a": {}, "b": {}}

	t.Run("Get wraps the native set", func(t *testing.T) {
		s := iso.Get(raw)
		if !s.Contains("a") || s.Contains("z") {
			t.Error("expected wrapper to mirror the raw set")
		}
	})

	t.Run("round-trip preserves the set", func(t *testing.T) {
		back := iso.Reverse(iso.Get(raw))
		if len(back) != len(raw) {
			t.Error("expected round-trip to preserve size")
		}
		for k := range raw {
			if _, ok := back[k]; !ok {
				t.Errorf("expected %q to survive the round-trip", k)
			}
		}
	})

	t.Run("AsFold plugs the native set into the algebra", func(t *testing.T) {
		f := iso.AsFold()
		got := f.GetAll(raw)
		if len(got) != 1 || !got[0].Contains("b") {
			t.Errorf("expected a single wrapped-set target, got %v", got)
		}
	})
}
