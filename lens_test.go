package optics

import (
	"testing"

	"github.com/authcorp/optics/functional"
)

type profile struct {
	Name string
	Age  int
}

func nameLens() Lens[profile, string] {
	return NewLens(
		func(p profile) string { return p.Name },
		func(p profile, n string) profile { p.Name = n; return p },
	)
}

func TestLens(t *testing.T) {
	l := nameLens()
	p := profile{Name: "ada", Age: 36}

	t.Run("Get reads the focus", func(t *testing.T) {
		if l.Get(p) != "ada" {
			t.Errorf("expected ada, got %s", l.Get(p))
		}
	})

	t.Run("Set replaces the focus without mutating the source", func(t *testing.T) {
		updated := l.Set(p, "grace")
		if updated.Name != "grace" || p.Name != "ada" {
			t.Error("expected a fresh value with the new focus")
		}
	})

	t.Run("Modify applies a function to the focus", func(t *testing.T) {
		updated := l.Modify(p, func(n string) string { return n + "!" })
		if updated.Name != "ada!" {
			t.Errorf("expected ada!, got %s", updated.Name)
		}
	})

	t.Run("AsFold has exactly one target", func(t *testing.T) {
		f := l.AsFold()
		got := f.GetAll(p)
		if len(got) != 1 || got[0] != "ada" {
			t.Errorf("expected [ada], got %v", got)
		}
		if f.Size(p) != 1 {
			t.Error("expected size 1")
		}
	})

	t.Run("ComposeLens focuses deeper", func(t *testing.T) {
		type wrapper struct{ P profile }
		outer := NewLens(
			func(w wrapper) profile { return w.P },
			func(w wrapper, p profile) wrapper { w.P = p; return w },
		)
		composed := ComposeLens(outer, l)
		w := wrapper{P: p}
		if composed.Get(w) != "ada" {
			t.Error("expected composed get to reach the inner focus")
		}
		if composed.Set(w, "grace").P.Name != "grace" {
			t.Error("expected composed set to rewrite the inner focus")
		}
	})
}

func TestIdentityLens(t *testing.T) {
	l := IdentityLens[int]()
	if l.Get(5) != 5 {
		t.Error("expected identity get")
	}
	if l.Set(5, 9) != 9 {
		t.Error("expected identity set to replace the source")
	}
}

func TestAt(t *testing.T) {
	l := At[string, int]("k")
	m := map[string]int{"k": 1, "other": 2}

	t.Run("Get present key", func(t *testing.T) {
		if got := l.Get(m); got.IsNone() || got.Unwrap() != 1 {
			t.Errorf("expected Some(1), got %v", got)
		}
	})

	t.Run("Get absent key", func(t *testing.T) {
		if At[string, int]("missing").Get(m).IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("Set Some inserts without mutating", func(t *testing.T) {
		updated := l.Set(m, functional.Some(9))
		if updated["k"] != 9 || m["k"] != 1 {
			t.Error("expected a fresh map with the new value")
		}
	})

	t.Run("Set None deletes the key", func(t *testing.T) {
		updated := l.Set(m, functional.None[int]())
		if _, ok := updated["k"]; ok {
			t.Error("expected key to be deleted")
		}
		if _, ok := m["k"]; !ok {
			t.Error("expected source map untouched")
		}
	})
}
