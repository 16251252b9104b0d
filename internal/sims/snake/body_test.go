package snake

import (
	"slices"
	"testing"

	"mad-snake/internal/core"
)

func TestBodyWrapsAroundRing(t *testing.T) {
	b := newBody(3)
	a, c, d, e := Position{0, 0}, Position{0, 1}, Position{0, 2}, Position{1, 2}
	b.pushFront(a)
	b.pushFront(c)
	b.pushFront(d)

	if got := b.popBack(); got != a {
		t.Fatalf("popBack = %v, expected %v", got, a)
	}
	b.pushFront(e)

	want := []Position{e, d, c}
	if got := b.appendTo(nil); !slices.Equal(got, want) {
		t.Fatalf("body = %v, expected %v", got, want)
	}
	if b.head() != e || b.tail() != c {
		t.Fatalf("head/tail = %v/%v, expected %v/%v", b.head(), b.tail(), e, c)
	}
}

func TestBodyOverflowPanics(t *testing.T) {
	b := newBody(1)
	b.pushFront(Position{})
	defer func() {
		if recover() == nil {
			t.Fatal("expected pushing past capacity to panic")
		}
	}()
	b.pushFront(Position{0, 1})
}

func TestFreeCellsAddRemove(t *testing.T) {
	f := newFreeCells(4)
	f.remove(1)
	f.remove(1)
	f.remove(3)
	if f.len() != 2 || f.contains(1) || f.contains(3) {
		t.Fatalf("unexpected free set %v", f.slots)
	}
	f.add(3)
	f.add(3)
	if f.len() != 3 || !f.contains(3) {
		t.Fatalf("unexpected free set after add %v", f.slots)
	}

	rng := core.NewRNG(5)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		cell := f.pick(rng)
		if !f.contains(cell) {
			t.Fatalf("picked non-free cell %d", cell)
		}
		seen[cell] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected every free cell to be picked, saw %v", seen)
	}
}
