package core

import "testing"

func TestByteGridIndexRoundTrip(t *testing.T) {
	g := NewByteGrid(5, 3)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			gx, gy := g.Coords(g.Index(x, y))
			if gx != x || gy != y {
				t.Fatalf("Coords(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 2)
	cases := []struct {
		x, y int
		in   bool
	}{
		{0, 0, true},
		{3, 1, true},
		{-1, 0, false},
		{4, 0, false},
		{0, 2, false},
		{0, -1, false},
	}
	for _, tc := range cases {
		if got := g.InBounds(tc.x, tc.y); got != tc.in {
			t.Fatalf("InBounds(%d,%d) = %v, expected %v", tc.x, tc.y, got, tc.in)
		}
	}
}

func TestByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestByteGridCopyToIsDetached(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Set(1, 2, 7)

	snap := g.CopyTo(nil)
	if snap[g.Index(1, 2)] != 7 {
		t.Fatalf("expected copied value 7, got %d", snap[g.Index(1, 2)])
	}
	snap[0] = 9
	if g.At(0, 0) != 0 {
		t.Fatal("mutating the copy must not touch the grid")
	}

	reused := g.CopyTo(snap)
	if &reused[0] != &snap[0] {
		t.Fatal("expected CopyTo to reuse a large enough buffer")
	}

	g.Clear()
	if g.At(1, 2) != 0 {
		t.Fatal("Clear must zero every cell")
	}
}
