package aoc

import "testing"

func TestGridTransforms(t *testing.T) {
	g := ParseGrid([]string{
		"ab",
		"cd",
		"ef",
	})
	tests := []struct {
		name string
		got  Grid[byte]
		want string
	}{
		{"rotate", g.RotateCounterClockwise(), "bdf\nace\n"},
		{"flip", g.FlipHorizontal(), "ba\ndc\nfe\n"},
	}
	for _, tt := range tests {
		if got := tt.got.String(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
		}
	}
	if got := g.String(); got != "ab\ncd\nef\n" {
		t.Errorf("transforms modified the grid: %q", got)
	}
}

func TestOrientations(t *testing.T) {
	g := ParseGrid([]string{
		"#..",
		"#..",
		"##.",
	})
	os := g.Orientations()
	if len(os) != 8 {
		t.Fatalf("got %d orientations, want 8", len(os))
	}
	seen := map[string]bool{}
	for _, o := range os {
		seen[o.String()] = true
	}
	if len(seen) != 8 {
		t.Errorf("got %d distinct orientations, want 8", len(seen))
	}
}

func TestGridHash(t *testing.T) {
	a := ParseGrid([]string{"L.L", "#.#"})
	b := a.Clone()
	if a.Hash() != b.Hash() {
		t.Error("equal grids hash differently")
	}
	b.Set(Pt{X: 1, Y: 0}, '#')
	if a.Hash() == b.Hash() {
		t.Error("different grids hash equally")
	}
}

func TestGridHashConcurrent(t *testing.T) {
	var grids []Grid[byte]
	for i := 0; i < 16; i++ {
		g := ParseGrid([]string{"....", "...."})
		g.Set(Pt{X: i % 4, Y: i / 8}, '#')
		grids = append(grids, g)
	}
	// Byte and bool grids need separate hashers, so both populate the
	// shared cache at once.
	got := Parallel(grids, func(g Grid[byte]) bool {
		b := MakeGrid[bool](2, 2)
		b.Set(Pt{}, g.At(Pt{}) == '#')
		return g.Hash() == g.Clone().Hash() && b.Hash() == b.Clone().Hash()
	})
	for i, ok := range got {
		if !ok {
			t.Errorf("grid %d: clone hashed differently", i)
		}
	}
}

func TestAtOk(t *testing.T) {
	g := ParseGrid([]string{"ab", "cd"})
	for _, p := range []Pt{{X: -1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}} {
		if _, ok := g.AtOk(p); ok {
			t.Errorf("AtOk(%v) = ok, want out of bounds", p)
		}
	}
	if v, ok := g.AtOk(Pt{X: 1, Y: 1}); !ok || v != 'd' {
		t.Errorf("AtOk(1,1) = %q, %v", v, ok)
	}
}

func TestRotate(t *testing.T) {
	p := Pt{X: 10, Y: -4}
	if got := p.RotateRight(); got != (Pt{X: 4, Y: 10}) {
		t.Errorf("RotateRight = %v", got)
	}
	if got := p.RotateRight().RotateRight().RotateRight().RotateRight(); got != p {
		t.Errorf("four right turns = %v, want %v", got, p)
	}
	if got := Right.Turn(true).Delta(); got != (Pt{X: 0, Y: 1}) {
		t.Errorf("Right.Turn(right).Delta = %v, want down", got)
	}
}

func TestNeighborCounts(t *testing.T) {
	count := func(forNeighbors func(func() bool)) int {
		n := 0
		forNeighbors(func() bool { n++; return true })
		return n
	}
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"2d", count(func(f func() bool) { Pt{}.ForNeighbors(func(Pt) bool { return f() }) }), 8},
		{"3d", count(func(f func() bool) { Pt3Int{}.ForNeighbors(func(Pt3Int) bool { return f() }) }), 26},
		{"4d", count(func(f func() bool) { Pt4Int{}.ForNeighbors(func(Pt4Int) bool { return f() }) }), 80},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: %d neighbors, want %d", tt.name, tt.got, tt.want)
		}
	}
}
