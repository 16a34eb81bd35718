package main

import (
	"fmt"
	"testing"

	"github.com/kestrel/aoc"
)

// synthTiles cuts a 3x3 tile image out of a generated picture. Every
// shared border carries a distinct asymmetric pattern, so tiles only fit
// together one way. A single sea monster and three stray '#' cells are
// drawn into the tile interiors.
func synthTiles(t *testing.T) (groups [][]string, corners []int) {
	t.Helper()
	const (
		n    = 3
		step = 9 // tiles are 10x10 and share their border lines
	)
	size := n*step + 1
	pic := aoc.MakeGrid[byte](size, size)
	pic.ForEach(func(p aoc.Pt, _ byte) { pic.Set(p, '.') })

	seg := 0
	drawSegment := func(at func(k int) aoc.Pt) {
		pic.Set(at(1), '#')
		for b := 0; b < 6; b++ {
			if seg&(1<<b) != 0 {
				pic.Set(at(2+b), '#')
			}
		}
		seg++
	}
	for j := 0; j <= n; j++ {
		for i := 0; i < n; i++ {
			i, j := i, j
			drawSegment(func(k int) aoc.Pt { return aoc.Pt{X: i*step + k, Y: j * step} })
			drawSegment(func(k int) aoc.Pt { return aoc.Pt{X: j * step, Y: i*step + k} })
		}
	}

	const inner = step - 1
	pixel := func(p aoc.Pt) aoc.Pt {
		return aoc.Pt{X: p.X/inner*step + p.X%inner + 1, Y: p.Y/inner*step + p.Y%inner + 1}
	}
	for _, c := range seaMonsterCells() {
		pic.Set(pixel(c.Add(aoc.Pt{X: 2, Y: 3})), '#')
	}
	for _, p := range []aoc.Pt{{X: 23, Y: 23}, {X: 0, Y: 20}, {X: 12, Y: 16}} {
		pic.Set(pixel(p), '#')
	}

	for ty := 0; ty < n; ty++ {
		for tx := 0; tx < n; tx++ {
			id := 1000 + 10*ty + tx
			tile := aoc.MakeGrid[byte](step+1, step+1)
			tile.ForEach(func(p aoc.Pt, _ byte) {
				tile.Set(p, pic.At(p.Add(aoc.Pt{X: tx * step, Y: ty * step})))
			})
			tile = tile.Orientations()[(tx+2*ty)%8]
			g := []string{fmt.Sprintf("Tile %d:", id)}
			for _, row := range tile {
				g = append(g, string(row))
			}
			groups = append(groups, g)
			if (tx == 0 || tx == n-1) && (ty == 0 || ty == n-1) {
				corners = append(corners, id)
			}
		}
	}
	return groups, corners
}

func TestJurassicJigsaw(t *testing.T) {
	groups, corners := synthTiles(t)

	got, err := cornerProduct(groups)
	if err != nil {
		t.Fatal(err)
	}
	if want := aoc.Product(corners...); got != want {
		t.Errorf("cornerProduct = %d, want %d", got, want)
	}

	r, err := roughness(groups)
	if err != nil {
		t.Fatal(err)
	}
	if r != 3 {
		t.Errorf("roughness = %d, want 3", r)
	}
}

func TestWaterRoughnessNoMonsters(t *testing.T) {
	img := aoc.ParseGrid([]string{"#..", ".#.", "..#"})
	if _, err := waterRoughness(img); err == nil {
		t.Error("waterRoughness succeeded on an image without monsters")
	}
}
