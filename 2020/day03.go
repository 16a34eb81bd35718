package main

import "github.com/kestrel/aoc"

// treesOnSlope counts the trees hit going from the top-left corner by
// slope until falling off the bottom. The map repeats to the right.
func treesOnSlope(g aoc.Grid[byte], slope aoc.Pt) int {
	size := g.Size()
	trees := 0
	for p := (aoc.Pt{}); p.Y < size.Y; p = p.Add(slope) {
		if g.At(aoc.StandardizePt(p, size)) == '#' {
			trees++
		}
	}
	return trees
}

/*
want=7

..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#
*/
func (s solver) D3p1() any {
	return treesOnSlope(aoc.ParseGrid(s.Lines()), aoc.Pt{X: 3, Y: 1})
}

// want=336
func (s solver) D3p2() any {
	g := aoc.ParseGrid(s.Lines())
	prod := 1
	for _, slope := range []aoc.Pt{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 5, Y: 1}, {X: 7, Y: 1}, {X: 1, Y: 2}} {
		prod *= treesOnSlope(g, slope)
	}
	return prod
}
