package main

import "github.com/kestrel/aoc"

// lifeRule reports whether a cell is active in the next cycle given its
// current state and its number of active neighbors.
type lifeRule func(active bool, neighbors int) bool

// conwayCubes keeps an active cube with 2 or 3 active neighbors and
// activates an inactive cube with exactly 3.
func conwayCubes(active bool, n int) bool {
	return n == 3 || (n == 2 && active)
}

// lifeStep runs one cycle of rule over an unbounded space. Cells without
// any active neighbor are always inactive afterwards.
func lifeStep[P comparable](active aoc.Set[P], forNeighbors func(P, func(P) bool), rule lifeRule) aoc.Set[P] {
	counts := map[P]int{}
	for p := range active {
		forNeighbors(p, func(q P) bool {
			counts[q]++
			return true
		})
	}
	next := aoc.NewSet[P]()
	for p, n := range counts {
		if rule(active.Has(p), n) {
			next.Add(p)
		}
	}
	return next
}

// bootCubes lifts the active cells of the initial slice into P space and
// returns the number of active cubes after six cycles.
func bootCubes[P comparable](g aoc.Grid[byte], lift func(aoc.Pt) P, forNeighbors func(P, func(P) bool)) int {
	active := aoc.NewSet[P]()
	g.ForEach(func(p aoc.Pt, v byte) {
		if v == '#' {
			active.Add(lift(p))
		}
	})
	for i := 0; i < 6; i++ {
		active = lifeStep(active, forNeighbors, conwayCubes)
	}
	return active.Len()
}

/*
want=112

.#.
..#
###
*/
func (s solver) D17p1() any {
	g := aoc.ParseGrid(s.Lines())
	return bootCubes(g, func(p aoc.Pt) aoc.Pt3Int { return aoc.Pt3Int{X: p.X, Y: p.Y} }, aoc.Pt3Int.ForNeighbors)
}

// want=848
func (s solver) D17p2() any {
	g := aoc.ParseGrid(s.Lines())
	return bootCubes(g, func(p aoc.Pt) aoc.Pt4Int { return aoc.Pt4Int{X: p.X, Y: p.Y} }, aoc.Pt4Int.ForNeighbors)
}
