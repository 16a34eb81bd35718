package main

import "github.com/kestrel/aoc"

const (
	floor    = '.'
	emptySt  = 'L'
	occupied = '#'
)

// seatRule counts the occupied seats that the seat at p reacts to.
type seatRule func(g aoc.Grid[byte], p aoc.Pt) int

func adjacentOccupied(g aoc.Grid[byte], p aoc.Pt) int {
	n := 0
	p.ForNeighbors(func(q aoc.Pt) bool {
		if v, ok := g.AtOk(q); ok && v == occupied {
			n++
		}
		return true
	})
	return n
}

// visibleOccupied looks past floor in each of the eight directions and
// counts the directions whose first seat is occupied.
func visibleOccupied(g aoc.Grid[byte], p aoc.Pt) int {
	n := 0
	aoc.Pt{}.ForNeighbors(func(dir aoc.Pt) bool {
		for q := p.Add(dir); ; q = q.Add(dir) {
			v, ok := g.AtOk(q)
			if !ok || v == emptySt {
				break
			}
			if v == occupied {
				n++
				break
			}
		}
		return true
	})
	return n
}

// seatStep applies one round of the seating rules. Seats empty when
// tolerance or more of the seats they react to are occupied.
func seatStep(g aoc.Grid[byte], rule seatRule, tolerance int) aoc.Grid[byte] {
	next := g.Clone()
	g.ForEach(func(p aoc.Pt, v byte) {
		switch v {
		case emptySt:
			if rule(g, p) == 0 {
				next.Set(p, occupied)
			}
		case occupied:
			if rule(g, p) >= tolerance {
				next.Set(p, emptySt)
			}
		}
	})
	return next
}

// settle runs seatStep until the layout stops changing and returns the
// number of occupied seats.
func (s solver) settle(rule seatRule, tolerance int) int {
	g := aoc.ParseGrid(s.Lines())
	h := g.Hash()
	for round := 1; ; round++ {
		next := seatStep(g, rule, tolerance)
		nh := next.Hash()
		if nh == h {
			s.Debugf("stable after %d rounds:\n%v", round, next)
			break
		}
		g, h = next, nh
	}
	return g.Count(func(v byte) bool { return v == occupied })
}

/*
want=37

L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
*/
func (s solver) D11p1() any {
	return s.settle(adjacentOccupied, 4)
}

// want=26
func (s solver) D11p2() any {
	return s.settle(visibleOccupied, 5)
}
