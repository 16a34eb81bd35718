package main

import (
	"log"

	"github.com/kestrel/aoc"
)

type navInstr struct {
	action byte
	value  int
}

func (s solver) navigation() []navInstr {
	var out []navInstr
	s.ForLines(func(line string) {
		out = append(out, navInstr{line[0], aoc.Int(line[1:])})
	})
	return out
}

var compass = map[byte]aoc.Direction{
	'N': aoc.Up,
	'E': aoc.Right,
	'S': aoc.Down,
	'W': aoc.Left,
}

// quarterTurns converts an L/R angle into a number of right turns in
// [0, 4).
func quarterTurns(action byte, degrees int) int {
	if degrees%90 != 0 {
		log.Fatalf("bad rotation %d", degrees)
	}
	n := degrees / 90
	if action == 'L' {
		n = -n
	}
	return aoc.Mod(n, 4)
}

/*
want=25

F10
N3
F7
R90
F11
*/
func (s solver) D12p1() any {
	var pos aoc.Pt
	heading := aoc.Right
	for _, in := range s.navigation() {
		switch in.action {
		case 'N', 'E', 'S', 'W':
			pos = pos.Add(compass[in.action].Delta().Scale(in.value))
		case 'L', 'R':
			for i := quarterTurns(in.action, in.value); i > 0; i-- {
				heading = heading.Turn(true)
			}
		case 'F':
			pos = pos.Add(heading.Delta().Scale(in.value))
		default:
			log.Fatalf("unknown action %q", in.action)
		}
	}
	return pos.MDist(aoc.Pt{})
}

// want=286
func (s solver) D12p2() any {
	var ship aoc.Pt
	waypoint := aoc.Pt{X: 10, Y: -1}
	for _, in := range s.navigation() {
		switch in.action {
		case 'N', 'E', 'S', 'W':
			waypoint = waypoint.Add(compass[in.action].Delta().Scale(in.value))
		case 'L', 'R':
			for i := quarterTurns(in.action, in.value); i > 0; i-- {
				waypoint = waypoint.RotateRight()
			}
		case 'F':
			ship = ship.Add(waypoint.Scale(in.value))
		default:
			log.Fatalf("unknown action %q", in.action)
		}
	}
	return ship.MDist(aoc.Pt{})
}
