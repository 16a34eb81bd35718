package main

import (
	"log"
	"strings"

	"github.com/kestrel/aoc"
)

type bus struct {
	id     int
	offset int // position in the schedule, in minutes after t
}

type busNotes struct {
	earliest int
	buses    []bus
}

func parseBusNotes(lines []string) busNotes {
	if len(lines) < 2 {
		log.Fatalf("want 2 lines, got %d", len(lines))
	}
	n := busNotes{earliest: aoc.Int(lines[0])}
	for i, f := range strings.Split(lines[1], ",") {
		if f == "x" {
			continue
		}
		n.buses = append(n.buses, bus{id: aoc.Int(f), offset: i})
	}
	return n
}

// earliestDeparture returns t such that each bus leaves offset minutes
// after t, i.e. t ≡ -offset (mod id) for every bus.
func earliestDeparture(buses []bus) (int64, error) {
	var cs []aoc.Congruence
	for _, b := range buses {
		cs = append(cs, aoc.Congruence{Rem: int64(-b.offset), Mod: int64(b.id)})
	}
	t, _, err := aoc.CRT(cs...)
	return t, err
}

/*
want=295

939
7,13,x,x,59,x,31,19
*/
func (s solver) D13p1() any {
	notes := parseBusNotes(s.Lines())
	bestID, bestWait := 0, -1
	for _, b := range notes.buses {
		wait := aoc.Mod(-notes.earliest, b.id)
		if bestWait == -1 || wait < bestWait {
			bestID, bestWait = b.id, wait
		}
	}
	return bestID * bestWait
}

// want=1068781
func (s solver) D13p2() any {
	return aoc.MustGet(earliestDeparture(parseBusNotes(s.Lines()).buses))
}
