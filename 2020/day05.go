package main

import (
	"log"
	"slices"
	"strings"

	"github.com/kestrel/aoc"
)

// seatBits maps the binary space partitioning letters to bits: the
// first seven letters pick the row, the last three the column, so the
// whole pass read as a binary number is row*8 + col.
var seatBits = strings.NewReplacer("F", "0", "B", "1", "L", "0", "R", "1")

func seatID(pass string) int {
	if len(pass) != 10 || strings.Trim(pass, "FBLR") != "" {
		log.Fatalf("bad boarding pass: %q", pass)
	}
	return int(aoc.ParseBinary(seatBits.Replace(pass)))
}

func (s solver) seatIDs() []int {
	var ids []int
	s.ForLines(func(line string) {
		ids = append(ids, seatID(line))
	})
	return ids
}

/*
want=121

FFFBBBFRRL
FFFBBBFRRR
FFFBBBBLLR
*/
func (s solver) D5p1() any {
	_, hi := aoc.MinMax(s.seatIDs()...)
	return hi
}

// want=120
func (s solver) D5p2() any {
	ids := s.seatIDs()
	slices.Sort(ids)
	for i := 1; i < len(ids); i++ {
		if ids[i]-ids[i-1] == 2 {
			return ids[i] - 1
		}
	}
	log.Fatal("no free seat")
	return nil
}
