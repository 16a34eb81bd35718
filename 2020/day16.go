package main

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/kestrel/aoc"
	"github.com/kestrel/aoc/parse"
)

type span struct{ lo, hi int }

type ticketField struct {
	name   string
	ranges []span
}

func (f ticketField) accepts(v int) bool {
	for _, r := range f.ranges {
		if v >= r.lo && v <= r.hi {
			return true
		}
	}
	return false
}

type ticketNotes struct {
	fields []ticketField
	mine   []int
	nearby [][]int
}

var (
	spanP = parse.Map(
		parse.Seq2(parse.Left(parse.Uint(), parse.Literal("-")), parse.Uint()),
		func(p parse.Pair[int, int]) span { return span{p.A, p.B} },
	)
	ticketFieldP = parse.Map(
		parse.Seq2(
			parse.Left(
				parse.TakeWhile1("field name", func(r rune) bool { return r != ':' }),
				parse.Literal(": "),
			),
			parse.SepBy1(spanP, parse.Literal(" or ")),
		),
		func(p parse.Pair[string, []span]) ticketField {
			return ticketField{name: p.A, ranges: p.B}
		},
	)
	ticketP = parse.SepBy1(parse.Uint(), parse.Literal(","))
)

func parseTicketNotes(groups [][]string) (ticketNotes, error) {
	if len(groups) != 3 {
		return ticketNotes{}, fmt.Errorf("want 3 sections, got %d", len(groups))
	}
	var n ticketNotes
	for _, line := range groups[0] {
		f, err := parse.All(ticketFieldP, line)
		if err != nil {
			return ticketNotes{}, err
		}
		n.fields = append(n.fields, f)
	}
	if len(groups[1]) != 2 || groups[1][0] != "your ticket:" {
		return ticketNotes{}, fmt.Errorf("bad ticket section %q", groups[1])
	}
	mine, err := parse.All(ticketP, groups[1][1])
	if err != nil {
		return ticketNotes{}, err
	}
	n.mine = mine
	if groups[2][0] != "nearby tickets:" {
		return ticketNotes{}, fmt.Errorf("bad nearby section %q", groups[2][0])
	}
	for _, line := range groups[2][1:] {
		t, err := parse.All(ticketP, line)
		if err != nil {
			return ticketNotes{}, err
		}
		n.nearby = append(n.nearby, t)
	}
	return n, nil
}

func (n ticketNotes) anyField(v int) bool {
	return slices.ContainsFunc(n.fields, func(f ticketField) bool { return f.accepts(v) })
}

// fieldOrder returns, for each field index, the ticket column that holds
// it. Columns are resolved by repeatedly pinning a field that only one
// column can still match.
func (n ticketNotes) fieldOrder() ([]int, error) {
	var valid [][]int
	for _, t := range n.nearby {
		if !slices.ContainsFunc(t, func(v int) bool { return !n.anyField(v) }) {
			valid = append(valid, t)
		}
	}
	candidates := make([]aoc.Set[int], len(n.fields))
	for fi, f := range n.fields {
		candidates[fi] = aoc.NewSet[int]()
	columns:
		for col := range n.mine {
			for _, t := range valid {
				if !f.accepts(t[col]) {
					continue columns
				}
			}
			candidates[fi].Add(col)
		}
	}
	order := make([]int, len(n.fields))
	for resolved := 0; resolved < len(n.fields); resolved++ {
		fi := slices.IndexFunc(candidates, func(c aoc.Set[int]) bool { return c != nil && c.Len() == 1 })
		if fi == -1 {
			return nil, fmt.Errorf("ambiguous fields after resolving %d", resolved)
		}
		col := aoc.AnyKey(candidates[fi])
		order[fi] = col
		candidates[fi] = nil
		for _, c := range candidates {
			if c != nil {
				c.Delete(col)
			}
		}
	}
	return order, nil
}

func (s solver) ticketNotes() ticketNotes {
	return aoc.MustGet(parseTicketNotes(s.Groups()))
}

/*
want=71

class: 1-3 or 5-7
row: 6-11 or 33-44
seat: 13-40 or 45-50

your ticket:
7,1,14

nearby tickets:
7,3,47
40,4,50
55,2,20
38,6,12
*/
func (s solver) D16p1() any {
	n := s.ticketNotes()
	rate := 0
	for _, t := range n.nearby {
		for _, v := range t {
			if !n.anyField(v) {
				rate += v
			}
		}
	}
	return rate
}

/*
want=156

departure class: 0-1 or 4-19
row: 0-5 or 8-19
departure seat: 0-13 or 16-19

your ticket:
11,12,13

nearby tickets:
3,9,18
15,1,5
5,14,9
*/
func (s solver) D16p2() any {
	n := s.ticketNotes()
	order, err := n.fieldOrder()
	if err != nil {
		log.Fatal(err)
	}
	prod := 1
	for fi, f := range n.fields {
		if strings.HasPrefix(f.name, "departure") {
			prod *= n.mine[order[fi]]
		}
	}
	return prod
}
