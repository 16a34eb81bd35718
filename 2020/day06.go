package main

import "github.com/kestrel/aoc"

// groupAnswers returns, for each group, the set of questions answered by
// each person.
func (s solver) groupAnswers() [][]aoc.Set[rune] {
	var out [][]aoc.Set[rune]
	for _, g := range s.Groups() {
		var people []aoc.Set[rune]
		for _, line := range g {
			people = append(people, aoc.NewSet([]rune(line)...))
		}
		out = append(out, people)
	}
	return out
}

func (s solver) sumGroups(combine func(a, b aoc.Set[rune]) aoc.Set[rune]) int {
	total := 0
	for _, people := range s.groupAnswers() {
		total += aoc.Fold(people[1:], combine, people[0]).Len()
	}
	return total
}

/*
want=11

abc

a
b
c

ab
ac

a
a
a
a

b
*/
func (s solver) D6p1() any {
	return s.sumGroups(aoc.Set[rune].Union)
}

// want=6
func (s solver) D6p2() any {
	return s.sumGroups(aoc.Set[rune].Intersect)
}
