package main

import (
	"log"

	"github.com/kestrel/aoc"
)

// expenses returns the expense report entries.
func (s solver) expenses() []int {
	return aoc.Ints(s.Lines()...)
}

// findSum returns the indices of n distinct entries of xs that add up to
// target.
func findSum(xs []int, n, target int) ([]int, bool) {
	if n == 0 {
		return nil, target == 0
	}
	for i := range xs {
		rest, ok := findSum(xs[i+1:], n-1, target-xs[i])
		if !ok {
			continue
		}
		out := []int{i}
		for _, j := range rest {
			out = append(out, i+1+j)
		}
		return out, true
	}
	return nil, false
}

func productOfSum(xs []int, n, target int) int {
	idx, ok := findSum(xs, n, target)
	if !ok {
		log.Fatalf("no %d entries sum to %d", n, target)
	}
	prod := 1
	for _, i := range idx {
		prod *= xs[i]
	}
	return prod
}

/*
want=514579

1721
979
366
299
675
1456
*/
func (s solver) D1p1() any {
	return productOfSum(s.expenses(), 2, 2020)
}

// want=241861950
func (s solver) D1p2() any {
	return productOfSum(s.expenses(), 3, 2020)
}
