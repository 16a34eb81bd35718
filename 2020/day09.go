package main

import (
	"log"

	"github.com/kestrel/aoc"
)

// preamble is the XMAS window size. The samples use a shorter one.
func (s solver) preamble() int {
	if s.SampleMode {
		return 5
	}
	return 25
}

// sumOfTwo reports whether two different entries of window add up to n.
func sumOfTwo(window []int, n int) bool {
	seen := make(map[int]bool, len(window))
	for _, v := range window {
		if seen[n-v] && n-v != v {
			return true
		}
		seen[v] = true
	}
	return false
}

// firstInvalid returns the first number after the preamble that is not
// the sum of two of the preceding n numbers.
func firstInvalid(xs []int, n int) (int, bool) {
	for i := n; i < len(xs); i++ {
		if !sumOfTwo(xs[i-n:i], xs[i]) {
			return xs[i], true
		}
	}
	return 0, false
}

// contiguousSum returns a run of at least two consecutive numbers that
// add up to target.
func contiguousSum(xs []int, target int) ([]int, bool) {
	lo, sum := 0, 0
	for hi := 0; hi < len(xs); hi++ {
		sum += xs[hi]
		for sum > target && lo < hi {
			sum -= xs[lo]
			lo++
		}
		if sum == target && hi > lo {
			return xs[lo : hi+1], true
		}
	}
	return nil, false
}

func (s solver) xmasWeakness() int {
	xs := aoc.Ints(s.Lines()...)
	bad, ok := firstInvalid(xs, s.preamble())
	if !ok {
		log.Fatal("every number is valid")
	}
	return bad
}

/*
want=127

35
20
15
25
47
40
62
55
65
95
102
117
150
182
127
219
299
277
309
576
*/
func (s solver) D9p1() any {
	return s.xmasWeakness()
}

// want=62
func (s solver) D9p2() any {
	xs := aoc.Ints(s.Lines()...)
	run, ok := contiguousSum(xs, s.xmasWeakness())
	if !ok {
		log.Fatal("no contiguous range")
	}
	lo, hi := aoc.MinMax(run...)
	return lo + hi
}
