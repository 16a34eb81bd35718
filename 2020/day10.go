package main

import (
	"log"
	"slices"

	"github.com/kestrel/aoc"
)

// joltageChain returns the sorted adapter ratings with the outlet (0)
// prepended and the device (max+3) appended.
func (s solver) joltageChain() []int {
	xs := append([]int{0}, aoc.Ints(s.Lines()...)...)
	slices.Sort(xs)
	return append(xs, xs[len(xs)-1]+3)
}

/*
want=35

16
10
15
5
1
11
7
19
6
12
4
*/
func (s solver) D10p1() any {
	ones, threes := 0, 0
	xs := s.joltageChain()
	for i := 1; i < len(xs); i++ {
		switch d := xs[i] - xs[i-1]; d {
		case 1:
			ones++
		case 3:
			threes++
		default:
			log.Fatalf("invalid input (found %d gap)", d)
		}
	}
	return ones * threes
}

// want=8
func (s solver) D10p2() any {
	xs := s.joltageChain()
	// ways[i] is the number of arrangements from xs[i] to the device.
	ways := make([]int, len(xs))
	ways[len(xs)-1] = 1
	for i := len(xs) - 2; i >= 0; i-- {
		for j := i + 1; j < len(xs) && xs[j]-xs[i] <= 3; j++ {
			ways[i] += ways[j]
		}
	}
	return ways[0]
}
