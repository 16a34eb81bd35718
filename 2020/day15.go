package main

import "github.com/kestrel/aoc"

// memoryGame returns the nth number spoken in the elves' game.
func memoryGame(start []int, n int) int {
	if n <= len(start) {
		return start[n-1]
	}
	_, hi := aoc.MinMax(start...)
	// lastSeen[v] is the 1-based turn v was last spoken before the
	// current turn, or 0. Spoken numbers past the start are ages, so
	// they stay below n.
	lastSeen := make([]int32, max(n, hi+1))
	for i, v := range start[:len(start)-1] {
		lastSeen[v] = int32(i + 1)
	}
	cur := start[len(start)-1]
	for turn := len(start); turn < n; turn++ {
		prev := lastSeen[cur]
		lastSeen[cur] = int32(turn)
		if prev == 0 {
			cur = 0
		} else {
			cur = turn - int(prev)
		}
	}
	return cur
}

/*
want=436

0,3,6
*/
func (s solver) D15p1() any {
	return memoryGame(aoc.Fields(s.Text(), ","), 2020)
}

// want=175594
func (s solver) D15p2() any {
	return memoryGame(aoc.Fields(s.Text(), ","), 30000000)
}
