package main

import (
	"strconv"
	"strings"

	"github.com/kestrel/aoc"
)

// cupCircle stores the cups as a successor table: next[c] is the cup
// clockwise of c. Cups are labeled 1..n.
type cupCircle struct {
	next []int32
	cur  int32
}

func newCupCircle(labels []int, n int) *cupCircle {
	c := &cupCircle{next: make([]int32, n+1)}
	order := make([]int32, 0, n)
	for _, l := range labels {
		order = append(order, int32(l))
	}
	for l := len(labels) + 1; l <= n; l++ {
		order = append(order, int32(l))
	}
	for i, l := range order {
		c.next[l] = order[(i+1)%len(order)]
	}
	c.cur = order[0]
	return c
}

func (c *cupCircle) move() {
	n := int32(len(c.next) - 1)
	a := c.next[c.cur]
	b := c.next[a]
	d := c.next[b]
	c.next[c.cur] = c.next[d]

	dest := c.cur
	for {
		dest--
		if dest == 0 {
			dest = n
		}
		if dest != a && dest != b && dest != d {
			break
		}
	}
	c.next[d] = c.next[dest]
	c.next[dest] = a
	c.cur = c.next[c.cur]
}

func (c *cupCircle) play(moves int) {
	for i := 0; i < moves; i++ {
		c.move()
	}
}

// after returns the labels clockwise of cup 1, excluding it.
func (c *cupCircle) after() string {
	var sb strings.Builder
	for l := c.next[1]; l != 1; l = c.next[l] {
		sb.WriteString(strconv.Itoa(int(l)))
	}
	return sb.String()
}

/*
want=67384529

389125467
*/
func (s solver) D23p1() any {
	labels := aoc.Digits(s.Text())
	c := newCupCircle(labels, len(labels))
	c.play(100)
	return c.after()
}

// want=149245887792
func (s solver) D23p2() any {
	c := newCupCircle(aoc.Digits(s.Text()), 1_000_000)
	c.play(10_000_000)
	a := c.next[1]
	return int(a) * int(c.next[a])
}
