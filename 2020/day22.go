package main

import (
	"fmt"
	"strings"

	"github.com/kestrel/aoc"
)

type deck = aoc.Queue[int]

func (s solver) decks() (deck, deck) {
	groups := s.Groups()
	if len(groups) != 2 {
		panic(fmt.Sprintf("want 2 players, got %d", len(groups)))
	}
	return aoc.NewQueue(aoc.Ints(groups[0][1:]...)...), aoc.NewQueue(aoc.Ints(groups[1][1:]...)...)
}

func deckScore(d deck) int {
	cards := d.Slice()
	score := 0
	for i, c := range cards {
		score += c * (len(cards) - i)
	}
	return score
}

// combat plays until one deck is empty and returns the winning deck.
func combat(p1, p2 deck) deck {
	for p1.Len() > 0 && p2.Len() > 0 {
		a, _ := p1.Pop()
		b, _ := p2.Pop()
		if a > b {
			p1.Push(a)
			p1.Push(b)
		} else {
			p2.Push(b)
			p2.Push(a)
		}
	}
	if p1.Len() > 0 {
		return p1
	}
	return p2
}

func deckKey(p1, p2 *deck) string {
	return fmt.Sprint(p1.Slice(), "|", p2.Slice())
}

// recursiveCombat plays a game of Recursive Combat and reports whether
// player 1 won, together with the winner's deck. A repeated position ends
// the game in player 1's favor.
func recursiveCombat(p1, p2 deck) (p1Wins bool, winner deck) {
	seen := aoc.NewSet[string]()
	for p1.Len() > 0 && p2.Len() > 0 {
		k := deckKey(&p1, &p2)
		if seen.Has(k) {
			return true, p1
		}
		seen.Add(k)

		a, _ := p1.Pop()
		b, _ := p2.Pop()
		var roundTo1 bool
		if p1.Len() >= a && p2.Len() >= b {
			roundTo1, _ = recursiveCombat(
				aoc.NewQueue(p1.Slice()[:a]...),
				aoc.NewQueue(p2.Slice()[:b]...),
			)
		} else {
			roundTo1 = a > b
		}
		if roundTo1 {
			p1.Push(a)
			p1.Push(b)
		} else {
			p2.Push(b)
			p2.Push(a)
		}
	}
	if p1.Len() > 0 {
		return true, p1
	}
	return false, p2
}

/*
want=306

Player 1:
9
2
6
3
1

Player 2:
5
8
4
7
10
*/
func (s solver) D22p1() any {
	return deckScore(combat(s.decks()))
}

// want=291
func (s solver) D22p2() any {
	p1, p2 := s.decks()
	_, w := recursiveCombat(p1, p2)
	s.Debugf("winning deck: %s", strings.Trim(fmt.Sprint(w.Slice()), "[]"))
	return deckScore(w)
}
