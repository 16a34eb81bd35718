package main

import (
	"fmt"

	"github.com/kestrel/aoc"
)

const (
	handshakeMod     = 20201227
	handshakeSubject = 7
)

// loopSize finds the loop size that transforms the subject number 7 into
// pub.
func loopSize(pub int64) (int, error) {
	v := int64(1)
	for n := 1; n < handshakeMod; n++ {
		v = v * handshakeSubject % handshakeMod
		if v == pub {
			return n, nil
		}
	}
	return 0, fmt.Errorf("no loop size yields public key %d", pub)
}

/*
want=14897079

5764801
17807724
*/
func (s solver) D25p1() any {
	lines := s.Lines()
	card, door := int64(aoc.Int(lines[0])), int64(aoc.Int(lines[1]))
	n := aoc.MustGet(loopSize(card))
	return aoc.ModPow(door, int64(n), handshakeMod)
}
