package main

import (
	"strings"
	"unicode"

	"github.com/kestrel/aoc"
	"github.com/kestrel/aoc/parse"
)

// passwordPolicy is a "lo-hi c" rule. Depending on the puzzle part,
// lo and hi are either count bounds or 1-based positions.
type passwordPolicy struct {
	lo, hi int
	char   byte
}

type passwordEntry struct {
	policy   passwordPolicy
	password string
}

var passwordLine = parse.Map(
	parse.Seq2(
		parse.Seq2(
			parse.Left(parse.Uint(), parse.Literal("-")),
			parse.Left(parse.Uint(), parse.Literal(" ")),
		),
		parse.Seq2(
			parse.Left(parse.Char("letter", unicode.IsLower), parse.Literal(": ")),
			parse.Rest(),
		),
	),
	func(p parse.Pair[parse.Pair[int, int], parse.Pair[rune, string]]) passwordEntry {
		return passwordEntry{
			policy: passwordPolicy{
				lo:   p.A.A,
				hi:   p.A.B,
				char: byte(p.B.A),
			},
			password: p.B.B,
		}
	},
)

func parsePasswordLine(line string) (passwordEntry, error) {
	return parse.All(passwordLine, line)
}

// validCount reports whether password holds between lo and hi
// occurrences of the policy letter.
func (pp passwordPolicy) validCount(password string) bool {
	n := strings.Count(password, string(pp.char))
	return n >= pp.lo && n <= pp.hi
}

// validPositions reports whether exactly one of the 1-based positions lo
// and hi holds the policy letter.
func (pp passwordPolicy) validPositions(password string) bool {
	at := func(pos int) bool {
		return pos >= 1 && pos <= len(password) && password[pos-1] == pp.char
	}
	return at(pp.lo) != at(pp.hi)
}

func (s solver) countValidPasswords(valid func(passwordPolicy, string) bool) int {
	count := 0
	s.ForLines(func(line string) {
		e := aoc.MustGet(parsePasswordLine(line))
		if valid(e.policy, e.password) {
			count++
		}
	})
	return count
}

/*
want=2

1-3 a: abcde
1-3 b: cdefg
2-9 c: ccccccccc
*/
func (s solver) D2p1() any {
	return s.countValidPasswords(passwordPolicy.validCount)
}

// want=1
func (s solver) D2p2() any {
	return s.countValidPasswords(passwordPolicy.validPositions)
}
