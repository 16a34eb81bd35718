package main

import (
	"fmt"

	"github.com/kestrel/aoc"
	"github.com/kestrel/aoc/parse"
)

// msgRule matches either a literal or any of the alternative sequences
// of sub-rules.
type msgRule struct {
	lit  string
	alts [][]int
}

type msgRules map[int]msgRule

var (
	msgRuleLit = parse.Map(
		parse.Between(parse.Literal(`"`), parse.Word(), parse.Literal(`"`)),
		func(s string) msgRule { return msgRule{lit: s} },
	)
	msgRuleSeq  = parse.SepBy1(parse.Uint(), parse.Literal(" "))
	msgRuleAlts = parse.Map(
		parse.SepBy1(msgRuleSeq, parse.Literal(" | ")),
		func(alts [][]int) msgRule { return msgRule{alts: alts} },
	)
	msgRuleLine = parse.Seq2(
		parse.Left(parse.Uint(), parse.Literal(": ")),
		parse.Or(msgRuleLit, msgRuleAlts),
	)
)

func parseMsgRules(lines []string) (msgRules, error) {
	rules := msgRules{}
	for _, line := range lines {
		r, err := parse.All(msgRuleLine, line)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", line, err)
		}
		rules[r.A] = r.B
	}
	return rules, nil
}

// ends returns every position at which rule id can finish matching msg
// when it starts at pos.
func (rs msgRules) ends(id int, msg string, pos int) []int {
	r, ok := rs[id]
	if !ok {
		panic(fmt.Sprintf("unknown rule %d", id))
	}
	if r.lit != "" {
		if pos+len(r.lit) <= len(msg) && msg[pos:pos+len(r.lit)] == r.lit {
			return []int{pos + len(r.lit)}
		}
		return nil
	}
	var out []int
	for _, seq := range r.alts {
		cur := []int{pos}
		for _, sub := range seq {
			var next []int
			for _, p := range cur {
				if p < len(msg) {
					next = append(next, rs.ends(sub, msg, p)...)
				}
			}
			cur = next
			if len(cur) == 0 {
				break
			}
		}
		out = append(out, cur...)
	}
	return out
}

func (rs msgRules) matches(msg string) bool {
	for _, end := range rs.ends(0, msg, 0) {
		if end == len(msg) {
			return true
		}
	}
	return false
}

func (s solver) countMatching(loops bool) int {
	groups := s.Groups()
	if len(groups) != 2 {
		panic(fmt.Sprintf("want rules and messages, got %d sections", len(groups)))
	}
	rules := aoc.MustGet(parseMsgRules(groups[0]))
	if loops {
		rules[8] = msgRule{alts: [][]int{{42}, {42, 8}}}
		rules[11] = msgRule{alts: [][]int{{42, 31}, {42, 11, 31}}}
	}
	n := 0
	for _, msg := range groups[1] {
		if rules.matches(msg) {
			n++
		}
	}
	return n
}

/*
want=2

0: 4 1 5
1: 2 3 | 3 2
2: 4 4 | 5 5
3: 4 5 | 5 4
4: "a"
5: "b"

ababbb
bababa
abbbab
aaabbb
aaaabbb
*/
func (s solver) D19p1() any {
	return s.countMatching(false)
}

/*
want=12

42: 9 14 | 10 1
9: 14 27 | 1 26
10: 23 14 | 28 1
1: "a"
11: 42 31
5: 1 14 | 15 1
19: 14 1 | 14 14
12: 24 14 | 19 1
16: 15 1 | 14 14
31: 14 17 | 1 13
6: 14 14 | 1 14
2: 1 24 | 14 4
0: 8 11
13: 14 3 | 1 12
15: 1 | 14
17: 14 2 | 1 7
23: 25 1 | 22 14
28: 16 1
4: 1 1
20: 14 14 | 1 15
3: 5 14 | 16 1
27: 1 6 | 14 18
14: "b"
21: 14 1 | 1 14
25: 1 1 | 1 14
22: 14 14
8: 42
26: 14 22 | 1 20
18: 15 15
7: 14 5 | 1 21
24: 14 1

abbbbbabbbaaaababbaabbbbabababbbabbbbbbabaaaa
bbabbbbaabaabba
babbbbaabbbbbabbbbbbaabaaabaaa
aaabbbbbbaaaabaababaabababbabaaabbababababaaa
bbbbbbbaaaabbbbaaabbabaaa
bbbababbbbaaaaaaaabbababaaababaabab
ababaaaaaabaaab
ababaaaaabbbaba
baabbaaaabbaaaababbaababb
abbbbabbbbaaaababbbbbbaaaababb
aaaaabbaabaaaaababaa
aaaabbaaaabbaaa
aaaabbaabbaaaaaaabbbabbbaaabbaabaaa
babaaabbbaaabaababbaabababaaab
aabbbbbaabbbaaaaaabbbbbababaaaaabbaaabba
*/
func (s solver) D19p2() any {
	return s.countMatching(true)
}
