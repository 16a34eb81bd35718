package main

import (
	"github.com/kestrel/aoc"
	"github.com/kestrel/aoc/parse"
)

type binop = func(a, b int) int

var (
	addOp = parse.Means(parse.Token(parse.Literal("+")), binop(func(a, b int) int { return a + b }))
	mulOp = parse.Means(parse.Token(parse.Literal("*")), binop(func(a, b int) int { return a * b }))
)

// flatExpr evaluates + and * left to right with equal precedence.
var flatExpr parse.Parser[int]

// advancedExpr evaluates + before *.
var advancedExpr parse.Parser[int]

func init() {
	flatExpr = parse.ChainL1(term(&flatExpr), parse.Or(addOp, mulOp))
	advancedExpr = parse.ChainL1(parse.ChainL1(term(&advancedExpr), addOp), mulOp)
}

// term is a number or a parenthesised expression of the grammar *expr.
func term(expr *parse.Parser[int]) parse.Parser[int] {
	paren := parse.Lazy(func() parse.Parser[int] {
		return parse.Between(parse.Token(parse.Literal("(")), *expr, parse.Token(parse.Literal(")")))
	})
	return parse.Or(parse.Token(parse.Uint()), paren)
}

func (s solver) sumHomework(expr parse.Parser[int]) int {
	sum := 0
	s.ForLines(func(line string) {
		sum += aoc.MustGet(parse.All(expr, line))
	})
	return sum
}

/*
want=26457

1 + 2 * 3 + 4 * 5 + 6
1 + (2 * 3) + (4 * (5 + 6))
2 * 3 + (4 * 5)
5 + (8 * 3 + 9 + 3 * 4 * 3)
5 * 9 * (7 * 3 * 3 + 9 * 3 + (8 + 6 * 4))
((2 + 4 * 9) * (6 + 9 * 8 + 6) + 6) + 2 + 4 * 2
*/
func (s solver) D18p1() any {
	return s.sumHomework(flatExpr)
}

// want=694173
func (s solver) D18p2() any {
	return s.sumHomework(advancedExpr)
}
