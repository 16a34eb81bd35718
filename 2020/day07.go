package main

import (
	"github.com/kestrel/aoc"
	"github.com/kestrel/aoc/parse"
)

const myBag = "shiny gold"

type bagContent struct {
	n     int
	color string
}

type bagRule struct {
	color    string
	contents []bagContent
}

var (
	bagColor = parse.Map(
		parse.Seq2(parse.Left(parse.Word(), parse.Literal(" ")), parse.Word()),
		func(p parse.Pair[string, string]) string { return p.A + " " + p.B },
	)
	bagNoun = parse.Seq2(parse.Literal(" bag"), parse.Opt(parse.Literal("s")))

	bagCount = parse.Map(
		parse.Seq2(parse.Left(parse.Uint(), parse.Literal(" ")), parse.Left(bagColor, bagNoun)),
		func(p parse.Pair[int, string]) bagContent { return bagContent{n: p.A, color: p.B} },
	)
	bagContents = parse.Or(
		parse.Means(parse.Literal("no other bags"), []bagContent(nil)),
		parse.SepBy1(bagCount, parse.Literal(", ")),
	)
	bagRuleLine = parse.Map(
		parse.Seq2(
			parse.Left(bagColor, parse.Seq2(bagNoun, parse.Literal(" contain "))),
			parse.Left(bagContents, parse.Literal(".")),
		),
		func(p parse.Pair[string, []bagContent]) bagRule {
			return bagRule{color: p.A, contents: p.B}
		},
	)
)

// bagGraph returns the containment graph: an edge from a to b weighted n
// means a bag of color a directly holds n bags of color b.
func (s solver) bagGraph() *aoc.Graph[string] {
	var g aoc.Graph[string]
	s.ForLines(func(line string) {
		r := aoc.MustGet(parse.All(bagRuleLine, line))
		g.AddNode(r.color)
		for _, c := range r.contents {
			g.AddDirectedEdge(r.color, c.color, c.n)
		}
	})
	return &g
}

/*
want=4

light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.
*/
func (s solver) D7p1() any {
	// Walking the reversed graph from our bag finds every bag that can
	// eventually hold it.
	holders := s.bagGraph().Reverse().ReachableNodes(myBag)
	return len(holders) - 1
}

// want=32
func (s solver) D7p2() any {
	g := s.bagGraph()
	type item struct {
		color string
		mult  int
	}
	total := 0
	var st aoc.Stack[item]
	st.Push(item{myBag, 1})
	st.While(func(it item) bool {
		for color, n := range g.Edges[it.color] {
			total += it.mult * n
			st.Push(item{color, it.mult * n})
		}
		return true
	})
	return total
}
