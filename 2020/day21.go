package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kestrel/aoc"
	"github.com/kestrel/aoc/parse"
	"golang.org/x/exp/maps"
)

type food struct {
	ingredients []string
	allergens   []string
}

var foodLine = parse.Map(
	parse.Seq2(
		parse.SepBy1(parse.Word(), parse.Literal(" ")),
		parse.Opt(parse.Between(
			parse.Literal(" (contains "),
			parse.SepBy1(parse.Word(), parse.Literal(", ")),
			parse.Literal(")"),
		)),
	),
	func(p parse.Pair[[]string, []string]) food {
		return food{ingredients: p.A, allergens: p.B}
	},
)

func (s solver) foods() []food {
	var out []food
	s.ForLines(func(line string) {
		out = append(out, aoc.MustGet(parse.All(foodLine, line)))
	})
	return out
}

// allergenCandidates maps each allergen to the ingredients present in
// every food that lists it.
func allergenCandidates(foods []food) map[string]aoc.Set[string] {
	cands := map[string]aoc.Set[string]{}
	for _, f := range foods {
		ings := aoc.NewSet(f.ingredients...)
		for _, a := range f.allergens {
			if c, ok := cands[a]; ok {
				cands[a] = c.Intersect(ings)
			} else {
				cands[a] = ings.Clone()
			}
		}
	}
	return cands
}

// resolveAllergens pins each allergen to its ingredient by repeatedly
// taking an allergen with a single candidate left.
func resolveAllergens(cands map[string]aoc.Set[string]) (map[string]string, error) {
	out := map[string]string{}
	for len(cands) > 0 {
		var done string
		for a, c := range cands {
			if c.Len() == 1 {
				done = a
				break
			}
		}
		if done == "" {
			return nil, fmt.Errorf("cannot resolve allergens %v", maps.Keys(cands))
		}
		ing := aoc.AnyKey(cands[done])
		out[done] = ing
		delete(cands, done)
		for _, c := range cands {
			c.Delete(ing)
		}
	}
	return out, nil
}

/*
want=5

mxmxvkd kfcds sqjhc nhms (contains dairy, fish)
trh fvjkl sbzzf mxmxvkd (contains dairy)
sqjhc fvjkl (contains soy)
sqjhc mxmxvkd sbzzf (contains fish)
*/
func (s solver) D21p1() any {
	foods := s.foods()
	unsafe := aoc.NewSet[string]()
	for _, c := range allergenCandidates(foods) {
		unsafe = unsafe.Union(c)
	}
	n := 0
	for _, f := range foods {
		for _, ing := range f.ingredients {
			if !unsafe.Has(ing) {
				n++
			}
		}
	}
	return n
}

// want=mxmxvkd,sqjhc,fvjkl
func (s solver) D21p2() any {
	byAllergen := aoc.MustGet(resolveAllergens(allergenCandidates(s.foods())))
	allergens := maps.Keys(byAllergen)
	slices.Sort(allergens)
	ings := make([]string, len(allergens))
	for i, a := range allergens {
		ings[i] = byAllergen[a]
	}
	return strings.Join(ings, ",")
}
