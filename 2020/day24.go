package main

import (
	"github.com/kestrel/aoc"
	"github.com/kestrel/aoc/parse"
)

// Hex tiles use axial coordinates: X grows to the east and Y to the
// south-east.
var hexDirs = map[string]aoc.Pt{
	"e":  {X: 1, Y: 0},
	"w":  {X: -1, Y: 0},
	"ne": {X: 1, Y: -1},
	"nw": {X: 0, Y: -1},
	"se": {X: 0, Y: 1},
	"sw": {X: -1, Y: 1},
}

var hexPath = parse.Many1(parse.Or(
	hexStep("se"), hexStep("sw"), hexStep("ne"), hexStep("nw"), hexStep("e"), hexStep("w"),
))

func hexStep(d string) parse.Parser[aoc.Pt] {
	return parse.Means(parse.Literal(d), hexDirs[d])
}

func hexNeighbors(p aoc.Pt, f func(aoc.Pt) bool) {
	for _, d := range hexDirs {
		if !f(p.Add(d)) {
			return
		}
	}
}

// lobbyTiles keeps a black tile with 1 or 2 black neighbors and turns a
// white tile black with exactly 2.
func lobbyTiles(black bool, n int) bool {
	if black {
		return n == 1 || n == 2
	}
	return n == 2
}

// flipTiles walks each path from the reference tile and flips the tile
// it ends on. It returns the tiles left black.
func flipTiles(paths []string) (aoc.Set[aoc.Pt], error) {
	black := aoc.NewSet[aoc.Pt]()
	for _, line := range paths {
		steps, err := parse.All(hexPath, line)
		if err != nil {
			return nil, err
		}
		var p aoc.Pt
		for _, d := range steps {
			p = p.Add(d)
		}
		if black.Has(p) {
			black.Delete(p)
		} else {
			black.Add(p)
		}
	}
	return black, nil
}

// livingFloor runs the daily flipping rules for the given number of days.
func livingFloor(black aoc.Set[aoc.Pt], days int) aoc.Set[aoc.Pt] {
	for day := 0; day < days; day++ {
		black = lifeStep(black, hexNeighbors, lobbyTiles)
	}
	return black
}

func (s solver) blackTiles() aoc.Set[aoc.Pt] {
	return aoc.MustGet(flipTiles(s.Lines()))
}

/*
want=10

sesenwnenenewseeswwswswwnenewsewsw
neeenesenwnwwswnenewnwwsewnenwseswesw
seswneswswsenwwnwse
nwnwneseeswswnenewneswwnewseswneseene
swweswneswnenwsewnwneneseenw
eesenwseswswnenwswnwnwsewwnwsene
sewnenenenesenwsewnenwwwse
wenwwweseeeweswwwnwwe
wsweesenenewnwwnwsenewsenwwsesesenwne
neeswseenwwswnwswswnw
nenwswwsewswnenenewsenwsenwnesesenew
enewnwewneswsewnwswenweswnenwsenwsw
sweneswneswneneenwnewenewwneswswnese
swwesenesewenwneswnwwneseswwne
enesenwswwswneneswsenwnewswseenwsese
wnwnesenesenenwwnenwsewesewsesesew
nenewswnwewswnenesenwnesewesw
eneswnwswnwsenenwnwnwwseeswneewsenese
neswnwewnwnwseenwseesewsenwsweewe
wseweeenwnesenwwwswnew
*/
func (s solver) D24p1() any {
	return s.blackTiles().Len()
}

// want=2208
func (s solver) D24p2() any {
	return livingFloor(s.blackTiles(), 100).Len()
}
