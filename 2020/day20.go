package main

import (
	"fmt"
	"slices"

	"github.com/kestrel/aoc"
	"github.com/kestrel/aoc/parse"
	"tailscale.com/util/deephash"
)

type imageTile struct {
	id   int
	grid aoc.Grid[byte]
}

var tileHeader = parse.Between(parse.Literal("Tile "), parse.Uint(), parse.Literal(":"))

func parseTiles(groups [][]string) (map[int]aoc.Grid[byte], error) {
	tiles := make(map[int]aoc.Grid[byte], len(groups))
	for _, g := range groups {
		id, err := parse.All(tileHeader, g[0])
		if err != nil {
			return nil, err
		}
		tiles[id] = aoc.ParseGrid(g[1:])
	}
	return tiles, nil
}

func reversed(s string) string {
	b := []byte(s)
	slices.Reverse(b)
	return string(b)
}

// canonicalBorder makes a border compare equal to itself read backwards.
func canonicalBorder(s string) string {
	return min(s, reversed(s))
}

func tileBorders(g aoc.Grid[byte]) []string {
	last := len(g) - 1
	return []string{
		string(g.Row(0)),
		string(g.Row(last)),
		string(g.Col(0)),
		string(g.Col(last)),
	}
}

// tileLayout holds the tiles and which of them share a border.
type tileLayout struct {
	tiles map[int]aoc.Grid[byte]
	adj   *aoc.Graph[int]
	// borders counts the tiles carrying each canonical border.
	borders map[string]int
}

func newTileLayout(tiles map[int]aoc.Grid[byte]) *tileLayout {
	l := &tileLayout{
		tiles:   tiles,
		adj:     &aoc.Graph[int]{},
		borders: map[string]int{},
	}
	owners := map[string][]int{}
	for id, g := range tiles {
		l.adj.AddNode(id)
		for _, b := range tileBorders(g) {
			c := canonicalBorder(b)
			owners[c] = append(owners[c], id)
			l.borders[c]++
		}
	}
	for _, ids := range owners {
		if len(ids) == 2 {
			l.adj.AddEdge(ids[0], ids[1], 1)
		}
	}
	return l
}

// corners returns the tiles with exactly two neighbors.
func (l *tileLayout) corners() []int {
	var out []int
	for id := range l.tiles {
		if l.adj.Degree(id) == 2 {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// orientations returns the distinct orientations of g. Symmetric tiles
// have fewer than eight.
func orientations(g aoc.Grid[byte]) []aoc.Grid[byte] {
	seen := aoc.NewSet[deephash.Sum]()
	var out []aoc.Grid[byte]
	for _, o := range g.Orientations() {
		h := o.Hash()
		if seen.Has(h) {
			continue
		}
		seen.Add(h)
		out = append(out, o)
	}
	return out
}

func (l *tileLayout) outer(border []byte) bool {
	return l.borders[canonicalBorder(string(border))] == 1
}

// assemble lays the tiles out in a square, each oriented so that touching
// borders agree.
func (l *tileLayout) assemble() ([][]imageTile, error) {
	n := 0
	for n*n < len(l.tiles) {
		n++
	}
	if n*n != len(l.tiles) {
		return nil, fmt.Errorf("%d tiles do not form a square", len(l.tiles))
	}
	corners := l.corners()
	if len(corners) != 4 {
		return nil, fmt.Errorf("found %d corner tiles, want 4", len(corners))
	}

	placed := aoc.NewSet[int]()
	layout := make([][]imageTile, n)
	for y := range layout {
		layout[y] = make([]imageTile, n)
	}
	start := corners[0]
	for _, o := range orientations(l.tiles[start]) {
		if l.outer(o.Row(0)) && l.outer(o.Col(0)) {
			layout[0][0] = imageTile{start, o}
			break
		}
	}
	if layout[0][0].grid == nil {
		return nil, fmt.Errorf("corner tile %d has no outer orientation", start)
	}
	placed.Add(start)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x == 0 && y == 0 {
				continue
			}
			var prev imageTile
			var fits func(aoc.Grid[byte]) bool
			if x > 0 {
				prev = layout[y][x-1]
				want := string(prev.grid.Col(len(prev.grid[0]) - 1))
				fits = func(g aoc.Grid[byte]) bool { return string(g.Col(0)) == want }
			} else {
				prev = layout[y-1][x]
				want := string(prev.grid.Row(len(prev.grid) - 1))
				fits = func(g aoc.Grid[byte]) bool { return string(g.Row(0)) == want }
			}
			t, ok := l.nextTo(prev.id, placed, fits)
			if !ok {
				return nil, fmt.Errorf("no tile fits at %d,%d", x, y)
			}
			layout[y][x] = t
			placed.Add(t.id)
		}
	}
	return layout, nil
}

func (l *tileLayout) nextTo(id int, placed aoc.Set[int], fits func(aoc.Grid[byte]) bool) (imageTile, bool) {
	for nb := range l.adj.Edges[id] {
		if placed.Has(nb) {
			continue
		}
		for _, o := range orientations(l.tiles[nb]) {
			if fits(o) {
				return imageTile{nb, o}, true
			}
		}
	}
	return imageTile{}, false
}

// stitch drops every tile's border and joins the rest into one image.
func stitch(layout [][]imageTile) aoc.Grid[byte] {
	inner := len(layout[0][0].grid) - 2
	img := aoc.MakeGrid[byte](len(layout)*inner, len(layout)*inner)
	for ty, row := range layout {
		for tx, t := range row {
			for y := 0; y < inner; y++ {
				for x := 0; x < inner; x++ {
					img[ty*inner+y][tx*inner+x] = t.grid[y+1][x+1]
				}
			}
		}
	}
	return img
}

var seaMonster = []string{
	"                  # ",
	"#    ##    ##    ###",
	" #  #  #  #  #  #   ",
}

func seaMonsterCells() []aoc.Pt {
	var out []aoc.Pt
	for y, row := range seaMonster {
		for x, c := range row {
			if c == '#' {
				out = append(out, aoc.Pt{X: x, Y: y})
			}
		}
	}
	return out
}

// monsterCells returns the cells of img covered by a sea monster.
func monsterCells(img aoc.Grid[byte]) aoc.Set[aoc.Pt] {
	cells := seaMonsterCells()
	found := aoc.NewSet[aoc.Pt]()
	size := img.Size()
	for y := 0; y+len(seaMonster) <= size.Y; y++ {
		for x := 0; x+len(seaMonster[0]) <= size.X; x++ {
			at := aoc.Pt{X: x, Y: y}
			if slices.ContainsFunc(cells, func(c aoc.Pt) bool { return img.At(at.Add(c)) != '#' }) {
				continue
			}
			for _, c := range cells {
				found.Add(at.Add(c))
			}
		}
	}
	return found
}

// waterRoughness counts the '#' cells that are not part of a sea monster,
// in whichever orientation of img shows the monsters.
func waterRoughness(img aoc.Grid[byte]) (int, error) {
	total := img.Count(func(v byte) bool { return v == '#' })
	for _, o := range img.Orientations() {
		if m := monsterCells(o); m.Len() > 0 {
			return total - m.Len(), nil
		}
	}
	return 0, fmt.Errorf("no sea monsters in any orientation")
}

func cornerProduct(groups [][]string) (int, error) {
	tiles, err := parseTiles(groups)
	if err != nil {
		return 0, err
	}
	corners := newTileLayout(tiles).corners()
	if len(corners) != 4 {
		return 0, fmt.Errorf("found %d corner tiles, want 4", len(corners))
	}
	return aoc.Product(corners...), nil
}

func assembleTiles(groups [][]string) ([][]imageTile, error) {
	tiles, err := parseTiles(groups)
	if err != nil {
		return nil, err
	}
	return newTileLayout(tiles).assemble()
}

func roughness(groups [][]string) (int, error) {
	layout, err := assembleTiles(groups)
	if err != nil {
		return 0, err
	}
	return waterRoughness(stitch(layout))
}

/*
want=20899048083289

Tile 2311:
..##.#..#.
##..#.....
#...##..#.
####.#...#
##.##.###.
##...#.###
.#.#.#..##
..#....#..
###...#.#.
..###..###

Tile 1951:
#.##...##.
#.####...#
.....#..##
#...######
.##.#....#
.###.#####
###.##.##.
.###....#.
..#.#..#.#
#...##.#..

Tile 1171:
####...##.
#..##.#..#
##.#..#.#.
.###.####.
..###.####
.##....##.
.#...####.
#.##.####.
####..#...
.....##...

Tile 1427:
###.##.#..
.#..#.##..
.#.##.#..#
#.#.#.##.#
....#...##
...##..##.
...#.#####
.#.####.#.
..#..###.#
..##.#..#.

Tile 1489:
##.#.#....
..##...#..
.##..##...
..#...#...
#####...#.
#..#.#.#.#
...#.#.#..
##.#...##.
..##.##.##
###.##.#..

Tile 2473:
#....####.
#..#.##...
#.##..#...
######.#.#
.#...#.#.#
.#########
.###.#..#.
########.#
##...##.#.
..###.#.#.

Tile 2971:
..#.#....#
#...###...
#.#.###...
##.##..#..
.#####..##
.#..####.#
#..#.#..#.
..####.###
..#.#.###.
...#.#.#.#

Tile 2729:
...#.#.#.#
####.#....
..#.#.....
....#..#.#
.##..##.#.
.#.####...
####.#.#..
##.####...
##..#.##..
#.##...##.

Tile 3079:
#.#.#####.
.#..######
..#.......
######....
####.#..#.
.#...#.##.
#.#####.##
..#.###...
..#.......
..#.###...
*/
func (s solver) D20p1() any {
	return aoc.MustGet(cornerProduct(s.Groups()))
}

// want=273
func (s solver) D20p2() any {
	layout := aoc.MustGet(assembleTiles(s.Groups()))
	for _, row := range layout {
		ids := make([]int, len(row))
		for i, t := range row {
			ids[i] = t.id
		}
		s.Debug(ids)
	}
	return aoc.MustGet(waterRoughness(stitch(layout)))
}
