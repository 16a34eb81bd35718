package aoc

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid returns the lines as a grid of bytes. Blank lines are
// skipped.
func ParseGrid(lines []string) Grid[byte] {
	var g Grid[byte]
	for _, l := range lines {
		if l == "" {
			continue
		}
		g = append(g, []byte(l))
	}
	return g
}

var (
	hashersMu sync.Mutex
	hashers   = map[reflect.Type]any{} // map[reflect.Type]func(*Grid[T]) deephash.Sum
)

// Hash returns a digest of the grid contents. Equal grids hash equally.
// It is safe to call from multiple goroutines.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	hashersMu.Lock()
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

func (g Grid[T]) RotateCounterClockwiseInto(out [][]T) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[size.X-1-x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) RotateCounterClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.RotateCounterClockwiseInto(out)
	return out
}

// FlipHorizontal returns the grid mirrored left to right.
func (g Grid[T]) FlipHorizontal() Grid[T] {
	out := g.Clone()
	for _, row := range out {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return out
}

// Orientations returns the eight rotations and reflections of g.
func (g Grid[T]) Orientations() []Grid[T] {
	out := make([]Grid[T], 0, 8)
	cur := g
	for i := 0; i < 4; i++ {
		out = append(out, cur, cur.FlipHorizontal())
		cur = cur.RotateCounterClockwise()
	}
	return out
}

// Row returns a copy of row y.
func (g Grid[T]) Row(y int) []T {
	return append([]T(nil), g[y]...)
}

// Col returns a copy of column x, top to bottom.
func (g Grid[T]) Col(x int) []T {
	out := make([]T, len(g))
	for y := range g {
		out[y] = g[y][x]
	}
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// Count returns the number of cells for which match returns true.
func (g Grid[T]) Count(match func(T) bool) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if match(v) {
				n++
			}
		}
	}
	return n
}

func (g Grid[T]) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			switch v := any(v).(type) {
			case byte:
				sb.WriteByte(v)
			case rune:
				sb.WriteRune(v)
			case bool:
				if v {
					sb.WriteByte('#')
				} else {
					sb.WriteByte('.')
				}
			default:
				fmt.Fprint(&sb, v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) Turn(right bool) Direction {
	switch d {
	case Up:
		if right {
			return Right
		}
		return Left
	case Right:
		if right {
			return Down
		}
		return Up
	case Down:
		if right {
			return Left
		}
		return Right
	case Left:
		if right {
			return Up
		}
		return Down
	}
	panic("bad")
}

// Delta returns the unit step for d, with Y growing downwards.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad")
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(o Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + o.X, p.Y + o.Y}
}

func (p Pt2[T]) Scale(k T) Pt2[T] {
	return Pt2[T]{p.X * k, p.Y * k}
}

// RotateRight rotates p a quarter turn clockwise around the origin,
// with Y growing downwards.
func (p Pt2[T]) RotateRight() Pt2[T] {
	return Pt2[T]{-p.Y, p.X}
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

// ForNeighbors calls f for the 26 points surrounding p.
func (p Pt3[T]) ForNeighbors(f func(Pt3[T]) (keepGoing bool)) {
	for z := T(-1); z <= 1; z++ {
		for y := T(-1); y <= 1; y++ {
			for x := T(-1); x <= 1; x++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				if !f(Pt3[T]{p.X + x, p.Y + y, p.Z + z}) {
					return
				}
			}
		}
	}
}

type Pt4[T constraints.Signed] struct {
	X, Y, Z, W T
}

// ForNeighbors calls f for the 80 points surrounding p.
func (p Pt4[T]) ForNeighbors(f func(Pt4[T]) (keepGoing bool)) {
	for w := T(-1); w <= 1; w++ {
		for z := T(-1); z <= 1; z++ {
			for y := T(-1); y <= 1; y++ {
				for x := T(-1); x <= 1; x++ {
					if x == 0 && y == 0 && z == 0 && w == 0 {
						continue
					}
					if !f(Pt4[T]{p.X + x, p.Y + y, p.Z + z, p.W + w}) {
						return
					}
				}
			}
		}
	}
}

type Pt3Int = Pt3[int]
type Pt4Int = Pt4[int]
