package aoc

import (
	"slices"
	"testing"
)

func TestStack(t *testing.T) {
	var s Stack[int]
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
	var got []int
	s.While(func(v int) bool {
		got = append(got, v)
		return true
	})
	if !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("popped %v, want [3 2 1]", got)
	}
	if _, ok := s.Pop(); ok || s.Len() != 0 {
		t.Errorf("stack not empty after While")
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	if v, ok := q.Pop(); !ok || v != 1 {
		t.Errorf("Pop = %d, %v; want 1, true", v, ok)
	}
	snap := q.Slice()
	q.Push(4)
	if !slices.Equal(snap, []int{2, 3}) {
		t.Errorf("Slice = %v, want [2 3]", snap)
	}
	if q.Len() != 3 {
		t.Errorf("Len = %d, want 3", q.Len())
	}
}

func TestSet(t *testing.T) {
	a := NewSet('a', 'b', 'c')
	b := NewSet('b', 'c', 'd')

	tests := []struct {
		name string
		got  Set[rune]
		want []rune
	}{
		{"intersect", a.Intersect(b), []rune{'b', 'c'}},
		{"union", a.Union(b), []rune{'a', 'b', 'c', 'd'}},
	}
	for _, tt := range tests {
		got := tt.got.Slice()
		slices.Sort(got)
		if !slices.Equal(got, tt.want) {
			t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
		}
	}

	c := a.Clone()
	c.Delete('a')
	if !a.Has('a') || c.Has('a') || c.Len() != 2 {
		t.Errorf("Clone shares storage with the original")
	}
}
