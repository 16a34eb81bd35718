package aoc

import (
	"testing"
	"testing/fstest"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
		wantOK  bool
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
			wantOK: true,
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
			wantOK: true,
		},
		{
			comment: "// want=mxmxvkd,sqjhc",
			want:    sample{want: "mxmxvkd,sqjhc"},
			wantOK:  true,
		},
		{
			comment: "// solves part 1",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("parseSample(%q) = %+v, %v; want %+v, %v", tt.comment, got, ok, tt.want, tt.wantOK)
		}
	}
}

const testSolverSrc = `package main

/*
want=3

a
b
c
*/
func (s solver) D1p1() any { return 0 }

// want=abc
func (s solver) D1p2() any { return 0 }

// D2p1 has no sample.
func (s solver) D2p1() any { return 0 }
`

const testSolverSrc2 = `package main

// want=6
func (s solver) D3p1() any { return 0 }
`

func TestExtractSamples(t *testing.T) {
	src := fstest.MapFS{
		"day01.go": {Data: []byte(testSolverSrc)},
		"day03.go": {Data: []byte(testSolverSrc2)},
		"notes.txt": {Data: []byte("want=1")},
	}
	got := extractSamples(src)
	want := map[string]sample{
		"D1p1": {want: "3", input: "a\nb\nc\n"},
		"D1p2": {want: "abc", input: "a\nb\nc\n"},
		// Inputs are not carried over between files.
		"D3p1": {want: "6"},
	}
	if len(got) != len(want) {
		t.Errorf("extractSamples returned %d samples, want %d: %+v", len(got), len(want), got)
	}
	for name, w := range want {
		if g := got[name]; g != w {
			t.Errorf("sample %s = %+v, want %+v", name, g, w)
		}
	}
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D1p1() any { return len(s.Lines()) }

func (s testSolver) D1p2() any {
	var out string
	s.ForLines(func(line string) { out += line })
	return out
}

func (s testSolver) D2p1() any { panic("no sample, must not run") }

func (s testSolver) D3p1() any { return 7 }

func TestCheckSamples(t *testing.T) {
	src := fstest.MapFS{
		"day01.go": {Data: []byte(testSolverSrc)},
		"day03.go": {Data: []byte(testSolverSrc2)},
	}
	got := CheckSamples(2020, src, &testSolver{})
	want := []SampleResult{
		{Name: "D1p1", Got: "3", Want: "3"},
		{Name: "D1p2", Got: "abc", Want: "abc"},
		{Name: "D3p1", Got: "7", Want: "6"},
	}
	if len(got) != len(want) {
		t.Fatalf("CheckSamples = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if got[2].OK() {
		t.Errorf("%s reported OK with a wrong answer", got[2].Name)
	}
}

func TestGroups(t *testing.T) {
	p := &Puzzle{
		SampleMode: true,
		solver:     partSolver{Name: "D1p1"},
		samples: map[string]sample{
			"D1p1": {input: "abc\n\na\nb\nc\n\n\nab\nac\n"},
		},
	}
	got := p.Groups()
	want := [][]string{{"abc"}, {"a", "b", "c"}, {"ab", "ac"}}
	if len(got) != len(want) {
		t.Fatalf("Groups = %q, want %q", got, want)
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Errorf("group %d = %q, want %q", i, got[i], want[i])
			continue
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("group %d = %q, want %q", i, got[i], want[i])
			}
		}
	}
}
