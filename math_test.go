package aoc

import "testing"

func TestCRT(t *testing.T) {
	tests := []struct {
		cs      []Congruence
		want    int64
		wantN   int64
		wantErr bool
	}{
		{
			cs:    []Congruence{{Rem: 2, Mod: 3}, {Rem: 3, Mod: 5}, {Rem: 2, Mod: 7}},
			want:  23,
			wantN: 105,
		},
		{
			// Negative remainders are normalized.
			cs:    []Congruence{{Rem: 0, Mod: 17}, {Rem: -2, Mod: 13}, {Rem: -3, Mod: 19}},
			want:  3417,
			wantN: 17 * 13 * 19,
		},
		{
			cs:      []Congruence{{Rem: 1, Mod: 4}, {Rem: 3, Mod: 6}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		x, n, err := CRT(tt.cs...)
		if (err != nil) != tt.wantErr {
			t.Errorf("CRT(%v) err = %v, wantErr %v", tt.cs, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && (x != tt.want || n != tt.wantN) {
			t.Errorf("CRT(%v) = %d, %d; want %d, %d", tt.cs, x, n, tt.want, tt.wantN)
		}
	}
}

func TestModPow(t *testing.T) {
	tests := []struct {
		base, exp, m, want int64
	}{
		{7, 8, 20201227, 5764801},
		{17807724, 8, 20201227, 14897079},
		{2, 10, 1000, 24},
		{5, 0, 1, 0},
	}
	for _, tt := range tests {
		if got := ModPow(tt.base, tt.exp, tt.m); got != tt.want {
			t.Errorf("ModPow(%d, %d, %d) = %d, want %d", tt.base, tt.exp, tt.m, got, tt.want)
		}
	}
}

func TestMod(t *testing.T) {
	if got := Mod(-939, 59); got != 5 {
		t.Errorf("Mod(-939, 59) = %d, want 5", got)
	}
}

func TestSumProduct(t *testing.T) {
	if got := Sum[uint64](101, 64); got != 165 {
		t.Errorf("Sum = %d, want 165", got)
	}
	if got := Product(1951, 3079, 2971, 1171); got != 20899048083289 {
		t.Errorf("Product = %d, want 20899048083289", got)
	}
	if got := Product[int](); got != 1 {
		t.Errorf("Product() = %d, want 1", got)
	}
}

func TestMinMax(t *testing.T) {
	lo, hi := MinMax(3, -1, 7, 2)
	if lo != -1 || hi != 7 {
		t.Errorf("MinMax = %d, %d; want -1, 7", lo, hi)
	}
}

func TestFields(t *testing.T) {
	got := Fields("0,3, 6,,", ",")
	want := []int{0, 3, 6}
	if len(got) != len(want) {
		t.Fatalf("Fields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Fields = %v, want %v", got, want)
		}
	}
}

func TestParallelMapFold(t *testing.T) {
	got := ParallelMapFold([]int{1, 2, 3, 4}, func(v int) int { return v * v }, func(acc, v int) int { return acc + v }, 0)
	if got != 30 {
		t.Errorf("ParallelMapFold = %d, want 30", got)
	}
}
