package aoc

import (
	"fmt"
	"log"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}

// Mod returns a mod m in the range [0, m).
func Mod[T constraints.Integer](a, m T) T {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// ModPow returns base**exp mod m.
func ModPow(base, exp, m int64) int64 {
	result := int64(1) % m
	base = Mod(base, m)
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % m
		}
		base = base * base % m
		exp >>= 1
	}
	return result
}

// Congruence is the constraint x ≡ Rem (mod Mod).
type Congruence struct {
	Rem, Mod int64
}

// CRT solves the system of congruences with the Chinese remainder
// theorem and returns the smallest non-negative solution together with
// the product of the moduli. The moduli must be pairwise coprime.
// Intermediate products can overflow int64, so they are computed with
// math/big.
func CRT(cs ...Congruence) (x, n int64, err error) {
	X := big.NewInt(0)
	N := big.NewInt(1)
	for _, c := range cs {
		N.Mul(N, big.NewInt(c.Mod))
	}
	for _, c := range cs {
		m := big.NewInt(c.Mod)
		ni := new(big.Int).Div(N, m)
		inv := new(big.Int).ModInverse(new(big.Int).Mod(ni, m), m)
		if inv == nil {
			return 0, 0, fmt.Errorf("modulus %d is not coprime with the others", c.Mod)
		}
		term := new(big.Int).Mul(big.NewInt(Mod(c.Rem, c.Mod)), ni)
		term.Mul(term, inv)
		X.Add(X, term)
	}
	X.Mod(X, N)
	if !X.IsInt64() || !N.IsInt64() {
		return 0, 0, fmt.Errorf("solution %v overflows int64", X)
	}
	return X.Int64(), N.Int64(), nil
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, or 1 if there are none.
func Product[T Number](nums ...T) T {
	prod := T(1)
	for _, v := range nums {
		prod *= v
	}
	return prod
}

// MinMax returns the smallest and largest of the numbers.
// It panics if nums is empty.
func MinMax[T constraints.Ordered](nums ...T) (lo, hi T) {
	lo, hi = nums[0], nums[0]
	for _, v := range nums[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// ParseBinary parses a binary string.
func ParseBinary(in string) int64 {
	return MustGet(strconv.ParseInt(strings.TrimPrefix(in, "0b"), 2, 64))
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Fields returns the ints in s separated by sep. Empty fields are
// skipped.
func Fields(s, sep string) []int {
	var out []int
	for _, f := range strings.Split(s, sep) {
		if strings.TrimSpace(f) == "" {
			continue
		}
		out = append(out, Int(f))
	}
	return out
}
