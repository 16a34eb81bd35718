// Package parse is a tiny parser-combinator library for puzzle inputs.
//
// A Parser consumes a prefix of its input and returns the parsed value
// together with the remaining input. Parsers are plain functions, so
// they compose with ordinary Go code; recursive grammars use Lazy.
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Parser parses a prefix of in.
type Parser[T any] func(in string) (v T, rest string, err error)

// Error is returned when a parser does not match.
type Error struct {
	Want string // what the parser expected
	At   string // the input at the point of failure
}

func (e *Error) Error() string {
	at := e.At
	if len(at) > 20 {
		at = at[:20] + "..."
	}
	if at == "" {
		return fmt.Sprintf("expected %s at end of input", e.Want)
	}
	return fmt.Sprintf("expected %s at %q", e.Want, at)
}

func fail[T any](want, at string) (T, string, error) {
	var zero T
	return zero, at, &Error{Want: want, At: at}
}

// All runs p on in and fails unless p consumes the whole input.
func All[T any](p Parser[T], in string) (T, error) {
	v, rest, err := p(in)
	if err != nil {
		return v, err
	}
	if rest != "" {
		var zero T
		return zero, &Error{Want: "end of input", At: rest}
	}
	return v, nil
}

// Literal matches s exactly.
func Literal(s string) Parser[string] {
	return func(in string) (string, string, error) {
		if rest, ok := strings.CutPrefix(in, s); ok {
			return s, rest, nil
		}
		return fail[string](strconv.Quote(s), in)
	}
}

// Char matches a single rune satisfying pred.
func Char(name string, pred func(rune) bool) Parser[rune] {
	return func(in string) (rune, string, error) {
		r, n := utf8.DecodeRuneInString(in)
		if n == 0 || !pred(r) {
			return fail[rune](name, in)
		}
		return r, in[n:], nil
	}
}

// TakeWhile matches the longest, possibly empty, prefix whose runes
// satisfy pred.
func TakeWhile(pred func(rune) bool) Parser[string] {
	return func(in string) (string, string, error) {
		i := strings.IndexFunc(in, func(r rune) bool { return !pred(r) })
		if i < 0 {
			i = len(in)
		}
		return in[:i], in[i:], nil
	}
}

// TakeWhile1 is like TakeWhile but requires at least one rune.
func TakeWhile1(name string, pred func(rune) bool) Parser[string] {
	tw := TakeWhile(pred)
	return func(in string) (string, string, error) {
		s, rest, _ := tw(in)
		if s == "" {
			return fail[string](name, in)
		}
		return s, rest, nil
	}
}

// Word matches one or more letters.
func Word() Parser[string] {
	return TakeWhile1("word", unicode.IsLetter)
}

// Digits matches one or more decimal digits.
func Digits() Parser[string] {
	return TakeWhile1("digits", unicode.IsDigit)
}

// Uint matches an unsigned decimal integer that fits in an int.
func Uint() Parser[int] {
	digits := Digits()
	return func(in string) (int, string, error) {
		s, rest, err := digits(in)
		if err != nil {
			return 0, in, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fail[int]("integer", in)
		}
		return n, rest, nil
	}
}

// Int matches a decimal integer with an optional sign.
func Int() Parser[int] {
	sign := Opt(Or(Literal("-"), Literal("+")))
	return Map(Seq2(sign, Uint()), func(p Pair[string, int]) int {
		if p.A == "-" {
			return -p.B
		}
		return p.B
	})
}

// Space0 matches zero or more spaces or tabs.
func Space0() Parser[string] {
	return TakeWhile(func(r rune) bool { return r == ' ' || r == '\t' })
}

// Space1 matches one or more whitespace runes, newlines included.
func Space1() Parser[string] {
	return TakeWhile1("whitespace", unicode.IsSpace)
}

// Rest matches whatever input remains.
func Rest() Parser[string] {
	return func(in string) (string, string, error) {
		return in, "", nil
	}
}

// Map transforms the value produced by p.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in string) (B, string, error) {
		a, rest, err := p(in)
		if err != nil {
			var zero B
			return zero, in, err
		}
		return f(a), rest, nil
	}
}

// Means replaces the value produced by p with v.
func Means[A, B any](p Parser[A], v B) Parser[B] {
	return Map(p, func(A) B { return v })
}

// Pred fails unless the value produced by p satisfies ok.
func Pred[T any](p Parser[T], name string, ok func(T) bool) Parser[T] {
	return func(in string) (T, string, error) {
		v, rest, err := p(in)
		if err != nil {
			return v, in, err
		}
		if !ok(v) {
			return fail[T](name, in)
		}
		return v, rest, nil
	}
}

// Pair holds the results of Seq2.
type Pair[A, B any] struct {
	A A
	B B
}

// Seq2 runs a then b.
func Seq2[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(in string) (Pair[A, B], string, error) {
		va, rest, err := a(in)
		if err != nil {
			return Pair[A, B]{}, in, err
		}
		vb, rest, err := b(rest)
		if err != nil {
			return Pair[A, B]{}, in, err
		}
		return Pair[A, B]{va, vb}, rest, nil
	}
}

// Left runs a then b and keeps the result of a.
func Left[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Map(Seq2(a, b), func(p Pair[A, B]) A { return p.A })
}

// Right runs a then b and keeps the result of b.
func Right[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(Seq2(a, b), func(p Pair[A, B]) B { return p.B })
}

// Between runs open, p and close and keeps the result of p.
func Between[O, T, C any](open Parser[O], p Parser[T], close Parser[C]) Parser[T] {
	return Left(Right(open, p), close)
}

// Opt runs p and yields the zero value instead of failing.
func Opt[T any](p Parser[T]) Parser[T] {
	return func(in string) (T, string, error) {
		v, rest, err := p(in)
		if err != nil {
			var zero T
			return zero, in, nil
		}
		return v, rest, nil
	}
}

// Or returns the result of the first alternative that matches.
func Or[T any](ps ...Parser[T]) Parser[T] {
	return func(in string) (T, string, error) {
		var want []string
		for _, p := range ps {
			v, rest, err := p(in)
			if err == nil {
				return v, rest, nil
			}
			if pe, ok := err.(*Error); ok && pe.At == in {
				want = append(want, pe.Want)
			}
		}
		if len(want) == 0 {
			want = append(want, "one of the alternatives")
		}
		return fail[T](strings.Join(want, " or "), in)
	}
}

// Many0 runs p until it fails and collects the results.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(in string) ([]T, string, error) {
		var out []T
		for {
			v, rest, err := p(in)
			if err != nil || rest == in {
				return out, in, nil
			}
			out = append(out, v)
			in = rest
		}
	}
}

// Many1 is like Many0 but requires at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(in string) ([]T, string, error) {
		first, rest, err := p(in)
		if err != nil {
			return nil, in, err
		}
		more, rest, _ := Many0(p)(rest)
		return append([]T{first}, more...), rest, nil
	}
}

// SepBy1 matches one or more p separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Map(Seq2(p, Many0(Right(sep, p))), func(v Pair[T, []T]) []T {
		return append([]T{v.A}, v.B...)
	})
}

// ChainL1 matches one or more p separated by op and folds the values
// left to right with the functions op yields.
func ChainL1[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return func(in string) (T, string, error) {
		acc, rest, err := p(in)
		if err != nil {
			return acc, in, err
		}
		for {
			f, r1, err := op(rest)
			if err != nil {
				return acc, rest, nil
			}
			v, r2, err := p(r1)
			if err != nil {
				return acc, rest, nil
			}
			acc, rest = f(acc, v), r2
		}
	}
}

// Lazy defers building the parser until it is first used, which lets
// grammars refer to themselves. The result is safe for concurrent use.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	p := sync.OnceValue(build)
	return func(in string) (T, string, error) {
		return p()(in)
	}
}

// Token skips trailing spaces after p.
func Token[T any](p Parser[T]) Parser[T] {
	return Left(p, Space0())
}
