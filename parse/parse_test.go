package parse

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		in       string
		wantRest string
		wantErr  bool
	}{
		{in: "Hello Joe!", wantRest: ""},
		{in: "Hello Joe! Hello Robert!", wantRest: " Hello Robert!"},
		{in: "Hello Mike!", wantRest: "Hello Mike!", wantErr: true},
	}
	p := Literal("Hello Joe!")
	for _, tt := range tests {
		_, rest, err := p(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Literal(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if rest != tt.wantRest {
			t.Errorf("Literal(%q) rest = %q, want %q", tt.in, rest, tt.wantRest)
		}
	}
}

func TestWord(t *testing.T) {
	v, rest, err := Word()("not entirely a word")
	if err != nil || v != "not" || rest != " entirely a word" {
		t.Errorf("Word = %q, %q, %v", v, rest, err)
	}
	if _, _, err := Word()("!nope"); err == nil {
		t.Errorf("Word(!nope) succeeded")
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		in       string
		want     int
		wantRest string
	}{
		{"123foo", 123, "foo"},
		{"-42", -42, ""},
		{"+7 x", 7, " x"},
	}
	for _, tt := range tests {
		got, rest, err := Int()(tt.in)
		if err != nil || got != tt.want || rest != tt.wantRest {
			t.Errorf("Int(%q) = %v, %q, %v; want %v, %q", tt.in, got, rest, err, tt.want, tt.wantRest)
		}
	}
}

func TestUintOverflow(t *testing.T) {
	in := "99999999999999999999999 rest"
	_, rest, err := Uint()(in)
	var pe *Error
	if !errors.As(err, &pe) || pe.Want != "integer" || rest != in {
		t.Errorf("Uint(%q) = %q, %v; want *Error for integer", in, rest, err)
	}
}

func TestLazyConcurrent(t *testing.T) {
	builds := 0
	p := Lazy(func() Parser[int] {
		builds++
		return Uint()
	})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v, err := All(p, "42"); err != nil || v != 42 {
				t.Errorf("All = %v, %v", v, err)
			}
		}()
	}
	wg.Wait()
	if builds != 1 {
		t.Errorf("built %d times, want 1", builds)
	}
}

func TestMeans(t *testing.T) {
	got, err := All(Means(Literal("foo"), "bar"), "foo")
	if err != nil || got != "bar" {
		t.Errorf("Means = %q, %v", got, err)
	}
}

func TestRight(t *testing.T) {
	tagOpener := Right(Literal("<"), TakeWhile1("identifier", func(r rune) bool {
		return r == '-' || (r >= 'a' && r <= 'z')
	}))
	got, rest, err := tagOpener("<my-first-element/>")
	if err != nil || got != "my-first-element" || rest != "/>" {
		t.Errorf("tagOpener = %q, %q, %v", got, rest, err)
	}
	if _, _, err := tagOpener("oops"); err == nil {
		t.Errorf("tagOpener(oops) succeeded")
	}
	if _, rest, err := tagOpener("<!oops"); err == nil || rest != "<!oops" {
		t.Errorf("tagOpener(<!oops) = %q, %v; want failure without consuming", rest, err)
	}
}

func TestMany(t *testing.T) {
	tests := []struct {
		in       string
		many0    int
		many1Err bool
	}{
		{"hahaha", 3, false},
		{"ahah", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, _, _ := Many0(Literal("ha"))(tt.in)
		if len(got) != tt.many0 {
			t.Errorf("Many0(%q) = %d matches, want %d", tt.in, len(got), tt.many0)
		}
		_, _, err := Many1(Literal("ha"))(tt.in)
		if (err != nil) != tt.many1Err {
			t.Errorf("Many1(%q) err = %v, wantErr %v", tt.in, err, tt.many1Err)
		}
	}
}

func TestPred(t *testing.T) {
	p := Pred(Char("any", func(rune) bool { return true }), "o", func(r rune) bool { return r == 'o' })
	if got, rest, err := p("omg"); err != nil || got != 'o' || rest != "mg" {
		t.Errorf("Pred(omg) = %q, %q, %v", got, rest, err)
	}
	if _, _, err := p("lol"); err == nil {
		t.Errorf("Pred(lol) succeeded")
	}
}

func TestSepBy1(t *testing.T) {
	got, err := All(SepBy1(Uint(), Literal(",")), "1,2,3,4")
	if err != nil || !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("SepBy1 = %v, %v", got, err)
	}
	// A trailing separator is left unconsumed.
	_, rest, err := SepBy1(Uint(), Literal(","))("1,2,")
	if err != nil || rest != "," {
		t.Errorf("SepBy1(1,2,) rest = %q, %v", rest, err)
	}
}

func TestBetween(t *testing.T) {
	quoted := Between(Literal(`"`), TakeWhile(func(r rune) bool { return r != '"' }), Literal(`"`))
	got, err := All(quoted, `"Hello Joe!"`)
	if err != nil || got != "Hello Joe!" {
		t.Errorf("quoted = %q, %v", got, err)
	}
}

func TestChainL1(t *testing.T) {
	sub := Means(Token(Literal("-")), func(a, b int) int { return a - b })
	p := ChainL1(Token(Uint()), sub)
	got, err := All(p, "10 - 3 - 2")
	if err != nil || got != 5 {
		t.Errorf("ChainL1 = %v, %v; want 5", got, err)
	}
}

func TestAllLeftovers(t *testing.T) {
	_, err := All(Uint(), "12ab")
	var pe *Error
	if !errors.As(err, &pe) || pe.At != "ab" {
		t.Errorf("All(12ab) err = %v; want *Error at \"ab\"", err)
	}
}

func TestOrReportsAlternatives(t *testing.T) {
	_, _, err := Or(Literal("a"), Literal("b"))("c")
	if err == nil || err.Error() != `expected "a" or "b" at "c"` {
		t.Errorf("Or err = %v", err)
	}
}
