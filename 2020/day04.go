package main

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/kestrel/aoc/parse"
)

var requiredPassportFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

var knownPassportFields = append([]string{"cid"}, requiredPassportFields...)

var errMissingField = errors.New("missing field")

type passport map[string]string

var passportField = parse.Seq2(
	parse.Left(
		parse.Pred(parse.Word(), "passport field", func(k string) bool {
			return slices.Contains(knownPassportFields, k)
		}),
		parse.Literal(":"),
	),
	parse.TakeWhile1("field value", func(r rune) bool { return !unicode.IsSpace(r) }),
)

var passportRecord = parse.Left(
	parse.SepBy1(passportField, parse.Space1()),
	parse.Opt(parse.Space1()),
)

// parsePassport parses one blank-line separated passport record.
func parsePassport(record string) (passport, error) {
	fields, err := parse.All(passportRecord, record)
	if err != nil {
		return nil, err
	}
	pp := make(passport, len(fields))
	for _, f := range fields {
		pp[f.A] = f.B
	}
	return pp, nil
}

func (pp passport) checkPresent() error {
	for _, f := range requiredPassportFields {
		if _, ok := pp[f]; !ok {
			return fmt.Errorf("%w: %s", errMissingField, f)
		}
	}
	return nil
}

var (
	hairColorRx  = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	passportIDRx = regexp.MustCompile(`^[0-9]{9}$`)
	eyeColors    = []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}
)

func yearIn(v string, lo, hi int) bool {
	if len(v) != 4 {
		return false
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= lo && n <= hi
}

func validHeight(v string) bool {
	var lo, hi int
	switch {
	case strings.HasSuffix(v, "cm"):
		lo, hi = 150, 193
	case strings.HasSuffix(v, "in"):
		lo, hi = 59, 76
	default:
		return false
	}
	n, err := strconv.Atoi(v[:len(v)-2])
	return err == nil && n >= lo && n <= hi
}

func (pp passport) validate() error {
	if err := pp.checkPresent(); err != nil {
		return err
	}
	checks := []struct {
		field string
		ok    func(string) bool
	}{
		{"byr", func(v string) bool { return yearIn(v, 1920, 2002) }},
		{"iyr", func(v string) bool { return yearIn(v, 2010, 2020) }},
		{"eyr", func(v string) bool { return yearIn(v, 2020, 2030) }},
		{"hgt", validHeight},
		{"hcl", hairColorRx.MatchString},
		{"ecl", func(v string) bool { return slices.Contains(eyeColors, v) }},
		{"pid", passportIDRx.MatchString},
	}
	for _, c := range checks {
		if v := pp[c.field]; !c.ok(v) {
			return fmt.Errorf("invalid %s: %q", c.field, v)
		}
	}
	return nil
}

func (s solver) countPassports(check func(passport) error) int {
	n := 0
	for _, g := range s.Groups() {
		pp, err := parsePassport(strings.Join(g, "\n"))
		if err != nil {
			s.Debug("skipping record:", err)
			continue
		}
		if err := check(pp); err != nil {
			s.Debugf("%v", err)
			continue
		}
		n++
	}
	return n
}

/*
want=2

ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in
*/
func (s solver) D4p1() any {
	return s.countPassports(passport.checkPresent)
}

/*
want=4

eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

iyr:2019
hcl:#602927 eyr:1967 hgt:170cm
ecl:grn pid:012533040 byr:1946

hcl:dab227 iyr:2012
ecl:brn hgt:182cm pid:021572410 eyr:2020 byr:1992 cid:277

hgt:59cm ecl:zzz
eyr:2038 hcl:74454a iyr:2023
pid:3556412378 byr:2007

pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f

eyr:2029 ecl:blu cid:129 byr:1989
iyr:2014 pid:896056539 hcl:#a97842 hgt:165cm

hcl:#888785
hgt:164cm byr:2001 iyr:2015 cid:88
pid:545766238 ecl:hzl
eyr:2022

iyr:2010 hgt:158cm hcl:#b6652a ecl:blu byr:1944 eyr:2021 pid:093154719
*/
func (s solver) D4p2() any {
	return s.countPassports(passport.validate)
}
