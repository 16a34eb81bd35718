package main

import (
	"fmt"
	"log"
	"math/bits"
	"strings"

	"github.com/kestrel/aoc"
	"github.com/kestrel/aoc/parse"
	"golang.org/x/exp/maps"
)

const maskBits = 36

// bitmask is a 36-character mask split into its three kinds of bits.
type bitmask struct {
	ones     uint64 // bits forced to 1
	zeros    uint64 // bits forced to 0
	floating uint64 // X bits
}

func parseMask(s string) (bitmask, error) {
	if len(s) != maskBits {
		return bitmask{}, fmt.Errorf("mask %q has %d bits, want %d", s, len(s), maskBits)
	}
	var m bitmask
	for i, c := range s {
		bit := uint64(1) << (maskBits - 1 - i)
		switch c {
		case '1':
			m.ones |= bit
		case '0':
			m.zeros |= bit
		case 'X':
			m.floating |= bit
		default:
			return bitmask{}, fmt.Errorf("bad mask bit %q", c)
		}
	}
	return m, nil
}

func (m bitmask) applyValue(v uint64) uint64 {
	return (v | m.ones) &^ m.zeros
}

// addresses calls f with every address decoded from addr: 1 bits are
// forced on, 0 bits are kept, and floating bits take every combination.
func (m bitmask) addresses(addr uint64, f func(uint64)) {
	base := (addr | m.ones) &^ m.floating
	// Enumerate the subsets of the floating bits.
	sub := m.floating
	for {
		f(base | sub)
		if sub == 0 {
			return
		}
		sub = (sub - 1) & m.floating
	}
}

type memWrite struct {
	addr, val uint64
}

// dockingOp is either a mask change or a memory write.
type dockingOp struct {
	mask  *bitmask
	write memWrite
}

var memLine = parse.Map(
	parse.Seq2(
		parse.Between(parse.Literal("mem["), parse.Uint(), parse.Literal("] = ")),
		parse.Uint(),
	),
	func(p parse.Pair[int, int]) memWrite {
		return memWrite{addr: uint64(p.A), val: uint64(p.B)}
	},
)

func parseDockingProgram(lines []string) ([]dockingOp, error) {
	var ops []dockingOp
	for _, line := range lines {
		if v, ok := strings.CutPrefix(line, "mask = "); ok {
			m, err := parseMask(v)
			if err != nil {
				return nil, err
			}
			ops = append(ops, dockingOp{mask: &m})
			continue
		}
		w, err := parse.All(memLine, line)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", line, err)
		}
		ops = append(ops, dockingOp{write: w})
	}
	return ops, nil
}

func (s solver) runDocking(write func(mem map[uint64]uint64, m bitmask, w memWrite)) uint64 {
	ops := aoc.MustGet(parseDockingProgram(s.Lines()))
	mem := map[uint64]uint64{}
	var mask *bitmask
	for _, op := range ops {
		if op.mask != nil {
			mask = op.mask
			if n := bits.OnesCount64(mask.floating); n > 16 {
				s.Debug("mask with", n, "floating bits")
			}
			continue
		}
		if mask == nil {
			log.Fatal("write before the first mask")
		}
		write(mem, *mask, op.write)
	}
	return aoc.Sum(maps.Values(mem)...)
}

/*
want=165

mask = XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X
mem[8] = 11
mem[7] = 101
mem[8] = 0
*/
func (s solver) D14p1() any {
	return s.runDocking(func(mem map[uint64]uint64, m bitmask, w memWrite) {
		mem[w.addr] = m.applyValue(w.val)
	})
}

/*
want=208

mask = 000000000000000000000000000000X1001X
mem[42] = 100
mask = 00000000000000000000000000000000X0XX
mem[26] = 1
*/
func (s solver) D14p2() any {
	return s.runDocking(func(mem map[uint64]uint64, m bitmask, w memWrite) {
		m.addresses(w.addr, func(a uint64) {
			mem[a] = w.val
		})
	})
}
