package main

import (
	"fmt"
	"log"

	"github.com/kestrel/aoc"
	"github.com/kestrel/aoc/parse"
)

type opcode string

const (
	opNop opcode = "nop"
	opAcc opcode = "acc"
	opJmp opcode = "jmp"
)

type instruction struct {
	op  opcode
	arg int
}

type program []instruction

var instructionLine = parse.Map(
	parse.Seq2(
		parse.Left(
			parse.Or(
				parse.Means(parse.Literal(string(opNop)), opNop),
				parse.Means(parse.Literal(string(opAcc)), opAcc),
				parse.Means(parse.Literal(string(opJmp)), opJmp),
			),
			parse.Literal(" "),
		),
		parse.Int(),
	),
	func(p parse.Pair[opcode, int]) instruction {
		return instruction{op: p.A, arg: p.B}
	},
)

func parseProgram(lines []string) (program, error) {
	var prog program
	for i, line := range lines {
		ins, err := parse.All(instructionLine, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		prog = append(prog, ins)
	}
	return prog, nil
}

// run executes prog until an instruction is about to run a second time
// or the program counter moves just past the last instruction. It
// returns the accumulator and whether the program terminated normally.
func (prog program) run() (acc int, terminated bool) {
	seen := make([]bool, len(prog))
	pc := 0
	for {
		if pc == len(prog) {
			return acc, true
		}
		if pc < 0 || pc > len(prog) || seen[pc] {
			return acc, false
		}
		seen[pc] = true
		ins := prog[pc]
		switch ins.op {
		case opAcc:
			acc += ins.arg
			pc++
		case opJmp:
			pc += ins.arg
		case opNop:
			pc++
		}
	}
}

func (s solver) program() program {
	return aoc.MustGet(parseProgram(s.Lines()))
}

/*
want=5

nop +0
acc +1
jmp +4
acc +3
jmp -3
acc -99
acc +1
jmp -4
acc +6
*/
func (s solver) D8p1() any {
	acc, _ := s.program().run()
	return acc
}

// want=8
func (s solver) D8p2() any {
	prog := s.program()
	var candidates []int
	for i, ins := range prog {
		if ins.op != opAcc {
			candidates = append(candidates, i)
		}
	}
	type outcome struct {
		acc int
		ok  bool
	}
	// Each variant runs independently; exactly one of them terminates.
	res := aoc.ParallelMapFold(candidates, func(i int) outcome {
		variant := append(program(nil), prog...)
		if variant[i].op == opJmp {
			variant[i].op = opNop
		} else {
			variant[i].op = opJmp
		}
		acc, ok := variant.run()
		return outcome{acc, ok}
	}, func(found outcome, o outcome) outcome {
		if o.ok {
			return o
		}
		return found
	}, outcome{})
	if !res.ok {
		log.Fatal("no single flip terminates the program")
	}
	return res.acc
}
