// Command 2020 solves the Advent of Code 2020 puzzles.
//
// Each day lives in its own dayNN.go file as methods D{day}p{part} on
// solver. Samples are written in the doc comment of each method and are
// checked before the real input, which is read from 2020/<day>.input.
package main

import (
	"embed"

	"github.com/kestrel/aoc"
)

func main() {
	aoc.Run(year, source, &solver{})
}

const year = 2020

//go:embed day??.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
