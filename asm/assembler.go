// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"iter"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/overroot/rasm/internal"
)

// Assembler turns rasm source into a Program.
//
// An Assembler may be reused; each call to Parse starts with a fresh symbol
// table seeded with the predefines.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
	Strict  bool // If set, redefining a constant is an error.

	Symbols    *SymbolTable // Symbols of the last run.
	Statements []Statement  // Statements of the last run.

	predefine map[string]string
}

// Predefine defines a constant that is visible to every run.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Defines iterates over the predefines, followed by the constants the last
// run defined or changed.
func (asm *Assembler) Defines() iter.Seq2[string, string] {
	predefined := internal.IterSorted(asm.predefine)
	if asm.Symbols == nil {
		return predefined
	}

	defined := func(yield func(name string, value string) bool) {
		for name, value := range asm.Symbols.Constants() {
			if pre, ok := asm.predefine[name]; ok && pre == value {
				continue
			}
			if !yield(name, value) {
				return
			}
		}
	}

	return internal.IterSeq2Concat(predefined, defined)
}

// defineConstant records a constant directive.
func (asm *Assembler) defineConstant(line string) (err error) {
	name, value, err := ParseConstant(line)
	if err != nil {
		return
	}

	if asm.Strict {
		if _, ok := asm.Symbols.Constant(name); ok {
			err = ErrConstantRedefined(name)
			return
		}
	}

	asm.Symbols.DefineConstant(name, value)

	return
}

// defineLabel records a label directive at the current instruction count.
func (asm *Assembler) defineLabel(line string) (err error) {
	name, err := ParseLabel(line)
	if err != nil {
		return
	}

	return asm.Symbols.DefineLabel(name, len(asm.Statements))
}

// pushInstruction substitutes, builds and appends an instruction line.
func (asm *Assembler) pushInstruction(line string, lineno int) (err error) {
	words := asm.Symbols.SubstituteAll(Words(line))

	inst, err := Build(words)
	if err != nil {
		return
	}

	asm.Statements = append(asm.Statements, Statement{
		LineNo:      lineno,
		Line:        line,
		Words:       words,
		Instruction: inst,
	})

	return
}

// parseLine handles a single source line.
func (asm *Assembler) parseLine(line string, lineno int) (err error) {
	if IsBlank(line) || IsComment(line) {
		return
	}

	switch Classify(line) {
	case LINE_LABEL:
		err = asm.defineLabel(line)
	case LINE_CONSTANT:
		err = asm.defineConstant(line)
	default:
		err = asm.pushInstruction(line, lineno)
	}

	return
}

// Parse runs the first pass over an input stream, stopping at the first error.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Symbols = NewSymbolTable()
	asm.Statements = nil
	for name, value := range asm.predefine {
		asm.Symbols.DefineConstant(name, value)
	}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		// The failing line was never returned by the scanner.
		lineno += 1
		line = ""
		return
	}

	prog = &Program{
		Statements: slices.Clone(asm.Statements),
		Labels:     maps.Collect(asm.Symbols.Labels()),
	}

	return
}

// Assemble runs the first pass over source text with a fresh Assembler.
func Assemble(source string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(source))
}
