package asm

import (
	"iter"
)

// Statement is an assembled instruction line.
type Statement struct {
	LineNo      int      // Source line number, 1-based.
	Line        string   // Source line, verbatim.
	Words       []string // Words after constant substitution.
	Instruction Instruction
}

// Program is the result of the first pass.
type Program struct {
	Statements []Statement
	Labels     map[string]int // Label name to statement index.
}

// Listing iterates over the statements by instruction index.
func (prog *Program) Listing() iter.Seq2[int, Statement] {
	return func(yield func(index int, stmt Statement) bool) {
		for n, stmt := range prog.Statements {
			if !yield(n, stmt) {
				return
			}
		}
	}
}

// Encode runs the second pass, stopping at the first instruction that has
// no encoding.
func (prog *Program) Encode() (codes []Code, err error) {
	codes = make([]Code, 0, len(prog.Statements))
	for _, stmt := range prog.Statements {
		var code Code
		code, err = Encode(stmt.Instruction)
		if err != nil {
			err = &ErrSyntax{LineNo: stmt.LineNo, Line: stmt.Line, Err: err}
			codes = nil
			return
		}
		codes = append(codes, code)
	}

	return
}

// Hex returns the program as one six digit hexadecimal string per instruction.
func (prog *Program) Hex() (lines []string, err error) {
	codes, err := prog.Encode()
	if err != nil {
		return
	}

	lines = make([]string, len(codes))
	for n, code := range codes {
		lines[n] = code.String()
	}

	return
}

// Binary returns the program packed as CodeSize bytes per instruction.
func (prog *Program) Binary() (bins []byte, err error) {
	codes, err := prog.Encode()
	if err != nil {
		return
	}

	bins = make([]byte, 0, len(codes)*CodeSize)
	for _, code := range codes {
		bins = append(bins, code[:]...)
	}

	return
}
