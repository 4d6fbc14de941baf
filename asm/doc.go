// Package asm implements the rasm assembler.
//
// Source is line oriented. Lines starting with "///" are comments, blank lines
// are skipped, "NAME := value" defines a constant, "NAME::" records a label at
// the current instruction count, and every other line is an instruction of the
// form "mnemonic operand1 operand2".
//
// The first pass substitutes constants into each instruction line and builds a
// typed Instruction. The second pass encodes every instruction as a 3 byte Code:
// opcode, operand 1 and operand 2.
package asm
