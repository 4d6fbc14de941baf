package asm

import (
	"fmt"
)

// CodeSize is the width of every encoded instruction, in bytes.
const CodeSize = 3

// Code is an encoded instruction: opcode, operand 1, operand 2.
type Code [CodeSize]byte

// Encode maps an instruction to its binary encoding.
func Encode(inst Instruction) (code Code, err error) {
	opcode, ok := inst.Mnemonic().Opcode()
	if !ok {
		err = &ErrUnimplemented{Instruction: inst}
		return
	}

	op1, op2 := inst.Operands()
	code = Code{opcode, op1.Byte(), op2.Byte()}

	return
}

// Opcode returns the operation byte.
func (code Code) Opcode() uint8 {
	return code[0]
}

// String returns the code as six uppercase hexadecimal digits.
func (code Code) String() string {
	return fmt.Sprintf("%02X%02X%02X", code[0], code[1], code[2])
}
