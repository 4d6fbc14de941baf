package asm

import (
	"fmt"
	"strconv"
	"strings"
)

// Operand is a typed instruction argument that encodes as a single byte.
type Operand interface {
	Byte() uint8
	String() string
}

// Register is one of the eight hardware registers.
type Register uint8

const (
	REG_A = Register(0)
	REG_B = Register(1)
	REG_C = Register(2)
	REG_D = Register(3)
	REG_E = Register(4)
	REG_F = Register(5)
	REG_G = Register(6)
	REG_H = Register(7)
)

// registerMap maps every register mnemonic, long and short, to its id.
var registerMap = map[string]Register{
	"Acc":  REG_A,
	"A":    REG_A,
	"Bacc": REG_B,
	"B":    REG_B,
	"Carr": REG_C,
	"C":    REG_C,
	"Datt": REG_D,
	"D":    REG_D,
	"E":    REG_E,
	"F":    REG_F,
	"G":    REG_G,
	"H":    REG_H,
}

// ParseRegister parses a case sensitive register mnemonic.
func ParseRegister(token string) (reg Register, err error) {
	reg, ok := registerMap[token]
	if !ok {
		err = ErrRegister(token)
	}

	return
}

func (reg Register) Byte() uint8 {
	return uint8(reg)
}

func (reg Register) String() string {
	if reg > REG_H {
		return fmt.Sprintf("Register(%d)", uint8(reg))
	}
	return string(rune('A' + reg))
}

// Immediate is an 8-bit unsigned literal.
type Immediate uint8

// ParseImmediate parses a decimal literal, or a hexadecimal literal with an
// 'h' suffix, in the range 0..255.
func ParseImmediate(token string) (imm Immediate, err error) {
	digits := token
	radix := 10
	if strings.HasSuffix(token, "h") {
		digits = token[:len(token)-1]
		radix = 16
	}

	value, perr := strconv.ParseUint(digits, radix, 8)
	if perr != nil {
		err = &ErrImmediate{Token: token, Radix: radix, Err: perr}
		return
	}

	imm = Immediate(value)

	return
}

func (imm Immediate) Byte() uint8 {
	return uint8(imm)
}

func (imm Immediate) String() string {
	return fmt.Sprintf("%02Xh", uint8(imm))
}

// MemoryAddress is an 8-bit data memory address.
type MemoryAddress uint8

// ParseMemoryAddress parses an address using the immediate literal syntax.
func ParseMemoryAddress(token string) (addr MemoryAddress, err error) {
	imm, err := ParseImmediate(token)
	if err != nil {
		err = ErrMemoryAddress(token)
		return
	}

	addr = MemoryAddress(imm)

	return
}

func (addr MemoryAddress) Byte() uint8 {
	return uint8(addr)
}

func (addr MemoryAddress) String() string {
	return fmt.Sprintf("%02Xh", uint8(addr))
}
