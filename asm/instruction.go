package asm

import (
	"fmt"
)

// Instruction is one assembled operation with its typed operands.
//
// The set of implementations is closed: one struct per Mnemonic.
type Instruction interface {
	Mnemonic() Mnemonic
	Operands() (op1, op2 Operand)
	String() string

	instruction()
}

// Init initializes a register with a literal.
type Init struct {
	Dst   Register
	Value Immediate
}

// Copy copies a register into another.
type Copy struct {
	Dst Register
	Src Register
}

// Adcp adds a register into another.
type Adcp struct {
	Dst Register
	Src Register
}

// Str stores a register to memory.
type Str struct {
	Addr MemoryAddress
	Src  Register
}

// Adl adds a memory value into a register.
type Adl struct {
	Dst  Register
	Addr MemoryAddress
}

// Asn assigns a literal to memory.
type Asn struct {
	Addr  MemoryAddress
	Value Immediate
}

// Load loads a register from memory.
type Load struct {
	Dst  Register
	Addr MemoryAddress
}

var (
	_ Instruction = Init{}
	_ Instruction = Copy{}
	_ Instruction = Adcp{}
	_ Instruction = Str{}
	_ Instruction = Adl{}
	_ Instruction = Asn{}
	_ Instruction = Load{}
)

func (Init) Mnemonic() Mnemonic { return OP_INIT }
func (Copy) Mnemonic() Mnemonic { return OP_COPY }
func (Adcp) Mnemonic() Mnemonic { return OP_ADCP }
func (Str) Mnemonic() Mnemonic  { return OP_STR }
func (Adl) Mnemonic() Mnemonic  { return OP_ADL }
func (Asn) Mnemonic() Mnemonic  { return OP_ASN }
func (Load) Mnemonic() Mnemonic { return OP_LOAD }

func (in Init) Operands() (Operand, Operand) { return in.Dst, in.Value }
func (in Copy) Operands() (Operand, Operand) { return in.Dst, in.Src }
func (in Adcp) Operands() (Operand, Operand) { return in.Dst, in.Src }
func (in Str) Operands() (Operand, Operand)  { return in.Addr, in.Src }
func (in Adl) Operands() (Operand, Operand)  { return in.Dst, in.Addr }
func (in Asn) Operands() (Operand, Operand)  { return in.Addr, in.Value }
func (in Load) Operands() (Operand, Operand) { return in.Dst, in.Addr }

func (in Init) String() string { return format(in) }
func (in Copy) String() string { return format(in) }
func (in Adcp) String() string { return format(in) }
func (in Str) String() string  { return format(in) }
func (in Adl) String() string  { return format(in) }
func (in Asn) String() string  { return format(in) }
func (in Load) String() string { return format(in) }

func (Init) instruction() {}
func (Copy) instruction() {}
func (Adcp) instruction() {}
func (Str) instruction()  {}
func (Adl) instruction()  {}
func (Asn) instruction()  {}
func (Load) instruction() {}

// format renders an instruction back into source form.
func format(in Instruction) string {
	op1, op2 := in.Operands()
	return fmt.Sprintf("%v %v %v", in.Mnemonic(), op1, op2)
}

// operandCount is the arity of every operation.
const operandCount = 2

// Build parses the words of an instruction line. Constants must already have
// been substituted; the first invalid operand stops the build.
func Build(words []string) (inst Instruction, err error) {
	if len(words) == 0 {
		err = ErrOperation("")
		return
	}

	mn, err := ParseMnemonic(words[0])
	if err != nil {
		return
	}

	args := words[1:]
	if len(args) != operandCount {
		err = &ErrArity{Mnemonic: mn, Want: operandCount, Got: len(args)}
		return
	}

	switch mn {
	case OP_INIT:
		var in Init
		if in.Dst, err = ParseRegister(args[0]); err != nil {
			return
		}
		if in.Value, err = ParseImmediate(args[1]); err != nil {
			return
		}
		inst = in
	case OP_COPY:
		var in Copy
		if in.Dst, err = ParseRegister(args[0]); err != nil {
			return
		}
		if in.Src, err = ParseRegister(args[1]); err != nil {
			return
		}
		inst = in
	case OP_ADCP:
		var in Adcp
		if in.Dst, err = ParseRegister(args[0]); err != nil {
			return
		}
		if in.Src, err = ParseRegister(args[1]); err != nil {
			return
		}
		inst = in
	case OP_STR:
		var in Str
		if in.Addr, err = ParseMemoryAddress(args[0]); err != nil {
			return
		}
		if in.Src, err = ParseRegister(args[1]); err != nil {
			return
		}
		inst = in
	case OP_ADL:
		var in Adl
		if in.Dst, err = ParseRegister(args[0]); err != nil {
			return
		}
		if in.Addr, err = ParseMemoryAddress(args[1]); err != nil {
			return
		}
		inst = in
	case OP_ASN:
		var in Asn
		if in.Addr, err = ParseMemoryAddress(args[0]); err != nil {
			return
		}
		if in.Value, err = ParseImmediate(args[1]); err != nil {
			return
		}
		inst = in
	case OP_LOAD:
		var in Load
		if in.Dst, err = ParseRegister(args[0]); err != nil {
			return
		}
		if in.Addr, err = ParseMemoryAddress(args[1]); err != nil {
			return
		}
		inst = in
	default:
		err = ErrOperation(words[0])
	}

	return
}
