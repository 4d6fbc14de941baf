package asm

import (
	"errors"

	"github.com/overroot/rasm/translate"
)

var f = translate.From

var (
	// Operand errors
	ErrOperationInvalid = errors.New(f("invalid operation"))
	ErrRegisterInvalid  = errors.New(f("invalid register"))
	ErrImmediateInvalid = errors.New(f("invalid immediate literal"))
	ErrAddressInvalid   = errors.New(f("invalid memory address"))
	ErrOperandMissing   = errors.New(f("operand missing"))
	ErrOperandExtra     = errors.New(f("excessive operands"))

	// Directive errors
	ErrConstantInvalid   = errors.New(f("invalid constant format"))
	ErrConstantDuplicate = errors.New(f("constant duplicated"))
	ErrLabelInvalid      = errors.New(f("invalid label format"))
	ErrLabelDuplicate    = errors.New(f("label duplicated"))
	ErrLabelMissing      = errors.New(f("label missing"))

	// Encoder errors
	ErrOperationUnimplemented = errors.New(f("unimplemented operation"))
)

// ErrOperation is a mnemonic that is not in the opcode table.
type ErrOperation string

func (err ErrOperation) Error() string {
	return f("invalid operation: %v", string(err))
}

func (err ErrOperation) Is(target error) bool {
	return target == ErrOperationInvalid
}

// ErrRegister is a token that does not name a register.
type ErrRegister string

func (err ErrRegister) Error() string {
	return f("invalid register: %v", string(err))
}

func (err ErrRegister) Is(target error) bool {
	return target == ErrRegisterInvalid
}

// ErrImmediate is a token that is not an 8-bit literal in the attempted radix.
type ErrImmediate struct {
	Token string // Offending token, verbatim.
	Radix int    // 10 or 16.
	Err   error  // Underlying strconv failure.
}

func (err *ErrImmediate) Error() string {
	return f("invalid immediate literal: %v is not a base %d value in 0..255", err.Token, err.Radix)
}

func (err *ErrImmediate) Is(target error) bool {
	return target == ErrImmediateInvalid
}

func (err *ErrImmediate) Unwrap() error {
	return err.Err
}

// ErrMemoryAddress is a token that is not an 8-bit address.
type ErrMemoryAddress string

func (err ErrMemoryAddress) Error() string {
	return f("invalid memory address: %v", string(err))
}

func (err ErrMemoryAddress) Is(target error) bool {
	return target == ErrAddressInvalid
}

// ErrArity is an instruction line with the wrong number of operands.
type ErrArity struct {
	Mnemonic Mnemonic
	Want     int
	Got      int
}

func (err *ErrArity) Error() string {
	return f("%v takes %d operands, got %d", err.Mnemonic, err.Want, err.Got)
}

func (err *ErrArity) Unwrap() error {
	if err.Got < err.Want {
		return ErrOperandMissing
	}
	return ErrOperandExtra
}

// ErrConstantFormat is a constant directive that does not split into a name
// and a value.
type ErrConstantFormat string

func (err ErrConstantFormat) Error() string {
	return f("invalid constant format: `%v`", string(err))
}

func (err ErrConstantFormat) Is(target error) bool {
	return target == ErrConstantInvalid
}

// ErrConstantRedefined is a constant defined twice while in strict mode.
type ErrConstantRedefined string

func (err ErrConstantRedefined) Error() string {
	return f("constant %v redefined", string(err))
}

func (err ErrConstantRedefined) Is(target error) bool {
	return target == ErrConstantDuplicate
}

// ErrLabelFormat is a label directive without a usable name.
type ErrLabelFormat string

func (err ErrLabelFormat) Error() string {
	return f("invalid label format: `%v`", string(err))
}

func (err ErrLabelFormat) Is(target error) bool {
	return target == ErrLabelInvalid
}

// ErrLabelAmbiguous is a label defined more than once.
type ErrLabelAmbiguous string

func (err ErrLabelAmbiguous) Error() string {
	return f("label %v is ambiguous", string(err))
}

func (err ErrLabelAmbiguous) Is(target error) bool {
	return target == ErrLabelDuplicate
}

// ErrLabelUnknown is a label that was never defined.
type ErrLabelUnknown string

func (err ErrLabelUnknown) Error() string {
	return f("label %v missing", string(err))
}

func (err ErrLabelUnknown) Is(target error) bool {
	return target == ErrLabelMissing
}

// ErrUnimplemented is a valid instruction that has no opcode assigned.
type ErrUnimplemented struct {
	Instruction Instruction
}

func (err *ErrUnimplemented) Error() string {
	return f("unimplemented operation: %v", err.Instruction)
}

func (err *ErrUnimplemented) Is(target error) bool {
	return target == ErrOperationUnimplemented
}

// ErrSyntax locates an error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
