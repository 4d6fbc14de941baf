package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := map[string]string{
		"init A 05h":  "050005",
		"copy A B":    "0A0001",
		"adcp B C":    "0B0102",
		"str 10h A":   "071000",
		"init H 255":  "0507FF",
		"copy Datt E": "0A0304",
	}

	for line, expected := range table {
		inst, err := Build(strings.Fields(line))
		assert.NoError(err, line)

		code, err := Encode(inst)
		assert.NoError(err, line)
		assert.Equal(expected, code.String(), line)
	}

	code, err := Encode(Str{Addr: 0x10, Src: REG_A})
	assert.NoError(err)
	assert.Equal(Code{0x07, 0x10, 0x00}, code)
	assert.Equal(uint8(0x07), code.Opcode())
}

func TestEncode_Unimplemented(t *testing.T) {
	assert := assert.New(t)

	for _, line := range []string{"adl A 10h", "asn 10h 5", "load B 20h"} {
		inst, err := Build(strings.Fields(line))
		assert.NoError(err, line)

		_, err = Encode(inst)
		assert.Equal(&ErrUnimplemented{Instruction: inst}, err, line)
		assert.True(errors.Is(err, ErrOperationUnimplemented), line)
	}
}

func TestMnemonic_Opcode(t *testing.T) {
	assert := assert.New(t)

	for mn := OP_INIT; mn <= OP_LOAD; mn++ {
		parsed, err := ParseMnemonic(mn.String())
		assert.NoError(err)
		assert.Equal(mn, parsed)

		_, ok := mn.Opcode()
		assert.Equal(mn <= OP_STR, ok, mn.String())
	}

	assert.Equal("Mnemonic(7)", Mnemonic(7).String())
}
