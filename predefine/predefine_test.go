package predefine

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/overroot/rasm/asm"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	script := `
REG = "Bacc"
BASE = 0x10
TOP = BASE + 0x0f
ADDR = "%Xh" % TOP
_scratch = [1, 2, 3]
`

	defines, err := Load("defines.star", script)
	assert.NoError(err)
	assert.Equal(map[string]string{
		"REG":  "Bacc",
		"BASE": "16",
		"TOP":  "31",
		"ADDR": "1Fh",
	}, defines)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		script   string
		name     string
		expected error
	}{
		{"BIG = 256", "BIG", ErrDefineRange},
		{"NEG = -1", "NEG", ErrDefineRange},
		{"LIST = [1]", "LIST", ErrDefineType},
		{"FLAG = True", "FLAG", ErrDefineType},
		{`EMPTY = ""`, "EMPTY", ErrDefineEmpty},
		{`TWO = "A B"`, "TWO", ErrDefineSpace},
		{`PAD = " A"`, "PAD", ErrDefineSpace},
	}

	for _, entry := range table {
		defines, err := Load("bad.star", entry.script)
		assert.Nil(defines, entry.script)
		assert.True(errors.Is(err, entry.expected), entry.script)

		var ed *ErrDefine
		if assert.True(errors.As(err, &ed), entry.script) {
			assert.Equal(entry.name, ed.Name)
		}
	}

	_, err := Load("syntax.star", "X = (")
	assert.Error(err)
}

func TestApply(t *testing.T) {
	assert := assert.New(t)

	as := &asm.Assembler{}
	script := `
REG = "C"
SLOT = 0x20
`

	err := Apply(as, "defines.star", script)
	assert.NoError(err)

	prog, err := as.Parse(strings.NewReader("str SLOT REG"))
	assert.NoError(err)

	hex, err := prog.Hex()
	assert.NoError(err)
	assert.Equal([]string{"072002"}, hex)
}
