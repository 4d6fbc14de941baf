package asm

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable_Constant(t *testing.T) {
	assert := assert.New(t)

	st := NewSymbolTable()
	st.DefineConstant("REG", "A")
	assert.Equal("A", st.Substitute("REG"))
	assert.Equal("B", st.Substitute("B"))
	assert.Equal("reg", st.Substitute("reg"))

	// Redefinition replaces the binding.
	st.DefineConstant("REG", "C")
	value, ok := st.Constant("REG")
	assert.True(ok)
	assert.Equal("C", value)
}

func TestSymbolTable_SubstituteSingleLevel(t *testing.T) {
	assert := assert.New(t)

	st := NewSymbolTable()
	st.DefineConstant("OUTER", "INNER")
	st.DefineConstant("INNER", "A")

	words := []string{"copy", "OUTER", "INNER"}
	once := st.SubstituteAll(words)
	assert.Equal([]string{"copy", "INNER", "A"}, once)
	assert.Equal([]string{"copy", "OUTER", "INNER"}, words)

	// Substituting the original line again gives the same result.
	assert.Equal(once, st.SubstituteAll(words))
}

func TestSymbolTable_Label(t *testing.T) {
	assert := assert.New(t)

	st := NewSymbolTable()
	assert.NoError(st.DefineLabel("start", 0))
	assert.NoError(st.DefineLabel("loop", 3))

	count, err := st.ResolveLabel("loop")
	assert.NoError(err)
	assert.Equal(3, count)

	err = st.DefineLabel("loop", 5)
	assert.Equal(ErrLabelAmbiguous("loop"), err)
	assert.True(errors.Is(err, ErrLabelDuplicate))

	count, err = st.ResolveLabel("loop")
	assert.NoError(err)
	assert.Equal(3, count)

	_, err = st.ResolveLabel("end")
	assert.Equal(ErrLabelUnknown("end"), err)
	assert.True(errors.Is(err, ErrLabelMissing))
}

func TestSymbolTable_Iterators(t *testing.T) {
	assert := assert.New(t)

	st := NewSymbolTable()
	st.DefineConstant("Z", "1")
	st.DefineConstant("M", "2")
	st.DefineConstant("A", "3")
	assert.NoError(st.DefineLabel("b", 1))
	assert.NoError(st.DefineLabel("a", 0))

	var names []string
	for name := range st.Constants() {
		names = append(names, name)
	}
	assert.Equal([]string{"A", "M", "Z"}, names)

	assert.Equal(map[string]int{"a": 0, "b": 1}, maps.Collect(st.Labels()))
}
