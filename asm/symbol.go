package asm

import (
	"iter"
	"slices"

	"github.com/overroot/rasm/internal"
)

// SymbolTable holds the constants and labels of a single assembly run.
type SymbolTable struct {
	constants map[string]string // Constant name to replacement token.
	labels    map[string]int    // Label name to instruction index.
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		constants: make(map[string]string),
		labels:    make(map[string]int),
	}
}

// DefineConstant binds a name to a replacement token. A later definition
// replaces an earlier one.
func (st *SymbolTable) DefineConstant(name string, value string) {
	st.constants[name] = value
}

// Constant returns the replacement token for a name.
func (st *SymbolTable) Constant(name string) (value string, ok bool) {
	value, ok = st.constants[name]
	return
}

// DefineLabel records the index of the next instruction under a name.
func (st *SymbolTable) DefineLabel(name string, count int) (err error) {
	_, ok := st.labels[name]
	if ok {
		err = ErrLabelAmbiguous(name)
		return
	}

	st.labels[name] = count

	return
}

// ResolveLabel returns the instruction index of a label.
func (st *SymbolTable) ResolveLabel(name string) (count int, err error) {
	count, ok := st.labels[name]
	if !ok {
		err = ErrLabelUnknown(name)
	}

	return
}

// Substitute returns the value of a constant, or the token itself. Values are
// not substituted again.
func (st *SymbolTable) Substitute(token string) string {
	value, ok := st.constants[token]
	if ok {
		return value
	}
	return token
}

// SubstituteAll substitutes every word into a new slice.
func (st *SymbolTable) SubstituteAll(words []string) (out []string) {
	out = slices.Clone(words)
	for n, word := range out {
		out[n] = st.Substitute(word)
	}

	return
}

// Constants iterates over the constants by name.
func (st *SymbolTable) Constants() iter.Seq2[string, string] {
	return internal.IterSorted(st.constants)
}

// Labels iterates over the labels by name.
func (st *SymbolTable) Labels() iter.Seq2[string, int] {
	return internal.IterSorted(st.labels)
}
