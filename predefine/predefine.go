// Package predefine loads assembler constants from a Starlark script.
//
// Every global of the script that is an integer in 0..255 or a string becomes
// a constant. Integers are rendered as decimal tokens, strings are taken
// verbatim. Globals whose name starts with an underscore are private to the
// script; any other public global is an error.
//
//	REG = "A"
//	BASE = 0x10
//	TOP = BASE + 0x0f
//	_scratch = [1, 2]
package predefine

import (
	"errors"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/overroot/rasm/internal"
	"github.com/overroot/rasm/translate"
)

var f = translate.From

var (
	ErrDefineType  = errors.New(f("not an integer or string"))
	ErrDefineRange = errors.New(f("out of range 0..255"))
	ErrDefineEmpty = errors.New(f("empty value"))
	ErrDefineSpace = errors.New(f("value contains whitespace"))
)

// ErrDefine locates an unusable global in a predefine script.
type ErrDefine struct {
	Name string
	Err  error
}

func (err *ErrDefine) Error() string {
	return f("predefine %v: %v", err.Name, err.Err)
}

func (err *ErrDefine) Unwrap() error {
	return err.Err
}

// Definer receives constant definitions.
type Definer interface {
	Predefine(name string, value string)
}

// Load executes a script and returns its constants. src may be nil, in which
// case filename is read.
func Load(filename string, src any) (defines map[string]string, err error) {
	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, nil)
	if err != nil {
		return
	}

	defines = make(map[string]string, len(globals))
	for name, value := range internal.IterSorted(globals) {
		if strings.HasPrefix(name, "_") {
			continue
		}

		var token string
		token, err = tokenOf(value)
		if err != nil {
			defines = nil
			err = &ErrDefine{Name: name, Err: err}
			return
		}
		defines[name] = token
	}

	return
}

// Apply loads a script and predefines every constant on def.
func Apply(def Definer, filename string, src any) (err error) {
	defines, err := Load(filename, src)
	if err != nil {
		return
	}

	for name, value := range internal.IterSorted(defines) {
		def.Predefine(name, value)
	}

	return
}

// tokenOf renders a Starlark value as a source token.
func tokenOf(value starlark.Value) (token string, err error) {
	switch v := value.(type) {
	case starlark.Int:
		n, ok := v.Int64()
		if !ok || n < 0 || n > 0xff {
			err = ErrDefineRange
			return
		}
		token = strconv.FormatInt(n, 10)
	case starlark.String:
		token = string(v)
		switch {
		case len(token) == 0:
			err = ErrDefineEmpty
		case len(strings.Fields(token)) != 1 || strings.TrimSpace(token) != token:
			err = ErrDefineSpace
		}
	default:
		err = ErrDefineType
	}

	return
}
