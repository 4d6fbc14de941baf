package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/overroot/rasm/asm"
	"github.com/overroot/rasm/translate"
)

var f = translate.From

// defineFlag collects NAME=VALUE predefines.
type defineFlag map[string]string

func (df defineFlag) String() string {
	var parts []string
	for name, value := range df {
		parts = append(parts, name+"="+value)
	}
	return strings.Join(parts, ",")
}

func (df defineFlag) Set(text string) (err error) {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 || len(value) == 0 {
		err = errors.New(f("expected NAME=VALUE, got %q", text))
		return
	}

	df[name] = value

	return
}

func (df defineFlag) Predefine(name string, value string) {
	df[name] = value
}

// options are shared, read only, by every unit.
type options struct {
	Verbose    bool
	Strict     bool
	Predefines map[string]string
}

// unit is one source file and its assembled output.
type unit struct {
	Name   string // Display name.
	Path   string // Source path; empty for stdin.
	Output string // Output name; empty to skip writing.

	Hex    []string
	Binary []byte
}

// open returns the source of the unit.
func (u *unit) open() (rc io.ReadCloser, err error) {
	if len(u.Path) == 0 {
		rc = io.NopCloser(os.Stdin)
		return
	}

	return os.Open(u.Path)
}

// assemble runs both passes with an Assembler owned by this unit.
func (u *unit) assemble(ctx context.Context, opts options) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("%v: %w", u.Name, err)
		}
	}()

	if err = ctx.Err(); err != nil {
		return
	}

	inf, err := u.open()
	if err != nil {
		return
	}
	defer inf.Close()

	as := &asm.Assembler{Verbose: opts.Verbose, Strict: opts.Strict}
	for name, value := range opts.Predefines {
		as.Predefine(name, value)
	}

	prog, err := as.Parse(inf)
	if err != nil {
		return
	}

	if opts.Verbose {
		for name, value := range as.Defines() {
			log.Printf("%v: %v := %v\n", u.Name, name, value)
		}
		for name, index := range as.Symbols.Labels() {
			log.Printf("%v: %v:: %d\n", u.Name, name, index)
		}
		for index, stmt := range prog.Listing() {
			log.Printf("%v: %04d %v ; line %d%v\n", u.Name, index, stmt.Instruction, stmt.LineNo, opcodeNote(stmt.Instruction))
		}
	}

	u.Hex, err = prog.Hex()
	if err != nil {
		return
	}

	u.Binary, err = prog.Binary()
	if err != nil {
		return
	}

	return
}

// collectUnits builds one unit per input file, or a single stdin unit when
// there are no files and stdin is not a terminal.
func collectUnits(args []string, output string, write bool, terminal bool) (units []*unit, err error) {
	if len(args) == 0 {
		switch {
		case terminal:
			err = errors.New(f("usage: %v", usage))
		case write:
			err = errors.New(f("-w needs input files, use -o with stdin"))
		default:
			units = append(units, &unit{Name: "<stdin>", Output: output})
		}
		return
	}

	for _, name := range args {
		base, ok := strings.CutSuffix(name, ".rasm")
		if !ok {
			units = nil
			err = errors.New(f("%v: invalid file format", name))
			return
		}
		u := &unit{Name: name, Path: name}
		if write {
			u.Output = base
		}
		units = append(units, u)
	}

	if len(output) != 0 {
		if len(units) != 1 || write {
			units = nil
			err = errors.New(f("-o takes a single input and excludes -w"))
			return
		}
		units[0].Output = output
	}

	return
}

// opcodeNote describes the opcode of an instruction for the verbose listing.
func opcodeNote(inst asm.Instruction) string {
	code, err := asm.Encode(inst)
	if err != nil {
		return f(", no opcode")
	}
	return f(", opcode %02Xh", code.Opcode())
}

// print writes the hex listing, one instruction per line.
func (u *unit) print(w io.Writer, named bool) (err error) {
	for _, line := range u.Hex {
		if named {
			err = translate.Fprintln(w, "%v: %v", u.Name, line)
		} else {
			err = translate.Fprintln(w, "%v", line)
		}
		if err != nil {
			return
		}
	}

	return
}

// write creates Output.hex with the hex listing and Output with the packed
// binary.
func (u *unit) write() (err error) {
	if len(u.Output) == 0 {
		return
	}

	err = os.WriteFile(u.Output+".hex", []byte(strings.Join(u.Hex, "\n")), 0o644)
	if err != nil {
		return
	}

	return os.WriteFile(u.Output, u.Binary, 0o644)
}
