// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/overroot/rasm/predefine"
	"github.com/overroot/rasm/translate"
)

const usage = "rasm [-v] [-strict] [-D NAME=VALUE]... [-p defines.star] [-o output | -w] file.rasm..."

func main() {
	var output string
	var write bool
	var script string
	var strict bool
	var verbose bool
	var lang string
	defines := defineFlag{}

	flag.StringVar(&output, "o", "", "Output name; writes NAME.hex and NAME")
	flag.BoolVar(&write, "w", false, "Write outputs next to each input")
	flag.StringVar(&script, "p", "", ".star file of predefined constants")
	flag.Var(defines, "D", "Predefine a constant, NAME=VALUE")
	flag.BoolVar(&strict, "strict", false, "Constant redefinition is an error")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message language, overriding the locale")

	flag.Parse()

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatal(err)
		}
	}

	predefines := defineFlag{}
	if len(script) != 0 {
		err := predefine.Apply(predefines, script, nil)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
	}
	for name, value := range defines {
		predefines.Predefine(name, value)
	}

	units, err := collectUnits(flag.Args(), output, write, term.IsTerminal(int(os.Stdin.Fd())))
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	opts := options{
		Verbose:    verbose,
		Strict:     strict,
		Predefines: predefines,
	}

	g, ctx := errgroup.WithContext(context.Background())
	for _, u := range units {
		g.Go(func() error {
			return u.assemble(ctx, opts)
		})
	}
	err = g.Wait()
	if err != nil {
		log.Fatal(err)
	}

	for _, u := range units {
		err = u.print(os.Stdout, len(units) > 1)
		if err != nil {
			log.Fatal(err)
		}
	}

	for _, u := range units {
		err = u.write()
		if err != nil {
			log.Fatal(err)
		}
	}
}
