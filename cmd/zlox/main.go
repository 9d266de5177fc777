package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zlox-lang/zlox"
)

func main() {
	debug := flag.Bool("debug", false, "Dump tokens and bytecode to stderr before executing")
	disassemble := flag.Bool("disassemble", false, "Print the compiled bytecode instead of executing it")
	flag.Parse()

	// Flags may also follow the file name: resume flag parsing after
	// each positional argument.
	var args []string
	for rest := flag.Args(); len(rest) > 0; rest = flag.Args() {
		args = append(args, rest[0])
		flag.CommandLine.Parse(rest[1:])
	}

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: zlox <filename.lox>")
		os.Exit(1)
	}

	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can't open source file: %s\n", err)
		os.Exit(1)
	}

	cfg := zlox.NewConfig()
	cfg.SetBool("debug", *debug)
	cfg.SetBool("disassemble", *disassemble)
	cfg.SetString("source.path", path)

	if err := zlox.Interpret(source, os.Stdout, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
