/*
File    : luma/cmd/luma/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Luma interpreter. It provides
two modes of operation:
 1. File mode: parse and execute (or, with -p, just dump the AST of) a
    source file named on the command line.
 2. REPL mode (default, no filename given): an interactive read-eval-
    print loop.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pborman/getopt"

	"github.com/lumalang/luma/ast"
	"github.com/lumalang/luma/eval"
	"github.com/lumalang/luma/parser"
	"github.com/lumalang/luma/repl"
)

// VERSION is the current version of the Luma interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "Luma >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 ██╗     ██╗   ██╗███╗   ███╗ █████╗
 ██║     ██║   ██║████╗ ████║██╔══██╗
 ██║     ██║   ██║██╔████╔██║███████║
 ██║     ██║   ██║██║╚██╔╝██║██╔══██║
 ███████╗╚██████╔╝██║ ╚═╝ ██║██║  ██║
 ╚══════╝ ╚═════╝ ╚═╝     ╚═╝╚═╝  ╚═╝
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	printAST := getopt.BoolLong("print-ast", 'p', "parse the file and print its AST instead of running it")
	help := getopt.BoolLong("help", 'h', "display this help message")
	version := getopt.BoolLong("version", 'v', "display version information")
	getopt.SetParameters("[FILE]")
	getopt.Parse()

	if *help {
		showHelp()
		return
	}
	if *version {
		showVersion()
		return
	}

	args := getopt.Args()
	if len(args) == 0 {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	runFile(args[0], *printAST)
}

func showHelp() {
	cyanColor.Println("Luma - a small Lua-like scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  luma                 Start interactive REPL mode")
	fmt.Println("  luma <file>          Execute a Luma source file")
	fmt.Println("  luma -p <file>       Print the parsed AST instead of running it")
	fmt.Println("  luma --help          Display this help message")
	fmt.Println("  luma --version       Display version information")
}

func showVersion() {
	cyanColor.Printf("Luma %s (%s)\n", VERSION, LICENCE)
	cyanColor.Printf("Author: %s\n", AUTHOR)
}

// runFile reads filename, parses it, and either prints its AST
// (printAST true) or executes it with panic-to-diagnostic recovery.
func runFile(filename string, printAST bool) {
	content, err := os.ReadFile(filename)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: could not read file '%s': %v\n", filename, err)
		os.Exit(1)
	}

	p, err := parser.NewParser(string(content))
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	statements, err := p.Parse()
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if printAST {
		fmt.Printf("%#v\n", statements)
		return
	}

	executeWithRecovery(statements)
}

// executeWithRecovery runs statements under a fresh VM, converting any
// panic into a user-facing runtime-error diagnostic instead of a raw Go
// stack trace, and reporting evaluation errors the same way parse
// errors are reported.
func executeWithRecovery(statements []ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stderr, "Error: %v\n", r)
			os.Exit(1)
		}
	}()

	vm := eval.NewVM()
	if err := vm.Run(statements); err != nil {
		redColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
