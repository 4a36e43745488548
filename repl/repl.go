/*
File    : luma/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Luma
interpreter. The REPL provides an interactive environment where users
can:
- Enter Luma code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing
capabilities and integrates with the parser and evaluator to execute
user input. A single VM instance is kept alive for the whole session,
so globals and functions declared on one line are visible on later
ones.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lumalang/luma/eval"
	"github.com/lumalang/luma/parser"
)

// Color definitions for REPL output.
var (
	blueColor  = color.New(color.FgBlue)
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance. It encapsulates
// all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Luma!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: print the banner, then read lines
// from stdin (via readline, for history and editing) until '.exit' or
// EOF, parsing and running each line against one long-lived VM.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	vm := eval.NewVM()
	vm.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, vm)
	}
}

// executeWithRecovery lexes, parses and runs a single line against vm.
// Unlike file execution, the REPL never exits on error: it reports the
// problem in red and returns to the prompt.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, vm *eval.VM) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "Error: %v\n", recovered)
		}
	}()

	p, err := parser.NewParser(line)
	if err != nil {
		redColor.Fprintf(writer, "Error: %v\n", err)
		return
	}

	statements, err := p.Parse()
	if err != nil {
		redColor.Fprintf(writer, "Error: %v\n", err)
		return
	}

	if err := vm.Run(statements); err != nil {
		redColor.Fprintf(writer, "Error: %v\n", err)
	}
}
