/*
File    : luma/eval/vm.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package eval implements the tree-walking evaluator that runs a parsed
Luma program. VM owns the scope stack and the output writer print writes
to; it has no other mutable global state, matching the single-threaded,
single-owner execution model the source language was built around.
*/
package eval

import (
	"io"
	"os"

	"github.com/lumalang/luma/ast"
	"github.com/lumalang/luma/scope"
	"github.com/lumalang/luma/value"
)

// VM is Luma's evaluator. Exactly one VM exists per running program (or
// per REPL session); it is not safe for concurrent use from multiple
// goroutines, since the scope stack it owns is mutated in place on every
// statement.
type VM struct {
	Scopes *scope.Stack
	Out    io.Writer
}

// NewVM creates a VM with a fresh global scope, the print builtin already
// registered, and stdout as the default output writer.
func NewVM() *VM {
	vm := &VM{
		Scopes: scope.NewStack(),
		Out:    os.Stdout,
	}
	vm.registerBuiltins()
	return vm
}

// SetWriter redirects where the print builtin (and any other native
// function that writes program output) sends its output — the REPL uses
// this to route output to its own writer instead of stdout.
func (vm *VM) SetWriter(w io.Writer) {
	vm.Out = w
}

// Run evaluates a parsed program's top-level statements directly in the
// global frame, without pushing a block scope of their own — this is
// what lets a REPL call Run once per line and have `local` declarations
// from earlier lines still be visible to later ones, since they all
// land in the same global frame rather than a frame Run discards when
// it returns. A top-level return statement (there is no enclosing
// function to return from) simply ends the run; its value is
// discarded, matching the source interpreter's own top-level execute
// loop.
func (vm *VM) Run(statements []ast.Stmt) error {
	_, err := vm.evalStatementsNoScope(statements)
	return err
}

// registerBuiltins declares the native functions every Luma program
// starts with.
func (vm *VM) registerBuiltins() {
	vm.Scopes.Declare("print", value.NativeFn{Name: "print", Fn: vm.nativePrint})
}
