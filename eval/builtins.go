/*
File    : luma/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/lumalang/luma/value"
)

// nativePrint writes each argument's textual form separated by tabs and
// terminated by a newline, then returns Nil — print's result is an
// ordinary, observable value, not the internal Void sentinel used for
// "this statement didn't return anything". Functions and tables are
// not printable arguments — attempting to print one is a runtime
// error, matching the source native's own "Invalid argument" rejection
// of non-scalar values.
func (vm *VM) nativePrint(args []value.Value) (value.Value, error) {
	for _, arg := range args {
		switch arg.(type) {
		case value.Number, value.Boolean, value.String, value.Nil:
			fmt.Fprintf(vm.Out, "%s\t", arg.String())
		default:
			return nil, fmt.Errorf("invalid argument to print: %s", arg.String())
		}
	}
	fmt.Fprintln(vm.Out)
	return value.Nil{}, nil
}
