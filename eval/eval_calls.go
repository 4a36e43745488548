/*
File    : luma/eval/eval_calls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/lumalang/luma/ast"
	"github.com/lumalang/luma/value"
)

// evalCall resolves the callee by name, evaluates its arguments left to
// right, and dispatches to either a native or a user function. Calling
// an unbound name, or a name bound to something that isn't callable, is
// a runtime error.
func (vm *VM) evalCall(n *ast.Call) (value.Value, error) {
	callee, ok := vm.Scopes.Lookup(n.Function)
	if !ok {
		return nil, fmt.Errorf("attempt to call undefined function '%s'", n.Function)
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := vm.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case value.NativeFn:
		return fn.Fn(args)
	case value.UserFn:
		return vm.callUserFn(fn, args)
	default:
		return nil, fmt.Errorf("attempt to call non-function value '%s'", n.Function)
	}
}

// callUserFn checks arity, binds parameters to arguments in a fresh
// scope frame, and runs the function body in it. User functions are
// not closures — the frame they run in holds only their own
// parameters and locals, and is pushed on top of the scope stack live
// at the call site, so free names in the body resolve against every
// frame on that stack, exactly like any other block's frame.
func (vm *VM) callUserFn(fn value.UserFn, args []value.Value) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, fmt.Errorf("function '%s' expects %d argument(s), got %d",
			fn.Name, len(fn.Params), len(args))
	}

	vm.Scopes.Push()
	defer vm.Scopes.Pop()

	for i, param := range fn.Params {
		vm.Scopes.Declare(param, args[i])
	}

	result, err := vm.evalStatementsNoScope(fn.Body)
	if err != nil {
		return nil, err
	}
	if value.IsVoid(result) {
		return value.Nil{}, nil
	}
	return result, nil
}
