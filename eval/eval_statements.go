/*
File    : luma/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Statement evaluation follows the same early-termination idiom the
source evaluator uses for blocks: evalStatements runs a slice of
statements in order and stops the moment one of them produces a
non-void value — that value is a `return` bubbling up through enclosing
blocks, loops, and if-arms. Every construct that owns a nested block
(while, repeat-until, numeric for, if/elseif/else, function bodies)
forwards whatever evalStatements returns for its block straight to its
own caller instead of swallowing it.
*/
package eval

import (
	"fmt"

	"github.com/lumalang/luma/ast"
	"github.com/lumalang/luma/value"
)

// evalStatements runs a block of statements in its own scope frame and
// returns the first non-void value produced (i.e. a `return`), or
// value.Void{} if the block ran to completion without returning.
func (vm *VM) evalStatements(statements []ast.Stmt) (value.Value, error) {
	vm.Scopes.Push()
	defer vm.Scopes.Pop()
	return vm.evalStatementsNoScope(statements)
}

// evalStatementsNoScope runs a block of statements in the CURRENT scope
// frame, without pushing a new one. Used where the caller has already
// pushed the frame the block should execute in — e.g. a numeric for
// loop declares its loop variable once per iteration in the frame the
// body then runs in.
func (vm *VM) evalStatementsNoScope(statements []ast.Stmt) (value.Value, error) {
	for _, stmt := range statements {
		result, err := vm.evalStmt(stmt)
		if err != nil {
			return nil, err
		}
		if !value.IsVoid(result) {
			return result, nil
		}
	}
	return value.Void{}, nil
}

// evalStmt evaluates a single statement, returning value.Void{} unless
// the statement is (or contains) a `return` that fires.
func (vm *VM) evalStmt(stmt ast.Stmt) (value.Value, error) {
	switch n := stmt.(type) {
	case *ast.LocalDecl:
		return value.Void{}, vm.evalLocalDecl(n)
	case *ast.Assign:
		return value.Void{}, vm.evalAssign(n)
	case *ast.ExprStmt:
		_, err := vm.evalExpr(n.X)
		return value.Void{}, err
	case *ast.While:
		return vm.evalWhile(n)
	case *ast.RepeatUntil:
		return vm.evalRepeatUntil(n)
	case *ast.NumericFor:
		return vm.evalNumericFor(n)
	case *ast.If:
		return vm.evalIf(n)
	case *ast.FuncDecl:
		return value.Void{}, vm.evalFuncDecl(n)
	case *ast.Return:
		return vm.evalReturn(n)
	default:
		return nil, fmt.Errorf("unknown statement node %T", stmt)
	}
}

func (vm *VM) evalLocalDecl(n *ast.LocalDecl) error {
	v, err := vm.evalExpr(n.Value)
	if err != nil {
		return err
	}
	vm.Scopes.Declare(n.Name, v)
	return nil
}

// evalAssign assigns to an existing binding wherever in the scope stack
// it lives, or creates it in the global frame if no frame holds it yet
// — Luma has no explicit "global" keyword, so a bare assignment to an
// unbound name implicitly creates a global.
func (vm *VM) evalAssign(n *ast.Assign) error {
	v, err := vm.evalExpr(n.Value)
	if err != nil {
		return err
	}
	vm.Scopes.Assign(n.Name, v)
	return nil
}

func (vm *VM) evalWhile(n *ast.While) (value.Value, error) {
	for {
		cond, err := vm.evalExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		if !value.IsTruthy(cond) {
			break
		}

		result, err := vm.evalStatements(n.Body)
		if err != nil {
			return nil, err
		}
		if !value.IsVoid(result) {
			return result, nil
		}
	}
	return value.Void{}, nil
}

// evalRepeatUntil runs the body at least once, exiting as soon as the
// until-condition evaluates true — ordinary repeat-until semantics, not
// "run while the condition is false" inverted some other way.
func (vm *VM) evalRepeatUntil(n *ast.RepeatUntil) (value.Value, error) {
	for {
		result, err := vm.evalStatements(n.Body)
		if err != nil {
			return nil, err
		}
		if !value.IsVoid(result) {
			return result, nil
		}

		cond, err := vm.evalExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		if value.IsTruthy(cond) {
			break
		}
	}
	return value.Void{}, nil
}

// evalNumericFor evaluates start and step once, then steps the loop
// variable through the range, declaring it fresh in its own frame on
// every iteration so the body sees a plain local it is free to shadow
// or rebind without affecting the loop's own bookkeeping. end is
// re-evaluated before every iteration, not just once up front, so a
// body that mutates the value end's expression reads can shorten or
// lengthen the loop while it runs. The loop condition is always a
// fixed i <= end, regardless of step's sign — a negative or zero step
// is accepted rather than rejected, matching the rule that such a loop
// simply doesn't terminate on its own; callers are responsible for
// making sure it does.
func (vm *VM) evalNumericFor(n *ast.NumericFor) (value.Value, error) {
	startV, err := vm.evalExpr(n.Start)
	if err != nil {
		return nil, err
	}
	stepV, err := vm.evalExpr(n.Step)
	if err != nil {
		return nil, err
	}

	start, ok := startV.(value.Number)
	if !ok {
		return nil, fmt.Errorf("for loop start must be a number, got %s", startV.String())
	}
	step, ok := stepV.(value.Number)
	if !ok {
		return nil, fmt.Errorf("for loop step must be a number, got %s", stepV.String())
	}

	for i := start.Val; ; i += step.Val {
		endV, err := vm.evalExpr(n.End)
		if err != nil {
			return nil, err
		}
		end, ok := endV.(value.Number)
		if !ok {
			return nil, fmt.Errorf("for loop end must be a number, got %s", endV.String())
		}
		if i > end.Val {
			break
		}

		vm.Scopes.Push()
		vm.Scopes.Declare(n.Name, value.Number{Val: i})
		result, err := vm.evalStatementsNoScope(n.Body)
		vm.Scopes.Pop()
		if err != nil {
			return nil, err
		}
		if !value.IsVoid(result) {
			return result, nil
		}
	}
	return value.Void{}, nil
}

// evalIf tries the if-condition, then each elseif arm in order, falling
// back to the else block (if present); exactly one arm's block, if any,
// is executed.
func (vm *VM) evalIf(n *ast.If) (value.Value, error) {
	cond, err := vm.evalExpr(n.Cond)
	if err != nil {
		return nil, err
	}
	if value.IsTruthy(cond) {
		return vm.evalStatements(n.Body)
	}

	for _, arm := range n.ElseIfs {
		armCond, err := vm.evalExpr(arm.Cond)
		if err != nil {
			return nil, err
		}
		if value.IsTruthy(armCond) {
			return vm.evalStatements(arm.Body)
		}
	}

	if n.Else != nil {
		return vm.evalStatements(n.Else)
	}

	return value.Void{}, nil
}

// evalFuncDecl binds a user function in the current (innermost) frame,
// the same way a local declaration does, so a function declared inside
// a block goes out of scope when that block exits. Luma functions are
// not closures: they capture no enclosing scope, only their parameter
// list and body.
func (vm *VM) evalFuncDecl(n *ast.FuncDecl) error {
	fn := value.UserFn{Name: n.Name, Params: n.Params, Body: n.Body}
	vm.Scopes.Declare(n.Name, fn)
	return nil
}

func (vm *VM) evalReturn(n *ast.Return) (value.Value, error) {
	if n.X == nil {
		return value.Nil{}, nil
	}
	return vm.evalExpr(n.X)
}
