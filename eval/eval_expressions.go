/*
File    : luma/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/lumalang/luma/ast"
	"github.com/lumalang/luma/value"
)

// evalExpr evaluates a single expression node to a Value.
func (vm *VM) evalExpr(expr ast.Expr) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return value.Number{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return value.Boolean{Val: n.Value}, nil
	case *ast.StringLiteral:
		return value.String{Val: n.Value}, nil
	case *ast.NilLiteral:
		return value.Nil{}, nil
	case *ast.Identifier:
		return vm.evalIdentifier(n)
	case *ast.Binary:
		return vm.evalBinary(n)
	case *ast.Call:
		return vm.evalCall(n)
	case *ast.TableLiteral:
		return vm.evalTableLiteral(n)
	case *ast.Index:
		return vm.evalIndex(n)
	default:
		return nil, fmt.Errorf("unknown expression node %T", expr)
	}
}

// evalIdentifier looks up an identifier's value. Identifier lookup never
// fails in Luma: an unbound name evaluates to nil, exactly as the source
// interpreter's lookup_variable().unwrap_or(Nil) does.
func (vm *VM) evalIdentifier(n *ast.Identifier) (value.Value, error) {
	v, _ := vm.Scopes.Lookup(n.Name)
	return v, nil
}

// evalBinary evaluates a binary expression. Operand types must match
// exactly — numbers with numbers, strings with strings, booleans with
// booleans — and the legal operator set differs per type pairing; any
// other combination, or an operator the pairing doesn't support, is a
// runtime type error.
func (vm *VM) evalBinary(n *ast.Binary) (value.Value, error) {
	left, err := vm.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := vm.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	switch l := left.(type) {
	case value.Number:
		r, ok := right.(value.Number)
		if !ok {
			return nil, fmt.Errorf("invalid expression %s %s %s", left.String(), n.Op, right.String())
		}
		return evalNumberBinary(l.Val, n.Op, r.Val)

	case value.String:
		r, ok := right.(value.String)
		if !ok {
			return nil, fmt.Errorf("invalid operator for strings: '%s'", n.Op)
		}
		return evalStringBinary(l.Val, n.Op, r.Val)

	case value.Boolean:
		r, ok := right.(value.Boolean)
		if !ok {
			return nil, fmt.Errorf("invalid operator for booleans: '%s'", n.Op)
		}
		return evalBooleanBinary(l.Val, n.Op, r.Val)

	default:
		return nil, fmt.Errorf("invalid expression %s %s %s", left.String(), n.Op, right.String())
	}
}

func evalNumberBinary(l float64, op string, r float64) (value.Value, error) {
	switch op {
	case "+":
		return value.Number{Val: l + r}, nil
	case "-":
		return value.Number{Val: l - r}, nil
	case "*":
		return value.Number{Val: l * r}, nil
	case "/":
		return value.Number{Val: l / r}, nil
	case "<":
		return value.Boolean{Val: l < r}, nil
	case ">":
		return value.Boolean{Val: l > r}, nil
	case "<=":
		return value.Boolean{Val: l <= r}, nil
	case ">=":
		return value.Boolean{Val: l >= r}, nil
	case "==":
		return value.Boolean{Val: l == r}, nil
	case "~=":
		return value.Boolean{Val: l != r}, nil
	default:
		return nil, fmt.Errorf("unknown operator for numbers: '%s'", op)
	}
}

func evalStringBinary(l string, op string, r string) (value.Value, error) {
	switch op {
	case "..":
		return value.String{Val: l + r}, nil
	case "==":
		return value.Boolean{Val: l == r}, nil
	case "~=":
		return value.Boolean{Val: l != r}, nil
	default:
		return nil, fmt.Errorf("invalid operator for strings: '%s'", op)
	}
}

func evalBooleanBinary(l bool, op string, r bool) (value.Value, error) {
	switch op {
	case "==":
		return value.Boolean{Val: l == r}, nil
	case "~=":
		return value.Boolean{Val: l != r}, nil
	default:
		return nil, fmt.Errorf("invalid operator for booleans: '%s'", op)
	}
}

// evalTableLiteral evaluates each key/value pair in source order and
// assembles them into a Table.
func (vm *VM) evalTableLiteral(n *ast.TableLiteral) (value.Value, error) {
	table := value.NewTable()
	for i := range n.Values {
		key, err := vm.evalExpr(n.Keys[i])
		if err != nil {
			return nil, err
		}
		val, err := vm.evalExpr(n.Values[i])
		if err != nil {
			return nil, err
		}
		table.Set(key, val)
	}
	return table, nil
}

// evalIndex evaluates t[k]. Indexing nil yields nil (mirroring the
// source rule that a nil "table" indexes to nil rather than erroring);
// indexing anything else that isn't a table is a runtime type error.
func (vm *VM) evalIndex(n *ast.Index) (value.Value, error) {
	target, err := vm.evalExpr(n.Target)
	if err != nil {
		return nil, err
	}

	key, err := vm.evalExpr(n.Key)
	if err != nil {
		return nil, err
	}

	switch t := target.(type) {
	case *value.Table:
		return t.Get(key), nil
	case value.Nil:
		return value.Nil{}, nil
	default:
		return nil, fmt.Errorf("cannot index non-table value %s", target.String())
	}
}
