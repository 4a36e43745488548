/*
File    : luma/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package value defines the runtime values the Luma evaluator operates on:
numbers, booleans, strings, nil, native and user-defined functions, and
tables. Every concrete type implements the Value interface, the same
shape the teacher's objects package gives its own value hierarchy, though
here String()/Type() stand in for ToString()/GetType() to match the
Stringer convention the rest of the Go ecosystem expects.
*/
package value

import (
	"fmt"

	"github.com/lumalang/luma/ast"
)

// Type identifies the dynamic type of a Value.
type Type string

const (
	NumberType   Type = "number"
	BooleanType  Type = "boolean"
	StringType   Type = "string"
	NilType      Type = "nil"
	NativeFnType Type = "native-function"
	UserFnType   Type = "function"
	TableType    Type = "table"
	VoidType     Type = "void"
)

// Value is implemented by every Luma runtime value.
type Value interface {
	// Type reports the dynamic type of the value.
	Type() Type
	// String renders the value the way `print` renders it.
	String() string
}

// Number is a Luma number, backed by a float64 exactly as the source
// language's lexer produces — Luma has no integer/float distinction.
type Number struct {
	Val float64
}

func (n Number) Type() Type { return NumberType }
func (n Number) String() string {
	return fmt.Sprintf("%v", n.Val)
}

// Boolean is a Luma boolean.
type Boolean struct {
	Val bool
}

func (b Boolean) Type() Type     { return BooleanType }
func (b Boolean) String() string { return fmt.Sprintf("%t", b.Val) }

// String is a Luma string.
type String struct {
	Val string
}

func (s String) Type() Type     { return StringType }
func (s String) String() string { return s.Val }

// Nil is Luma's absent value. There is exactly one Nil value; compare
// Values by type, not by identity.
type Nil struct{}

func (Nil) Type() Type     { return NilType }
func (Nil) String() string { return "nil" }

// Void is an internal sentinel — never a value a Luma program can observe
// — meaning "this statement produced no value". It is what separates an
// ordinary statement falling through a block from a return statement
// unwinding one: the evaluator treats any non-Void statement result as a
// signal to stop executing the current block and propagate that result
// upward.
type Void struct{}

func (Void) Type() Type     { return VoidType }
func (Void) String() string { return "<void>" }

// IsVoid reports whether v is the Void sentinel.
func IsVoid(v Value) bool {
	_, ok := v.(Void)
	return ok
}

// IsTruthy implements Luma's truthiness rule: everything is truthy except
// Nil and the boolean false.
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case Nil:
		return false
	case Boolean:
		return t.Val
	default:
		return true
	}
}

// NativeFn is a function implemented in Go and exposed to Luma programs,
// e.g. the print builtin. It receives already-evaluated arguments and an
// io.Writer-backed context via the closure that built it.
type NativeFn struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (f NativeFn) Type() Type     { return NativeFnType }
func (f NativeFn) String() string { return fmt.Sprintf("<native-function:%s>", f.Name) }

// UserFn is a function declared in Luma source. It carries only its
// parameter names and body — no captured environment — because Luma user
// functions are not closures: every call runs against a fresh scope frame
// holding just the arguments, pushed on top of whatever scope stack
// happens to be live at the call site (see Design Notes).
type UserFn struct {
	Name   string
	Params []string
	Body   []ast.Stmt
}

func (f UserFn) Type() Type     { return UserFnType }
func (f UserFn) String() string { return fmt.Sprintf("<function:%s>", f.Name) }
