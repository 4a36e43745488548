/*
File    : luma/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumalang/luma/ast"
)

func mustParse(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	p, err := NewParser(source)
	require.NoError(t, err)
	statements, err := p.Parse()
	require.NoError(t, err)
	return statements
}

func TestParser_LocalDeclAndBinary(t *testing.T) {
	statements := mustParse(t, `local x = 1 + 2 * 3`)

	want := []ast.Stmt{
		&ast.LocalDecl{
			Name: "x",
			Value: &ast.Binary{
				Left: &ast.NumberLiteral{Value: 1},
				Op:   "+",
				Right: &ast.Binary{
					Left:  &ast.NumberLiteral{Value: 2},
					Op:    "*",
					Right: &ast.NumberLiteral{Value: 3},
				},
			},
		},
	}

	if diff := cmp.Diff(want, statements); diff != "" {
		t.Fatalf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_IfElseIfElse(t *testing.T) {
	statements := mustParse(t, `
if x == 1 then
	return 1
elseif x == 2 then
	return 2
else
	return 3
end`)

	require.Len(t, statements, 1)
	ifStmt, ok := statements[0].(*ast.If)
	require.True(t, ok)
	assert.Len(t, ifStmt.ElseIfs, 1)
	assert.NotNil(t, ifStmt.Else)
}

func TestParser_WhileLoop(t *testing.T) {
	statements := mustParse(t, `
local i = 0
while i < 3 do
	i = i + 1
end`)
	require.Len(t, statements, 2)
	_, ok := statements[1].(*ast.While)
	assert.True(t, ok)
}

func TestParser_RepeatUntil(t *testing.T) {
	statements := mustParse(t, `
local i = 0
repeat
	i = i + 1
until i == 2`)
	require.Len(t, statements, 2)
	loop, ok := statements[1].(*ast.RepeatUntil)
	require.True(t, ok)
	assert.Len(t, loop.Body, 1)
}

func TestParser_NumericForWithDefaultStep(t *testing.T) {
	statements := mustParse(t, `
for i = 1, 10 do
	print(i)
end`)
	require.Len(t, statements, 1)
	loop, ok := statements[0].(*ast.NumericFor)
	require.True(t, ok)
	step, ok := loop.Step.(*ast.NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, 1.0, step.Value)
}

func TestParser_FunctionDeclAndCall(t *testing.T) {
	statements := mustParse(t, `
function add(a, b)
	return a + b
end
print(add(1, 2))`)
	require.Len(t, statements, 2)

	fn, ok := statements[0].(*ast.FuncDecl)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, fn.Params)

	call, ok := statements[1].(*ast.ExprStmt)
	require.True(t, ok)
	outer, ok := call.X.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "print", outer.Function)
	assert.Len(t, outer.Args, 1)
}

func TestParser_TableLiteralAndIndex(t *testing.T) {
	statements := mustParse(t, `
local t = { 10, 20, 30 }
local x = t[1]`)
	require.Len(t, statements, 2)

	decl, ok := statements[0].(*ast.LocalDecl)
	require.True(t, ok)
	table, ok := decl.Value.(*ast.TableLiteral)
	require.True(t, ok)
	assert.Len(t, table.Values, 3)

	indexDecl, ok := statements[1].(*ast.LocalDecl)
	require.True(t, ok)
	index, ok := indexDecl.Value.(*ast.Index)
	require.True(t, ok)
	ident, ok := index.Target.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "t", ident.Name)
}

func TestParser_ConcatenationIsAdditiveBand(t *testing.T) {
	statements := mustParse(t, `local s = "a" .. "b" .. "c"`)
	decl := statements[0].(*ast.LocalDecl)
	bin, ok := decl.Value.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "..", bin.Op)
}

func TestParser_TolerantCallArgsStopsOnNonExpression(t *testing.T) {
	statements := mustParse(t, `print()`)
	require.Len(t, statements, 1)
	call := statements[0].(*ast.ExprStmt).X.(*ast.Call)
	assert.Empty(t, call.Args)
}

func TestParser_SyntaxErrorIsFailFast(t *testing.T) {
	_, err := NewParser(`local x = `)
	require.NoError(t, err)
	p, _ := NewParser(`local x = `)
	_, err = p.Parse()
	assert.Error(t, err)
}
