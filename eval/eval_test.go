/*
File    : luma/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumalang/luma/parser"
)

// run parses and executes source against a fresh VM, capturing whatever
// print() wrote, and returns that output.
func run(t *testing.T, source string) string {
	t.Helper()
	p, err := parser.NewParser(source)
	require.NoError(t, err)
	statements, err := p.Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	vm := NewVM()
	vm.SetWriter(&buf)

	err = vm.Run(statements)
	require.NoError(t, err)
	return buf.String()
}

func TestEval_ArithmeticAndPrint(t *testing.T) {
	out := run(t, `print(1 + 2 * 3)`)
	assert.Equal(t, "7\t\n", out)
}

func TestEval_LocalAndAssign(t *testing.T) {
	out := run(t, `
local x = 1
x = x + 41
print(x)`)
	assert.Equal(t, "42\t\n", out)
}

func TestEval_ImplicitGlobalAssign(t *testing.T) {
	out := run(t, `
y = 10
print(y)`)
	assert.Equal(t, "10\t\n", out)
}

func TestEval_StringConcat(t *testing.T) {
	out := run(t, `print("a" .. "b" .. "c")`)
	assert.Equal(t, "abc\t\n", out)
}

func TestEval_WhileLoop(t *testing.T) {
	out := run(t, `
local i = 0
while i < 3 do
	print(i)
	i = i + 1
end`)
	assert.Equal(t, "0\t\n1\t\n2\t\n", out)
}

// TestEval_RepeatUntilRunsAtLeastOnce checks that the body of a
// repeat-until loop executes even when its until-condition is true
// from the start.
func TestEval_RepeatUntilRunsAtLeastOnce(t *testing.T) {
	out := run(t, `
local i = 0
repeat
	print(i)
	i = i + 1
until true`)
	assert.Equal(t, "0\t\n", out)
}

func TestEval_RepeatUntilStopsOnCondition(t *testing.T) {
	out := run(t, `
local i = 0
repeat
	i = i + 1
	print(i)
until i == 3`)
	assert.Equal(t, "1\t\n2\t\n3\t\n", out)
}

func TestEval_NumericForDefaultStep(t *testing.T) {
	out := run(t, `
for i = 1, 3 do
	print(i)
end`)
	assert.Equal(t, "1\t\n2\t\n3\t\n", out)
}

func TestEval_IfElseIfElse(t *testing.T) {
	out := run(t, `
function classify(n)
	if n == 1 then
		return "one"
	elseif n == 2 then
		return "two"
	else
		return "many"
	end
end

print(classify(1))
print(classify(2))
print(classify(3))`)
	assert.Equal(t, "one\t\ntwo\t\nmany\t\n", out)
}

// TestEval_ReturnPropagatesThroughNestedBlocks makes sure a return deep
// inside an if-arm inside a while loop unwinds all the way out of the
// enclosing function, not just out of the innermost block.
func TestEval_ReturnPropagatesThroughNestedBlocks(t *testing.T) {
	out := run(t, `
function firstOver(limit)
	local i = 0
	while true do
		i = i + 1
		if i > limit then
			return i
		end
	end
end

print(firstOver(3))`)
	assert.Equal(t, "4\t\n", out)
}

// TestEval_FunctionsAreNotClosures checks that a free name in a function
// body resolves against the scope stack live at the call site: the
// top-level local x sits in the global frame, so readX sees it.
func TestEval_FunctionsAreNotClosures(t *testing.T) {
	out := run(t, `
local x = 100
function readX()
	return x
end
print(readX())`)
	assert.Equal(t, "100\t\n", out)
}

func TestEval_TableLiteralAndIndex(t *testing.T) {
	out := run(t, `
local t = { 10, 20, 30 }
print(t[1])
print(t[3])`)
	assert.Equal(t, "10\t\n30\t\n", out)
}

func TestEval_IndexingNilYieldsNil(t *testing.T) {
	out := run(t, `
local t = nil
print(t[1])`)
	assert.Equal(t, "nil\t\n", out)
}

func TestEval_IndexingMissingKeyYieldsNil(t *testing.T) {
	out := run(t, `
local t = { 1, 2 }
print(t[5])`)
	assert.Equal(t, "nil\t\n", out)
}

func TestEval_CallArityMismatchErrors(t *testing.T) {
	p, err := parser.NewParser(`
function add(a, b)
	return a + b
end
print(add(1))`)
	require.NoError(t, err)
	statements, err := p.Parse()
	require.NoError(t, err)

	vm := NewVM()
	vm.SetWriter(&bytes.Buffer{})
	err = vm.Run(statements)
	assert.Error(t, err)
}

func TestEval_PrintRejectsTableArgument(t *testing.T) {
	p, err := parser.NewParser(`
local t = { 1, 2 }
print(t)`)
	require.NoError(t, err)
	statements, err := p.Parse()
	require.NoError(t, err)

	vm := NewVM()
	vm.SetWriter(&bytes.Buffer{})
	err = vm.Run(statements)
	assert.Error(t, err)
}
