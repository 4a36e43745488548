/*
File    : luma/value/table.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "fmt"

// Table is Luma's single composite value type: an ordered association
// from Value keys to Value values. Tables are built with { ... } literals
// (1-based positional keys) and read with t[k] indexing; the language has
// no indexed assignment, so a table is not modified after construction.
//
// Internally this mirrors the teacher's Map type — a Go map for O(1)
// lookup plus a parallel slice recording insertion order for iteration —
// adapted from string-only keys to arbitrary Luma Value keys via keyOf.
type Table struct {
	entries map[string]tableEntry
	order   []string
}

type tableEntry struct {
	key Value
	val Value
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]tableEntry)}
}

func (t *Table) Type() Type { return TableType }

func (t *Table) String() string {
	result := "{"
	for i, k := range t.order {
		if i > 0 {
			result += ", "
		}
		e := t.entries[k]
		result += e.key.String() + ": " + e.val.String()
	}
	result += "}"
	return result
}

// Get looks up key, returning Nil when absent — a missing key is not an
// error, matching the source interpreter's IndexOperator rule for the
// missing-key case.
func (t *Table) Get(key Value) Value {
	e, ok := t.entries[keyOf(key)]
	if !ok {
		return Nil{}
	}
	return e.val
}

// Set stores val under key, appending key to the iteration order the
// first time it is seen.
func (t *Table) Set(key Value, val Value) {
	k := keyOf(key)
	if _, ok := t.entries[k]; !ok {
		t.order = append(t.order, k)
	}
	t.entries[k] = tableEntry{key: key, val: val}
}

// keyOf derives the canonical string a Value key is stored and compared
// under. Two keys of different Luma dynamic types are never equal, even
// if their textual forms coincide (e.g. number key 1 and string key "1"),
// because the type tag is folded into the string. Function and table
// values used as keys hash by pointer identity, which the interpreter
// this was distilled from leaves undefined — any stable, distinct key per
// distinct value satisfies it.
func keyOf(v Value) string {
	switch t := v.(type) {
	case Number:
		return "num:" + fmt.Sprintf("%v", t.Val)
	case String:
		return "str:" + t.Val
	case Boolean:
		return "bool:" + fmt.Sprintf("%t", t.Val)
	case Nil:
		return "nil"
	case *Table:
		return fmt.Sprintf("table:%p", t)
	case NativeFn:
		return fmt.Sprintf("native:%s:%p", t.Name, t.Fn)
	case UserFn:
		return fmt.Sprintf("func:%s:%p", t.Name, t.Body)
	default:
		return fmt.Sprintf("other:%p", &v)
	}
}
