// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// Path traverses a sequential path through the structure of a value starting
// at v, where path elements are either strings (denoting object keys) or
// integers (denoting offsets into arrays). If the path is valid, the element
// reached is returned. In case of error, the input v is returned along with
// the error.
//
// A string resolves the first member of an object with that key. An integer
// resolves an index in an array; negative indices count backward from the
// end (-1 is last).
//
// If a path element is a function with signature
//
//	func(ast.Value) (ast.Value, error)
//
// it is called with the current value, and its result becomes the next value
// in the sequence.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(Object)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %q", cur, t)
			}
			m := obj.Find(t)
			if m == nil {
				return v, fmt.Errorf("key %q not found", t)
			}
			cur = m.Value

		case int:
			arr, ok := cur.(Array)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %d", cur, t)
			}
			i := t
			if i < 0 {
				i += len(arr)
			}
			if i < 0 || i >= len(arr) {
				return v, fmt.Errorf("array index %d out of bounds (n=%d)", t, len(arr))
			}
			cur = arr[i]

		case func(Value) (Value, error):
			next, err := t(cur)
			if err != nil {
				return v, err
			}
			cur = next

		default:
			return v, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}
