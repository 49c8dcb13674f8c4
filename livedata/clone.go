package livedata

import "reflect"

// CloneFunc returns a copy of a value handed out by a container.
type CloneFunc[T any] func(T) T

// ShallowCopy copies the top level of v.
//
// Maps and slices get a new backing store holding the same elements, and a
// non-nil pointer gets a new pointee copied from the old one. Structs,
// arrays, strings and numbers are returned as is, since Go already copies
// them by value. Nothing below the first level is duplicated: a map field
// inside a struct, or a pointer stored in a slice, is shared with the
// original.
func ShallowCopy[T any](v T) T {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return v
	}
	var cp reflect.Value
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		cp = reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), iter.Value())
		}
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		cp = reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(cp, rv)
	case reflect.Pointer:
		if rv.IsNil() {
			return v
		}
		cp = reflect.New(rv.Type().Elem())
		cp.Elem().Set(rv.Elem())
	default:
		return v
	}
	out, ok := cp.Interface().(T)
	if !ok {
		return v
	}
	return out
}

// Identity returns v unchanged. Use it with WithClone for values that must
// be shared rather than copied, such as handles or channels.
func Identity[T any](v T) T {
	return v
}
