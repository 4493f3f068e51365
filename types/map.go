package types

import "fmt"

var _ Value = NewMapValue()

// MapValue is an associative container whose keys are themselves
// values, kept in insertion order. It is a pointer type; identity is
// the pointer.
type MapValue struct {
	keys   []Value
	values []Value
}

// NewMapValue returns an empty map.
func NewMapValue() *MapValue {
	return &MapValue{}
}

func (v *MapValue) V() any {
	return v
}

func (v *MapValue) Type() Type {
	return TypeMap
}

func (v *MapValue) Len() int {
	return len(v.keys)
}

// Set assigns x to the given key. Keys compare with ==: reference types
// by pointer, leaves by content (a bigint by its *big.Int pointer). An
// existing key keeps its position.
func (v *MapValue) Set(key, x Value) {
	for i, k := range v.keys {
		if k == key {
			v.values[i] = x
			return
		}
	}

	v.keys = append(v.keys, key)
	v.values = append(v.values, x)
}

func (v *MapValue) Get(key Value) (Value, bool) {
	for i, k := range v.keys {
		if k == key {
			return v.values[i], true
		}
	}

	return nil, false
}

// Iterate goes through all the entries of the map in insertion order
// and calls the given function with each key and value.
func (v *MapValue) Iterate(fn func(key, value Value) error) error {
	for i, k := range v.keys {
		if err := fn(k, v.values[i]); err != nil {
			return err
		}
	}

	return nil
}

func (v *MapValue) String() string {
	return fmt.Sprintf("map(%d)", len(v.keys))
}
