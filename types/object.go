package types

import "fmt"

var _ Value = NewObjectValue()

// ObjectValue is a plain record: string keys mapped to values, in
// insertion order. It is a pointer type; identity is the pointer.
type ObjectValue struct {
	names  []string
	values []Value
}

// NewObjectValue returns an empty object.
func NewObjectValue() *ObjectValue {
	return &ObjectValue{}
}

func (v *ObjectValue) V() any {
	return v
}

func (v *ObjectValue) Type() Type {
	return TypeObject
}

func (v *ObjectValue) Len() int {
	return len(v.names)
}

// Set assigns x to the given key. An existing key keeps its position,
// a new key is appended.
func (v *ObjectValue) Set(name string, x Value) {
	for i, n := range v.names {
		if n == name {
			v.values[i] = x
			return
		}
	}

	v.names = append(v.names, name)
	v.values = append(v.values, x)
}

func (v *ObjectValue) Get(name string) (Value, bool) {
	for i, n := range v.names {
		if n == name {
			return v.values[i], true
		}
	}

	return nil, false
}

// Iterate goes through all the fields of the object in insertion order
// and calls the given function with each key and value.
func (v *ObjectValue) Iterate(fn func(name string, value Value) error) error {
	for i, n := range v.names {
		if err := fn(n, v.values[i]); err != nil {
			return err
		}
	}

	return nil
}

func (v *ObjectValue) String() string {
	return fmt.Sprintf("object(%d)", len(v.names))
}
