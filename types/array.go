package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var _ Value = NewArrayValue()

// ArrayValue is a positional container. It is a pointer type; identity
// is the pointer.
type ArrayValue struct {
	values []Value
}

// NewArrayValue returns an array holding the given values.
func NewArrayValue(values ...Value) *ArrayValue {
	return &ArrayValue{values: values}
}

// NewArrayValueOfLength returns an array of n slots, all nil. Slots are
// meant to be filled with Set; a nil slot reads as null.
func NewArrayValueOfLength(n int) *ArrayValue {
	return &ArrayValue{values: make([]Value, n)}
}

func (v *ArrayValue) V() any {
	return v.values
}

func (v *ArrayValue) Type() Type {
	return TypeArray
}

func (v *ArrayValue) Len() int {
	return len(v.values)
}

func (v *ArrayValue) Get(i int) (Value, error) {
	if i < 0 || i >= len(v.values) {
		return nil, errors.Errorf("index %d out of range", i)
	}

	return v.values[i], nil
}

func (v *ArrayValue) Set(i int, x Value) error {
	if i < 0 || i >= len(v.values) {
		return errors.Errorf("index %d out of range", i)
	}

	v.values[i] = x
	return nil
}

func (v *ArrayValue) Append(x ...Value) {
	v.values = append(v.values, x...)
}

// Iterate goes through all the values of the array in order and calls
// the given function with each one of them.
func (v *ArrayValue) Iterate(fn func(i int, value Value) error) error {
	for i, x := range v.values {
		if err := fn(i, x); err != nil {
			return err
		}
	}

	return nil
}

func (v *ArrayValue) String() string {
	return fmt.Sprintf("array(%d)", len(v.values))
}
