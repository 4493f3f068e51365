package types

import "fmt"

var _ Value = NewSetValue()

// SetValue is a collection of distinct values in insertion order. It is
// a pointer type; identity is the pointer.
type SetValue struct {
	values []Value
}

// NewSetValue returns a set holding the given values, minus duplicates.
func NewSetValue(values ...Value) *SetValue {
	s := &SetValue{}
	for _, x := range values {
		s.Add(x)
	}
	return s
}

func (v *SetValue) V() any {
	return v
}

func (v *SetValue) Type() Type {
	return TypeSet
}

func (v *SetValue) Len() int {
	return len(v.values)
}

// Add inserts x unless already present. Membership compares with ==:
// reference types by pointer, leaves by content (a bigint by its
// *big.Int pointer).
func (v *SetValue) Add(x Value) {
	if v.Contains(x) {
		return
	}

	v.values = append(v.values, x)
}

func (v *SetValue) Contains(x Value) bool {
	for _, e := range v.values {
		if e == x {
			return true
		}
	}

	return false
}

// Iterate goes through all the elements of the set in insertion order
// and calls the given function with each one of them.
func (v *SetValue) Iterate(fn func(value Value) error) error {
	for _, x := range v.values {
		if err := fn(x); err != nil {
			return err
		}
	}

	return nil
}

func (v *SetValue) String() string {
	return fmt.Sprintf("set(%d)", len(v.values))
}
