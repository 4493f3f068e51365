package types

import "fmt"

var _ Value = NewRegexpValue("", "")

// RegexpValue holds a regular expression as its source pattern and flag
// string. The pattern is not compiled; flag semantics belong to the
// host that produced it. It is a pointer type; identity is the pointer.
type RegexpValue struct {
	pattern string
	flags   string
}

// NewRegexpValue returns a regexp value.
func NewRegexpValue(pattern, flags string) *RegexpValue {
	return &RegexpValue{pattern: pattern, flags: flags}
}

func (v *RegexpValue) V() any {
	return v
}

func (v *RegexpValue) Type() Type {
	return TypeRegexp
}

func (v *RegexpValue) Pattern() string {
	return v.pattern
}

func (v *RegexpValue) Flags() string {
	return v.flags
}

func (v *RegexpValue) String() string {
	return fmt.Sprintf("/%s/%s", v.pattern, v.flags)
}
