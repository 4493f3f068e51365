package types

var _ Value = NewOpaqueValue(nil)

// OpaqueValue wraps a host value the codec cannot serialize, such as a
// function or a channel. Encoders replace it with null in positional
// context and drop it in associative context.
type OpaqueValue struct {
	x any
}

// NewOpaqueValue returns an opaque value wrapping x.
func NewOpaqueValue(x any) *OpaqueValue {
	return &OpaqueValue{x: x}
}

func (v *OpaqueValue) V() any {
	return v.x
}

func (v *OpaqueValue) Type() Type {
	return TypeOpaque
}

func (v *OpaqueValue) String() string {
	return "opaque"
}
