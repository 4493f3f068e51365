package types

import "fmt"

var _ Value = NewTypedViewValue("Uint8Array", nil)

// TypedViewValue is a typed view over a byte buffer, discriminated by a
// host kind tag such as "Uint8Array" or "DataView". Only the kind and
// the underlying buffer are carried: a view's byte offset and element
// count within a larger buffer are not preserved. It is a pointer type;
// identity is the pointer.
type TypedViewValue struct {
	kind   string
	buffer *BlobValue
}

// NewTypedViewValue returns a typed view value. A nil buffer reads as
// an empty one.
func NewTypedViewValue(kind string, buffer *BlobValue) *TypedViewValue {
	if buffer == nil {
		buffer = NewBlobValue(nil)
	}
	return &TypedViewValue{kind: kind, buffer: buffer}
}

func (v *TypedViewValue) V() any {
	return v
}

func (v *TypedViewValue) Type() Type {
	return TypeTypedView
}

func (v *TypedViewValue) Kind() string {
	return v.kind
}

func (v *TypedViewValue) Buffer() *BlobValue {
	return v.buffer
}

func (v *TypedViewValue) String() string {
	return fmt.Sprintf("%s(%d)", v.kind, v.buffer.Len())
}
