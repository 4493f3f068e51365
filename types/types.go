package types

import "fmt"

// Type represents a category of the value universe handled by the codec.
type Type uint8

// List of supported types.
const (
	// TypeAny denotes the absence of type
	TypeAny Type = iota
	TypeNull
	TypeBoolean
	TypeNumber
	TypeBigint
	TypeText
	TypeBlob
	TypeArray
	TypeObject
	TypeMap
	TypeSet
	TypeTimestamp
	TypeRegexp
	TypeError
	TypeTypedView
	TypeOpaque
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeBigint:
		return "bigint"
	case TypeText:
		return "text"
	case TypeBlob:
		return "blob"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	case TypeMap:
		return "map"
	case TypeSet:
		return "set"
	case TypeTimestamp:
		return "timestamp"
	case TypeRegexp:
		return "regexp"
	case TypeError:
		return "error"
	case TypeTypedView:
		return "typedview"
	case TypeOpaque:
		return "opaque"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// IsContainer reports whether values of this type hold child values the
// codec recurses into.
func (t Type) IsContainer() bool {
	switch t {
	case TypeArray, TypeObject, TypeMap, TypeSet:
		return true
	}
	return false
}

// IsReference reports whether values of this type carry reference
// identity: two occurrences of the same live value must round-trip to a
// single shared value.
func (t Type) IsReference() bool {
	switch t {
	case TypeArray, TypeObject, TypeMap, TypeSet,
		TypeBlob, TypeTimestamp, TypeRegexp, TypeError, TypeTypedView:
		return true
	}
	return false
}

// IsSerializable reports whether values of this type can appear in an
// encoded stream.
func (t Type) IsSerializable() bool {
	return t != TypeAny && t != TypeOpaque
}
