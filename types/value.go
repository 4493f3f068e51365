package types

import (
	"math/big"
	"time"
)

// Value is a value of one of the supported types.
//
// All implementations are comparable with ==, which is what gives the
// encoder its identity semantics: containers and other reference types
// are pointers and compare by address, immutable leaves compare by
// content, except bigints, which compare by their *big.Int pointer.
type Value interface {
	Type() Type
	V() any
	String() string
}

func AsBool(v Value) bool {
	bv, ok := v.(BooleanValue)
	if !ok {
		return v.V().(bool)
	}

	return bool(bv)
}

func AsFloat64(v Value) float64 {
	nv, ok := v.(NumberValue)
	if !ok {
		return v.V().(float64)
	}

	return float64(nv)
}

func AsBigint(v Value) *big.Int {
	bv, ok := v.(BigintValue)
	if !ok {
		return v.V().(*big.Int)
	}

	return bv.x
}

func AsString(v Value) string {
	tv, ok := v.(TextValue)
	if !ok {
		return v.V().(string)
	}

	return string(tv)
}

func AsBytes(v Value) []byte {
	bv, ok := v.(*BlobValue)
	if !ok {
		return v.V().([]byte)
	}

	return bv.bytes
}

func AsTime(v Value) time.Time {
	tv, ok := v.(*TimestampValue)
	if !ok {
		return v.V().(time.Time)
	}

	return time.Time(*tv)
}

func AsArray(v Value) *ArrayValue {
	return v.(*ArrayValue)
}

func AsObject(v Value) *ObjectValue {
	return v.(*ObjectValue)
}

func AsMap(v Value) *MapValue {
	return v.(*MapValue)
}

func AsSet(v Value) *SetValue {
	return v.(*SetValue)
}

func IsNull(v Value) bool {
	return v == nil || v.Type() == TypeNull
}
