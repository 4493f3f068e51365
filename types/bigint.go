package types

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

var _ Value = NewBigintValue(big.NewInt(0))

// BigintValue holds an arbitrary-precision integer. The wrapped big.Int
// pointer is the value's identity.
type BigintValue struct {
	x *big.Int
}

// NewBigintValue returns a bigint value. x must not be mutated after
// the call.
func NewBigintValue(x *big.Int) BigintValue {
	return BigintValue{x: x}
}

func (v BigintValue) V() any {
	return v.x
}

func (v BigintValue) Type() Type {
	return TypeBigint
}

func (v BigintValue) String() string {
	return v.x.String()
}

// AppendText appends the decimal rendering to dst.
func (v BigintValue) AppendText(dst []byte) []byte {
	return v.x.Append(dst, 10)
}

// ParseBigint parses an ASCII decimal integer of arbitrary size.
func ParseBigint(s string) (BigintValue, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigintValue{}, errors.Errorf("invalid bigint %q", s)
	}

	return NewBigintValue(x), nil
}
