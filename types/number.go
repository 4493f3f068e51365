package types

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
)

var _ Value = NewNumberValue(0)

type NumberValue float64

// NewNumberValue returns a number value.
func NewNumberValue(x float64) NumberValue {
	return NumberValue(x)
}

func (v NumberValue) V() any {
	return float64(v)
}

func (v NumberValue) Type() Type {
	return TypeNumber
}

func (v NumberValue) IsFinite() bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String returns the canonical decimal rendering of the number: the
// shortest text that parses back to the same float64.
func (v NumberValue) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// AppendText appends the canonical decimal rendering to dst.
func (v NumberValue) AppendText(dst []byte) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', -1, 64)
}

// ParseNumber parses the canonical decimal rendering produced by
// NumberValue.String.
func ParseNumber(s string) (NumberValue, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", s)
	}

	return NewNumberValue(f), nil
}
