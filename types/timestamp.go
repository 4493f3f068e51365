package types

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dromara/carbon/v2"
)

// ISOLayout is the canonical rendering of a timestamp: UTC, millisecond
// precision, trailing Z.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

var _ Value = NewTimestampValue(time.Time{})

// TimestampValue holds an instant with millisecond precision. It is a
// pointer type; identity is the pointer.
type TimestampValue time.Time

// NewTimestampValue returns a timestamp value. The instant is stored in
// UTC and truncated to the millisecond.
func NewTimestampValue(x time.Time) *TimestampValue {
	v := TimestampValue(x.UTC().Truncate(time.Millisecond))
	return &v
}

func (v *TimestampValue) V() any {
	return time.Time(*v)
}

func (v *TimestampValue) Type() Type {
	return TypeTimestamp
}

func (v *TimestampValue) Time() time.Time {
	return time.Time(*v)
}

func (v *TimestampValue) String() string {
	return time.Time(*v).Format(ISOLayout)
}

// AppendText appends the canonical ISO-8601 rendering to dst.
func (v *TimestampValue) AppendText(dst []byte) []byte {
	return time.Time(*v).AppendFormat(dst, ISOLayout)
}

// ParseTimestamp parses an ISO-8601 timestamp. Parsing is lenient;
// rendering through ISOLayout is not required.
func ParseTimestamp(s string) (time.Time, error) {
	c := carbon.Parse(s, "UTC")
	if c.Error != nil {
		return time.Time{}, errors.Wrapf(c.Error, "invalid timestamp %q", s)
	}

	return c.StdTime(), nil
}
