package encoding

import (
	"github.com/knotwire/knot/types"
)

// A Decoder parses one value graph out of a byte stream. It owns its
// offset table and the tree it reconstructs.
type Decoder struct {
	b        []byte
	pos      int
	table    map[int]types.Value
	depth    int
	maxDepth int
}

// Decode parses the single top-level value of b. The whole stream must
// be consumed: two concatenated streams are not a valid stream.
func Decode(b []byte, opts Options) (types.Value, error) {
	d := Decoder{
		b:        b,
		table:    make(map[int]types.Value),
		maxDepth: opts.maxDepth(),
	}

	v, err := d.decodeValue()
	if err != nil {
		return nil, err
	}
	if d.pos != len(b) {
		return nil, errAt(ErrTrailingData, d.pos)
	}

	return v, nil
}

func (d *Decoder) decodeValue() (types.Value, error) {
	off := d.pos
	if off >= len(d.b) {
		return nil, errAt(ErrTruncatedStream, off)
	}

	tag := d.b[off]
	d.pos++

	switch tag {
	case NullValue:
		return types.NewNullValue(), nil

	case BooleanValue:
		if d.pos >= len(d.b) {
			return nil, errAt(ErrTruncatedStream, d.pos)
		}
		c := d.b[d.pos]
		d.pos++
		switch c {
		case 0:
			return types.NewBooleanValue(false), nil
		case 1:
			return types.NewBooleanValue(true), nil
		}
		return nil, errAt(ErrMalformedBoolean, d.pos-1)

	case NumberValue:
		raw, next, err := DecodeText(d.b, d.pos)
		if err != nil {
			return nil, err
		}
		v, err := types.ParseNumber(string(raw))
		if err != nil {
			return nil, errAt(ErrMalformedNumber, off)
		}
		d.pos = next
		d.table[off] = v
		return v, nil

	case BigintValue:
		raw, next, err := DecodeText(d.b, d.pos)
		if err != nil {
			return nil, err
		}
		v, err := types.ParseBigint(string(raw))
		if err != nil {
			return nil, errAt(ErrMalformedNumber, off)
		}
		d.pos = next
		d.table[off] = v
		return v, nil

	case StringValue:
		s, next, err := DecodeString(d.b, d.pos)
		if err != nil {
			return nil, err
		}
		v := types.NewTextValue(s)
		d.pos = next
		d.table[off] = v
		return v, nil

	case BufferValue:
		l, next, err := DecodeLength(d.b, d.pos)
		if err != nil {
			return nil, err
		}
		if next+l > len(d.b) {
			return nil, errAt(ErrTruncatedStream, next)
		}
		v := types.NewBlobValue(append([]byte(nil), d.b[next:next+l]...))
		d.pos = next + l
		d.table[off] = v
		return v, nil

	case DateValue:
		raw, next, err := DecodeText(d.b, d.pos)
		if err != nil {
			return nil, err
		}
		ts, err := types.ParseTimestamp(string(raw))
		if err != nil {
			return nil, errAt(ErrMalformedDate, off)
		}
		v := types.NewTimestampValue(ts)
		d.pos = next
		d.table[off] = v
		return v, nil

	case ArrayValue:
		return d.decodeArray(off)

	case ObjectValue:
		return d.decodeObject(off)

	case MapValue:
		return d.decodeMap(off)

	case SetValue:
		return d.decodeSet(off)

	case RegexpValue:
		pattern, err := d.decodeText()
		if err != nil {
			return nil, err
		}
		flags, err := d.decodeText()
		if err != nil {
			return nil, err
		}
		v := types.NewRegexpValue(pattern, flags)
		d.table[off] = v
		return v, nil

	case ErrorValue:
		name, err := d.decodeText()
		if err != nil {
			return nil, err
		}
		message, err := d.decodeText()
		if err != nil {
			return nil, err
		}
		v := types.NewErrorValue(name, message)
		d.table[off] = v
		return v, nil

	case TypedValue:
		kind, err := d.decodeText()
		if err != nil {
			return nil, err
		}
		bufOff := d.pos
		bv, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		buf, ok := bv.(*types.BlobValue)
		if !ok {
			return nil, errAt(ErrMalformedValue, bufOff)
		}
		v := types.NewTypedViewValue(kind, buf)
		d.table[off] = v
		return v, nil

	case RecursiveValue:
		target, next, err := DecodeLength(d.b, d.pos)
		if err != nil {
			return nil, err
		}
		v, ok := d.table[target]
		if !ok {
			return nil, errAt(ErrUnresolvedBackReference, off)
		}
		d.pos = next
		return v, nil
	}

	return nil, errAt(ErrUnknownTag, off)
}

// decodeText decodes the next value and requires it to resolve to text,
// directly or through a back-reference.
func (d *Decoder) decodeText() (string, error) {
	off := d.pos

	v, err := d.decodeValue()
	if err != nil {
		return "", err
	}
	if v.Type() != types.TypeText {
		return "", errAt(ErrMalformedValue, off)
	}

	return types.AsString(v), nil
}

// Container decoding registers the empty container at its tag offset
// before filling it, so that a back-reference met while decoding a
// child resolves to the container in progress. This is what makes
// cyclic graphs round-trip in a single pass.

func (d *Decoder) decodeArray(off int) (*types.ArrayValue, error) {
	n, err := d.count(1)
	if err != nil {
		return nil, err
	}
	if err := d.push(off); err != nil {
		return nil, err
	}
	defer d.pop()

	arr := types.NewArrayValueOfLength(n)
	d.table[off] = arr

	for i := 0; i < n; i++ {
		child, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		_ = arr.Set(i, child)
	}

	return arr, nil
}

func (d *Decoder) decodeObject(off int) (*types.ObjectValue, error) {
	n, err := d.count(2)
	if err != nil {
		return nil, err
	}
	if err := d.push(off); err != nil {
		return nil, err
	}
	defer d.pop()

	obj := types.NewObjectValue()
	d.table[off] = obj

	for i := 0; i < n/2; i++ {
		name, err := d.decodeText()
		if err != nil {
			return nil, err
		}
		child, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		obj.Set(name, child)
	}

	return obj, nil
}

func (d *Decoder) decodeMap(off int) (*types.MapValue, error) {
	n, err := d.count(2)
	if err != nil {
		return nil, err
	}
	if err := d.push(off); err != nil {
		return nil, err
	}
	defer d.pop()

	m := types.NewMapValue()
	d.table[off] = m

	for i := 0; i < n/2; i++ {
		key, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		child, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		m.Set(key, child)
	}

	return m, nil
}

func (d *Decoder) decodeSet(off int) (*types.SetValue, error) {
	n, err := d.count(1)
	if err != nil {
		return nil, err
	}
	if err := d.push(off); err != nil {
		return nil, err
	}
	defer d.pop()

	s := types.NewSetValue()
	d.table[off] = s

	for i := 0; i < n; i++ {
		child, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		s.Add(child)
	}

	return s, nil
}

// count reads a container count and sanity-checks it: each declared
// child needs at least one byte, and pair counts must be even.
func (d *Decoder) count(stride int) (int, error) {
	cntOff := d.pos

	n, next, err := DecodeLength(d.b, d.pos)
	if err != nil {
		return 0, err
	}
	if stride == 2 && n%2 != 0 {
		return 0, errAt(ErrMalformedLength, cntOff)
	}
	if n > len(d.b)-next {
		return 0, errAt(ErrTruncatedStream, next)
	}
	d.pos = next

	return n, nil
}

func (d *Decoder) push(off int) error {
	d.depth++
	if d.depth > d.maxDepth {
		return errAt(ErrNestingTooDeep, off)
	}

	return nil
}

func (d *Decoder) pop() {
	d.depth--
}
