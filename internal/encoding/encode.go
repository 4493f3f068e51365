package encoding

import (
	"github.com/cockroachdb/errors"

	"github.com/knotwire/knot/types"
)

// An Encoder serializes one value graph into a byte stream. It owns its
// output buffer and identity cache; neither survives the call.
type Encoder struct {
	buf     []byte
	scratch []byte
	cache   *identityCache
	opts    Options
	depth   int
}

// Encode serializes root into a fresh byte stream.
//
// An opaque root produces an empty stream: the slot is dropped, same as
// an opaque value in any other associative position.
func Encode(root types.Value, opts Options) ([]byte, error) {
	e := Encoder{
		cache: newIdentityCache(opts.Recursion),
		opts:  opts,
	}

	if err := e.encodeValue(root, false); err != nil {
		return nil, err
	}

	return e.buf, nil
}

// encodeValue emits one value. positional reports whether the caller
// needs a value at this position no matter what: inside an array an
// opaque value becomes null to preserve indexing, elsewhere it is
// dropped by the caller and only reaches here at top level.
func (e *Encoder) encodeValue(v types.Value, positional bool) error {
	if v == nil {
		v = types.NewNullValue()
	}

	if e.opts.Recursion == RecursionNone {
		if e.depth >= e.opts.maxDepth() {
			return errAt(ErrNestingTooDeep, len(e.buf))
		}
		e.depth++
		defer func() { e.depth-- }()
	}

	if seq, ok := e.cache.lookup(v); ok {
		e.buf = append(e.buf, seq...)
		return nil
	}

	switch v.Type() {
	case types.TypeNull:
		e.buf = append(e.buf, NullValue)

	case types.TypeBoolean:
		if types.AsBool(v) {
			e.buf = append(e.buf, BooleanValue, 1)
		} else {
			e.buf = append(e.buf, BooleanValue, 0)
		}

	case types.TypeNumber:
		nv := v.(types.NumberValue)
		if !nv.IsFinite() {
			// NaN and infinities have no wire form; they collapse to null.
			e.buf = append(e.buf, NullValue)
			return nil
		}
		e.cache.track(v, len(e.buf))
		e.scratch = nv.AppendText(e.scratch[:0])
		e.buf = EncodeASCII(e.buf, NumberValue, e.scratch)

	case types.TypeBigint:
		e.cache.track(v, len(e.buf))
		e.scratch = v.(types.BigintValue).AppendText(e.scratch[:0])
		e.buf = EncodeASCII(e.buf, BigintValue, e.scratch)

	case types.TypeText:
		s := types.AsString(v)
		if s == "" {
			e.buf = append(e.buf, StringValue, 0)
			return nil
		}
		e.cache.track(v, len(e.buf))
		e.buf = EncodeString(e.buf, s)

	case types.TypeBlob:
		e.cache.track(v, len(e.buf))
		b := types.AsBytes(v)
		e.buf, _ = EncodeLength(e.buf, BufferValue, len(b))
		e.buf = append(e.buf, b...)

	case types.TypeTimestamp:
		e.cache.track(v, len(e.buf))
		e.scratch = v.(*types.TimestampValue).AppendText(e.scratch[:0])
		e.buf = EncodeASCII(e.buf, DateValue, e.scratch)

	case types.TypeArray:
		return e.encodeArray(v.(*types.ArrayValue))

	case types.TypeObject:
		return e.encodeObject(v.(*types.ObjectValue))

	case types.TypeMap:
		return e.encodeMap(v.(*types.MapValue))

	case types.TypeSet:
		return e.encodeSet(v.(*types.SetValue))

	case types.TypeRegexp:
		rv := v.(*types.RegexpValue)
		e.cache.track(v, len(e.buf))
		e.buf = append(e.buf, RegexpValue)
		if err := e.encodeValue(types.NewTextValue(rv.Pattern()), false); err != nil {
			return err
		}
		return e.encodeValue(types.NewTextValue(rv.Flags()), false)

	case types.TypeError:
		ev := v.(*types.ErrorValue)
		e.cache.track(v, len(e.buf))
		e.buf = append(e.buf, ErrorValue)
		if err := e.encodeValue(types.NewTextValue(ev.Name()), false); err != nil {
			return err
		}
		return e.encodeValue(types.NewTextValue(ev.Message()), false)

	case types.TypeTypedView:
		tv := v.(*types.TypedViewValue)
		e.cache.track(v, len(e.buf))
		e.buf = append(e.buf, TypedValue)
		if err := e.encodeValue(types.NewTextValue(tv.Kind()), false); err != nil {
			return err
		}
		return e.encodeValue(tv.Buffer(), false)

	case types.TypeOpaque:
		if positional {
			e.buf = append(e.buf, NullValue)
		}

	default:
		return errors.Errorf("unsupported value type: %s", v.Type())
	}

	return nil
}

func (e *Encoder) encodeArray(a *types.ArrayValue) error {
	e.cache.track(a, len(e.buf))
	e.buf, _ = EncodeLength(e.buf, ArrayValue, a.Len())

	return a.Iterate(func(_ int, child types.Value) error {
		return e.encodeValue(child, true)
	})
}

func (e *Encoder) encodeObject(o *types.ObjectValue) error {
	e.cache.track(o, len(e.buf))

	names := make([]string, 0, o.Len())
	values := make([]types.Value, 0, o.Len())
	_ = o.Iterate(func(name string, child types.Value) error {
		if serializable(child) {
			names = append(names, name)
			values = append(values, child)
		}
		return nil
	})

	e.buf, _ = EncodeLength(e.buf, ObjectValue, 2*len(names))

	for i, name := range names {
		if err := e.encodeValue(types.NewTextValue(name), false); err != nil {
			return err
		}
		if err := e.encodeValue(values[i], false); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) encodeMap(m *types.MapValue) error {
	e.cache.track(m, len(e.buf))

	keys := make([]types.Value, 0, m.Len())
	values := make([]types.Value, 0, m.Len())
	_ = m.Iterate(func(key, child types.Value) error {
		if serializable(key) && serializable(child) {
			keys = append(keys, key)
			values = append(values, child)
		}
		return nil
	})

	e.buf, _ = EncodeLength(e.buf, MapValue, 2*len(keys))

	for i, key := range keys {
		if err := e.encodeValue(key, false); err != nil {
			return err
		}
		if err := e.encodeValue(values[i], false); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) encodeSet(s *types.SetValue) error {
	e.cache.track(s, len(e.buf))

	elems := make([]types.Value, 0, s.Len())
	_ = s.Iterate(func(child types.Value) error {
		if serializable(child) {
			elems = append(elems, child)
		}
		return nil
	})

	e.buf, _ = EncodeLength(e.buf, SetValue, len(elems))

	for _, child := range elems {
		if err := e.encodeValue(child, false); err != nil {
			return err
		}
	}

	return nil
}

func serializable(v types.Value) bool {
	return v == nil || v.Type() != types.TypeOpaque
}
