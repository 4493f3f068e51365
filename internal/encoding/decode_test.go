package encoding_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knotwire/knot/internal/encoding"
	"github.com/knotwire/knot/types"
)

func mustDecode(t testing.TB, b []byte, opts encoding.Options) types.Value {
	t.Helper()

	v, err := encoding.Decode(b, opts)
	require.NoError(t, err)
	return v
}

func TestDecodeLeaves(t *testing.T) {
	v := mustDecode(t, []byte{'n'}, encoding.Options{})
	require.Equal(t, types.TypeNull, v.Type())

	v = mustDecode(t, []byte{'b', 1}, encoding.Options{})
	require.True(t, types.AsBool(v))

	v = mustDecode(t, []byte{'N', 1, 2, '4', '2'}, encoding.Options{})
	require.Equal(t, 42.0, types.AsFloat64(v))

	v = mustDecode(t, []byte{'I', 1, 2, '-', '7'}, encoding.Options{})
	require.Equal(t, "-7", types.AsBigint(v).String())

	v = mustDecode(t, []byte{'s', 0}, encoding.Options{})
	require.Equal(t, "", types.AsString(v))

	v = mustDecode(t, []byte{'s', 1, 2, 'h', 'i'}, encoding.Options{})
	require.Equal(t, "hi", types.AsString(v))

	v = mustDecode(t, []byte{'B', 1, 2, 0xde, 0xad}, encoding.Options{})
	require.Equal(t, []byte{0xde, 0xad}, types.AsBytes(v))
}

func TestDecodeBufferCopies(t *testing.T) {
	src := []byte{'B', 1, 2, 1, 2}
	v := mustDecode(t, src, encoding.Options{})

	src[3] = 99
	require.Equal(t, []byte{1, 2}, types.AsBytes(v))
}

func TestDecodeDate(t *testing.T) {
	b := append([]byte{'D', 1, 24}, "2020-01-02T03:04:05.000Z"...)
	v := mustDecode(t, b, encoding.Options{})

	ts := types.AsTime(v)
	require.Equal(t, "2020-01-02T03:04:05.000Z", ts.Format(types.ISOLayout))
}

func TestDecodeCycle(t *testing.T) {
	v := mustDecode(t, []byte{'A', 1, 1, 'r', 0}, encoding.Options{})

	arr := types.AsArray(v)
	require.Equal(t, 1, arr.Len())
	elem, err := arr.Get(0)
	require.NoError(t, err)
	require.Same(t, arr, types.AsArray(elem))
}

func TestDecodeDiamond(t *testing.T) {
	b := []byte{
		'O', 1, 4,
		's', 1, 1, 'x',
		'O', 0,
		's', 1, 1, 'y',
		'r', 1, 7,
	}
	v := mustDecode(t, b, encoding.Options{})

	obj := types.AsObject(v)
	x, ok := obj.Get("x")
	require.True(t, ok)
	y, ok := obj.Get("y")
	require.True(t, ok)
	require.Same(t, types.AsObject(x), types.AsObject(y))
}

func TestDecodeBackReferenceToLeaf(t *testing.T) {
	b := []byte{'A', 1, 2, 's', 1, 1, 'x', 'r', 1, 3}
	v := mustDecode(t, b, encoding.Options{})

	arr := types.AsArray(v)
	first, _ := arr.Get(0)
	second, _ := arr.Get(1)
	require.Equal(t, "x", types.AsString(first))
	require.Equal(t, "x", types.AsString(second))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		want error
	}{
		{"unknown tag", []byte{0xff}, encoding.ErrUnknownTag},
		{"empty stream", nil, encoding.ErrTruncatedStream},
		{"boolean payload missing", []byte{'b'}, encoding.ErrTruncatedStream},
		{"boolean out of range", []byte{'b', 2}, encoding.ErrMalformedBoolean},
		{"number unparseable", []byte{'N', 1, 1, 'x'}, encoding.ErrMalformedNumber},
		{"bigint unparseable", []byte{'I', 1, 1, 'x'}, encoding.ErrMalformedNumber},
		{"string invalid utf8", []byte{'s', 1, 1, 0xff}, encoding.ErrMalformedString},
		{"date unparseable", []byte{'D', 1, 3, 'x', 'y', 'z'}, encoding.ErrMalformedDate},
		{"length width past end", []byte{'s', 2, 0}, encoding.ErrMalformedLength},
		{"string payload truncated", []byte{'s', 1, 5, 'a'}, encoding.ErrTruncatedStream},
		{"buffer payload truncated", []byte{'B', 1, 5, 1}, encoding.ErrTruncatedStream},
		{"array truncated", []byte{'A', 1, 3, 'N', 1, 1, '1'}, encoding.ErrTruncatedStream},
		{"array count exceeds stream", []byte{'A', 1, 200}, encoding.ErrTruncatedStream},
		{"object odd count", []byte{'O', 1, 3, 'n', 'n', 'n'}, encoding.ErrMalformedLength},
		{"object key not text", []byte{'O', 1, 2, 'n', 'n'}, encoding.ErrMalformedValue},
		{"regexp pattern not text", []byte{'R', 'n', 'n'}, encoding.ErrMalformedValue},
		{"typed view payload not buffer", []byte{'T', 's', 1, 1, 'k', 'n'}, encoding.ErrMalformedValue},
		{"unresolved back-reference", []byte{'r', 1, 5}, encoding.ErrUnresolvedBackReference},
		{"trailing data", []byte{'n', 'n'}, encoding.ErrTrailingData},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := encoding.Decode(test.b, encoding.Options{})
			require.ErrorIs(t, err, test.want)
		})
	}
}

func TestDecodeErrorOffsets(t *testing.T) {
	_, err := encoding.Decode([]byte{0xff}, encoding.Options{})
	require.ErrorContains(t, err, "at offset 0")

	_, err = encoding.Decode([]byte{'A', 1, 1, 0xff}, encoding.Options{})
	require.ErrorContains(t, err, "at offset 3")
}

func TestDecodeNestingTooDeep(t *testing.T) {
	var b []byte
	for i := 0; i < 5; i++ {
		b = append(b, 'A', 1, 1)
	}
	b = append(b, 'n')

	_, err := encoding.Decode(b, encoding.Options{MaxDepth: 4})
	require.ErrorIs(t, err, encoding.ErrNestingTooDeep)

	_, err = encoding.Decode(b, encoding.Options{MaxDepth: 5})
	require.NoError(t, err)
}

func TestDecodeConcatenatedStreamsRejected(t *testing.T) {
	one := mustEncode(t, types.NewNumberValue(1), encoding.Options{})
	two := mustEncode(t, types.NewNumberValue(2), encoding.Options{})

	_, err := encoding.Decode(bytes.Join([][]byte{one, two}, nil), encoding.Options{})
	require.ErrorIs(t, err, encoding.ErrTrailingData)
}
