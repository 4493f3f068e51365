package types_test

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/knotwire/knot/types"
)

func TestAccessors(t *testing.T) {
	require.True(t, types.AsBool(types.NewBooleanValue(true)))
	require.Equal(t, 1.5, types.AsFloat64(types.NewNumberValue(1.5)))
	require.Equal(t, "x", types.AsString(types.NewTextValue("x")))
	require.Equal(t, []byte{1}, types.AsBytes(types.NewBlobValue([]byte{1})))
	require.Equal(t, "12", types.AsBigint(types.NewBigintValue(big.NewInt(12))).String())

	ts := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	require.True(t, ts.Equal(types.AsTime(types.NewTimestampValue(ts))))

	require.True(t, types.IsNull(nil))
	require.True(t, types.IsNull(types.NewNullValue()))
	require.False(t, types.IsNull(types.NewNumberValue(0)))
}

func TestNumberText(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-1.25, "-1.25"},
		{1e21, "1e+21"},
	}

	for _, test := range tests {
		require.Equal(t, test.want, types.NewNumberValue(test.f).String())

		got, err := types.ParseNumber(test.want)
		require.NoError(t, err)
		require.Equal(t, test.f, float64(got))
	}

	require.False(t, types.NewNumberValue(math.NaN()).IsFinite())
	require.False(t, types.NewNumberValue(math.Inf(1)).IsFinite())
	require.True(t, types.NewNumberValue(1).IsFinite())

	_, err := types.ParseNumber("nope")
	require.Error(t, err)
}

func TestBigintText(t *testing.T) {
	v, err := types.ParseBigint("-1208925819614629174706176")
	require.NoError(t, err)
	require.Equal(t, "-1208925819614629174706176", v.String())

	_, err = types.ParseBigint("12.5")
	require.Error(t, err)
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2020, 1, 2, 3, 4, 5, 123456789, time.FixedZone("CET", 3600))
	v := types.NewTimestampValue(ts)

	// stored in UTC, truncated to the millisecond
	require.Equal(t, "2020-01-02T02:04:05.123Z", v.String())

	parsed, err := types.ParseTimestamp(v.String())
	require.NoError(t, err)
	require.True(t, v.Time().Equal(parsed))

	// lenient parsing accepts non-canonical renderings
	parsed, err = types.ParseTimestamp("2020-01-02 02:04:05.123")
	require.NoError(t, err)
	require.True(t, v.Time().Equal(parsed))

	_, err = types.ParseTimestamp("not a date")
	require.Error(t, err)
}

func TestObjectSemantics(t *testing.T) {
	o := types.NewObjectValue()
	o.Set("a", types.NewNumberValue(1))
	o.Set("b", types.NewNumberValue(2))
	o.Set("a", types.NewNumberValue(3))

	require.Equal(t, 2, o.Len())

	var names []string
	_ = o.Iterate(func(name string, _ types.Value) error {
		names = append(names, name)
		return nil
	})
	require.Equal(t, []string{"a", "b"}, names, "existing keys keep their position")

	v, ok := o.Get("a")
	require.True(t, ok)
	require.Equal(t, 3.0, types.AsFloat64(v))

	_, ok = o.Get("missing")
	require.False(t, ok)
}

func TestMapKeyIdentity(t *testing.T) {
	m := types.NewMapValue()

	// leaves compare by content
	m.Set(types.NewTextValue("k"), types.NewNumberValue(1))
	m.Set(types.NewTextValue("k"), types.NewNumberValue(2))
	require.Equal(t, 1, m.Len())

	// reference values compare by pointer
	a1 := types.NewArrayValue()
	a2 := types.NewArrayValue()
	m.Set(a1, types.NewNumberValue(3))
	m.Set(a2, types.NewNumberValue(4))
	require.Equal(t, 3, m.Len())

	v, ok := m.Get(a1)
	require.True(t, ok)
	require.Equal(t, 3.0, types.AsFloat64(v))
}

func TestSetMembership(t *testing.T) {
	s := types.NewSetValue(
		types.NewNumberValue(1),
		types.NewNumberValue(1),
		types.NewNumberValue(2),
	)
	require.Equal(t, 2, s.Len())

	b1 := types.NewBlobValue([]byte{1})
	b2 := types.NewBlobValue([]byte{1})
	s.Add(b1)
	s.Add(b1)
	s.Add(b2)
	require.Equal(t, 4, s.Len(), "distinct blobs are distinct members")
	require.True(t, s.Contains(b2))
}

func TestArrayBounds(t *testing.T) {
	a := types.NewArrayValueOfLength(2)

	require.NoError(t, a.Set(1, types.NewNumberValue(1)))
	require.Error(t, a.Set(2, types.NewNumberValue(1)))

	_, err := a.Get(-1)
	require.Error(t, err)

	v, err := a.Get(0)
	require.NoError(t, err)
	require.Nil(t, v, "unfilled slots read as nil")
}

func TestTypePredicates(t *testing.T) {
	require.True(t, types.TypeArray.IsContainer())
	require.False(t, types.TypeBlob.IsContainer())

	require.True(t, types.TypeBlob.IsReference())
	require.True(t, types.TypeRegexp.IsReference())
	require.False(t, types.TypeText.IsReference())

	require.False(t, types.TypeOpaque.IsSerializable())
	require.True(t, types.TypeError.IsSerializable())
}

func TestErrorValueDefaultsName(t *testing.T) {
	ev := types.NewErrorValue("", "boom")
	require.Equal(t, "Error", ev.Name())
	require.Equal(t, "boom", ev.Message())
}
