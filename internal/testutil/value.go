package testutil

import (
	"fmt"
	"testing"

	"github.com/buger/jsonparser"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/knotwire/knot/types"
)

// ParseValue builds a value from a JSON literal: objects become
// objects, arrays arrays, numbers numbers. Convenient for writing
// acyclic fixtures inline.
func ParseValue(t testing.TB, src string) types.Value {
	t.Helper()

	data, dataType, _, err := jsonparser.Get([]byte(src))
	require.NoError(t, err)

	v, err := parseJSONValue(dataType, data)
	require.NoError(t, err)
	return v
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (types.Value, error) {
	switch dataType {
	case jsonparser.Null:
		return types.NewNullValue(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return types.NewBooleanValue(b), nil
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(data)
		if err != nil {
			return nil, err
		}
		return types.NewNumberValue(f), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return types.NewTextValue(s), nil
	case jsonparser.Array:
		arr := types.NewArrayValue()
		var inner error
		_, err := jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, _ int, _ error) {
			if inner != nil {
				return
			}
			v, err := parseJSONValue(dt, value)
			if err != nil {
				inner = err
				return
			}
			arr.Append(v)
		})
		if err != nil {
			return nil, err
		}
		if inner != nil {
			return nil, inner
		}
		return arr, nil
	case jsonparser.Object:
		obj := types.NewObjectValue()
		err := jsonparser.ObjectEach(data, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
			v, err := parseJSONValue(dt, value)
			if err != nil {
				return err
			}
			obj.Set(string(key), v)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return obj, nil
	}

	return nil, fmt.Errorf("unsupported JSON value type %v", dataType)
}

// RequireValueEqual fails the test when want and got differ
// structurally. Acyclic values only; cyclic fixtures assert identity
// directly instead.
func RequireValueEqual(t testing.TB, want, got types.Value) {
	t.Helper()

	if diff := cmp.Diff(plain(want), plain(got)); diff != "" {
		t.Fatalf("values differ (-want +got):\n%s", diff)
	}
}

// plain flattens a value into comparable built-ins so that go-cmp can
// diff two graphs without reaching into unexported fields.
func plain(v types.Value) any {
	if v == nil {
		return nil
	}

	switch v.Type() {
	case types.TypeNull:
		return nil
	case types.TypeBoolean:
		return types.AsBool(v)
	case types.TypeNumber:
		return types.AsFloat64(v)
	case types.TypeBigint:
		return "bigint:" + types.AsBigint(v).String()
	case types.TypeText:
		return types.AsString(v)
	case types.TypeBlob:
		return append([]byte(nil), types.AsBytes(v)...)
	case types.TypeTimestamp:
		return types.AsTime(v)
	case types.TypeRegexp:
		rv := v.(*types.RegexpValue)
		return []any{"regexp", rv.Pattern(), rv.Flags()}
	case types.TypeError:
		ev := v.(*types.ErrorValue)
		return []any{"error", ev.Name(), ev.Message()}
	case types.TypeTypedView:
		tv := v.(*types.TypedViewValue)
		return []any{"typedview", tv.Kind(), plain(tv.Buffer())}
	case types.TypeArray:
		var out []any
		_ = types.AsArray(v).Iterate(func(_ int, child types.Value) error {
			out = append(out, plain(child))
			return nil
		})
		return out
	case types.TypeObject:
		var out []any
		_ = types.AsObject(v).Iterate(func(name string, child types.Value) error {
			out = append(out, []any{name, plain(child)})
			return nil
		})
		return out
	case types.TypeMap:
		var out []any
		_ = types.AsMap(v).Iterate(func(key, child types.Value) error {
			out = append(out, []any{plain(key), plain(child)})
			return nil
		})
		return out
	case types.TypeSet:
		var out []any
		_ = types.AsSet(v).Iterate(func(child types.Value) error {
			out = append(out, plain(child))
			return nil
		})
		return out
	}

	return fmt.Sprintf("%v:%v", v.Type(), v.V())
}
