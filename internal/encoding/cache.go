package encoding

import (
	"github.com/knotwire/knot/types"
)

// RecursionMode is the admission policy of the identity cache.
type RecursionMode int

const (
	// RecursionAll tracks reference values and non-empty primitives:
	// text, finite numbers and bigints dedupe in the output.
	RecursionAll RecursionMode = iota
	// RecursionSome tracks reference values only; primitives are
	// re-emitted on every occurrence.
	RecursionSome
	// RecursionNone disables tracking entirely. Encoding a cyclic graph
	// then fails once the nesting guard trips.
	RecursionNone
)

// identityCache maps an already-emitted value to the precomputed bytes
// of a RECURSIVE back-reference to its first emission. Precomputing at
// insertion makes a later hit a constant-cost append, independent of
// the offset magnitude.
type identityCache struct {
	mode RecursionMode
	refs map[types.Value][]byte
}

func newIdentityCache(mode RecursionMode) *identityCache {
	c := identityCache{mode: mode}
	if mode != RecursionNone {
		c.refs = make(map[types.Value][]byte)
	}

	return &c
}

func (c *identityCache) lookup(v types.Value) ([]byte, bool) {
	if c.refs == nil {
		return nil, false
	}

	seq, ok := c.refs[v]
	return seq, ok
}

// track admits v with its first-emission offset. Called right before
// the value's tag byte is written, so offset is the position of that
// tag.
func (c *identityCache) track(v types.Value, offset int) {
	if !c.admits(v) {
		return
	}

	seq, _ := EncodeLength(nil, RecursiveValue, offset)
	c.refs[v] = seq
}

func (c *identityCache) admits(v types.Value) bool {
	if c.refs == nil {
		return false
	}
	if v.Type().IsReference() {
		return true
	}
	if c.mode != RecursionAll {
		return false
	}

	switch v.Type() {
	case types.TypeText:
		return types.AsString(v) != ""
	case types.TypeNumber:
		return v.(types.NumberValue).IsFinite()
	case types.TypeBigint:
		return true
	}

	return false
}
