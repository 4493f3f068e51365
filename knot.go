// Package knot is a binary codec for dynamic value graphs.
//
// A value is one of the categories of the types package: null,
// booleans, numbers, bigints, text, arrays, objects, maps, sets, byte
// buffers, timestamps, regular expressions, errors and typed byte
// views. Encoding walks the graph once and writes a compact byte
// stream of self-delimiting values; decoding reconstructs a value with
// the same topology. Shared references and cycles survive: the
// encoder emits a back-reference the second time it meets a value, and
// the decoder resolves back-references against the containers it is
// still filling.
package knot

import (
	"github.com/knotwire/knot/internal/encoding"
	"github.com/knotwire/knot/types"
)

// Encode serializes v into a fresh byte stream.
func Encode(v types.Value, opts *Options) ([]byte, error) {
	return encoding.Encode(v, opts.resolve())
}

// Decode parses the single top-level value of b.
func Decode(b []byte, opts *Options) (types.Value, error) {
	return encoding.Decode(b, opts.resolve())
}
