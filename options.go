package knot

import "github.com/knotwire/knot/internal/encoding"

// RecursionMode selects which values the encoder tracks for
// back-referencing.
type RecursionMode = encoding.RecursionMode

const (
	// RecursionAll deduplicates every reference value and every
	// non-empty primitive. This is the default.
	RecursionAll = encoding.RecursionAll
	// RecursionSome deduplicates reference values only.
	RecursionSome = encoding.RecursionSome
	// RecursionNone disables tracking. Encoding a cyclic graph then
	// fails instead of looping.
	RecursionNone = encoding.RecursionNone
)

// DefaultMaxDepth is the container nesting limit used when Options
// does not set one.
const DefaultMaxDepth = encoding.DefaultMaxDepth

// Options configure one Encode or Decode call. The zero value (and a
// nil pointer) mean RecursionAll and DefaultMaxDepth.
type Options struct {
	Recursion RecursionMode
	MaxDepth  int
}

func (o *Options) resolve() encoding.Options {
	if o == nil {
		return encoding.Options{}
	}

	return encoding.Options{
		Recursion: o.Recursion,
		MaxDepth:  o.MaxDepth,
	}
}
