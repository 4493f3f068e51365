package encoding

// DefaultMaxDepth bounds container nesting during decode. During encode
// with RecursionNone, which leaves cycles undetected, it bounds the
// nesting of values, leaves included.
const DefaultMaxDepth = 10000

// Options configure one encode or decode call.
type Options struct {
	// Recursion is the admission policy of the identity cache.
	Recursion RecursionMode

	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}

	return o.MaxDepth
}
