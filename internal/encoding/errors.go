package encoding

import "github.com/cockroachdb/errors"

// Decoding and encoding failures. Each error surfaced to the caller
// wraps one of these sentinels together with the byte offset at which
// it was detected; match with errors.Is.
var (
	ErrUnknownTag              = errors.New("unknown tag")
	ErrMalformedLength         = errors.New("malformed length")
	ErrMalformedBoolean        = errors.New("malformed boolean")
	ErrMalformedNumber         = errors.New("malformed number")
	ErrMalformedString         = errors.New("malformed string")
	ErrMalformedDate           = errors.New("malformed date")
	ErrMalformedValue          = errors.New("malformed value")
	ErrUnresolvedBackReference = errors.New("unresolved back-reference")
	ErrNestingTooDeep          = errors.New("nesting too deep")
	ErrTruncatedStream         = errors.New("truncated stream")
	ErrTrailingData            = errors.New("trailing data after value")
)

func errAt(err error, offset int) error {
	return errors.Wrapf(err, "at offset %d", offset)
}
