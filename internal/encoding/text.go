package encoding

import "unicode/utf8"

// EncodeASCII appends tag, length prefix and payload for text known to
// be ASCII: number, bigint and date renderings. The byte length is the
// text length, so no slot reservation is needed.
func EncodeASCII(dst []byte, tag byte, s []byte) []byte {
	dst, _ = EncodeLength(dst, tag, len(s))
	return append(dst, s...)
}

// EncodeString appends a STRING value. To avoid measuring the UTF-8
// payload twice, three bytes are reserved up front for tag, width and a
// one-byte length; the payload is appended, then the real prefix is
// patched in place when it fits the slot and spliced in otherwise.
// Strings up to 255 bytes never shift.
func EncodeString(dst []byte, s string) []byte {
	if len(s) == 0 {
		return append(dst, StringValue, 0)
	}

	l0 := len(dst)
	dst = append(dst, StringValue, 1, 0)
	dst = append(dst, s...)

	t := len(s)
	if t <= 0xff {
		dst[l0+2] = byte(t)
		return dst
	}

	var scratch [2 + maxLengthWidth]byte
	prefix, _ := EncodeLength(scratch[:0], StringValue, t)

	extra := len(prefix) - 3
	dst = append(dst, make([]byte, extra)...)
	copy(dst[l0+len(prefix):], dst[l0+3:len(dst)-extra])
	copy(dst[l0:], prefix)

	return dst
}

// DecodeText reads a length prefix at pos, then that many bytes, and
// returns them together with the position after the payload. The bytes
// alias the input.
func DecodeText(b []byte, pos int) ([]byte, int, error) {
	l, next, err := DecodeLength(b, pos)
	if err != nil {
		return nil, 0, err
	}
	if next+l > len(b) {
		return nil, 0, errAt(ErrTruncatedStream, next)
	}

	return b[next : next+l], next + l, nil
}

// DecodeString reads a STRING payload at pos and validates it as UTF-8.
func DecodeString(b []byte, pos int) (string, int, error) {
	raw, next, err := DecodeText(b, pos)
	if err != nil {
		return "", 0, err
	}
	if !utf8.Valid(raw) {
		return "", 0, errAt(ErrMalformedString, pos)
	}

	return string(raw), next, nil
}
