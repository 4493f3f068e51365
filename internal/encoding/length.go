package encoding

import "math"

// Lengths, counts and back-reference offsets all share one frame: a
// width byte W followed by W big-endian bytes, W being the minimum
// number of bytes needed to represent the value. Zero is a lone zero
// width byte.
const maxLengthWidth = 8

// EncodeLength appends tag, then the length prefix for l. It returns
// the width of the prefix body so that callers reserving a fixed slot
// can tell whether the slot fits.
func EncodeLength(dst []byte, tag byte, l int) ([]byte, int) {
	w := byteWidth(uint64(l))

	dst = append(dst, tag, byte(w))
	for i := w - 1; i >= 0; i-- {
		dst = append(dst, byte(l>>(8*i)))
	}

	return dst, w
}

func byteWidth(x uint64) int {
	w := 0
	for x > 0 {
		w++
		x >>= 8
	}

	return w
}

// DecodeLength reads a length prefix at pos and returns the value and
// the position of the first byte after the prefix.
func DecodeLength(b []byte, pos int) (int, int, error) {
	if pos >= len(b) {
		return 0, 0, errAt(ErrTruncatedStream, pos)
	}

	w := int(b[pos])
	if w > maxLengthWidth || pos+1+w > len(b) {
		return 0, 0, errAt(ErrMalformedLength, pos)
	}

	var l uint64
	for _, c := range b[pos+1 : pos+1+w] {
		l = l<<8 | uint64(c)
	}
	if l > math.MaxInt64 {
		return 0, 0, errAt(ErrMalformedLength, pos)
	}

	return int(l), pos + 1 + w, nil
}
