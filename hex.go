package strhex

import "iter"

const (
	// digits is the only alphabet the encoders emit.
	digits = "0123456789ABCDEF"

	// InvalidDigit is returned by DecodeDigit for bytes that are not hex digits.
	// Valid results are always in [0, 15], so a negative value never collides.
	InvalidDigit = -1
)

// digitValues maps every byte value to its nibble, or InvalidDigit.
var digitValues = func() (t [256]int8) {
	for i := range t {
		t[i] = InvalidDigit
	}
	for i := 0; i < 10; i++ {
		t['0'+i] = int8(i)
	}
	for i := 0; i < 6; i++ {
		t['A'+i] = int8(10 + i)
		t['a'+i] = int8(10 + i)
	}
	return t
}()

// ByteBuffer is anything that exposes a contiguous run of bytes and its length.
// *bytes.Buffer satisfies it.
type ByteBuffer interface {
	Bytes() []byte
	Len() int
}

// appendByte appends the two uppercase digits of b to dst.
func appendByte(dst []byte, b byte) []byte {
	return append(dst, digits[b>>4], digits[b&0x0F])
}

// EncodeDigit converts a nibble to its uppercase hex digit.
// d must be in [0, 15]; anything larger panics.
func EncodeDigit(d uint) byte {
	return digits[d]
}

// DecodeDigit converts a hex digit to its value.
// Accepts '0'-'9', 'A'-'F' and 'a'-'f'; returns InvalidDigit for every other byte.
func DecodeDigit(c byte) int {
	return int(digitValues[c])
}

// DecodeDigitRune is DecodeDigit for runes. Runes above 0xFF are never digits.
func DecodeDigitRune(r rune) int {
	if r < 0 || r > 0xFF {
		return InvalidDigit
	}
	return DecodeDigit(byte(r))
}

// EncodeSeq encodes the bytes yielded by seq as uppercase hex.
// The sequence is consumed once, front to back.
func EncodeSeq[E ~byte](seq iter.Seq[E]) string {
	var dst []byte
	for b := range seq {
		dst = appendByte(dst, byte(b))
	}
	return string(dst)
}

// EncodeRange encodes a slice of byte-like elements as uppercase hex.
// The result is always 2*len(src) characters long.
func EncodeRange[E ~byte](src []E) string {
	dst := make([]byte, 0, len(src)*2)
	for _, b := range src {
		dst = appendByte(dst, byte(b))
	}
	return string(dst)
}

// EncodeBytes encodes src as uppercase hex.
func EncodeBytes(src []byte) string {
	return EncodeRange(src)
}

// EncodeBuffer encodes the first buf.Len() bytes of buf.Bytes().
func EncodeBuffer(buf ByteBuffer) string {
	return EncodeRange(buf.Bytes()[:buf.Len()])
}

// EncodeString encodes the raw bytes of s, not its runes.
func EncodeString(s string) string {
	dst := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		dst = appendByte(dst, s[i])
	}
	return string(dst)
}

// EncodeUint64 encodes v as 16 uppercase hex characters, most significant byte first,
// independent of host byte order.
func EncodeUint64(v uint64) string {
	b := BigEndian.PutUint64(v)
	return EncodeRange(b[:])
}
