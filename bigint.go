package strhex

import "encoding/binary"

// BigEndian provides host-independent uint64 ⇄ 8-byte conversions.
var BigEndian = bigEndianHelpers{}

type bigEndianHelpers struct{}

// PutUint64 returns the 8 bytes of v, most significant first.
func (bigEndianHelpers) PutUint64(v uint64) [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b
}

// Uint64 reads a uint64 from 8 big-endian bytes.
func (bigEndianHelpers) Uint64(b [8]byte) uint64 {
	return binary.BigEndian.Uint64(b[:])
}
