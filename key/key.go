// Package key provides the encoders the tree relies on to turn user-level
// keys into the prefix-free byte sequences an Adaptive Radix Tree requires.
//
// A []byte key is prefix-free with respect to another when neither is a
// proper prefix of the other. The tree itself does not enforce this — it
// panics the moment it detects a violation during Insert — so every encoder
// in this package appends a terminator byte that cannot occur naturally in
// the data it encodes, guaranteeing the property by construction.
package key

import "encoding/binary"

// StringTerminator is appended to the UTF-8 bytes of a Go string to make the
// encoding prefix-free.
//
// 0b10_111111 cannot appear as the first byte of any valid UTF-8 scalar
// (continuation bytes start with 0b10, and no leading byte does). It can
// occur inside a string only as a continuation byte of a multi-byte
// character, never directly after a complete character.
const StringTerminator byte = 0b10_111111

// String encodes s as a prefix-free byte sequence suitable for use as a
// tree key.
//
// Two distinct strings never produce keys where one is a prefix of the
// other when both are valid UTF-8: every encoding ends in StringTerminator,
// and a valid string never has that byte right after a complete character.
func String(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	b[len(s)] = StringTerminator

	return b
}

// Bytes encodes an arbitrary byte string as a prefix-free key using an
// explicit terminator supplied by the caller.
//
// The caller must guarantee term does not occur as a byte of b; unlike
// String, Bytes has no alphabet to reserve a terminator from automatically.
func Bytes(b []byte, term byte) []byte {
	out := make([]byte, len(b)+1)
	copy(out, b)
	out[len(b)] = term

	return out
}

// Uint8 encodes v as a single-byte key. A fixed-width integer key is always
// prefix-free against another key of the same width, since no shorter
// encoding exists to be a prefix of it.
func Uint8(v uint8) []byte { return []byte{v} }

// Uint16 big-endian encodes v so that byte-wise (lexicographic) order of the
// result matches numeric order.
func Uint16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)

	return b
}

// Uint32 big-endian encodes v so that byte-wise (lexicographic) order of the
// result matches numeric order.
func Uint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)

	return b
}

// Uint64 big-endian encodes v so that byte-wise (lexicographic) order of the
// result matches numeric order.
func Uint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)

	return b
}

// Int8 flips the sign bit before encoding so that two's-complement order
// (negative numbers first) becomes lexicographic order.
func Int8(v int8) []byte {
	return []byte{uint8(v) ^ 0x80}
}

// Int16 flips the sign bit then big-endian encodes v, making byte-wise order
// of the result match numeric order across negative and positive values.
func Int16(v int16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v)^0x8000)

	return b
}

// Int32 flips the sign bit then big-endian encodes v, making byte-wise order
// of the result match numeric order across negative and positive values.
func Int32(v int32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v)^0x80000000)

	return b
}

// Int64 flips the sign bit then big-endian encodes v, making byte-wise order
// of the result match numeric order across negative and positive values.
func Int64(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v)^0x8000000000000000)

	return b
}
