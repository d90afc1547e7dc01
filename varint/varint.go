// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package varint implements the unsigned LEB128 variable-length
// integer encoding. Each encoded byte carries 7 bits of payload in its
// low bits; the high bit is set on every byte but the last. Groups are
// emitted least significant first, and encodings are always minimal:
//
//	0      => 00
//	127    => 7f
//	128    => 80 01
//	16384  => 80 80 01
//
// A uint64 occupies at most MaxLen bytes. Decode rejects encodings that
// run out of input before a terminating byte, as well as encodings
// whose value does not fit in 64 bits.
package varint

import "github.com/grailbio/base/errors"

// MaxLen is the maximum encoded length of a uint64.
const MaxLen = 10

var (
	// ErrTruncated is returned when the input ends before the final
	// byte of a varint.
	ErrTruncated = errors.E(errors.Integrity, errors.Fatal, "varint: truncated")
	// ErrOverflow is returned when a varint encodes a value larger
	// than 1<<64-1, or spans more than MaxLen bytes.
	ErrOverflow = errors.E(errors.Integrity, errors.Fatal, "varint: value overflows 64 bits")
)

// Len returns the number of bytes needed to encode v.
func Len(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// Put encodes v into dst and returns the number of bytes written.
// Put panics if dst is shorter than Len(v).
func Put(dst []byte, v uint64) int {
	var n int
	for v >= 0x80 {
		dst[n] = byte(v) | 0x80
		v >>= 7
		n++
	}
	dst[n] = byte(v)
	return n + 1
}

// Append appends the encoding of v to dst and returns the extended
// slice.
func Append(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// Decode decodes the varint at the beginning of p, returning its
// value and the number of bytes it occupies. Decode never reads beyond
// the first MaxLen bytes of p.
func Decode(p []byte) (v uint64, n int, err error) {
	var shift uint
	for i, b := range p {
		if i == MaxLen-1 && b > 1 {
			// The last group has room for only the top bit of a uint64,
			// and may not be continued.
			return 0, 0, ErrOverflow
		}
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return v, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, ErrTruncated
}
