// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

/*
	Package framing implements a compact binary encoding for byte
	strings and simple collections of them: ordered sequences, mappings
	from byte strings to byte strings, and sets of byte strings.

	Values are framed with unsigned LEB128 varints (see package
	github.com/grailbio/framing/varint). A Writer appends framed values
	to a growing buffer; a Reader consumes them from a borrowed slice.
	The layout is:

		framed   := len: uvarint, data: uint8[len]
		sequence := count: uvarint, framed{count}
		mapping  := count: uvarint, (key: framed, value: framed){count}
		set      := count: uvarint, framed{count}

	Streams carry no magic number, version or checksum, and do not
	describe their own shape: the caller must know whether a buffer
	holds a sequence, a mapping or a set.

	Collections are prefixed by their entry count rather than terminated
	by a sentinel. Empty byte strings are thus legal anywhere, and the
	decoder can size the destination collection up front. Because the
	count is untrusted input, preallocation is bounded by the number of
	bytes remaining in the stream.

	Mappings and sets are encoded in Go's map iteration order, which is
	unspecified: two encodings of the same mapping need not be byte
	identical. Fingerprints (see Set.Fingerprint and Mapping.Fingerprint)
	compare collections independently of their encoded order.

	Decoding is safe for untrusted input. Truncated or malformed streams
	produce format errors (IsFormatError); lengths that cannot be
	addressed on the current platform produce size errors (IsSizeError).
	Decoding is all-or-nothing: no partial collections are returned.
	Encoding never fails.

	Writers and Readers are owned by a single goroutine; they are not
	safe for concurrent use.
*/
package framing
