// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package framing

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/framing/varint"
	"github.com/spaolacci/murmur3"
)

// Set and mapping encodings are not canonical: entry order follows
// map iteration order. Fingerprints provide an order-independent
// digest instead. Each entry is hashed (as its framed encoding) with
// 64-bit murmur3, and the hashes are summed, so that equal collections
// have equal fingerprints however their entries were ordered.

// Fingerprint returns the order-independent fingerprint of the set.
func (s Set) Fingerprint() uint64 {
	var (
		sum uint64
		buf []byte
	)
	for k := range s {
		buf = appendFramedString(buf[:0], k)
		sum += murmur3.Sum64(buf)
	}
	return sum
}

// Fingerprint returns the order-independent fingerprint of the
// mapping. Each entry's key and value are hashed together.
func (m Mapping) Fingerprint() uint64 {
	var (
		sum uint64
		buf []byte
	)
	for k, v := range m {
		buf = appendFramedString(buf[:0], k)
		buf = appendFramedString(buf, string(v))
		sum += murmur3.Sum64(buf)
	}
	return sum
}

// Fingerprint decodes the stream p of the given kind and returns its
// fingerprint. Sequences are order-sensitive: their fingerprint is the
// murmur3 hash of the canonical re-encoding of the sequence, so
// trailing bytes do not contribute.
func Fingerprint(kind Kind, p []byte) (uint64, error) {
	switch kind {
	case KindSequence:
		items, err := DecodeSequence(p)
		if err != nil {
			return 0, err
		}
		return murmur3.Sum64(EncodeSequence(items)), nil
	case KindMapping:
		m, err := DecodeMapping(p)
		if err != nil {
			return 0, err
		}
		return m.Fingerprint(), nil
	case KindSet:
		s, err := DecodeSet(p)
		if err != nil {
			return 0, err
		}
		return s.Fingerprint(), nil
	default:
		return 0, errors.E(errors.NotSupported, fmt.Sprintf("framing: unknown kind %v", kind))
	}
}

func appendFramedString(buf []byte, s string) []byte {
	buf = varint.Append(buf, uint64(len(s)))
	return append(buf, s...)
}
