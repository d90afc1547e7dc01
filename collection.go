// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package framing

import "github.com/grailbio/framing/varint"

// A Mapping maps byte-string keys to byte-string values. Keys are held
// as Go strings so that they may be used as map keys.
type Mapping map[string][]byte

// A Set is a set of byte strings.
type Set map[string]struct{}

// Add adds the byte string p to the set.
func (s Set) Add(p []byte) {
	s[string(p)] = struct{}{}
}

// Has tells whether the set contains the byte string p.
func (s Set) Has(p []byte) bool {
	_, ok := s[string(p)]
	return ok
}

// EncodeSequence encodes an ordered sequence of byte arrays.
func EncodeSequence(items [][]byte) []byte {
	size := varint.Len(uint64(len(items)))
	for _, p := range items {
		size += framedLen(len(p))
	}
	w := NewWriterSize(size)
	w.WriteSequence(items)
	return w.Finish()
}

// DecodeSequence decodes a sequence encoded by EncodeSequence. Bytes
// following the sequence are ignored.
func DecodeSequence(p []byte) ([][]byte, error) {
	return NewReader(p).ReadSequence()
}

// EncodeMapping encodes a mapping. Entries are written in Go's map
// iteration order: encoding the same mapping twice may produce
// different bytes. Use Mapping.Fingerprint to compare encoded mappings.
func EncodeMapping(m Mapping) []byte {
	size := varint.Len(uint64(len(m)))
	for k, v := range m {
		size += framedLen(len(k)) + framedLen(len(v))
	}
	w := NewWriterSize(size)
	w.WriteMapping(m)
	return w.Finish()
}

// DecodeMapping decodes a mapping encoded by EncodeMapping. If a key
// appears more than once in the stream, the last value wins. Bytes
// following the mapping are ignored.
func DecodeMapping(p []byte) (Mapping, error) {
	return NewReader(p).ReadMapping()
}

// EncodeSet encodes a set. Like mappings, sets are encoded in
// iteration order, and so their encoding is not canonical.
func EncodeSet(s Set) []byte {
	size := varint.Len(uint64(len(s)))
	for k := range s {
		size += framedLen(len(k))
	}
	w := NewWriterSize(size)
	w.WriteSet(s)
	return w.Finish()
}

// DecodeSet decodes a set encoded by EncodeSet. Duplicate entries
// collapse. Bytes following the set are ignored.
func DecodeSet(p []byte) (Set, error) {
	return NewReader(p).ReadSet()
}

func framedLen(n int) int {
	return varint.Len(uint64(n)) + n
}

// WriteSequence appends a sequence of byte arrays: their count,
// followed by each array in order. It returns the number of bytes
// written.
func (w *Writer) WriteSequence(items [][]byte) int {
	n := w.WriteLen(len(items))
	for _, p := range items {
		n += w.WriteFramed(p)
	}
	return n
}

// WriteMapping appends a mapping: its entry count, followed by each
// key and its value. It returns the number of bytes written.
func (w *Writer) WriteMapping(m Mapping) int {
	n := w.WriteLen(len(m))
	for k, v := range m {
		n += w.WriteFramedString(k)
		n += w.WriteFramed(v)
	}
	return n
}

// WriteSet appends a set: its entry count, followed by each entry. It
// returns the number of bytes written.
func (w *Writer) WriteSet(s Set) int {
	n := w.WriteLen(len(s))
	for k := range s {
		n += w.WriteFramedString(k)
	}
	return n
}

// The Read methods below decode whole collections. They return either
// the complete collection or an error; if an error is returned, the
// Reader is left at the entry that failed to decode.
//
// Preallocation is bounded by the remaining input: every array takes
// at least one byte, so a count larger than the remaining input
// cannot be satisfied, and is not trusted.

// ReadSequence reads a sequence of byte arrays.
func (r *Reader) ReadSequence() ([][]byte, error) {
	n, err := r.ReadLen()
	if err != nil {
		return nil, err
	}
	items := make([][]byte, 0, min(n, r.Len()))
	for i := 0; i < n; i++ {
		p, err := r.ReadFramed()
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

// ReadMapping reads a mapping.
func (r *Reader) ReadMapping() (Mapping, error) {
	n, err := r.ReadLen()
	if err != nil {
		return nil, err
	}
	m := make(Mapping, min(n, r.Len()/2))
	for i := 0; i < n; i++ {
		k, err := r.readFramedView()
		if err != nil {
			return nil, err
		}
		v, err := r.ReadFramed()
		if err != nil {
			return nil, err
		}
		m[string(k)] = v
	}
	return m, nil
}

// ReadSet reads a set.
func (r *Reader) ReadSet() (Set, error) {
	n, err := r.ReadLen()
	if err != nil {
		return nil, err
	}
	s := make(Set, min(n, r.Len()))
	for i := 0; i < n; i++ {
		p, err := r.readFramedView()
		if err != nil {
			return nil, err
		}
		s[string(p)] = struct{}{}
	}
	return s, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
