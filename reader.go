// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package framing

import (
	"fmt"

	"github.com/grailbio/framing/varint"
)

// maxInt is the largest length addressable on this platform.
const maxInt = uint64(^uint(0) >> 1)

// A Reader consumes framed values from a borrowed byte slice. The
// Reader does not copy the slice; the caller must not modify it while
// the Reader is in use. The Reader's position only advances: every
// successful read consumes exactly the bytes it returns or decodes,
// and a failed read of a single value consumes nothing.
type Reader struct {
	p   []byte
	off int
}

// NewReader returns a Reader positioned at the start of p.
func NewReader(p []byte) *Reader {
	return &Reader{p: p}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.p) - r.off
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// ReadUvarint reads a varint.
func (r *Reader) ReadUvarint() (uint64, error) {
	v, n, err := varint.Decode(r.p[r.off:])
	if err != nil {
		return 0, formatError(r.off, "read varint", err)
	}
	r.off += n
	return v, nil
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	if r.off >= len(r.p) {
		return 0, formatError(r.off, "read byte: no data remaining", nil)
	}
	b := r.p[r.off]
	r.off++
	return b, nil
}

// peekLen decodes the length or count at the current position without
// consuming it. It returns the value and the size of its encoding.
func (r *Reader) peekLen() (n, size int, err error) {
	v, size, err := varint.Decode(r.p[r.off:])
	if err != nil {
		return 0, 0, formatError(r.off, "read length", err)
	}
	if v > maxInt {
		return 0, 0, sizeError(r.off, v)
	}
	return int(v), size, nil
}

// ReadLen reads a varint-encoded length or count. ReadLen returns a
// size error if the value does not fit in an int.
func (r *Reader) ReadLen() (int, error) {
	n, size, err := r.peekLen()
	if err != nil {
		return 0, err
	}
	r.off += size
	return n, nil
}

// view returns the n bytes starting at off, checking them against the
// end of the input.
func (r *Reader) view(off, n int) ([]byte, error) {
	if n < 0 || n > len(r.p)-off {
		return nil, formatError(off, fmt.Sprintf("read %d bytes: only %d remaining", n, len(r.p)-off), nil)
	}
	return r.p[off : off+n : off+n], nil
}

// ReadN reads exactly n bytes, returning a copy.
func (r *Reader) ReadN(n int) ([]byte, error) {
	p, err := r.view(r.off, n)
	if err != nil {
		return nil, err
	}
	r.off += n
	q := make([]byte, n)
	copy(q, p)
	return q, nil
}

// ReadFull fills p with exactly len(p) bytes. It is used to read
// fixed-width values whose size is known to the caller.
func (r *Reader) ReadFull(p []byte) error {
	q, err := r.view(r.off, len(p))
	if err != nil {
		return err
	}
	r.off += copy(p, q)
	return nil
}

// ReadFramed reads a framed array: a varint length followed by that
// many bytes. The returned slice is a copy; an empty array is returned
// as an empty, non-nil slice.
func (r *Reader) ReadFramed() ([]byte, error) {
	p, err := r.readFramedView()
	if err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return []byte{}, nil
	}
	q := make([]byte, len(p))
	copy(q, p)
	return q, nil
}

// ReadFramedInto reads a framed array into p. The array's declared
// length must be exactly len(p).
func (r *Reader) ReadFramedInto(p []byte) error {
	n, size, err := r.peekLen()
	if err != nil {
		return err
	}
	if n != len(p) {
		return formatError(r.off, fmt.Sprintf("wrong size: %d given, should be %d", n, len(p)), nil)
	}
	q, err := r.view(r.off+size, n)
	if err != nil {
		return err
	}
	copy(p, q)
	r.off += size + n
	return nil
}

// readFramedView reads a framed array, returning a view into the
// underlying slice. The length is checked against the remaining input
// before anything is sliced or allocated.
func (r *Reader) readFramedView() ([]byte, error) {
	n, size, err := r.peekLen()
	if err != nil {
		return nil, err
	}
	p, err := r.view(r.off+size, n)
	if err != nil {
		return nil, err
	}
	r.off += size + n
	return p, nil
}
