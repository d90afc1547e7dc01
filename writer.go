// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package framing

import (
	"github.com/grailbio/base/must"
	"github.com/grailbio/framing/varint"
)

// A Writer appends framed values to a growing buffer. Bytes are only
// ever appended: once written, they are never modified. A Writer is
// owned by a single caller; it is not safe for concurrent use.
//
// The zero Writer is ready to use.
type Writer struct {
	buf      []byte
	finished bool
}

// NewWriter returns a new, empty Writer.
func NewWriter() *Writer {
	return new(Writer)
}

// NewWriterSize returns a new, empty Writer whose buffer is
// preallocated to hold n bytes.
func NewWriterSize(n int) *Writer {
	return &Writer{buf: make([]byte, 0, n)}
}

func (w *Writer) check() {
	must.Truef(!w.finished, "framing: write after Finish")
}

// WriteUvarint appends the varint encoding of v, returning the
// number of bytes written.
func (w *Writer) WriteUvarint(v uint64) int {
	w.check()
	n := len(w.buf)
	w.buf = varint.Append(w.buf, v)
	return len(w.buf) - n
}

// WriteLen appends the varint encoding of the length or count n,
// returning the number of bytes written. WriteLen panics if n is
// negative.
func (w *Writer) WriteLen(n int) int {
	must.Truef(n >= 0, "framing: negative length %d", n)
	return w.WriteUvarint(uint64(n))
}

// WriteRaw appends p verbatim, returning len(p).
func (w *Writer) WriteRaw(p []byte) int {
	w.check()
	w.buf = append(w.buf, p...)
	return len(p)
}

// Write implements io.Writer. It is equivalent to WriteRaw and never
// returns an error.
func (w *Writer) Write(p []byte) (int, error) {
	return w.WriteRaw(p), nil
}

// WriteFramed appends p as a framed array: its length as a varint,
// followed by its contents. WriteFramed returns the total number of
// bytes written, varint.Len(len(p))+len(p).
func (w *Writer) WriteFramed(p []byte) int {
	n := w.WriteLen(len(p))
	return n + w.WriteRaw(p)
}

// WriteFramedString is like WriteFramed, but takes its payload from a
// string.
func (w *Writer) WriteFramedString(s string) int {
	n := w.WriteLen(len(s))
	w.buf = append(w.buf, s...)
	return n + len(s)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the bytes written so far. The returned slice aliases
// the Writer's buffer; it remains valid until the next write, and
// must not be modified.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Finish returns the Writer's buffer and relinquishes it to the
// caller. The Writer may not be written to afterwards.
func (w *Writer) Finish() []byte {
	w.check()
	w.finished = true
	buf := w.buf
	w.buf = nil
	if buf == nil {
		buf = []byte{}
	}
	return buf
}
