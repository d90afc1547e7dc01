// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package framing

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/grailbio/framing/varint"
	"github.com/grailbio/testutil/expect"
)

var _ io.Writer = (*Writer)(nil)

func TestWriteFramed(t *testing.T) {
	var (
		a1 = []byte("azerty")
		a2 = []byte("")
		a3 = []byte("nbvcxwmlkjhgfdsqpoiuytreza)àç_è-('é&")
	)
	w := NewWriter()
	if got, want := w.WriteFramed(a1), 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := w.WriteFramed(a2), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := w.WriteFramed(a3), 41; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := w.Len(), 49; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	want := []byte{0x06, 'a', 'z', 'e', 'r', 't', 'y', 0x00}
	if got := w.Bytes()[:8]; !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestWriteFramedLen(t *testing.T) {
	for _, n := range []int{0, 1, 127, 128, 300, 16383, 16384, 1 << 20} {
		w := NewWriter()
		w.WriteRaw([]byte("prefix"))
		before := w.Len()
		written := w.WriteFramed(make([]byte, n))
		expect.EQ(t, written, varint.Len(uint64(n))+n)
		expect.EQ(t, w.Len()-before, written)
	}
}

func TestWriteFramedString(t *testing.T) {
	var w1, w2 Writer
	w1.WriteFramed([]byte("hello, world"))
	w2.WriteFramedString("hello, world")
	if !bytes.Equal(w1.Bytes(), w2.Bytes()) {
		t.Errorf("got %x, want %x", w2.Bytes(), w1.Bytes())
	}
}

func TestWriterAppendOnly(t *testing.T) {
	w := NewWriterSize(1)
	w.WriteUvarint(300)
	snapshot := append([]byte(nil), w.Bytes()...)
	for i := 0; i < 100; i++ {
		w.WriteFramed([]byte(fmt.Sprint(i)))
	}
	if got, want := w.Bytes()[:len(snapshot)], snapshot; !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
	n, err := w.Write([]byte{1, 2, 3})
	expect.NoError(t, err)
	expect.EQ(t, n, 3)
}

func TestFinish(t *testing.T) {
	w := NewWriter()
	if got := w.Finish(); got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty buffer", got)
	}

	w = NewWriter()
	w.WriteUvarint(128)
	p := w.Finish()
	if got, want := p, []byte{0x80, 0x01}; !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
	if got, want := w.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	expectPanic(t, func() { w.WriteRaw([]byte{1}) })
	expectPanic(t, func() { w.Finish() })
}

func TestNegativeLen(t *testing.T) {
	expectPanic(t, func() { NewWriter().WriteLen(-1) })
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	fn()
}
