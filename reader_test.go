// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package framing

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/grailbio/framing/varint"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

var _ io.ByteReader = (*Reader)(nil)

func TestReadFramed(t *testing.T) {
	var (
		a1 = []byte("azerty")
		a2 = []byte("")
		a3 = []byte("nbvcxwmlkjhgfdsqpoiuytreza)àç_è-('é&")
	)
	w := NewWriter()
	w.WriteFramed(a1)
	w.WriteFramed(a2)
	w.WriteFramed(a3)

	r := NewReader(w.Bytes())
	for _, want := range [][]byte{a1, a2, a3} {
		got, err := r.ReadFramed()
		assert.NoError(t, err)
		if !bytes.Equal(got, want) {
			t.Errorf("got %q, want %q", got, want)
		}
		if got == nil {
			t.Error("got nil slice")
		}
	}
	expect.EQ(t, r.Len(), 0)
	expect.EQ(t, r.Offset(), 49)
}

func TestReadFramedCopies(t *testing.T) {
	p := []byte{0x03, 'a', 'b', 'c'}
	got, err := NewReader(p).ReadFramed()
	assert.NoError(t, err)
	p[1] = 'x'
	if want := []byte("abc"); !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadUvarint(t *testing.T) {
	vals := []uint64{0, 1, 127, 128, 16384, 1 << 63, math.MaxUint64}
	w := NewWriter()
	for _, v := range vals {
		w.WriteUvarint(v)
	}
	r := NewReader(w.Bytes())
	for _, want := range vals {
		got, err := r.ReadUvarint()
		assert.NoError(t, err)
		expect.EQ(t, got, want)
	}
	_, err := r.ReadUvarint()
	expect.True(t, IsFormatError(err))
}

func TestReadFuzz(t *testing.T) {
	const N = 1000
	fz := fuzz.New()
	fz.NilChance(0)
	fz.NumElements(0, 300)
	var (
		vals   = make([]uint64, N)
		arrays = make([][]byte, N)
	)
	w := NewWriter()
	for i := range vals {
		fz.Fuzz(&vals[i])
		fz.Fuzz(&arrays[i])
		w.WriteUvarint(vals[i])
		w.WriteFramed(arrays[i])
	}
	r := NewReader(w.Finish())
	for i := range vals {
		v, err := r.ReadUvarint()
		assert.NoError(t, err)
		expect.EQ(t, v, vals[i])
		p, err := r.ReadFramed()
		assert.NoError(t, err)
		if !bytes.Equal(p, arrays[i]) {
			t.Fatalf("array %d: got %x, want %x", i, p, arrays[i])
		}
	}
	expect.EQ(t, r.Len(), 0)
}

func TestReadN(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	p, err := r.ReadN(2)
	assert.NoError(t, err)
	if got, want := p, []byte{1, 2}; !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	_, err = r.ReadN(4)
	expect.True(t, IsFormatError(err))
	// Failed reads do not advance.
	expect.EQ(t, r.Offset(), 2)
	var fixed [3]byte
	assert.NoError(t, r.ReadFull(fixed[:]))
	expect.EQ(t, fixed, [3]byte{3, 4, 5})
	b, err := r.ReadByte()
	expect.EQ(t, b, byte(0))
	expect.True(t, IsFormatError(err))
	p, err = r.ReadN(0)
	assert.NoError(t, err)
	expect.EQ(t, len(p), 0)
}

func TestReadFull(t *testing.T) {
	var fixed [4]byte
	r := NewReader([]byte{1, 2, 3})
	err := r.ReadFull(fixed[:])
	expect.True(t, IsFormatError(err))
	expect.EQ(t, r.Offset(), 0)
	expect.EQ(t, fixed, [4]byte{})
}

func TestReadFramedInto(t *testing.T) {
	w := NewWriter()
	w.WriteFramed([]byte{1, 2, 3, 4})
	w.WriteFramed([]byte{5, 6})
	r := NewReader(w.Bytes())

	var fixed [4]byte
	assert.NoError(t, r.ReadFramedInto(fixed[:]))
	expect.EQ(t, fixed, [4]byte{1, 2, 3, 4})

	off := r.Offset()
	err := r.ReadFramedInto(fixed[:])
	expect.True(t, IsFormatError(err))
	expect.True(t, strings.Contains(err.Error(), "wrong size: 2 given, should be 4"))
	expect.EQ(t, r.Offset(), off)

	var short [2]byte
	assert.NoError(t, r.ReadFramedInto(short[:]))
	expect.EQ(t, short, [2]byte{5, 6})
}

func TestReadFramedTruncated(t *testing.T) {
	w := NewWriter()
	w.WriteFramed([]byte("azerty"))
	p := w.Bytes()
	for i := 0; i < len(p); i++ {
		r := NewReader(p[:i])
		_, err := r.ReadFramed()
		if !IsFormatError(err) {
			t.Errorf("%d: got %v, want format error", i, err)
		}
		expect.EQ(t, r.Offset(), 0)
	}
}

func TestReadFramedHugeLength(t *testing.T) {
	// A length prefix declaring far more data than is present must
	// fail before anything is allocated.
	p := varint.Append(nil, 1<<40)
	p = append(p, "short"...)
	_, err := NewReader(p).ReadFramed()
	expect.True(t, IsFormatError(err))
}

func TestSizeError(t *testing.T) {
	for _, v := range []uint64{math.MaxUint64, 1 << 63} {
		p := varint.Append(nil, v)
		r := NewReader(p)
		_, err := r.ReadLen()
		expect.True(t, IsSizeError(err))
		expect.True(t, !IsFormatError(err))
		expect.EQ(t, r.Offset(), 0)
		_, err = r.ReadFramed()
		expect.True(t, IsSizeError(err))
	}
}

func TestOverflow(t *testing.T) {
	p := bytes.Repeat([]byte{0x80}, 10)
	p = append(p, 0x00)
	r := NewReader(p)
	_, err := r.ReadUvarint()
	expect.True(t, IsFormatError(err))
	_, err = r.ReadFramed()
	expect.True(t, IsFormatError(err))
	expect.EQ(t, r.Offset(), 0)
}
