// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package framing

// SequenceScanner iterates over the entries of an encoded sequence or
// set without copying them. Entries are returned as views into the
// scanned buffer, valid as long as the buffer is not modified.
type SequenceScanner struct {
	r     Reader
	count int
	i     int
	p     []byte
	err   error
}

// NewSequenceScanner returns a scanner over the sequence (or set)
// stream p.
func NewSequenceScanner(p []byte) *SequenceScanner {
	s := &SequenceScanner{r: Reader{p: p}}
	s.count, s.err = s.r.ReadLen()
	return s
}

// Count returns the number of entries declared by the stream.
func (s *SequenceScanner) Count() int {
	return s.count
}

// Scan scans the next entry, returning true on success. When Scan
// returns false, the caller should inspect Err to distinguish
// between scan completion and scan error.
func (s *SequenceScanner) Scan() bool {
	if s.err != nil || s.i == s.count {
		return false
	}
	s.p, s.err = s.r.readFramedView()
	if s.err != nil {
		s.p = nil
		return false
	}
	s.i++
	return true
}

// Bytes returns the entry that was last scanned.
func (s *SequenceScanner) Bytes() []byte {
	return s.p
}

// Err returns the last error encountered while scanning.
func (s *SequenceScanner) Err() error {
	return s.err
}

// MappingScanner iterates over the entries of an encoded mapping
// without copying them. Keys and values are views into the scanned
// buffer. Duplicate keys are returned as they appear in the stream.
type MappingScanner struct {
	r          Reader
	count      int
	i          int
	key, value []byte
	err        error
}

// NewMappingScanner returns a scanner over the mapping stream p.
func NewMappingScanner(p []byte) *MappingScanner {
	s := &MappingScanner{r: Reader{p: p}}
	s.count, s.err = s.r.ReadLen()
	return s
}

// Count returns the number of entries declared by the stream.
func (s *MappingScanner) Count() int {
	return s.count
}

// Scan scans the next entry, returning true on success. When Scan
// returns false, the caller should inspect Err to distinguish
// between scan completion and scan error.
func (s *MappingScanner) Scan() bool {
	if s.err != nil || s.i == s.count {
		return false
	}
	if s.key, s.err = s.r.readFramedView(); s.err == nil {
		s.value, s.err = s.r.readFramedView()
	}
	if s.err != nil {
		s.key, s.value = nil, nil
		return false
	}
	s.i++
	return true
}

// Key returns the key that was last scanned.
func (s *MappingScanner) Key() []byte {
	return s.key
}

// Value returns the value that was last scanned.
func (s *MappingScanner) Value() []byte {
	return s.value
}

// Err returns the last error encountered while scanning.
func (s *MappingScanner) Err() error {
	return s.err
}
