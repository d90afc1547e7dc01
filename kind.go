// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package framing

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Kind names the shape of an encoded stream. Streams do not identify
// their own kind; the caller must know it.
type Kind int

const (
	// KindSequence is an ordered sequence of byte arrays.
	KindSequence Kind = iota
	// KindMapping is a mapping of byte-array keys to byte-array values.
	KindMapping
	// KindSet is a set of byte arrays.
	KindSet
)

var kindNames = [...]string{
	KindSequence: "sequence",
	KindMapping:  "mapping",
	KindSet:      "set",
}

// String returns the kind's name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, errors.E(errors.NotSupported, fmt.Sprintf("framing: unknown kind %q", name))
}
