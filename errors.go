// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package framing

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Decoding fails in one of two ways. Format errors indicate a truncated
// or malformed stream; they carry the errors.Integrity kind. Size
// errors indicate a declared length or count that cannot be addressed
// on this platform; they carry the errors.Invalid kind. Both are fatal:
// decoding the same input again cannot succeed.

func formatError(off int, msg string, err error) error {
	if err != nil {
		return errors.E(errors.Integrity, errors.Fatal, fmt.Sprintf("framing: offset %d: %s", off, msg), err)
	}
	return errors.E(errors.Integrity, errors.Fatal, fmt.Sprintf("framing: offset %d: %s", off, msg))
}

func sizeError(off int, n uint64) error {
	return errors.E(errors.Invalid, errors.Fatal,
		fmt.Sprintf("framing: offset %d: declared size %d is not addressable", off, n))
}

// IsFormatError tells whether err resulted from decoding a truncated
// or malformed stream.
func IsFormatError(err error) bool {
	return errors.Is(errors.Integrity, err)
}

// IsSizeError tells whether err resulted from a declared length or
// count too large to be represented on this platform.
func IsSizeError(err error) bool {
	return errors.Is(errors.Invalid, err)
}
