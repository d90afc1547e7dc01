// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/framing"
	"github.com/spf13/pflag"
)

const maxLineSize = 1 << 30

func encode(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("encode", pflag.ExitOnError)
	kindName := flags.String("kind", "sequence", "stream kind: sequence, mapping or set")
	useHex := flags.Bool("hex", false, "entries are hex encoded")
	out := flags.StringP("output", "o", "-", "output path")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errors.E(errors.Invalid, "encode: expected exactly one input")
	}
	kind, err := framing.ParseKind(*kindName)
	if err != nil {
		return err
	}
	in, err := readPath(ctx, flags.Arg(0))
	if err != nil {
		return err
	}
	p, n, err := encodeLines(bytes.NewReader(in), kind, *useHex)
	if err != nil {
		return err
	}
	log.Debug.Printf("encode: %d entries, %d bytes", n, len(p))
	return writePath(ctx, *out, p)
}

// encodeLines encodes the lines read from r as a stream of the given
// kind. It returns the stream and the number of entries read.
func encodeLines(r io.Reader, kind framing.Kind, useHex bool) ([]byte, int, error) {
	var (
		items [][]byte
		m     = make(framing.Mapping)
		s     = make(framing.Set)
		lines int
	)
	scan := bufio.NewScanner(r)
	scan.Buffer(nil, maxLineSize)
	for scan.Scan() {
		lines++
		line := scan.Bytes()
		switch kind {
		case framing.KindSequence, framing.KindSet:
			entry, err := parseEntry(line, useHex)
			if err != nil {
				return nil, 0, errors.E(fmt.Sprintf("line %d", lines), err)
			}
			if kind == framing.KindSet {
				s.Add(entry)
			} else {
				items = append(items, entry)
			}
		case framing.KindMapping:
			tab := bytes.IndexByte(line, '\t')
			if tab < 0 {
				return nil, 0, errors.E(errors.Invalid, fmt.Sprintf("line %d: missing tab", lines))
			}
			key, err := parseEntry(line[:tab], useHex)
			if err != nil {
				return nil, 0, errors.E(fmt.Sprintf("line %d: key", lines), err)
			}
			value, err := parseEntry(line[tab+1:], useHex)
			if err != nil {
				return nil, 0, errors.E(fmt.Sprintf("line %d: value", lines), err)
			}
			m[string(key)] = value
		}
	}
	if err := scan.Err(); err != nil {
		return nil, 0, err
	}
	switch kind {
	case framing.KindMapping:
		return framing.EncodeMapping(m), len(m), nil
	case framing.KindSet:
		return framing.EncodeSet(s), len(s), nil
	default:
		return framing.EncodeSequence(items), len(items), nil
	}
}

// parseEntry returns a copy of the entry text, hex decoded if
// requested.
func parseEntry(text []byte, useHex bool) ([]byte, error) {
	if !useHex {
		return append([]byte{}, text...), nil
	}
	p := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(p, text); err != nil {
		return nil, errors.E(errors.Invalid, err)
	}
	return p, nil
}

func readPath(ctx context.Context, path string) ([]byte, error) {
	if path == "-" {
		return readAll(os.Stdin)
	}
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	p, err := readAll(f.Reader(ctx))
	if closeErr := f.Close(ctx); err == nil {
		err = closeErr
	}
	return p, err
}

func readAll(r io.Reader) ([]byte, error) {
	var b bytes.Buffer
	_, err := b.ReadFrom(r)
	return b.Bytes(), err
}

func writePath(ctx context.Context, path string, p []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(p)
		return err
	}
	f, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	if _, err := f.Writer(ctx).Write(p); err != nil {
		f.Discard(ctx)
		return err
	}
	return f.Close(ctx)
}
