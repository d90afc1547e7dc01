// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/framing"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

func decode(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("decode", pflag.ExitOnError)
	kindName := flags.String("kind", "sequence", "stream kind: sequence, mapping or set")
	useHex := flags.Bool("hex", false, "print entries hex encoded")
	if err := flags.Parse(args); err != nil {
		return err
	}
	kind, err := framing.ParseKind(*kindName)
	if err != nil {
		return err
	}
	return forEachPath(ctx, flags.Args(), os.Stdout, func(w io.Writer, p []byte) error {
		return dump(w, kind, p, *useHex)
	})
}

func fingerprint(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("fingerprint", pflag.ExitOnError)
	kindName := flags.String("kind", "set", "stream kind: sequence, mapping or set")
	if err := flags.Parse(args); err != nil {
		return err
	}
	kind, err := framing.ParseKind(*kindName)
	if err != nil {
		return err
	}
	return forEachPath(ctx, flags.Args(), os.Stdout, func(w io.Writer, p []byte) error {
		fp, err := framing.Fingerprint(kind, p)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%016x\n", fp)
		return err
	})
}

// forEachPath reads each of the provided paths and processes them
// concurrently with fn, one stream per goroutine. Outputs are buffered
// and written to out in path order, each preceded by a header if there
// is more than one path.
func forEachPath(ctx context.Context, paths []string, out io.Writer, fn func(w io.Writer, p []byte) error) error {
	if len(paths) == 0 {
		return errors.E(errors.Invalid, "no paths provided")
	}
	outputs := make([]bytes.Buffer, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i := range paths {
		i := i
		g.Go(func() error {
			p, err := readPath(ctx, paths[i])
			if err != nil {
				return err
			}
			log.Debug.Printf("%s: %d bytes", paths[i], len(p))
			if err := fn(&outputs[i], p); err != nil {
				return errors.E(paths[i], err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i := range outputs {
		if len(paths) > 1 {
			if _, err := fmt.Fprintf(out, "==> %s <==\n", paths[i]); err != nil {
				return err
			}
		}
		if _, err := outputs[i].WriteTo(out); err != nil {
			return err
		}
	}
	return nil
}

// dump prints the entries of stream p to w, one per line. Sequences
// are printed in stream order; mappings and sets in key order, since
// their stream order is not meaningful.
func dump(w io.Writer, kind framing.Kind, p []byte, useHex bool) error {
	format := "%q"
	if useHex {
		format = "%x"
	}
	switch kind {
	case framing.KindSequence:
		// Scan rather than decode, so that no entry is copied.
		scan := framing.NewSequenceScanner(p)
		for scan.Scan() {
			if _, err := fmt.Fprintf(w, format+"\n", scan.Bytes()); err != nil {
				return err
			}
		}
		return scan.Err()
	case framing.KindMapping:
		m, err := framing.DecodeMapping(p)
		if err != nil {
			return err
		}
		for _, k := range sortedKeys(m) {
			if _, err := fmt.Fprintf(w, format+"\t"+format+"\n", k, m[k]); err != nil {
				return err
			}
		}
	case framing.KindSet:
		s, err := framing.DecodeSet(p)
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, err := fmt.Fprintf(w, format+"\n", k); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedKeys(m framing.Mapping) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
