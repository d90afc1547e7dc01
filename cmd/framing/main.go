// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Command framing encodes, decodes and fingerprints framed streams of
// byte strings. Paths may name local files or S3 objects (s3://...);
// the path "-" denotes standard input or output.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
	"github.com/grailbio/base/log"
	"github.com/spf13/pflag"
)

func init() {
	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(
			s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: framing command [flags] args...

Available commands are:

	encode [-kind k] [-hex] [-o path] input
		Encode the lines of input as a stream of kind k. Each line
		is an entry; mapping lines are key<TAB>value.
	decode [-kind k] [-hex] path...
		Decode and print the entries of each stream. Mappings and sets
		are printed in key order.
	fingerprint [-kind k] path...
		Print the order-independent fingerprint of each stream.

Kinds are sequence (the default), mapping and set.

Global flags:
`)
	pflag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.AddFlags()
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.CommandLine.SetInterspersed(false)
	pflag.Usage = usage
	pflag.Parse()
	if pflag.NArg() == 0 {
		usage()
	}
	ctx := context.Background()
	cmd, args := pflag.Arg(0), pflag.Args()[1:]
	var err error
	switch cmd {
	default:
		fmt.Fprintf(os.Stderr, "unknown command %s\n", cmd)
		usage()
	case "encode":
		err = encode(ctx, args)
	case "decode":
		err = decode(ctx, args)
	case "fingerprint":
		err = fingerprint(ctx, args)
	}
	if err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}
