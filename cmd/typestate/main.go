// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command typestate drives a file handle through open, read and close and
// prints the data that was read.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"code.hybscloud.com/typestate"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("typestate", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{}) // discard pflag output

	variant := fs.String("variant", string(typestate.VariantTypestate),
		"handle implementation: "+variantNames())
	verbose := fs.BoolP("verbose", "v", false, "log each transition to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout, fs)
			return 0
		}
		fmt.Fprintln(stderr, "error:", err)
		printUsage(stderr, fs)
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(stderr, "error: unexpected arguments:", strings.Join(fs.Args(), " "))
		return 2
	}

	v, err := typestate.ParseVariant(*variant)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	log := newLogger(stderr, *verbose).With(zap.String("variant", string(v)))
	defer func() { _ = log.Sync() }()

	data, err := typestate.Run(v, func(op typestate.Op, to typestate.Kind, data int) {
		log.Debug("transition",
			zap.Stringer("op", op),
			zap.Stringer("state", to),
			zap.Int("data", data))
	})
	if err != nil {
		log.Error("protocol failed", zap.Error(err))
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	fmt.Fprintln(stdout, data)
	return 0
}

func variantNames() string {
	vs := typestate.Variants()
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: typestate [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Open, read and close a simulated file handle and print the data read.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	var buf strings.Builder
	fs.SetOutput(&buf)
	fs.PrintDefaults()
	fmt.Fprint(w, buf.String())
}
