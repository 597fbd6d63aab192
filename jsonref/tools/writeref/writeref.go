/*
 * Copyright 2025 The JSONRef Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Binary writeref reads a JSON document from stdin and writes its styled
// serialization to stdout. Up to seven positional arguments override the
// formatting defaults, in order: indentation, precision, precisionType,
// emitUTF8, useSpecialFloats, enableYAMLCompatibility, and
// dropNullPlaceholders. Boolean arguments are set with "1".
//
// The output carries no trailing newline, so equal documents serialize to
// byte-identical streams. A malformed document prints "parse error:" and
// the reader's diagnostics to stderr and exits with status 2.
//
// Examples:
//
//	$ echo '{"b":1,"a":[1,2]}' | writeref
//	$ echo '{"a": 0.5}' | writeref '  ' 3 decimal
//	$ echo '[1,2,3]' | writeref '' 17 significant 1
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"jsonref.io/jsonref/reader"
	"jsonref.io/jsonref/util/flagutil"
	"jsonref.io/jsonref/util/log"
	"jsonref.io/jsonref/writer"
)

func init() {
	flag.Usage = flagutil.SimpleUsage(
		"Reserialize a JSON document from stdin in the styled format",
		"[indentation] [precision] [precisionType] [emitUTF8] [useSpecialFloats]",
		"[enableYAMLCompatibility] [dropNullPlaceholders]")
}

func main() {
	flag.Parse()
	opts, err := parseOptions(flag.Args())
	if err != nil {
		flagutil.UsageErrorf("%v", err)
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("error reading stdin: %v", err)
	}

	root, err := reader.Parse(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(2)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := writer.New(opts).Write(out, root); err != nil {
		log.Fatalf("error writing value: %v", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("error flushing output: %v", err)
	}
}

// parseOptions maps the positional arguments onto writer options, filling in
// the documented defaults for absent arguments. A negative precision wraps
// around and is clamped by the writer, mirroring an unsigned conversion.
func parseOptions(args []string) (writer.Options, error) {
	opts := writer.DefaultOptions()
	if len(args) > 7 {
		return opts, fmt.Errorf("unknown arguments: %v", args[7:])
	}
	if len(args) > 0 {
		opts.Indentation = args[0]
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return opts, fmt.Errorf("invalid precision %q: %v", args[1], err)
		}
		opts.Precision = uint(n)
	}
	if len(args) > 2 {
		pt, err := writer.ParsePrecisionType(args[2])
		if err != nil {
			return opts, err
		}
		opts.PrecisionType = pt
	}
	if len(args) > 3 {
		opts.EmitUTF8 = args[3] == "1"
	}
	if len(args) > 4 {
		opts.UseSpecialFloats = args[4] == "1"
	}
	if len(args) > 5 {
		opts.EnableYAMLCompatibility = args[5] == "1"
	}
	if len(args) > 6 {
		opts.DropNullPlaceholders = args[6] == "1"
	}
	return opts, nil
}
