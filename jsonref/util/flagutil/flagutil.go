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

// Package flagutil is a collection of helper functions for jsonref binaries
// using the flag package.
package flagutil // import "jsonref.io/jsonref/util/flagutil"

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jsonref.io/jsonref/util/build"

	"bitbucket.org/creachadair/stringset"
)

// SimpleUsage returns a basic flag.Usage function that prints the given
// description and list of arguments in the following format:
//
//	Usage: binary <arg0> <arg1> ... <argN>
//	<description>
//
//	<build.VersionLine()>
//
//	Flags:
//	<flag.PrintDefaults()>
func SimpleUsage(description string, args ...string) func() {
	return func() {
		prefix := fmt.Sprintf("Usage: %s ", filepath.Base(os.Args[0]))
		alignArgs(len(prefix), args)
		fmt.Fprintf(os.Stderr, `%s%s
%s

%s

Flags:
`, prefix, strings.Join(args, " "), description, build.VersionLine())
		flag.PrintDefaults()
	}
}

func alignArgs(col int, args []string) {
	s := strings.Repeat(" ", col)
	for i, arg := range args {
		args[i] = strings.Replace(arg, "\n", "\n"+s, -1)
	}
}

// UsageError prints msg to stderr, calls flag.Usage, and exits the program
// unsuccessfully.
func UsageError(msg string) {
	fmt.Fprintln(os.Stderr, "ERROR: "+msg)
	flag.Usage()
	os.Exit(1)
}

// UsageErrorf prints str formatted with the given vals to stderr, calls
// flag.Usage, and exits the program unsuccessfully.
func UsageErrorf(str string, vals ...any) {
	UsageError(fmt.Sprintf(str, vals...))
}

// StringSet implements a flag.Value that accepts a set of values as a CSV.
type StringSet stringset.Set

// Set implements part of the flag.Getter interface and will add new values to the flag.
func (f *StringSet) Set(s string) error {
	(*stringset.Set)(f).Add(strings.Split(s, ",")...)
	return nil
}

// Contains reports whether s is an element of the set.
func (f *StringSet) Contains(s string) bool {
	return (*stringset.Set)(f).Contains(s)
}

// Elements returns the set of elements as a sorted slice.
func (f *StringSet) Elements() []string {
	return (*stringset.Set)(f).Elements()
}

// Len returns the number of elements.
func (f *StringSet) Len() int {
	return (*stringset.Set)(f).Len()
}

// String implements part of the flag.Getter interface and returns a string-ish value for the flag.
func (f *StringSet) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(f.Elements(), ",")
}

// Get implements flag.Getter and returns a slice of string values.
func (f *StringSet) Get() any {
	if f == nil {
		return stringset.Set(nil)
	}
	return *f
}
