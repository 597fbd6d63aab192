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

// Package cmdutil provides shared plumbing for binaries assembled from
// github.com/google/subcommands command sets.
package cmdutil // import "jsonref.io/jsonref/util/cmdutil"

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"jsonref.io/jsonref/util/log"

	"github.com/google/subcommands"
)

// Info carries the name and documentation of a subcommand, implementing the
// descriptive parts of the subcommands.Command interface. A command embeds
// an Info and overrides Execute and, when it has flags, SetFlags.
type Info struct {
	name     string
	synopsis string
	usage    string
}

// NewInfo constructs an Info from a command name, one-line synopsis, and
// multi-line usage summary.
func NewInfo(name, synopsis, usage string) Info {
	if !strings.HasSuffix(usage, "\n") {
		usage += "\n"
	}
	return Info{name: name, synopsis: synopsis, usage: usage}
}

// Name implements part of subcommands.Command.
func (i Info) Name() string { return i.name }

// Synopsis implements part of subcommands.Command.
func (i Info) Synopsis() string { return i.synopsis }

// Usage implements part of subcommands.Command.
func (i Info) Usage() string { return i.usage + "\nOptions:\n" }

// SetFlags implements part of subcommands.Command. It registers no flags.
func (i Info) SetFlags(*flag.FlagSet) {}

// Execute implements part of subcommands.Command by printing the usage
// summary.
func (i Info) Execute(context.Context, *flag.FlagSet, ...any) subcommands.ExitStatus {
	fmt.Print(i.usage)
	return subcommands.ExitSuccess
}

// Fail logs an error formatted from msg and args and returns failure for an
// Execute method to propagate.
func (i Info) Fail(msg string, args ...any) subcommands.ExitStatus {
	log.Errorf(msg, args...)
	return subcommands.ExitFailure
}
