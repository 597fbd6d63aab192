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

// Package viewcmd prints the reference output of conformance cases, for
// inspecting goldens before pinning them.
package viewcmd // import "jsonref.io/jsonref/tools/conformance/viewcmd"

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"jsonref.io/jsonref/tools/conformance/cases"
	"jsonref.io/jsonref/tools/conformance/runner"
	"jsonref.io/jsonref/util/cmdutil"
	"jsonref.io/jsonref/util/log"

	"bitbucket.org/creachadair/stringset"
	"github.com/google/subcommands"
)

type cmd struct {
	cmdutil.Info

	casesPath string
	ref       string
}

// New returns an implementation of the "view" subcommand.
func New() subcommands.Command {
	const usage = `Usage: view --cases <file> [name...]

Print the reference output for the named cases, or for every case in the
file when no names are given. The reference is the built-in writer unless
--ref names an external command.`

	return &cmd{
		Info: cmdutil.NewInfo("view", "print the reference output of conformance cases", usage),
	}
}

// SetFlags implements part of subcommands.Command.
func (c *cmd) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.casesPath, "cases", "", "Path of the case file (required)")
	fs.StringVar(&c.ref, "ref", "", "External reference command (default: the built-in writer)")
}

// Execute implements part of subcommands.Command.
func (c *cmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if c.casesPath == "" {
		return c.Fail("required --cases flag not provided")
	}
	cs, err := cases.Load(c.casesPath)
	if err != nil {
		return c.Fail("loading cases: %v", err)
	}

	var ref runner.Impl = runner.Builtin{}
	if c.ref != "" {
		rc, err := runner.ParseCommand(c.ref)
		if err != nil {
			return c.Fail("invalid --ref: %v", err)
		}
		ref = rc
	}

	names := stringset.New(fs.Args()...)
	all := names.Empty()
	var hasErrors bool
	for _, cse := range cs {
		if !all && !names.Contains(cse.Name) {
			continue
		}
		names.Discard(cse.Name)
		out, err := ref.Format(ctx, cse)
		if err != nil {
			log.Errorf("case %s: %v", cse.Name, err)
			hasErrors = true
			continue
		}
		fmt.Printf("=== %s (%s)\n%s\n", cse.Name, strings.Join(cse.Config.Args(), " "), out)
	}
	if !names.Empty() {
		log.Errorf("unknown cases: %s", strings.Join(names.Elements(), ", "))
		hasErrors = true
	}
	if hasErrors {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
