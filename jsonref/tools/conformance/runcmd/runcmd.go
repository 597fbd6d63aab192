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

// Package runcmd executes a conformance case file against a candidate writer
// command and reports any outputs that differ from the reference.
package runcmd // import "jsonref.io/jsonref/tools/conformance/runcmd"

import (
	"context"
	"flag"
	"fmt"

	"jsonref.io/jsonref/tools/conformance/cases"
	"jsonref.io/jsonref/tools/conformance/runner"
	"jsonref.io/jsonref/util/cmdutil"
	"jsonref.io/jsonref/util/flagutil"
	"jsonref.io/jsonref/util/log"

	"github.com/google/subcommands"
)

type cmd struct {
	cmdutil.Info

	casesPath string
	candidate string
	ref       string
	filter    flagutil.StringSet
	parallel  int
	diff      bool
}

// New returns an implementation of the "run" subcommand.
func New() subcommands.Command {
	const usage = `Usage: run --cases <file> --candidate <command> [--ref <command>]

Execute every case in the case file against the candidate writer command and
compare its output byte for byte with the reference output. The reference is
the built-in writer unless --ref names an external command.

External commands receive the case configuration as seven positional
arguments (indentation, precision, precisionType, emitUTF8, useSpecialFloats,
enableYAMLCompatibility, dropNullPlaceholders) and the document on stdin.`

	return &cmd{
		Info: cmdutil.NewInfo("run", "compare a candidate writer against the reference", usage),
	}
}

// SetFlags implements part of subcommands.Command.
func (c *cmd) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.casesPath, "cases", "", "Path of the case file (required)")
	fs.StringVar(&c.candidate, "candidate", "", "Candidate writer command (required)")
	fs.StringVar(&c.ref, "ref", "", "External reference command (default: the built-in writer)")
	fs.Var(&c.filter, "filter", "Comma-separated names of cases to run (default: all cases)")
	fs.IntVar(&c.parallel, "parallel", 1, "Number of cases to execute concurrently")
	fs.BoolVar(&c.diff, "diff", true, "Include a character-level diff for differing outputs")
}

// Execute implements part of subcommands.Command.
func (c *cmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if c.casesPath == "" {
		return c.Fail("required --cases flag not provided")
	} else if c.candidate == "" {
		return c.Fail("required --candidate flag not provided")
	}

	cs, err := cases.Load(c.casesPath)
	if err != nil {
		return c.Fail("loading cases: %v", err)
	}
	if c.filter.Len() != 0 {
		cs = filterCases(cs, c.filter)
	}

	cand, err := runner.ParseCommand(c.candidate)
	if err != nil {
		return c.Fail("invalid --candidate: %v", err)
	}
	var ref runner.Impl = runner.Builtin{}
	if c.ref != "" {
		rc, err := runner.ParseCommand(c.ref)
		if err != nil {
			return c.Fail("invalid --ref: %v", err)
		}
		ref = rc
	}

	results, err := runner.Run(ctx, cs, ref, cand, c.parallel)
	if err != nil {
		return c.Fail("executing cases: %v", err)
	}

	var failures int
	for _, r := range results {
		switch {
		case r.RefErr != nil:
			fmt.Printf("[ref ] FAIL %s: %v\n", r.Case.Name, r.RefErr)
			failures++
		case r.CandErr != nil:
			fmt.Printf("[cand] FAIL %s: %v\n", r.Case.Name, r.CandErr)
			failures++
		case !r.Ok():
			fmt.Printf("[diff] %s: outputs differ\n", r.Case.Name)
			fmt.Printf("--ref --\n%s\n", r.Ref)
			fmt.Printf("--cand--\n%s\n", r.Cand)
			if c.diff {
				fmt.Println(runner.Diff(r.Ref, r.Cand))
			}
			failures++
		default:
			fmt.Printf("[ok  ] %s\n", r.Case.Name)
		}
	}
	if failures != 0 {
		log.Errorf("%d of %d cases failed", failures, len(results))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// filterCases returns the cases whose names are in keep, preserving the
// case-file order.
func filterCases(cs []*cases.Case, keep flagutil.StringSet) []*cases.Case {
	var out []*cases.Case
	for _, c := range cs {
		if keep.Contains(c.Name) {
			out = append(out, c)
		}
	}
	return out
}
