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

// Package runner executes conformance cases against a reference and a
// candidate writer implementation and compares their outputs byte for byte.
package runner // import "jsonref.io/jsonref/tools/conformance/runner"

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"jsonref.io/jsonref/reader"
	"jsonref.io/jsonref/tools/conformance/cases"
	"jsonref.io/jsonref/writer"

	"bitbucket.org/creachadair/shell"
	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// An Impl produces the styled serialization of a single case's document.
type Impl interface {
	// Format serializes the case document with the case configuration.
	Format(ctx context.Context, c *cases.Case) ([]byte, error)
}

// Builtin is the in-process reference implementation backed by the reader
// and writer packages.
type Builtin struct{}

// Format implements part of the Impl interface.
func (Builtin) Format(_ context.Context, c *cases.Case) ([]byte, error) {
	opts, err := c.Config.Options()
	if err != nil {
		return nil, err
	}
	root, err := reader.Parse(c.JSON)
	if err != nil {
		return nil, err
	}
	return writer.Marshal(root, opts), nil
}

// A Command is an external writer implementation. Each case's configuration
// is appended to the command line as the seven positional arguments and the
// document is fed on stdin; stdout is taken verbatim as the output.
type Command struct {
	path string
	args []string
}

// ParseCommand splits a shell-quoted command line into a Command.
func ParseCommand(cmdline string) (*Command, error) {
	args, ok := shell.Split(cmdline)
	if !ok {
		return nil, fmt.Errorf("invalid shell quoting in %#q", cmdline)
	} else if len(args) == 0 {
		return nil, errors.New("empty command")
	}
	return &Command{path: args[0], args: args[1:]}, nil
}

// Format implements part of the Impl interface.
func (r *Command) Format(ctx context.Context, c *cases.Case) ([]byte, error) {
	args := append(append([]string(nil), r.args...), c.Config.Args()...)
	cmd := exec.CommandContext(ctx, r.path, args...)
	cmd.Stdin = bytes.NewReader(c.JSON)
	out, err := cmd.Output()
	if err != nil {
		if exit, ok := err.(*exec.ExitError); ok && len(exit.Stderr) > 0 {
			return nil, fmt.Errorf("%v (%s)", exit, strings.TrimSpace(string(exit.Stderr)))
		}
		return nil, errors.WithMessage(err, "running "+r.path)
	}
	return out, nil
}

// A Result records the outcome of one case. The candidate is only run when
// the reference succeeds.
type Result struct {
	Case *cases.Case

	Ref, Cand       []byte
	RefErr, CandErr error
}

// Ok reports whether both implementations succeeded and produced identical
// bytes.
func (r *Result) Ok() bool {
	return r.RefErr == nil && r.CandErr == nil && bytes.Equal(r.Ref, r.Cand)
}

// Run executes each case against the ref and cand implementations and
// returns one result per case, in case-file order. parallel bounds the
// number of concurrently executing cases; values below 1 run serially.
func Run(ctx context.Context, cs []*cases.Case, ref, cand Impl, parallel int) ([]*Result, error) {
	if parallel < 1 {
		parallel = 1
	}
	results := make([]*Result, len(cs))
	sem := semaphore.NewWeighted(int64(parallel))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range cs {
		i, c := i, c
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			r := &Result{Case: c}
			r.Ref, r.RefErr = ref.Format(ctx, c)
			if r.RefErr == nil {
				r.Cand, r.CandErr = cand.Format(ctx, c)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Diff renders a character-level diff between the reference and candidate
// outputs: spans present only in the reference are prefixed with "-", spans
// only in the candidate with "+".
func Diff(ref, cand []byte) (s string) {
	defer func() {
		// dmp may panic on some large requests; fall back to no diff
		if r := recover(); r != nil {
			s = fmt.Sprintf("(diff unavailable: %v)", r)
		}
	}()
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupEfficiency(dmp.DiffMain(string(ref), string(cand), false))
	var buf strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&buf, "-%q\n", d.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&buf, "+%q\n", d.Text)
		}
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
