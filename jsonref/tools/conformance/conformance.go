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

// Binary conformance checks writer implementations against the reference
// styled serialization, case by case.
//
// Examples:
//
//	# Compare a port against the built-in writer.
//	conformance run --cases cases.json --candidate ./other-writeref
//
//	# Inspect the expected outputs for two cases.
//	conformance view --cases cases.json smoke compact
package main

import (
	"context"
	"flag"
	"os"

	"jsonref.io/jsonref/tools/conformance/runcmd"
	"jsonref.io/jsonref/tools/conformance/viewcmd"

	"github.com/google/subcommands"
)

func init() {
	subcommands.Register(runcmd.New(), "")
	subcommands.Register(viewcmd.New(), "")
}

func main() {
	flag.Parse()
	ctx := context.Background()

	os.Exit(int(subcommands.Execute(ctx)))
}
