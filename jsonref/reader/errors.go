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

package reader

import (
	"fmt"
	"strings"
)

// A SyntaxError describes one failure recorded while parsing a document.
// Line and Column are 1-based and locate the start of the offending token.
// When a leading byte order mark was skipped, positions are relative to the
// byte after it.
type SyntaxError struct {
	Line, Column int
	Message      string

	// ExtraLine and ExtraColumn point at detail inside the token, such as the
	// bad character of an escape sequence. They are set only when HasExtra.
	ExtraLine, ExtraColumn int
	HasExtra               bool
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Line %d, Column %d: %s", e.Line, e.Column, e.Message)
}

// A ParseError collects every SyntaxError recorded during a failed parse, in
// the order the parser hit them.
type ParseError struct {
	Errors []*SyntaxError
}

// Error formats the collected errors as a block, one asterisk-led location
// line and one indented message per error:
//
//	* Line 1, Column 6
//	  Syntax error: value, object or array expected.
func (e *ParseError) Error() string {
	var sb strings.Builder
	for _, err := range e.Errors {
		fmt.Fprintf(&sb, "* Line %d, Column %d\n", err.Line, err.Column)
		fmt.Fprintf(&sb, "  %s\n", err.Message)
		if err.HasExtra {
			fmt.Fprintf(&sb, "See Line %d, Column %d for detail.\n", err.ExtraLine, err.ExtraColumn)
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
