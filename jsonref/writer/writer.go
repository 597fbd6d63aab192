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

// Package writer serializes ast.Values in the styled, human-oriented format:
// object members sorted and indented one per line, arrays one element per
// line unless short enough for a single line, and comments re-emitted where
// the reader collected them. For a fixed Options the output is a pure
// function of the value, byte for byte.
package writer // import "jsonref.io/jsonref/writer"

import (
	"fmt"
	"io"
	"strconv"

	"jsonref.io/jsonref/ast"
)

// maxPrecision is the number of significant digits needed to round-trip any
// float64; requests beyond it are clamped.
const maxPrecision = 17

// rightMargin bounds the rendered width of a single-line array.
const rightMargin = 74

// PrecisionType selects how Options.Precision is interpreted when formatting
// real numbers.
type PrecisionType int

const (
	// SignificantDigits formats reals with Precision significant digits.
	SignificantDigits PrecisionType = iota
	// DecimalPlaces formats reals with Precision digits after the decimal
	// point and then strips redundant trailing zeros.
	DecimalPlaces
)

// String returns the configuration name of the precision type.
func (t PrecisionType) String() string {
	if t == DecimalPlaces {
		return "decimal"
	}
	return "significant"
}

// ParsePrecisionType maps the configuration names "significant" and
// "decimal" onto the corresponding PrecisionType.
func ParsePrecisionType(s string) (PrecisionType, error) {
	switch s {
	case "significant":
		return SignificantDigits, nil
	case "decimal":
		return DecimalPlaces, nil
	}
	return 0, fmt.Errorf("precisionType must be 'significant' or 'decimal', not '%s'", s)
}

// CommentStyle selects whether comments attached to values are emitted.
type CommentStyle int

const (
	// CommentAll emits every attached comment.
	CommentAll CommentStyle = iota
	// CommentNone drops comments; short arrays may then render on one line.
	CommentNone
)

// String returns the configuration name of the comment style.
func (c CommentStyle) String() string {
	if c == CommentNone {
		return "None"
	}
	return "All"
}

// ParseCommentStyle maps the configuration names "All" and "None" onto the
// corresponding CommentStyle.
func ParseCommentStyle(s string) (CommentStyle, error) {
	switch s {
	case "All":
		return CommentAll, nil
	case "None":
		return CommentNone, nil
	}
	return 0, fmt.Errorf("commentStyle must be 'All' or 'None', not '%s'", s)
}

// Options configure a Writer. The zero Options produce compact output with
// zero-digit precision; DefaultOptions returns the usual styled defaults.
type Options struct {
	// Indentation is written once per nesting level. When empty, the writer
	// emits no newlines at all and shortens the member separator to ":".
	Indentation string

	// Precision is the real-number precision, at most 17.
	Precision uint

	// PrecisionType interprets Precision as significant digits or decimal
	// places.
	PrecisionType PrecisionType

	// EmitUTF8 passes non-ASCII string bytes through verbatim instead of
	// escaping them as \uXXXX sequences.
	EmitUTF8 bool

	// UseSpecialFloats writes NaN, Infinity, and -Infinity for non-finite
	// reals instead of null, 1e+9999, and -1e+9999.
	UseSpecialFloats bool

	// EnableYAMLCompatibility shortens the member separator from " : " to
	// ": ", making indented output a YAML subset.
	EnableYAMLCompatibility bool

	// DropNullPlaceholders writes nothing where a null would appear.
	DropNullPlaceholders bool

	// CommentStyle selects whether comments are emitted.
	CommentStyle CommentStyle
}

// DefaultOptions returns the standard styled configuration: tab indentation,
// 17 significant digits, comments emitted, and no YAML or placeholder
// adjustments.
func DefaultOptions() Options {
	return Options{Indentation: "\t", Precision: maxPrecision}
}

// A Writer serializes values with a fixed set of options. It is safe for
// concurrent use.
type Writer struct {
	indentation      string
	cs               CommentStyle
	colon            string
	null             string
	emitUTF8         bool
	useSpecialFloats bool
	precision        uint
	precisionType    PrecisionType
}

// New returns a Writer for the given options.
func New(opts Options) *Writer {
	colon := " : "
	if opts.EnableYAMLCompatibility {
		colon = ": "
	} else if opts.Indentation == "" {
		colon = ":"
	}
	null := "null"
	if opts.DropNullPlaceholders {
		null = ""
	}
	precision := opts.Precision
	if precision > maxPrecision {
		precision = maxPrecision
	}
	return &Writer{
		indentation:      opts.Indentation,
		cs:               opts.CommentStyle,
		colon:            colon,
		null:             null,
		emitUTF8:         opts.EmitUTF8,
		useSpecialFloats: opts.UseSpecialFloats,
		precision:        precision,
		precisionType:    opts.PrecisionType,
	}
}

// Append appends the serialization of v to dst and returns the extended
// buffer. The output carries no trailing newline.
func (w *Writer) Append(dst []byte, v *ast.Value) []byte {
	p := &printer{Writer: w, buf: dst, indented: true}
	p.writeCommentBefore(v)
	if !p.indented {
		p.writeIndent()
	}
	p.indented = true
	p.writeValue(v)
	p.writeCommentAfterOnSameLine(v)
	return p.buf
}

// Write writes the serialization of v to out.
func (w *Writer) Write(out io.Writer, v *ast.Value) error {
	_, err := out.Write(w.Append(nil, v))
	return err
}

// Marshal returns the serialization of v under opts.
func Marshal(v *ast.Value, opts Options) []byte {
	return New(opts).Append(nil, v)
}

// printer holds the mutable state of one serialization pass.
type printer struct {
	*Writer
	buf      []byte
	prefix   []byte // current indentation
	indented bool   // suppresses the next writeIndent

	// During the single-line probe of an array, rendered elements are
	// diverted into childValues instead of buf.
	childValues    []string
	addChildValues bool
}

func (p *printer) writeValue(v *ast.Value) {
	switch v.Kind() {
	case ast.Null:
		p.pushValue(p.null)
	case ast.Int:
		p.pushValue(strconv.FormatInt(v.Int(), 10))
	case ast.Uint:
		p.pushValue(strconv.FormatUint(v.Uint(), 10))
	case ast.Real:
		p.pushValue(FormatReal(v.Real(), p.useSpecialFloats, p.precision, p.precisionType))
	case ast.String:
		p.pushValue(quoteString(v.Str(), p.emitUTF8))
	case ast.Boolean:
		p.pushValue(strconv.FormatBool(v.Bool()))
	case ast.Array:
		p.writeArray(v)
	case ast.Object:
		names := v.MemberNames()
		if len(names) == 0 {
			p.pushValue("{}")
			return
		}
		p.writeWithIndent("{")
		p.indent()
		for i, name := range names {
			member := v.Member(name)
			p.writeCommentBefore(member)
			p.writeWithIndent(quoteString(name, p.emitUTF8))
			p.buf = append(p.buf, p.colon...)
			p.writeValue(member)
			if i+1 < len(names) {
				p.buf = append(p.buf, ',')
			}
			p.writeCommentAfterOnSameLine(member)
		}
		p.unindent()
		p.writeWithIndent("}")
	}
}

func (p *printer) writeArray(v *ast.Value) {
	size := v.Len()
	if size == 0 {
		p.pushValue("[]")
		return
	}
	if p.cs == CommentAll || p.isMultilineArray(v) {
		p.writeWithIndent("[")
		p.indent()
		hasChildValues := len(p.childValues) > 0
		for i := 0; i < size; i++ {
			elem := v.Index(i)
			p.writeCommentBefore(elem)
			if hasChildValues {
				p.writeWithIndent(p.childValues[i])
			} else {
				if !p.indented {
					p.writeIndent()
				}
				p.indented = true
				p.writeValue(elem)
				p.indented = false
			}
			if i+1 < size {
				p.buf = append(p.buf, ',')
			}
			p.writeCommentAfterOnSameLine(elem)
		}
		p.unindent()
		p.writeWithIndent("]")
	} else {
		// The probe rendered every element into childValues.
		p.buf = append(p.buf, '[')
		if p.indentation != "" {
			p.buf = append(p.buf, ' ')
		}
		for i, elem := range p.childValues {
			if i > 0 {
				if p.indentation != "" {
					p.buf = append(p.buf, ", "...)
				} else {
					p.buf = append(p.buf, ',')
				}
			}
			p.buf = append(p.buf, elem...)
		}
		if p.indentation != "" {
			p.buf = append(p.buf, ' ')
		}
		p.buf = append(p.buf, ']')
	}
}

// isMultilineArray decides whether a non-empty array needs one line per
// element. Arrays with container elements, comments, or too much rendered
// width are multi-line. As a side effect the probe leaves the rendered
// elements in childValues for the single-line form to reuse.
func (p *printer) isMultilineArray(v *ast.Value) bool {
	size := v.Len()
	multiline := size*3 >= rightMargin
	p.childValues = p.childValues[:0]
	for i := 0; i < size && !multiline; i++ {
		elem := v.Index(i)
		multiline = (elem.IsArray() || elem.IsObject()) && !elem.Empty()
	}
	if !multiline {
		p.addChildValues = true
		lineLength := 4 + (size-1)*2 // '[ ' + ', '*n + ' ]'
		for i := 0; i < size; i++ {
			elem := v.Index(i)
			if hasAnyComment(elem) {
				multiline = true
			}
			p.writeValue(elem)
			lineLength += len(p.childValues[i])
		}
		p.addChildValues = false
		multiline = multiline || lineLength >= rightMargin
	}
	return multiline
}

// pushValue appends a rendered scalar either to the output or, during an
// array probe, to childValues.
func (p *printer) pushValue(s string) {
	if p.addChildValues {
		p.childValues = append(p.childValues, s)
	} else {
		p.buf = append(p.buf, s...)
	}
}

func (p *printer) writeIndent() {
	if p.indentation != "" {
		p.buf = append(p.buf, '\n')
		p.buf = append(p.buf, p.prefix...)
	}
}

func (p *printer) writeWithIndent(s string) {
	if !p.indented {
		p.writeIndent()
	}
	p.buf = append(p.buf, s...)
	p.indented = false
}

func (p *printer) indent() { p.prefix = append(p.prefix, p.indentation...) }

func (p *printer) unindent() { p.prefix = p.prefix[:len(p.prefix)-len(p.indentation)] }

func (p *printer) writeCommentBefore(v *ast.Value) {
	if p.cs == CommentNone || !v.HasComment(ast.CommentBefore) {
		return
	}
	if !p.indented {
		p.writeIndent()
	}
	comment := v.Comment(ast.CommentBefore)
	for i := 0; i < len(comment); i++ {
		p.buf = append(p.buf, comment[i])
		if comment[i] == '\n' && i+1 < len(comment) && comment[i+1] == '/' {
			p.buf = append(p.buf, p.prefix...)
		}
	}
	p.indented = false
}

func (p *printer) writeCommentAfterOnSameLine(v *ast.Value) {
	if p.cs == CommentNone {
		return
	}
	if v.HasComment(ast.CommentAfterOnSameLine) {
		p.buf = append(p.buf, ' ')
		p.buf = append(p.buf, v.Comment(ast.CommentAfterOnSameLine)...)
	}
	if v.HasComment(ast.CommentAfter) {
		p.writeIndent()
		p.buf = append(p.buf, v.Comment(ast.CommentAfter)...)
	}
}

func hasAnyComment(v *ast.Value) bool {
	return v.HasComment(ast.CommentBefore) ||
		v.HasComment(ast.CommentAfterOnSameLine) ||
		v.HasComment(ast.CommentAfter)
}
