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

// Package ast defines the JSON value tree produced by the reader and consumed
// by the writer. Values carry the comments collected during parsing so that a
// document can be re-serialized with its comments intact.
package ast // import "jsonref.io/jsonref/ast"

import (
	"sort"
	"strings"
)

// Kind identifies the dynamic type of a Value.
type Kind int

// The possible kinds of a Value. Integers keep their signedness: a
// non-negative number is Int when its magnitude fits in an int64 and Uint
// otherwise.
const (
	Null Kind = iota
	Int
	Uint
	Real
	String
	Boolean
	Array
	Object
)

var kindNames = [...]string{"null", "int", "uint", "real", "string", "boolean", "array", "object"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// CommentPlacement locates a comment relative to the value that carries it.
type CommentPlacement int

const (
	// CommentBefore is a comment on the line(s) preceding the value.
	CommentBefore CommentPlacement = iota
	// CommentAfterOnSameLine is a comment at the end of the value's line.
	CommentAfterOnSameLine
	// CommentAfter is a comment on the line(s) following the value; only the
	// root of a document carries one.
	CommentAfter

	numPlacements
)

// Value is a single node of a JSON document. The zero Value is null, as is a
// nil *Value received by any method.
type Value struct {
	kind Kind

	b bool
	i int64
	u uint64
	f float64
	s string

	elems   []*Value
	members map[string]*Value

	comments [numPlacements]string
}

// NewNull returns a null value.
func NewNull() *Value { return &Value{} }

// NewBool returns a boolean value.
func NewBool(b bool) *Value { return &Value{kind: Boolean, b: b} }

// NewInt returns a signed integer value.
func NewInt(i int64) *Value { return &Value{kind: Int, i: i} }

// NewUint returns an unsigned integer value.
func NewUint(u uint64) *Value { return &Value{kind: Uint, u: u} }

// NewReal returns a floating-point value.
func NewReal(f float64) *Value { return &Value{kind: Real, f: f} }

// NewString returns a string value. The string is a byte sequence; it need
// not be valid UTF-8.
func NewString(s string) *Value { return &Value{kind: String, s: s} }

// NewArray returns an empty array value.
func NewArray() *Value { return &Value{kind: Array} }

// NewObject returns an empty object value.
func NewObject() *Value { return &Value{kind: Object} }

// Kind reports the value's dynamic type.
func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

// IsNull reports whether the value is null.
func (v *Value) IsNull() bool { return v.Kind() == Null }

// IsBool reports whether the value is a boolean.
func (v *Value) IsBool() bool { return v.Kind() == Boolean }

// IsInt reports whether the value is a signed integer.
func (v *Value) IsInt() bool { return v.Kind() == Int }

// IsUint reports whether the value is an unsigned integer.
func (v *Value) IsUint() bool { return v.Kind() == Uint }

// IsReal reports whether the value is a floating-point number.
func (v *Value) IsReal() bool { return v.Kind() == Real }

// IsString reports whether the value is a string.
func (v *Value) IsString() bool { return v.Kind() == String }

// IsArray reports whether the value is an array.
func (v *Value) IsArray() bool { return v.Kind() == Array }

// IsObject reports whether the value is an object.
func (v *Value) IsObject() bool { return v.Kind() == Object }

// Bool returns the boolean payload; it is false unless Kind is Boolean.
func (v *Value) Bool() bool {
	if v == nil {
		return false
	}
	return v.b
}

// Int returns the integer payload; it is zero unless Kind is Int.
func (v *Value) Int() int64 {
	if v == nil {
		return 0
	}
	return v.i
}

// Uint returns the unsigned integer payload; it is zero unless Kind is Uint.
func (v *Value) Uint() uint64 {
	if v == nil {
		return 0
	}
	return v.u
}

// Real returns the floating-point payload; it is zero unless Kind is Real.
func (v *Value) Real() float64 {
	if v == nil {
		return 0
	}
	return v.f
}

// Str returns the string payload; it is empty unless Kind is String.
func (v *Value) Str() string {
	if v == nil {
		return ""
	}
	return v.s
}

// Len returns the number of elements of an array or members of an object,
// and zero for every other kind.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	if v.kind == Object {
		return len(v.members)
	}
	return len(v.elems)
}

// Empty reports whether the value is null or a container with no contents.
// Scalars are never empty.
func (v *Value) Empty() bool {
	switch v.Kind() {
	case Null, Array, Object:
		return v.Len() == 0
	}
	return false
}

// Index returns the i'th element of an array, or nil when out of range.
func (v *Value) Index(i int) *Value {
	if v == nil || i < 0 || i >= len(v.elems) {
		return nil
	}
	return v.elems[i]
}

// Append adds an element to the end of an array. A null value becomes an
// array first; appending to any other kind panics.
func (v *Value) Append(elem *Value) {
	if v.kind == Null {
		v.kind = Array
	} else if v.kind != Array {
		panic("ast: Append on " + v.kind.String() + " value")
	}
	v.elems = append(v.elems, elem)
}

// Member returns the named member of an object, or nil when absent.
func (v *Value) Member(name string) *Value {
	if v == nil {
		return nil
	}
	return v.members[name]
}

// HasMember reports whether an object has the named member.
func (v *Value) HasMember(name string) bool {
	if v == nil {
		return false
	}
	_, ok := v.members[name]
	return ok
}

// SetMember sets the named member of an object, replacing any existing
// value. A null value becomes an object first; setting a member on any other
// kind panics.
func (v *Value) SetMember(name string, member *Value) {
	if v.kind == Null {
		v.kind = Object
	} else if v.kind != Object {
		panic("ast: SetMember on " + v.kind.String() + " value")
	}
	if v.members == nil {
		v.members = make(map[string]*Value)
	}
	v.members[name] = member
}

// MemberNames returns an object's member names in byte-lexicographic order,
// the order in which the writer emits them.
func (v *Value) MemberNames() []string {
	if v == nil || len(v.members) == 0 {
		return nil
	}
	names := make([]string, 0, len(v.members))
	for name := range v.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetComment attaches comment text at the given placement, replacing any
// previous comment there. A single trailing newline is dropped; the
// remaining text is emitted verbatim by the writer and must begin with
// "//" or "/*", or SetComment panics.
func (v *Value) SetComment(placement CommentPlacement, comment string) {
	if placement < 0 || placement >= numPlacements {
		return
	}
	comment = strings.TrimSuffix(comment, "\n")
	if comment != "" && comment[0] != '/' {
		panic("ast: comment must start with '/'")
	}
	v.comments[placement] = comment
}

// Comment returns the comment text at the given placement, or "".
func (v *Value) Comment(placement CommentPlacement) string {
	if v == nil || placement < 0 || placement >= numPlacements {
		return ""
	}
	return v.comments[placement]
}

// HasComment reports whether a comment is attached at the given placement.
func (v *Value) HasComment(placement CommentPlacement) bool {
	return v.Comment(placement) != ""
}

// Equal reports whether two values have the same kind and payload. Comments
// do not participate: values differing only in comments are equal. An Int
// never equals a Uint, and a Real holding NaN equals nothing.
func (v *Value) Equal(o *Value) bool {
	if v.Kind() != o.Kind() {
		return false
	}
	switch v.Kind() {
	case Null:
		return true
	case Int:
		return v.i == o.i
	case Uint:
		return v.u == o.u
	case Real:
		return v.f == o.f
	case String:
		return v.s == o.s
	case Boolean:
		return v.b == o.b
	case Array:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i, elem := range v.elems {
			if !elem.Equal(o.elems[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.members) != len(o.members) {
			return false
		}
		for name, member := range v.members {
			om, ok := o.members[name]
			if !ok || !member.Equal(om) {
				return false
			}
		}
		return true
	}
	return false
}
