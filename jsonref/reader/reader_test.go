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
	"math"
	"testing"

	"jsonref.io/jsonref/ast"
	"jsonref.io/jsonref/writer"
)

func mustParse(t *testing.T, features Features, doc string) *ast.Value {
	t.Helper()
	v, err := New(features).Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse(%#q): unexpected error: %v", doc, err)
	}
	return v
}

func TestParseIntegers(t *testing.T) {
	tests := []struct {
		doc  string
		want int64
	}{
		{"0", 0},
		{"-0", 0},
		{"01", 1}, // leading zeros are tolerated
		{"42", 42},
		{"-7", -7},
		{"-", 0}, // a bare sign decodes as zero
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
	}
	for _, test := range tests {
		v := mustParse(t, Default(), test.doc)
		if !v.IsInt() {
			t.Errorf("Parse(%#q): expected an Int; found %v", test.doc, v.Kind())
		} else if v.Int() != test.want {
			t.Errorf("Parse(%#q): expected %d; found %d", test.doc, test.want, v.Int())
		}
	}
}

func TestParseUints(t *testing.T) {
	tests := []struct {
		doc  string
		want uint64
	}{
		{"9223372036854775808", uint64(math.MaxInt64) + 1},
		{"18446744073709551615", math.MaxUint64},
	}
	for _, test := range tests {
		v := mustParse(t, Default(), test.doc)
		if !v.IsUint() {
			t.Errorf("Parse(%#q): expected a Uint; found %v", test.doc, v.Kind())
		} else if v.Uint() != test.want {
			t.Errorf("Parse(%#q): expected %d; found %d", test.doc, test.want, v.Uint())
		}
	}
}

func TestParseReals(t *testing.T) {
	tests := []struct {
		doc  string
		want float64
	}{
		{"1.5", 1.5},
		{"-2.25", -2.25},
		{"1.", 1},
		{"+5", 5}, // a leading plus falls through to the double decoder
		{"2e3", 2000},
		{"0.1", 0.1},
		{"18446744073709551616", 1.8446744073709552e19},
		{"-9223372036854775809", -9.223372036854776e18},
		{"1e999", math.Inf(1)},
		{"-1e999", math.Inf(-1)},
		{"1e-999", 0},
	}
	for _, test := range tests {
		v := mustParse(t, Default(), test.doc)
		if !v.IsReal() {
			t.Errorf("Parse(%#q): expected a Real; found %v", test.doc, v.Kind())
		} else if v.Real() != test.want {
			t.Errorf("Parse(%#q): expected %v; found %v", test.doc, test.want, v.Real())
		}
	}
}

func TestParseKeywords(t *testing.T) {
	if v := mustParse(t, Default(), "null"); !v.IsNull() {
		t.Errorf("Parse(null): expected a Null; found %v", v.Kind())
	}
	if v := mustParse(t, Default(), "true"); !v.IsBool() || !v.Bool() {
		t.Errorf("Parse(true): found %v", v)
	}
	if v := mustParse(t, Default(), "false"); !v.IsBool() || v.Bool() {
		t.Errorf("Parse(false): found %v", v)
	}
}

func TestParseStrings(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{`""`, ""},
		{`"abc"`, "abc"},
		{`"a\"b\\c\/d"`, "a\"b\\c/d"},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t"},
		{`"a\u0041b"`, "aAb"},
		{`"\u0000"`, "\x00"},
		{`"\u4f60\u597d"`, "\u4f60\u597d"},
		{`"\ud83d\ude00"`, "\U0001f600"},

		// An unpaired lead surrogate merges with whatever escape follows;
		// the trail's range is never checked.
		{`"\ud801\u0041"`, "\U00010441"},

		// Raw bytes pass through without UTF-8 validation.
		{"\"\x01\xff\"", "\x01\xff"},
	}
	for _, test := range tests {
		v := mustParse(t, Default(), test.doc)
		if !v.IsString() {
			t.Errorf("Parse(%#q): expected a String; found %v", test.doc, v.Kind())
		} else if v.Str() != test.want {
			t.Errorf("Parse(%#q): expected %q; found %q", test.doc, test.want, v.Str())
		}
	}
}

func TestParseContainers(t *testing.T) {
	if v := mustParse(t, Default(), "[]"); !v.IsArray() || v.Len() != 0 {
		t.Errorf("Parse([]): found %v with %d elements", v.Kind(), v.Len())
	}
	if v := mustParse(t, Default(), "{}"); !v.IsObject() || v.Len() != 0 {
		t.Errorf("Parse({}): found %v with %d members", v.Kind(), v.Len())
	}

	v := mustParse(t, Default(), `[1, "two", [true]]`)
	if v.Len() != 3 {
		t.Fatalf("expected 3 elements; found %d", v.Len())
	}
	if e := v.Index(0); !e.IsInt() || e.Int() != 1 {
		t.Errorf("element 0: found %v", e)
	}
	if e := v.Index(1); !e.IsString() || e.Str() != "two" {
		t.Errorf("element 1: found %v", e)
	}
	if e := v.Index(2); !e.IsArray() || e.Len() != 1 || !e.Index(0).Bool() {
		t.Errorf("element 2: found %v", e)
	}

	o := mustParse(t, Default(), `{"a": 1, "b": {"c": []}}`)
	if o.Len() != 2 {
		t.Fatalf("expected 2 members; found %d", o.Len())
	}
	if m := o.Member("a"); !m.IsInt() || m.Int() != 1 {
		t.Errorf("member a: found %v", m)
	}
	if m := o.Member("b").Member("c"); !m.IsArray() || m.Len() != 0 {
		t.Errorf("member b.c: found %v", m)
	}
}

func TestParseDuplicateKeysLastWins(t *testing.T) {
	v := mustParse(t, Default(), `{"a": 1, "a": 2}`)
	if v.Len() != 1 {
		t.Fatalf("expected 1 member; found %d", v.Len())
	}
	if got := v.Member("a").Int(); got != 2 {
		t.Errorf("member a: expected 2; found %d", got)
	}
}

func TestParseMemberOrder(t *testing.T) {
	v := mustParse(t, Default(), `{"b": 1, "a": 2, "10": 3}`)
	want := []string{"10", "a", "b"}
	got := v.MemberNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d names; found %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("name %d: expected %q; found %q", i, name, got[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{``, "* Line 1, Column 1\n  Syntax error: value, object or array expected."},
		{" \n ", "* Line 2, Column 2\n  Syntax error: value, object or array expected."},
		{`tru`, "* Line 1, Column 1\n  Syntax error: value, object or array expected."},
		{`"abc`, "* Line 1, Column 1\n  Syntax error: value, object or array expected."},
		{`-Infinity`, "* Line 1, Column 1\n  Syntax error: value, object or array expected."},
		{`{"a":}`, "* Line 1, Column 6\n  Syntax error: value, object or array expected."},
		{`[1,]`, "* Line 1, Column 4\n  Syntax error: value, object or array expected."},
		{`{`, "* Line 1, Column 2\n  Missing '}' or object member name"},
		{`{"a":1,}`, "* Line 1, Column 8\n  Missing '}' or object member name"},
		{`{"a" 1}`, "* Line 1, Column 6\n  Missing ':' after object member name"},
		{`{"a":1 "b":2}`, "* Line 1, Column 8\n  Missing ',' or '}' in object declaration"},
		{`[1,2`, "* Line 1, Column 5\n  Missing ',' or ']' in array declaration"},
		{`[1 2]`, "* Line 1, Column 4\n  Missing ',' or ']' in array declaration"},
		{`1e+`, "* Line 1, Column 1\n  '1e+' is not a number."},
		{`"a\qb"`, "* Line 1, Column 1\n  Bad escape sequence in string\nSee Line 1, Column 5 for detail."},
		{`"\u12"`, "* Line 1, Column 1\n  Bad unicode escape sequence in string: four digits expected.\nSee Line 1, Column 4 for detail."},
		{`"\uzzzz"`, "* Line 1, Column 1\n  Bad unicode escape sequence in string: hexadecimal digit expected.\nSee Line 1, Column 5 for detail."},
		{`"\ud801"`, "* Line 1, Column 1\n  additional six characters expected to parse unicode surrogate pair.\nSee Line 1, Column 8 for detail."},
		{`"\ud801x12345"`, "* Line 1, Column 1\n  expecting another \\u token to begin the second half of a unicode surrogate pair\nSee Line 1, Column 9 for detail."},
	}
	for _, test := range tests {
		_, err := Parse([]byte(test.doc))
		if err == nil {
			t.Errorf("Parse(%#q): expected an error; found none", test.doc)
		} else if err.Error() != test.want {
			t.Errorf("Parse(%#q):\nexpected %q\nfound    %q", test.doc, test.want, err.Error())
		}
	}
}

func TestParseErrorDetails(t *testing.T) {
	_, err := Parse([]byte(`{"a":}`))
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected a *ParseError; found %T", err)
	}
	if len(pe.Errors) != 1 {
		t.Fatalf("expected 1 error; found %d", len(pe.Errors))
	}
	se := pe.Errors[0]
	if se.Line != 1 || se.Column != 6 {
		t.Errorf("expected position 1:6; found %d:%d", se.Line, se.Column)
	}
	if want := "Line 1, Column 6: Syntax error: value, object or array expected."; se.Error() != want {
		t.Errorf("expected %q; found %q", want, se.Error())
	}
}

func TestFeatureStackLimit(t *testing.T) {
	f := Default()
	f.StackLimit = 3
	r := New(f)

	if _, err := r.Parse([]byte("[[1]]")); err != nil {
		t.Errorf("Parse([[1]]): unexpected error: %v", err)
	}
	_, err := r.Parse([]byte("[[[1]]]"))
	if err == nil {
		t.Fatal("Parse([[[1]]]): expected an error; found none")
	}
	if want := "* Line 1, Column 4\n  Exceeded stackLimit in readValue()."; err.Error() != want {
		t.Errorf("expected %q; found %q", want, err.Error())
	}
}

func TestFeatureTrailingCommas(t *testing.T) {
	f := Default()
	f.AllowTrailingCommas = true

	v := mustParse(t, f, "[1, 2,]")
	if v.Len() != 2 {
		t.Errorf("expected 2 elements; found %d", v.Len())
	}
	o := mustParse(t, f, `{"a": 1,}`)
	if o.Len() != 1 || o.Member("a").Int() != 1 {
		t.Errorf("found %v", o)
	}
}

func TestFeatureDroppedPlaceholders(t *testing.T) {
	f := Default()
	f.AllowDroppedNullPlaceholders = true

	compact := writer.DefaultOptions()
	compact.Indentation = ""

	tests := []struct {
		doc, want string
	}{
		{"[1,,2]", "[1,null,2]"},
		{"[1,]", "[1,null]"},
		{"[,1]", "[null,1]"},
		{`{"a":,"b":1}`, `{"a":null,"b":1}`},
	}
	for _, test := range tests {
		v := mustParse(t, f, test.doc)
		if got := string(writer.Marshal(v, compact)); got != test.want {
			t.Errorf("Parse(%#q): expected %s; found %s", test.doc, test.want, got)
		}
	}
}

func TestFeatureSingleQuotes(t *testing.T) {
	f := Default()
	f.AllowSingleQuotes = true

	v := mustParse(t, f, `{'a': 'b c'}`)
	if got := v.Member("a").Str(); got != "b c" {
		t.Errorf("member a: expected %q; found %q", "b c", got)
	}

	if _, err := Parse([]byte(`'a'`)); err == nil {
		t.Error("Parse('a') without the feature: expected an error; found none")
	}
}

func TestFeatureNumericKeys(t *testing.T) {
	f := Default()
	f.AllowNumericKeys = true

	v := mustParse(t, f, `{1: "one", 2.5: "half"}`)
	if got := v.Member("1").Str(); got != "one" {
		t.Errorf(`member "1": expected %q; found %q`, "one", got)
	}
	if got := v.Member("2.5").Str(); got != "half" {
		t.Errorf(`member "2.5": expected %q; found %q`, "half", got)
	}

	if _, err := Parse([]byte(`{1: 2}`)); err == nil {
		t.Error("Parse({1: 2}) without the feature: expected an error; found none")
	}
}

func TestFeatureSpecialFloats(t *testing.T) {
	f := Default()
	f.AllowSpecialFloats = true

	v := mustParse(t, f, "[NaN, Infinity, -Infinity, +Infinity]")
	if e := v.Index(0); !math.IsNaN(e.Real()) {
		t.Errorf("element 0: expected NaN; found %v", e.Real())
	}
	if e := v.Index(1); !math.IsInf(e.Real(), 1) {
		t.Errorf("element 1: expected +Inf; found %v", e.Real())
	}
	if e := v.Index(2); !math.IsInf(e.Real(), -1) {
		t.Errorf("element 2: expected -Inf; found %v", e.Real())
	}
	if e := v.Index(3); !math.IsInf(e.Real(), 1) {
		t.Errorf("element 3: expected +Inf; found %v", e.Real())
	}

	if _, err := Parse([]byte("NaN")); err == nil {
		t.Error("Parse(NaN) without the feature: expected an error; found none")
	}
}

func TestFeatureFailIfExtra(t *testing.T) {
	// The default reader ignores trailing garbage.
	if v := mustParse(t, Default(), "1 2"); v.Int() != 1 {
		t.Errorf("expected 1; found %v", v)
	}

	f := Default()
	f.FailIfExtra = true
	r := New(f)

	_, err := r.Parse([]byte("1 2"))
	if err == nil {
		t.Fatal("expected an error; found none")
	}
	if want := "* Line 1, Column 3\n  Extra non-whitespace after JSON value."; err.Error() != want {
		t.Errorf("expected %q; found %q", want, err.Error())
	}

	// A trailing comment is not extra input.
	if _, err := r.Parse([]byte("1 // c")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFeatureStrictRoot(t *testing.T) {
	r := New(Strict())

	if _, err := r.Parse([]byte(`{"a": 5}`)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := r.Parse([]byte(`[5]`)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	_, err := r.Parse([]byte(`5`))
	if err == nil {
		t.Fatal("expected an error; found none")
	}
	want := "* Line 1, Column 1\n  A valid JSON document must be either an array or an object value."
	if err.Error() != want {
		t.Errorf("expected %q; found %q", want, err.Error())
	}
}

func TestFeatureRejectDupKeys(t *testing.T) {
	_, err := New(Strict()).Parse([]byte(`{"a":1,"a":2}`))
	if err == nil {
		t.Fatal("expected an error; found none")
	}
	if want := "* Line 1, Column 8\n  Duplicate key: 'a'"; err.Error() != want {
		t.Errorf("expected %q; found %q", want, err.Error())
	}
}

func TestStrictRejectsComments(t *testing.T) {
	r := New(Strict())

	_, err := r.Parse([]byte("// c\n[]"))
	if err == nil {
		t.Fatal("expected an error; found none")
	}
	if want := "* Line 1, Column 1\n  Syntax error: value, object or array expected."; err.Error() != want {
		t.Errorf("expected %q; found %q", want, err.Error())
	}

	_, err = r.Parse([]byte("[] // c"))
	if err == nil {
		t.Fatal("expected an error; found none")
	}
	if want := "* Line 1, Column 4\n  Extra non-whitespace after JSON value."; err.Error() != want {
		t.Errorf("expected %q; found %q", want, err.Error())
	}
}

func TestByteOrderMark(t *testing.T) {
	v := mustParse(t, Default(), "\ufeff{\"a\": 1}")
	if v.Member("a").Int() != 1 {
		t.Errorf("found %v", v)
	}

	// Error positions count from the byte after the mark.
	_, err := Parse([]byte("\ufeff{"))
	if err == nil {
		t.Fatal("expected an error; found none")
	}
	if want := "* Line 1, Column 2\n  Missing '}' or object member name"; err.Error() != want {
		t.Errorf("expected %q; found %q", want, err.Error())
	}

	f := Default()
	f.SkipBOM = false
	if _, err := New(f).Parse([]byte("\ufeff{}")); err == nil {
		t.Error("expected an error; found none")
	}
}

func TestCommentCollection(t *testing.T) {
	tests := []struct {
		doc       string
		placement ast.CommentPlacement
		want      string
	}{
		{"// lead\n1", ast.CommentBefore, "// lead"},
		{"// a\n// b\n1", ast.CommentBefore, "// a\n// b"},
		{"/* c */ 1", ast.CommentBefore, "/* c */"},
		{"1 // tail", ast.CommentAfterOnSameLine, "// tail"},
		{"1 /* tail */", ast.CommentAfterOnSameLine, "/* tail */"},
		{"1\n// after", ast.CommentAfter, "// after"},
	}
	for _, test := range tests {
		v := mustParse(t, Default(), test.doc)
		if got := v.Comment(test.placement); got != test.want {
			t.Errorf("Parse(%#q): expected comment %q; found %q", test.doc, test.want, got)
		}
	}

	// A comment inside a container attaches to the nearest value.
	v := mustParse(t, Default(), "{\"a\": 1 // x\n}")
	if got := v.Member("a").Comment(ast.CommentAfterOnSameLine); got != "// x" {
		t.Errorf("expected %q; found %q", "// x", got)
	}

	f := Default()
	f.CollectComments = false
	v = mustParse(t, f, "// lead\n1")
	if v.HasComment(ast.CommentBefore) {
		t.Errorf("unexpected comment %q", v.Comment(ast.CommentBefore))
	}
}

func TestCommentRoundTrip(t *testing.T) {
	docs := []string{
		"// lead\n1",
		"1 // tail",
		"1\n// after",
		"{\n\t// c\n\t\"a\" : 1\n}",
		"{\n\t\"a\" : 1, // x\n\t\"b\" : 2\n}",
		"[\n\t// e\n\t1,\n\t2\n]",
	}
	for _, doc := range docs {
		v := mustParse(t, Default(), doc)
		if got := string(writer.Marshal(v, writer.DefaultOptions())); got != doc {
			t.Errorf("round trip of %#q produced %#q", doc, got)
		}
	}
}

func TestReserializeStyled(t *testing.T) {
	tests := []struct {
		doc, want string
	}{
		{`{"b":1,"a":[1,2]}`, "{\n\t\"a\" : \n\t[\n\t\t1,\n\t\t2\n\t],\n\t\"b\" : 1\n}"},
		{`{"pi": 3.141592653589793}`, "{\n\t\"pi\" : 3.1415926535897931\n}"},
		{`1e5`, "100000.0"},
		{`[true, null, "s"]`, "[\n\ttrue,\n\tnull,\n\t\"s\"\n]"},
	}
	for _, test := range tests {
		v := mustParse(t, Default(), test.doc)
		if got := string(writer.Marshal(v, writer.DefaultOptions())); got != test.want {
			t.Errorf("Parse(%#q): expected %q; found %q", test.doc, test.want, got)
		}
	}
}

func TestReserializeWhitespaceIndependence(t *testing.T) {
	// Input whitespace between tokens never reaches the output.
	docs := []string{
		`{"a":1,"b":[true,null]}`,
		"{ \"a\" : 1 ,\n\t\"b\" : [ true , null ] }",
		"\n  {\"a\"\n:1,\"b\":[true,\nnull]}  \n",
	}
	var want string
	for i, doc := range docs {
		v := mustParse(t, Default(), doc)
		got := string(writer.Marshal(v, writer.DefaultOptions()))
		if i == 0 {
			want = got
			continue
		}
		if got != want {
			t.Errorf("Parse(%#q): expected %q; found %q", doc, want, got)
		}
	}
}

func TestRoundTripEquality(t *testing.T) {
	docs := []string{
		`{}`,
		`[]`,
		`[[""]]`,
		`{"a": [1, 2.5, "x", true, null], "b": {"c": 18446744073709551615}}`,
		`[-9223372036854775808, 0.1, "A\n"]`,
	}
	for _, doc := range docs {
		v := mustParse(t, Default(), doc)
		out := writer.Marshal(v, writer.DefaultOptions())
		again, err := New(Default()).Parse(out)
		if err != nil {
			t.Errorf("reparsing output of %#q: %v", doc, err)
			continue
		}
		if !v.Equal(again) {
			t.Errorf("Parse(%#q) round trip through %q is not equal", doc, out)
		}
	}
}

func TestReaderReuse(t *testing.T) {
	r := New(Default())
	if _, err := r.Parse([]byte(`{"a":`)); err == nil {
		t.Error("expected an error; found none")
	}
	// A failed parse leaves no state behind.
	if _, err := r.Parse([]byte(`{"a": 1}`)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
