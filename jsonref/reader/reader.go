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

// Package reader parses JSON documents into ast.Values. The accepted dialect
// is configurable: the Default features additionally read and collect C and
// C++ style comments, while Strict accepts only canonical JSON with an
// object or array root.
//
// Numbers keep their shape: integers that fit in an int64 or uint64 stay
// integral, everything else becomes a float64. Strings are byte sequences;
// escape sequences are decoded but raw bytes are not validated as UTF-8.
package reader // import "jsonref.io/jsonref/reader"

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"jsonref.io/jsonref/ast"
	"jsonref.io/jsonref/writer"
)

// Features control the dialect accepted by a Reader.
type Features struct {
	// AllowComments accepts C and C++ style comments anywhere whitespace may
	// appear.
	AllowComments bool

	// CollectComments attaches parsed comments to the neighboring values so
	// the writer can re-emit them. It has no effect unless AllowComments is
	// also set.
	CollectComments bool

	// AllowTrailingCommas accepts a comma after the final member of an
	// object or element of an array.
	AllowTrailingCommas bool

	// StrictRoot requires the document root to be an array or an object.
	StrictRoot bool

	// AllowDroppedNullPlaceholders reads an omitted array element or member
	// value as null.
	AllowDroppedNullPlaceholders bool

	// AllowNumericKeys accepts unquoted numbers as object member names.
	AllowNumericKeys bool

	// AllowSingleQuotes accepts 'string' in addition to "string".
	AllowSingleQuotes bool

	// StackLimit bounds the nesting depth of a document.
	StackLimit int

	// FailIfExtra reports an error when non-whitespace input follows the
	// document root instead of ignoring it.
	FailIfExtra bool

	// RejectDupKeys reports an error for a duplicate object member name
	// instead of keeping the last value.
	RejectDupKeys bool

	// AllowSpecialFloats accepts NaN, Infinity, -Infinity, and +Infinity as
	// real values.
	AllowSpecialFloats bool

	// SkipBOM skips a UTF-8 byte order mark at the start of the document.
	// Error positions are then relative to the byte after it.
	SkipBOM bool
}

// Default returns the features of the reference reader: comments are read
// and collected, a leading byte order mark is skipped, nesting is limited to
// 1000 levels, and the lenient extensions are all off.
func Default() Features {
	return Features{
		AllowComments:   true,
		CollectComments: true,
		StackLimit:      1000,
		SkipBOM:         true,
	}
}

// Strict returns features that accept only canonical JSON: no comments, an
// object or array root, unique member keys, and nothing after the root
// value.
func Strict() Features {
	return Features{
		StrictRoot:    true,
		StackLimit:    1000,
		FailIfExtra:   true,
		RejectDupKeys: true,
		SkipBOM:       true,
	}
}

// A Reader parses documents with a fixed feature set. It is safe for
// concurrent use.
type Reader struct {
	features Features
}

// New returns a Reader using the given features.
func New(features Features) *Reader { return &Reader{features: features} }

// Parse reads one JSON value from doc. On failure it returns a *ParseError
// holding every recorded SyntaxError. Input after the root value is ignored
// unless the FailIfExtra feature is set.
func (r *Reader) Parse(doc []byte) (*ast.Value, error) {
	p := &parser{features: r.features, doc: doc}
	return p.parse()
}

// Parse reads one JSON value from doc using the Default features.
func Parse(doc []byte) (*ast.Value, error) { return New(Default()).Parse(doc) }

type tokenKind int

const (
	tokEndOfStream tokenKind = iota
	tokObjectBegin
	tokObjectEnd
	tokArrayBegin
	tokArrayEnd
	tokString
	tokNumber
	tokTrue
	tokFalse
	tokNull
	tokNaN
	tokPosInf
	tokNegInf
	tokArraySeparator
	tokMemberSeparator
	tokComment
	tokError
)

// A token is a half-open byte range [start, end) of the document.
type token struct {
	kind       tokenKind
	start, end int
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// parser holds the state of a single Parse call.
type parser struct {
	features Features
	doc      []byte

	begin, cur, end int
	depth           int

	errs []*SyntaxError

	// Comment collection. Comments on lines before a value accumulate in
	// commentsBefore until the value is read; a comment on the same line as
	// the most recently completed value attaches to that value directly.
	collect             bool
	commentsBefore      string
	lastValue           *ast.Value
	lastValueEnd        int
	lastValueHasComment bool
}

func (p *parser) parse() (*ast.Value, error) {
	p.collect = p.features.AllowComments && p.features.CollectComments
	p.end = len(p.doc)
	p.lastValueEnd = -1
	if p.features.SkipBOM && bytes.HasPrefix(p.doc, utf8BOM) {
		p.begin = len(utf8BOM)
	}
	p.cur = p.begin

	p.depth = 1
	root, successful := p.readValue()
	var tok token
	p.readTokenSkippingComments(&tok)
	if p.features.FailIfExtra && tok.kind != tokEndOfStream {
		p.addError("Extra non-whitespace after JSON value.", tok)
		return nil, p.parseError()
	}
	if p.collect && p.commentsBefore != "" {
		root.SetComment(ast.CommentAfter, p.commentsBefore)
	}
	if p.features.StrictRoot && !root.IsArray() && !root.IsObject() {
		// Ideally this would point at the first token of the document.
		p.addError("A valid JSON document must be either an array or an object value.",
			token{kind: tokError, start: 0, end: p.end})
		return nil, p.parseError()
	}
	if !successful {
		return nil, p.parseError()
	}
	return root, nil
}

func (p *parser) parseError() error {
	return &ParseError{Errors: p.errs}
}

// readValue parses the next value from the token stream. The returned value
// is meaningful only when ok; on failure it may be partially built.
func (p *parser) readValue() (v *ast.Value, ok bool) {
	if p.depth > p.features.StackLimit {
		p.addError("Exceeded stackLimit in readValue().", token{kind: tokError, start: p.cur, end: p.cur})
		return ast.NewNull(), false
	}
	var tok token
	p.readTokenSkippingComments(&tok)

	var pendingComments string
	if p.collect && p.commentsBefore != "" {
		pendingComments = p.commentsBefore
		p.commentsBefore = ""
	}

	v = ast.NewNull()
	ok = true
	switch tok.kind {
	case tokObjectBegin:
		ok = p.readObject(v)
	case tokArrayBegin:
		ok = p.readArray(v)
	case tokNumber:
		ok = p.decodeNumber(tok, v)
	case tokString:
		ok = p.decodeString(tok, v)
	case tokTrue:
		*v = *ast.NewBool(true)
	case tokFalse:
		*v = *ast.NewBool(false)
	case tokNull:
		// v is already null
	case tokNaN:
		*v = *ast.NewReal(math.NaN())
	case tokPosInf:
		*v = *ast.NewReal(math.Inf(1))
	case tokNegInf:
		*v = *ast.NewReal(math.Inf(-1))
	case tokArraySeparator, tokObjectEnd, tokArrayEnd:
		if p.features.AllowDroppedNullPlaceholders {
			// Un-read the token; the missing value reads as null.
			p.cur--
			break
		}
		fallthrough
	default:
		return v, p.addError("Syntax error: value, object or array expected.", tok)
	}

	if pendingComments != "" {
		v.SetComment(ast.CommentBefore, pendingComments)
	}
	if p.collect {
		p.lastValueEnd = p.cur
		p.lastValueHasComment = false
		p.lastValue = v
	}
	return v, ok
}

// readObject parses the remainder of an object after its opening brace,
// filling v.
func (p *parser) readObject(v *ast.Value) bool {
	*v = *ast.NewObject()
	var tokName token
	var name string
	for p.readTokenSkippingComments(&tokName) {
		// An empty name means an empty object or, with the trailing-comma
		// quirk, that the previous member's name was the empty string.
		if tokName.kind == tokObjectEnd && (name == "" || p.features.AllowTrailingCommas) {
			return true
		}
		name = ""
		if tokName.kind == tokString {
			if !p.decodeStringInto(tokName, &name) {
				return p.recoverFromError(tokObjectEnd)
			}
		} else if tokName.kind == tokNumber && p.features.AllowNumericKeys {
			numberName := ast.NewNull()
			if !p.decodeNumber(tokName, numberName) {
				return p.recoverFromError(tokObjectEnd)
			}
			name = keyString(numberName)
		} else {
			break
		}
		if len(name) >= 1<<30 {
			p.addError("keylength >= 2^30", tokName)
			return p.recoverFromError(tokObjectEnd)
		}
		if p.features.RejectDupKeys && v.HasMember(name) {
			p.addError("Duplicate key: '"+name+"'", tokName)
			return p.recoverFromError(tokObjectEnd)
		}

		var colon token
		if !p.readToken(&colon) || colon.kind != tokMemberSeparator {
			p.addError("Missing ':' after object member name", colon)
			return p.recoverFromError(tokObjectEnd)
		}
		p.depth++
		member, ok := p.readValue()
		p.depth--
		if !ok { // error already recorded
			return p.recoverFromError(tokObjectEnd)
		}
		v.SetMember(name, member)

		var comma token
		if !p.readTokenSkippingComments(&comma) ||
			(comma.kind != tokObjectEnd && comma.kind != tokArraySeparator) {
			p.addError("Missing ',' or '}' in object declaration", comma)
			return p.recoverFromError(tokObjectEnd)
		}
		if comma.kind == tokObjectEnd {
			return true
		}
	}
	p.addError("Missing '}' or object member name", tokName)
	return p.recoverFromError(tokObjectEnd)
}

// readArray parses the remainder of an array after its opening bracket,
// filling v.
func (p *parser) readArray(v *ast.Value) bool {
	*v = *ast.NewArray()
	index := 0
	for {
		p.skipSpaces()
		if p.cur != p.end && p.doc[p.cur] == ']' &&
			(index == 0 ||
				(p.features.AllowTrailingCommas &&
					!p.features.AllowDroppedNullPlaceholders)) {
			var endArray token
			p.readToken(&endArray)
			return true
		}
		p.depth++
		elem, ok := p.readValue()
		p.depth--
		index++
		if !ok { // error already recorded
			return p.recoverFromError(tokArrayEnd)
		}
		v.Append(elem)

		// A comment is accepted after the last element.
		var tok token
		ok = p.readTokenSkippingComments(&tok)
		if !ok || (tok.kind != tokArraySeparator && tok.kind != tokArrayEnd) {
			p.addError("Missing ',' or ']' in array declaration", tok)
			return p.recoverFromError(tokArrayEnd)
		}
		if tok.kind == tokArrayEnd {
			return true
		}
	}
}

// recoverFromError consumes tokens through the next skipUntil token or the
// end of the stream, discarding any errors recorded along the way, and
// returns false.
func (p *parser) recoverFromError(skipUntil tokenKind) bool {
	errorCount := len(p.errs)
	for {
		var skip token
		p.readToken(&skip)
		if skip.kind == skipUntil || skip.kind == tokEndOfStream {
			break
		}
	}
	p.errs = p.errs[:errorCount]
	return false
}

func (p *parser) readTokenSkippingComments(tok *token) bool {
	success := p.readToken(tok)
	if p.features.AllowComments {
		for success && tok.kind == tokComment {
			success = p.readToken(tok)
		}
	}
	return success
}

func (p *parser) readToken(tok *token) bool {
	p.skipSpaces()
	tok.start = p.cur
	c := p.getNextChar()
	ok := true
	switch c {
	case '{':
		tok.kind = tokObjectBegin
	case '}':
		tok.kind = tokObjectEnd
	case '[':
		tok.kind = tokArrayBegin
	case ']':
		tok.kind = tokArrayEnd
	case '"':
		tok.kind = tokString
		ok = p.readString()
	case '\'':
		if p.features.AllowSingleQuotes {
			tok.kind = tokString
			ok = p.readStringSingleQuote()
		} else {
			ok = false
		}
	case '/':
		tok.kind = tokComment
		ok = p.readComment()
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		tok.kind = tokNumber
		p.readNumber(false)
	case '-':
		if p.readNumber(true) {
			tok.kind = tokNumber
		} else {
			tok.kind = tokNegInf
			ok = p.features.AllowSpecialFloats && p.match("nfinity")
		}
	case '+':
		if p.readNumber(true) {
			tok.kind = tokNumber
		} else {
			tok.kind = tokPosInf
			ok = p.features.AllowSpecialFloats && p.match("nfinity")
		}
	case 't':
		tok.kind = tokTrue
		ok = p.match("rue")
	case 'f':
		tok.kind = tokFalse
		ok = p.match("alse")
	case 'n':
		tok.kind = tokNull
		ok = p.match("ull")
	case 'N':
		if p.features.AllowSpecialFloats {
			tok.kind = tokNaN
			ok = p.match("aN")
		} else {
			ok = false
		}
	case 'I':
		if p.features.AllowSpecialFloats {
			tok.kind = tokPosInf
			ok = p.match("nfinity")
		} else {
			ok = false
		}
	case ',':
		tok.kind = tokArraySeparator
	case ':':
		tok.kind = tokMemberSeparator
	case 0:
		tok.kind = tokEndOfStream
	default:
		ok = false
	}
	if !ok {
		tok.kind = tokError
	}
	tok.end = p.cur
	return ok
}

func (p *parser) skipSpaces() {
	for p.cur != p.end {
		switch p.doc[p.cur] {
		case ' ', '\t', '\r', '\n':
			p.cur++
		default:
			return
		}
	}
}

// getNextChar consumes and returns the next byte, or 0 at the end of the
// document. A NUL byte in the input is indistinguishable from the end.
func (p *parser) getNextChar() byte {
	if p.cur == p.end {
		return 0
	}
	c := p.doc[p.cur]
	p.cur++
	return c
}

// match consumes pattern if it appears next in the document.
func (p *parser) match(pattern string) bool {
	if p.end-p.cur < len(pattern) {
		return false
	}
	if string(p.doc[p.cur:p.cur+len(pattern)]) != pattern {
		return false
	}
	p.cur += len(pattern)
	return true
}

// readNumber scans the span of a number token. It accepts any run of
// integral digits, fraction, and exponent, leaving validation to the
// decoder. With checkInf set it backs off on a leading 'I' so that
// "-Infinity" can lex as a special float.
func (p *parser) readNumber(checkInf bool) bool {
	if checkInf && p.cur != p.end && p.doc[p.cur] == 'I' {
		p.cur++
		return false
	}
	// integral part
	for p.cur != p.end && p.doc[p.cur] >= '0' && p.doc[p.cur] <= '9' {
		p.cur++
	}
	// fractional part
	if p.cur != p.end && p.doc[p.cur] == '.' {
		p.cur++
		for p.cur != p.end && p.doc[p.cur] >= '0' && p.doc[p.cur] <= '9' {
			p.cur++
		}
	}
	// exponential part
	if p.cur != p.end && (p.doc[p.cur] == 'e' || p.doc[p.cur] == 'E') {
		p.cur++
		if p.cur != p.end && (p.doc[p.cur] == '+' || p.doc[p.cur] == '-') {
			p.cur++
		}
		for p.cur != p.end && p.doc[p.cur] >= '0' && p.doc[p.cur] <= '9' {
			p.cur++
		}
	}
	return true
}

// readString scans a double-quoted string token, honoring backslash escapes.
func (p *parser) readString() bool {
	var c byte
	for p.cur != p.end {
		c = p.getNextChar()
		if c == '\\' {
			p.getNextChar()
		} else if c == '"' {
			break
		}
	}
	return c == '"'
}

func (p *parser) readStringSingleQuote() bool {
	var c byte
	for p.cur != p.end {
		c = p.getNextChar()
		if c == '\\' {
			p.getNextChar()
		} else if c == '\'' {
			break
		}
	}
	return c == '\''
}

// decodeNumber decodes a number token into v, preferring the integer kinds
// and falling back to a real when the digits do not fit.
func (p *parser) decodeNumber(tok token, v *ast.Value) bool {
	cur := tok.start
	isNegative := cur != tok.end && p.doc[cur] == '-'
	if isNegative {
		cur++
	}

	// The most negative int64 has one more unit of magnitude than the most
	// positive.
	var maxIntegerValue uint64 = math.MaxUint64
	if isNegative {
		maxIntegerValue = uint64(math.MaxInt64) + 1
	}
	threshold := maxIntegerValue / 10
	var value uint64
	for cur != tok.end {
		c := p.doc[cur]
		cur++
		if c < '0' || c > '9' {
			return p.decodeDouble(tok, v)
		}
		digit := uint64(c - '0')
		if value >= threshold {
			// At the threshold, only a final digit within the remaining
			// headroom keeps the number integral.
			if value > threshold || cur != tok.end || digit > maxIntegerValue%10 {
				return p.decodeDouble(tok, v)
			}
		}
		value = value*10 + digit
	}
	switch {
	case isNegative:
		*v = *ast.NewInt(-int64(value))
	case value <= uint64(math.MaxInt64):
		*v = *ast.NewInt(int64(value))
	default:
		*v = *ast.NewUint(value)
	}
	return true
}

// decodeDouble decodes a number token as a float64. Magnitudes beyond the
// float64 range saturate to infinity.
func (p *parser) decodeDouble(tok token, v *ast.Value) bool {
	text := string(p.doc[tok.start:tok.end])
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if ne, isNum := err.(*strconv.NumError); !isNum || ne.Err != strconv.ErrRange {
			return p.addError("'"+text+"' is not a number.", tok)
		}
	}
	*v = *ast.NewReal(value)
	return true
}

func (p *parser) decodeString(tok token, v *ast.Value) bool {
	var decoded string
	if !p.decodeStringInto(tok, &decoded) {
		return false
	}
	*v = *ast.NewString(decoded)
	return true
}

// decodeStringInto decodes the body of a string token, resolving escape
// sequences. Raw bytes, including control characters, pass through
// unvalidated.
func (p *parser) decodeStringInto(tok token, decoded *string) bool {
	var sb strings.Builder
	sb.Grow(tok.end - tok.start - 2)
	cur := tok.start + 1 // skip '"'
	end := tok.end - 1   // do not include '"'
	for cur != end {
		c := p.doc[cur]
		cur++
		if c == '"' {
			break
		} else if c == '\\' {
			if cur == end {
				return p.addErrorExtra("Empty escape sequence in string", tok, cur)
			}
			escape := p.doc[cur]
			cur++
			switch escape {
			case '"':
				sb.WriteByte('"')
			case '/':
				sb.WriteByte('/')
			case '\\':
				sb.WriteByte('\\')
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'u':
				unicode, ok := p.decodeUnicodeCodePoint(tok, &cur, end)
				if !ok {
					return false
				}
				sb.WriteString(codePointToUTF8(unicode))
			default:
				return p.addErrorExtra("Bad escape sequence in string", tok, cur)
			}
		} else {
			sb.WriteByte(c)
		}
	}
	*decoded = sb.String()
	return true
}

// decodeUnicodeCodePoint decodes a \u escape beginning at *cur, consuming a
// second escape when the first is a lead surrogate. A trail surrogate's
// range is not validated.
func (p *parser) decodeUnicodeCodePoint(tok token, cur *int, end int) (uint32, bool) {
	unicode, ok := p.decodeUnicodeEscapeSequence(tok, cur, end)
	if !ok {
		return 0, false
	}
	if unicode >= 0xD800 && unicode <= 0xDBFF {
		// surrogate pairs
		if end-*cur < 6 {
			return 0, p.addErrorExtra(
				"additional six characters expected to parse unicode surrogate pair.", tok, *cur)
		}
		matched := p.doc[*cur] == '\\'
		*cur++
		if matched {
			matched = p.doc[*cur] == 'u'
			*cur++
		}
		if !matched {
			return 0, p.addErrorExtra(
				"expecting another \\u token to begin the second half of a unicode surrogate pair", tok, *cur)
		}
		surrogatePair, ok := p.decodeUnicodeEscapeSequence(tok, cur, end)
		if !ok {
			return 0, false
		}
		unicode = 0x10000 + (unicode&0x3FF)<<10 + surrogatePair&0x3FF
	}
	return unicode, true
}

func (p *parser) decodeUnicodeEscapeSequence(tok token, cur *int, end int) (uint32, bool) {
	if end-*cur < 4 {
		return 0, p.addErrorExtra(
			"Bad unicode escape sequence in string: four digits expected.", tok, *cur)
	}
	var unicode uint32
	for i := 0; i < 4; i++ {
		c := p.doc[*cur]
		*cur++
		unicode *= 16
		switch {
		case c >= '0' && c <= '9':
			unicode += uint32(c - '0')
		case c >= 'a' && c <= 'f':
			unicode += uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			unicode += uint32(c-'A') + 10
		default:
			return 0, p.addErrorExtra(
				"Bad unicode escape sequence in string: hexadecimal digit expected.", tok, *cur)
		}
	}
	return unicode, true
}

// codePointToUTF8 encodes a code point as UTF-8. Values in the surrogate
// range encode bytewise; the writer later renders them as U+FFFD.
func codePointToUTF8(cp uint32) string {
	switch {
	case cp <= 0x7F:
		return string([]byte{byte(cp)})
	case cp <= 0x7FF:
		return string([]byte{
			byte(0xC0 | (cp >> 6)),
			byte(0x80 | (cp & 0x3F))})
	case cp <= 0xFFFF:
		return string([]byte{
			byte(0xE0 | (cp >> 12)),
			byte(0x80 | ((cp >> 6) & 0x3F)),
			byte(0x80 | (cp & 0x3F))})
	case cp <= 0x10FFFF:
		return string([]byte{
			byte(0xF0 | (cp >> 18)),
			byte(0x80 | ((cp >> 12) & 0x3F)),
			byte(0x80 | ((cp >> 6) & 0x3F)),
			byte(0x80 | (cp & 0x3F))})
	}
	return ""
}

// keyString renders a numeric member name: integers in decimal, reals with
// the default writer precision.
func keyString(v *ast.Value) string {
	switch v.Kind() {
	case ast.Int:
		return strconv.FormatInt(v.Int(), 10)
	case ast.Uint:
		return strconv.FormatUint(v.Uint(), 10)
	default:
		return writer.FormatReal(v.Real(), false, 17, writer.SignificantDigits)
	}
}

// readComment consumes a comment token and, when collecting, attaches its
// text to the preceding value (when on the same line) or to the
// commentsBefore buffer for the next value.
func (p *parser) readComment() bool {
	commentBegin := p.cur - 1
	c := p.getNextChar()
	successful := false
	cStyleWithEmbeddedLinebreak := false
	isCStyleComment := c == '*'
	isCppStyleComment := c == '/'
	if isCStyleComment {
		successful = p.readCStyleComment(&cStyleWithEmbeddedLinebreak)
	} else if isCppStyleComment {
		successful = p.readCppStyleComment()
	}
	if !successful {
		return false
	}

	if p.collect {
		placement := ast.CommentBefore

		// A comment on the same line as the previous value, with nothing but
		// the comment after it, belongs to that value. Only one qualifies.
		if !p.lastValueHasComment && p.lastValueEnd >= 0 &&
			!containsNewLine(p.doc[p.lastValueEnd:commentBegin]) {
			if isCppStyleComment || !cStyleWithEmbeddedLinebreak {
				placement = ast.CommentAfterOnSameLine
				p.lastValueHasComment = true
			}
		}
		p.addComment(commentBegin, p.cur, placement)
	}
	return true
}

func (p *parser) addComment(begin, end int, placement ast.CommentPlacement) {
	normalized := normalizeEOL(p.doc[begin:end])
	if placement == ast.CommentAfterOnSameLine {
		p.lastValue.SetComment(placement, normalized)
	} else {
		p.commentsBefore += normalized
	}
}

func (p *parser) readCStyleComment(containsNewLineResult *bool) bool {
	*containsNewLineResult = false
	for p.cur != p.end {
		c := p.getNextChar()
		if c == '*' && p.cur != p.end && p.doc[p.cur] == '/' {
			break
		}
		if c == '\n' {
			*containsNewLineResult = true
		}
	}
	return p.getNextChar() == '/'
}

func (p *parser) readCppStyleComment() bool {
	for p.cur != p.end {
		c := p.getNextChar()
		if c == '\n' {
			break
		}
		if c == '\r' {
			// Consume a DOS EOL; it is normalized in addComment.
			if p.cur != p.end && p.doc[p.cur] == '\n' {
				p.getNextChar()
			}
			break
		}
	}
	return true
}

// normalizeEOL rewrites \r\n and bare \r line endings as \n.
func normalizeEOL(comment []byte) string {
	normalized := make([]byte, 0, len(comment))
	for i := 0; i < len(comment); i++ {
		c := comment[i]
		if c == '\r' {
			if i+1 < len(comment) && comment[i+1] == '\n' {
				i++
			}
			normalized = append(normalized, '\n')
		} else {
			normalized = append(normalized, c)
		}
	}
	return string(normalized)
}

func containsNewLine(s []byte) bool {
	for _, c := range s {
		if c == '\n' || c == '\r' {
			return true
		}
	}
	return false
}

// addError records a SyntaxError at the token's position and returns false.
func (p *parser) addError(message string, tok token) bool {
	line, column := p.locate(tok.start)
	p.errs = append(p.errs, &SyntaxError{Line: line, Column: column, Message: message})
	return false
}

// addErrorExtra is addError with a second position pointing inside the
// token.
func (p *parser) addErrorExtra(message string, tok token, extra int) bool {
	line, column := p.locate(tok.start)
	extraLine, extraColumn := p.locate(extra)
	p.errs = append(p.errs, &SyntaxError{
		Line: line, Column: column, Message: message,
		ExtraLine: extraLine, ExtraColumn: extraColumn, HasExtra: true,
	})
	return false
}

// locate converts a byte offset to a 1-based line and column, counting from
// the position after any skipped byte order mark.
func (p *parser) locate(location int) (line, column int) {
	cur := p.begin
	lastLineStart := cur
	for cur < location && cur != p.end {
		c := p.doc[cur]
		cur++
		if c == '\r' {
			if cur != p.end && p.doc[cur] == '\n' {
				cur++
			}
			lastLineStart = cur
			line++
		} else if c == '\n' {
			lastLineStart = cur
			line++
		}
	}
	column = location - lastLineStart + 1
	line++
	return line, column
}
