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

package writer

const hexDigits = "0123456789abcdef"

// quoteString renders s as a double-quoted JSON string literal. Without
// emitUTF8, every non-ASCII byte sequence is decoded and re-emitted as
// \uXXXX escapes, with malformed sequences becoming U+FFFD; with emitUTF8,
// bytes at or above 0x20 pass through verbatim.
func quoteString(s string, emitUTF8 bool) string {
	if !needsEscape(s) {
		return `"` + s + `"`
	}

	buf := make([]byte, 0, 2*len(s)+3)
	buf = append(buf, '"')
	for i := 0; i < len(s); {
		switch c := s[i]; c {
		case '"':
			buf = append(buf, `\"`...)
			i++
		case '\\':
			buf = append(buf, `\\`...)
			i++
		case '\b':
			buf = append(buf, `\b`...)
			i++
		case '\f':
			buf = append(buf, `\f`...)
			i++
		case '\n':
			buf = append(buf, `\n`...)
			i++
		case '\r':
			buf = append(buf, `\r`...)
			i++
		case '\t':
			buf = append(buf, `\t`...)
			i++
		default:
			// Forward slashes are legal unescaped.
			if emitUTF8 {
				if c < 0x20 {
					buf = appendHex16(buf, uint32(c))
				} else {
					buf = append(buf, c)
				}
				i++
				continue
			}
			cp, size := decodeSequence(s[i:])
			i += size
			switch {
			case cp < 0x20:
				buf = appendHex16(buf, cp)
			case cp < 0x80:
				buf = append(buf, byte(cp))
			case cp < 0x10000:
				buf = appendHex16(buf, cp)
			default:
				cp -= 0x10000
				buf = appendHex16(buf, 0xD800+((cp>>10)&0x3FF))
				buf = appendHex16(buf, 0xDC00+(cp&0x3FF))
			}
		}
	}
	buf = append(buf, '"')
	return string(buf)
}

// needsEscape reports whether any byte of s keeps it off the fast path.
func needsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '"' || c < 0x20 || c > 0x7F {
			return true
		}
	}
	return false
}

// decodeSequence decodes the leading UTF-8 sequence of s, returning the code
// point and the number of bytes consumed. Truncated, overlong, and
// surrogate-range sequences yield U+FFFD; continuation bytes are masked, not
// validated.
func decodeSequence(s string) (uint32, int) {
	const replacement = 0xFFFD
	b0 := uint32(s[0])
	switch {
	case b0 < 0x80:
		return b0, 1
	case b0 < 0xE0:
		if len(s) < 2 {
			return replacement, 1
		}
		cp := (b0&0x1F)<<6 | uint32(s[1])&0x3F
		if cp < 0x80 {
			return replacement, 2
		}
		return cp, 2
	case b0 < 0xF0:
		if len(s) < 3 {
			return replacement, 1
		}
		cp := (b0&0x0F)<<12 | (uint32(s[1])&0x3F)<<6 | uint32(s[2])&0x3F
		if cp >= 0xD800 && cp <= 0xDFFF {
			return replacement, 3
		}
		if cp < 0x800 {
			return replacement, 3
		}
		return cp, 3
	case b0 < 0xF8:
		if len(s) < 4 {
			return replacement, 1
		}
		cp := (b0&0x07)<<18 | (uint32(s[1])&0x3F)<<12 | (uint32(s[2])&0x3F)<<6 | uint32(s[3])&0x3F
		if cp < 0x10000 {
			return replacement, 4
		}
		return cp, 4
	}
	return replacement, 1
}

// appendHex16 appends cp as a four-digit lowercase \u escape.
func appendHex16(buf []byte, cp uint32) []byte {
	return append(buf, '\\', 'u',
		hexDigits[(cp>>12)&0xF], hexDigits[(cp>>8)&0xF], hexDigits[(cp>>4)&0xF], hexDigits[cp&0xF])
}
