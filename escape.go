// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stompframe

import "strings"

// escapeEncode applies the header escape alphabet to s. It never touches
// bodies or the command line; only header field names and values pass
// through it. escapeEncode is a homomorphism over concatenation: encoding
// a+b always equals encoding a followed by encoding b.
func escapeEncode(s string) string {
	if !strings.ContainsAny(s, "\\\r\n:") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteString(`\\`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		case ':':
			b.WriteString(`\c`)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// escapeDecode reverses escapeEncode. It walks s left to right with a
// single-character lookahead: once a backslash is seen, the following byte
// resolves the escape (c -> ':', n -> LF, r -> CR, \ -> '\'); any other
// byte following an unpaired backslash simply drops the backslash and keeps
// the byte as-is. escapeDecode is idempotent on text that contains no
// backslashes.
func escapeDecode(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			switch c {
			case 'c':
				b.WriteByte(':')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(c)
			}
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
