// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stompframe

import "testing"

func TestEscapeEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"plain",
		"vnd:application/json",
		"a\\b",
		"line1\r\nline2",
		"mix:of\\everything\r\n",
	}
	for _, s := range cases {
		enc := escapeEncode(s)
		if got := escapeDecode(enc); got != s {
			t.Fatalf("decode(encode(%q)) = %q, want %q", s, got, s)
		}
	}
}

func TestEscapeEncodeTable(t *testing.T) {
	cases := map[string]string{
		"\\":  `\\`,
		"\r":  `\r`,
		"\n":  `\n`,
		":":   `\c`,
		"a:b": `a\cb`,
	}
	for in, want := range cases {
		if got := escapeEncode(in); got != want {
			t.Fatalf("escapeEncode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeEncodeHomomorphism(t *testing.T) {
	a := "vnd:app\\lication"
	b := "more\r\ndata:here"
	if got, want := escapeEncode(a+b), escapeEncode(a)+escapeEncode(b); got != want {
		t.Fatalf("escapeEncode not homomorphic: %q != %q", got, want)
	}
}

func TestEscapeDecodeBackslashThenNewline(t *testing.T) {
	// Literal bytes: Hello, two backslashes, backslash, n, World.
	in := "Hello" + `\\` + `\n` + "World"
	got := escapeDecode(in)
	want := "Hello\\\nWorld"
	if got != want {
		t.Fatalf("escapeDecode(%q) = %q, want %q", in, got, want)
	}
}

func TestEscapeDecodeUnpairedBackslashElided(t *testing.T) {
	if got, want := escapeDecode(`a\xb`), "axb"; got != want {
		t.Fatalf("escapeDecode unpaired backslash = %q, want %q", got, want)
	}
}

func TestEscapeDecodeIdempotentWithoutBackslash(t *testing.T) {
	s := "already decoded text with : and no backslashes except none"
	if got := escapeDecode(s); got != s {
		t.Fatalf("escapeDecode(%q) = %q, want unchanged", s, got)
	}
}
