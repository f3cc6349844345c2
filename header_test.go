// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stompframe

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestHeaderWriteToSortsAndJoinsValues(t *testing.T) {
	h := NewHeader()
	h.Add("content-type", "application/json")
	h.Add("content-length", "30")
	h.Add("x-multi", "a")
	h.Add("x-multi", "b")

	var buf bytes.Buffer
	if _, err := h.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	want := "content-length: 30\n" +
		"content-type: application/json\n" +
		"x-multi: a,b\n"
	if got := buf.String(); got != want {
		t.Fatalf("WriteTo = %q, want %q", got, want)
	}
}

func TestHeaderAddSetGet(t *testing.T) {
	h := NewHeader()
	h.Add("X-Foo", "1")
	h.Add("x-foo", "2")
	if got := h.Values("X-FOO"); len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("Values = %v", got)
	}
	h.Set("x-foo", "only")
	if got := h.Values("x-foo"); len(got) != 1 || got[0] != "only" {
		t.Fatalf("after Set, Values = %v", got)
	}
	if got := h.Get("missing"); got != "" {
		t.Fatalf("Get(missing) = %q", got)
	}
}

func readHeaderString(t *testing.T, s string, maxBlock int) Header {
	t.Helper()
	br := bufio.NewReader(strings.NewReader(s))
	h, err := readHeader(br, maxBlock)
	if err != nil {
		t.Fatalf("readHeader(%q): %v", s, err)
	}
	return h
}

func TestReadHeaderBasic(t *testing.T) {
	h := readHeaderString(t, "Content-Type: application/json\nContent-Length: 17\n\n", DefaultMaxHeaderBlock)
	if got := h.Get("content-type"); got != "application/json" {
		t.Fatalf("content-type = %q", got)
	}
	if got := h.Get("content-length"); got != "17" {
		t.Fatalf("content-length = %q", got)
	}
}

func TestReadHeaderLowercasesNameButNotValue(t *testing.T) {
	h := readHeaderString(t, "X-Case: MixedCase\n\n", DefaultMaxHeaderBlock)
	if _, ok := h["x-case"]; !ok {
		t.Fatalf("expected lowercased field name key, got %v", h)
	}
	if got := h.Get("x-case"); got != "MixedCase" {
		t.Fatalf("value case was altered: %q", got)
	}
}

func TestReadHeaderCRLFAndLFEquivalent(t *testing.T) {
	crlf := readHeaderString(t, "Content-Type: text/plain\r\n\r\n", DefaultMaxHeaderBlock)
	lf := readHeaderString(t, "Content-Type: text/plain\n\n", DefaultMaxHeaderBlock)
	if crlf.Get("content-type") != lf.Get("content-type") {
		t.Fatalf("CRLF vs LF header values differ: %q vs %q", crlf.Get("content-type"), lf.Get("content-type"))
	}
}

func TestReadHeaderEscapedValueRoundTrips(t *testing.T) {
	h := readHeaderString(t, "Content-Type: vnd\\capplication/json\n\n", DefaultMaxHeaderBlock)
	if got := h.Get("content-type"); got != "vnd:application/json" {
		t.Fatalf("content-type = %q, want vnd:application/json", got)
	}
}

func TestReadHeaderPreservesEscapedTrailingCRLF(t *testing.T) {
	// The wire line itself ends in a plain LF (stripped as the transport
	// terminator); the value's escaped \r and \n must survive decoding
	// rather than being trimmed away as if they were transport bytes.
	h := readHeaderString(t, "x-tag: ab\\r\n\n", DefaultMaxHeaderBlock)
	if got, want := h.Get("x-tag"), "ab\r"; got != want {
		t.Fatalf("x-tag = %q, want %q", got, want)
	}

	h = readHeaderString(t, "x-tag: ab\\n\n\n", DefaultMaxHeaderBlock)
	if got, want := h.Get("x-tag"), "ab\n"; got != want {
		t.Fatalf("x-tag = %q, want %q", got, want)
	}
}

func TestReadHeaderDuplicateFieldsAccumulate(t *testing.T) {
	h := readHeaderString(t, "x-tag: one\nx-tag: two\n\n", DefaultMaxHeaderBlock)
	got := h.Values("x-tag")
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("Values(x-tag) = %v", got)
	}
}

func TestReadHeaderMissingColonFails(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("no-colon-here\n\n"))
	if _, err := readHeader(br, DefaultMaxHeaderBlock); err == nil {
		t.Fatalf("expected FORMAT error for missing ':'")
	} else if _, ok := err.(*FormatError); !ok {
		t.Fatalf("expected *FormatError, got %T: %v", err, err)
	}
}

func TestReadHeaderEmptyNameFails(t *testing.T) {
	br := bufio.NewReader(strings.NewReader(": value\n\n"))
	if _, err := readHeader(br, DefaultMaxHeaderBlock); err == nil {
		t.Fatalf("expected FORMAT error for empty field name")
	}
}

func TestReadHeaderBudgetExceeded(t *testing.T) {
	big := strings.Repeat("a", 100) + ": " + strings.Repeat("b", 100) + "\n\n"
	br := bufio.NewReader(strings.NewReader(big))
	if _, err := readHeader(br, 10); err == nil {
		t.Fatalf("expected FORMAT error for header block over budget")
	}
}

func TestHeaderRoundTripASCIINoSpecials(t *testing.T) {
	h := NewHeader()
	h.Add("destination", "/queue/a")
	h.Add("receipt", "message-12345")

	var buf bytes.Buffer
	if _, err := h.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	buf.WriteString("\n")

	br := bufio.NewReader(&buf)
	h2, err := readHeader(br, DefaultMaxHeaderBlock)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if h2.Get("destination") != h.Get("destination") || h2.Get("receipt") != h.Get("receipt") {
		t.Fatalf("round trip mismatch: %v vs %v", h2, h)
	}
}
