// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stompframe

import (
	"bufio"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hybscloud-labs/stompframe/internal/linescan"
)

// Header is an ordered-on-write, case-insensitive, multi-valued header
// table. Field names are stored lowercased; original case is not
// preserved. Comparisons and lookups are case-insensitive; Add appends to
// a name's value list in insertion order, while Set replaces it.
type Header map[string][]string

// NewHeader returns an empty Header.
func NewHeader() Header {
	return make(Header)
}

// Add appends value to name's list, preserving insertion order.
func (h Header) Add(name, value string) {
	h[strings.ToLower(name)] = append(h[strings.ToLower(name)], value)
}

// Set replaces name's value list with a single value.
func (h Header) Set(name, value string) {
	h[strings.ToLower(name)] = []string{value}
}

// Get returns the first value associated with name, or "" if absent.
func (h Header) Get(name string) string {
	v := h[strings.ToLower(name)]
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Values returns all values associated with name, in insertion order.
func (h Header) Values(name string) []string {
	return h[strings.ToLower(name)]
}

// Del removes all values associated with name.
func (h Header) Del(name string) {
	delete(h, strings.ToLower(name))
}

// Clone returns a deep copy of h.
func (h Header) Clone() Header {
	h2 := make(Header, len(h))
	for k, vv := range h {
		cp := make([]string, len(vv))
		copy(cp, vv)
		h2[k] = cp
	}
	return h2
}

// WriteTo serializes h in sorted field-name order, one field per line. A
// field with multiple values is joined with a single comma and no
// surrounding spaces. It implements io.WriterTo.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	var total int64
	for _, name := range names {
		line := escapeEncode(name) + ": " + escapeEncode(strings.Join(h[name], ",")) + "\n"
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// readHeader reads a header block from br: a sequence of field lines
// terminated by the first blank line. consumed bytes across the whole
// block (field lines and the blank separator) are charged against
// maxBlock; exceeding it fails with a *FormatError.
func readHeader(br *bufio.Reader, maxBlock int) (Header, error) {
	h := NewHeader()
	consumed := 0

	for {
		remaining := maxBlock - consumed
		line, err := linescan.ReadLine(br, remaining)
		if err != nil {
			switch {
			case err == linescan.ErrLineTooLong:
				return nil, formatErr("header block exceeds configured budget")
			case err == io.EOF || err == io.ErrUnexpectedEOF:
				return nil, ioErr(err, "reading header block")
			default:
				return nil, ioErr(err, "reading header line")
			}
		}
		consumed += len(line)

		trimmed := strings.TrimSuffix(string(line), "\n")
		trimmed = strings.TrimSuffix(trimmed, "\r")
		if trimmed == "" {
			return h, nil
		}

		idx := strings.IndexByte(trimmed, ':')
		if idx < 0 {
			return nil, formatErr("header line missing ':' separator")
		}
		rawName, rawValue := trimmed[:idx], trimmed[idx+1:]
		if !utf8.ValidString(rawName) {
			return nil, encodingErr("header field name")
		}
		if !utf8.ValidString(rawValue) {
			return nil, encodingErr("header field value")
		}

		name := strings.TrimSpace(escapeDecode(rawName))
		value := escapeDecode(rawValue)
		value = strings.TrimLeft(value, " \t")
		name = strings.ToLower(name)
		if name == "" {
			return nil, formatErr("empty header field name")
		}

		h.Add(name, value)
	}
}
