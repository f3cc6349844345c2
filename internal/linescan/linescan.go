// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package linescan provides the byte-level scanning primitives a streaming
// text protocol parser needs over a single shared io.Reader: a
// budget-bounded line reader, a reader that yields bytes up to a single
// delimiter byte, and a reader that yields at most N bytes. All three read
// directly from a *bufio.Reader so that the command line, the header
// block, and the body of one frame can hand the same underlying connection
// to each other in strict sequence without ever consuming a byte that
// belongs to the next frame.
package linescan

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/gobwas/pool/pbytes"
)

// ErrLineTooLong is returned by ReadLine when the configured byte budget is
// exhausted before a line terminator is observed.
var ErrLineTooLong = errors.New("linescan: line exceeds configured budget")

// linePool holds reusable []byte scratch buffers for line accumulation,
// sized for typical STOMP command and header lines. ReadLine grows past
// this hint for unusually long lines; the grown slice is still returned to
// the pool rather than discarded.
var linePool = pbytes.New(128, 4096)

// ReadLine reads a single line, through and including the first LF, from
// br. It enforces limit as the maximum number of bytes (including the LF)
// that may be consumed for this line.
//
// Returns io.EOF if no bytes are available before the underlying reader is
// exhausted, io.ErrUnexpectedEOF if the reader is exhausted mid-line, and
// ErrLineTooLong if limit is exceeded before a LF is observed. The returned
// slice is owned by the caller and safe to retain.
func ReadLine(br *bufio.Reader, limit int) ([]byte, error) {
	if limit <= 0 {
		return nil, ErrLineTooLong
	}

	acc := linePool.Get(128)[:0]
	defer func() { linePool.Put(acc) }()

	for {
		b, err := br.ReadByte()
		if err != nil {
			if len(acc) == 0 {
				return nil, io.EOF
			}
			return nil, io.ErrUnexpectedEOF
		}
		acc = append(acc, b)
		if len(acc) > limit {
			return nil, ErrLineTooLong
		}
		if b == '\n' {
			out := make([]byte, len(acc))
			copy(out, acc)
			return out, nil
		}
	}
}

// DelimitedReader yields bytes from an upstream *bufio.Reader up to
// (excluding) a single delimiter byte. The delimiter itself is consumed
// from upstream but never delivered to the caller. Once the delimiter has
// been observed, every subsequent Read returns (0, io.EOF).
//
// DelimitedReader deliberately avoids over-reading: when the upstream has
// no buffered data it reads one byte at a time, since reading ahead would
// steal bytes belonging to the next frame sharing the same source. When
// bytes are already buffered, it scans that buffered region directly
// instead of making one ReadByte call per byte.
type DelimitedReader struct {
	br    *bufio.Reader
	delim byte
	done  bool
}

// NewDelimitedReader returns a DelimitedReader that reads from br until
// delim is observed.
func NewDelimitedReader(br *bufio.Reader, delim byte) *DelimitedReader {
	return &DelimitedReader{br: br, delim: delim}
}

// Read implements io.Reader.
func (d *DelimitedReader) Read(p []byte) (int, error) {
	if d.done {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	if buffered := d.br.Buffered(); buffered > 0 {
		peek, _ := d.br.Peek(buffered)
		idx := bytes.IndexByte(peek, d.delim)
		if idx == 0 {
			_, _ = d.br.Discard(1)
			d.done = true
			return 0, io.EOF
		}
		n := len(peek)
		if idx > 0 {
			n = idx
		}
		if n > len(p) {
			n = len(p)
		}
		copy(p, peek[:n])
		_, _ = d.br.Discard(n)
		return n, nil
	}

	b, err := d.br.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}
	if b == d.delim {
		d.done = true
		return 0, io.EOF
	}
	p[0] = b
	return 1, nil
}

// LengthLimitedReader yields at most N bytes read from an upstream
// *bufio.Reader, then signals EOF. Unlike DelimitedReader it does not
// consume a trailing sentinel byte; the caller's framing rule (e.g. a
// content-length declaration) is the sole authority on where the stream
// ends.
type LengthLimitedReader struct {
	br        *bufio.Reader
	remaining int64
}

// NewLengthLimitedReader returns a LengthLimitedReader that yields at most
// n bytes from br.
func NewLengthLimitedReader(br *bufio.Reader, n int64) *LengthLimitedReader {
	return &LengthLimitedReader{br: br, remaining: n}
}

// Read implements io.Reader.
func (l *LengthLimitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.br.Read(p)
	l.remaining -= int64(n)
	if err == io.EOF && l.remaining > 0 {
		return n, io.ErrUnexpectedEOF
	}
	return n, err
}

// Remaining reports the number of bytes still to be yielded before EOF.
func (l *LengthLimitedReader) Remaining() int64 { return l.remaining }
