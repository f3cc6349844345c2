// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stompframe

import (
	"bufio"
	"io"
)

// WriteFrame serializes cmd, h, and the bytes yielded by body to w,
// following §4.7: command line, header block, blank separator, body, and
// a trailing NUL. It writes exactly what body yields; it does not consult
// h's content-length header to truncate or validate the body. Ensuring
// content-length (if present) matches the body's actual length is the
// caller's responsibility.
//
// body may be nil for an empty body.
func WriteFrame(w io.Writer, cmd Command, h Header, body io.Reader) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64

	n, err := io.WriteString(bw, cmd.String())
	total += int64(n)
	if err != nil {
		return total, ioErr(err, "writing command")
	}

	if err := bw.WriteByte('\n'); err != nil {
		return total, ioErr(err, "writing command terminator")
	}
	total++

	hn, err := h.WriteTo(bw)
	total += hn
	if err != nil {
		return total, ioErr(err, "writing headers")
	}

	if err := bw.WriteByte('\n'); err != nil {
		return total, ioErr(err, "writing header separator")
	}
	total++

	if body != nil {
		bn, err := io.Copy(bw, body)
		total += bn
		if err != nil {
			return total, ioErr(err, "writing body")
		}
	}

	if err := bw.WriteByte(0); err != nil {
		return total, ioErr(err, "writing body terminator")
	}
	total++

	if err := bw.Flush(); err != nil {
		return total, ioErr(err, "flushing frame")
	}
	return total, nil
}
