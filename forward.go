// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stompframe

import "io"

// CopyFrame relays exactly one message from src to dst while preserving
// command, headers, and body bytes.
//
// Unlike a byte-oriented relay, a STOMP frame cannot be forwarded without
// being parsed: the destination needs to know the command and headers
// before it can write the body, and the body's own framing rule
// (content-length or null-terminated) is only known once the headers have
// been read. CopyFrame therefore reads one whole frame via src, then
// writes it to dst, closing the source frame's body in all cases so the
// shared source stays positioned at the next frame's boundary even if the
// write fails partway through.
//
// CopyFrame returns the number of bytes written to dst and the first error
// encountered, from either ReadFrame or WriteFrame.
func CopyFrame(dst io.Writer, src *FrameReader) (int64, error) {
	f, err := src.ReadFrame()
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := WriteFrame(dst, f.Command, f.Header, f.Body)
	return n, err
}
