// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stompframe implements the wire-level frame codec for a
// text-based messaging protocol in the STOMP family: command line, header
// block, and a body that is either length-delimited (content-length) or
// terminated by a null byte.
//
// Semantics and design:
//   - Streaming parse: commands and headers are read line by line within
//     bounded byte budgets; the body is exposed as a lazy io.Reader, never
//     materialized in full.
//   - Body framing: when content-length is present the body is exactly
//     that many bytes; otherwise it runs to the first null byte.
//   - Alias discipline: FrameReader owns one shared upstream source.
//     ReadFrame hands out a Body that borrows that source until drained or
//     closed; a second ReadFrame while a body is outstanding fails with
//     ErrBusy rather than corrupting the stream.
//
// Wire format (stream mode, ABNF-style):
//
//	frame        = command LF header-block LF body NUL
//	command      = 1*ALPHA                ; one of 15 verbs
//	header-block = *(field LF)
//	field        = name ":" value         ; escape-encoded
//	body         = *OCTET                 ; length = content-length if
//	                                      ; present, else up to first NUL
package stompframe

// Frame is a command, a header table, and a body handle. The body holds
// exclusive access to the underlying source (see FrameReader) until it is
// drained or explicitly closed.
type Frame struct {
	Command Command
	Header  Header
	Body    *Body
}

// Close releases the frame's body, force-draining any unread bytes so the
// shared source is repositioned at the next frame's boundary. Close is a
// no-op on a Frame with no Body (e.g. one built for writing).
func (f *Frame) Close() error {
	if f.Body == nil {
		return nil
	}
	return f.Body.Close()
}
