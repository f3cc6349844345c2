// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stompframe

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/hybscloud-labs/stompframe/internal/linescan"
)

type frameReaderState uint8

const (
	stateIdle frameReaderState = iota
	stateBodyOutstanding
)

// FrameReader sequences frame production from a single shared byte source.
//
// The command-line reader, the header-block reader, and the body reader
// all consume bytes from the same upstream source in strict sequence:
// exactly one of them is active at any moment. FrameReader enforces this
// through a state machine (Idle -> Reading -> BodyOutstanding -> Idle); a
// second call to ReadFrame while the prior frame's Body has not reached
// EOF fails fast with ErrBusy instead of corrupting the stream.
//
// A FrameReader is not safe for concurrent use.
type FrameReader struct {
	br    *bufio.Reader
	opts  Options
	state frameReaderState
}

// NewFrameReader returns a FrameReader that reads frames from r.
func NewFrameReader(r io.Reader, opts ...Option) *FrameReader {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return &FrameReader{br: bufio.NewReader(r), opts: o}
}

// ReadFrame reads and returns the next frame. The returned Frame's Body
// must be drained (via Read to EOF) or Closed before the next call to
// ReadFrame; otherwise ReadFrame returns ErrBusy.
func (fr *FrameReader) ReadFrame() (*Frame, error) {
	if fr.state == stateBodyOutstanding {
		return nil, ErrBusy
	}

	cmd, err := fr.readCommandLine()
	if err != nil {
		return nil, err
	}

	h, err := readHeader(fr.br, fr.opts.MaxHeaderBlock)
	if err != nil {
		return nil, err
	}

	body, err := fr.newBody(h)
	if err != nil {
		return nil, err
	}

	fr.state = stateBodyOutstanding
	body.finalize = func() { fr.state = stateIdle }

	return &Frame{Command: cmd, Header: h, Body: body}, nil
}

// readCommandLine reads and parses the command line (§4.6 step 1). It
// first tolerates and discards a single leading NUL byte: a
// content-length-bounded body does not consume its own trailing
// terminator, so the byte left over from the prior frame surfaces here.
func (fr *FrameReader) readCommandLine() (Command, error) {
	if peek, err := fr.br.Peek(1); err == nil && len(peek) == 1 && peek[0] == 0 {
		_, _ = fr.br.Discard(1)
	}

	line, err := linescan.ReadLine(fr.br, fr.opts.MaxCommandLine)
	if err != nil {
		switch {
		case err == io.EOF:
			return 0, formatErr("empty command")
		case err == io.ErrUnexpectedEOF:
			return 0, ioErr(err, "unexpected EOF reading command line")
		case err == linescan.ErrLineTooLong:
			return 0, formatErr("command line exceeds configured budget")
		default:
			return 0, ioErr(err, "reading command line")
		}
	}

	s := strings.TrimSuffix(string(line), "\n")
	s = strings.TrimSuffix(s, "\r")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, formatErr("empty command")
	}

	cmd, ok := ParseCommand(s)
	if !ok {
		return 0, formatErr("invalid command: " + s)
	}
	return cmd, nil
}

// newBody constructs the body reader for the frame whose headers were just
// parsed, per §4.6 step 3.
func (fr *FrameReader) newBody(h Header) (*Body, error) {
	body := &Body{nonblockDrain: fr.opts.NonblockDrain}

	if cl := h.Get("content-length"); cl != "" {
		n, err := strconv.ParseUint(cl, 10, 63)
		if err != nil {
			return nil, formatErrWrap("invalid content-length: "+cl, err)
		}
		if fr.opts.MaxBody > 0 && int64(n) > fr.opts.MaxBody {
			return nil, formatErr("content-length exceeds configured maximum")
		}
		body.r = linescan.NewLengthLimitedReader(fr.br, int64(n))
		return body, nil
	}

	var r io.Reader = linescan.NewDelimitedReader(fr.br, 0x00)
	if fr.opts.MaxBody > 0 {
		r = &cappedReader{r: r, remaining: fr.opts.MaxBody}
	}
	body.r = r
	return body, nil
}
