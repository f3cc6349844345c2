// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stompframe

import (
	"errors"
	"io"

	"code.hybscloud.com/iox"
)

// Body is a one-shot forward byte stream for the body of a single frame. It
// implements io.Reader and io.Closer. Reading past EOF always yields zero
// bytes. A Body holds exclusive access to the frame reader's shared source
// until it reaches EOF or is closed; see FrameReader.
type Body struct {
	r             io.Reader
	done          bool
	nonblockDrain bool
	finalize      func()
}

// Read implements io.Reader. On reaching the framing rule's natural end
// (content-length bytes exhausted, or the null delimiter observed), Read
// returns io.EOF and releases the frame reader's latch, the same as an
// explicit Close would.
func (b *Body) Read(p []byte) (int, error) {
	if b.done {
		return 0, io.EOF
	}
	n, err := b.r.Read(p)
	if err == io.EOF {
		b.finish()
	}
	return n, err
}

func (b *Body) finish() {
	if b.done {
		return
	}
	b.done = true
	if b.finalize != nil {
		b.finalize()
	}
}

// Close force-drains any remaining body bytes through the framing rule so
// the shared source is left positioned at the next frame's boundary, then
// releases the frame reader's latch. Close is idempotent and safe to call
// after the body has already reached EOF on its own.
//
// If the reader was constructed with WithNonblockDrain and the upstream
// source reports iox.ErrWouldBlock mid-drain, Close returns that error
// promptly without having released the latch; the caller should retry
// Close later rather than treat the body as drained.
func (b *Body) Close() error {
	if b.done {
		return nil
	}
	var buf [4096]byte
	for {
		_, err := b.r.Read(buf[:])
		if err == nil {
			continue
		}
		if err == io.EOF {
			break
		}
		if b.nonblockDrain && errors.Is(err, iox.ErrWouldBlock) {
			return err
		}
		// Any other error leaves the source in an undefined position;
		// the codec offers no resynchronization (§7). Stop draining.
		break
	}
	b.finish()
	return nil
}

// cappedReader enforces an ambient MaxBody ceiling over a framing-rule
// reader that has no length of its own to consult up front (the
// null-terminated case). It reports *FormatError once the ceiling is
// crossed, mid-stream, rather than silently truncating.
type cappedReader struct {
	r         io.Reader
	remaining int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.remaining -= int64(n)
		if c.remaining < 0 {
			return n, formatErr("body exceeds configured maximum size")
		}
	}
	return n, err
}
