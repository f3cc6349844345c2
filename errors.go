// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stompframe

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrBusy is returned by FrameReader.ReadFrame when a prior frame's body
// has not yet reached EOF (by draining or by Close). The codec fails fast
// rather than letting a second reader corrupt the shared source.
var ErrBusy = errors.New("stompframe: frame reader busy: prior frame body not drained")

// FormatError reports a grammar violation: an empty or unrecognized
// command, a malformed header line, a header block or command line that
// exceeds its configured budget, or a content-length that does not parse
// as an unsigned integer.
type FormatError struct {
	Msg string
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stompframe: format: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("stompframe: format: %s", e.Msg)
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatErr(msg string) error {
	return &FormatError{Msg: msg}
}

func formatErrWrap(msg string, err error) error {
	return &FormatError{Msg: msg, Err: err}
}

// EncodingError reports that a header field name or value is not valid
// UTF-8.
type EncodingError struct {
	Field string
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("stompframe: encoding: %s is not valid UTF-8", e.Field)
}

func (e *EncodingError) Unwrap() error { return e.Err }

func encodingErr(field string) error {
	return &EncodingError{Field: field, Err: errors.New("invalid UTF-8 byte sequence")}
}

// ioErr wraps an underlying transport failure with call-site context while
// preserving the cause for errors.Is/errors.As, the way
// netconf/rfc6242-style chunked-frame readers annotate low-level read
// failures.
func ioErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrap(err, "stompframe: io: "+msg)
}
