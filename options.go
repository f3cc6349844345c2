// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stompframe

// Size budgets from the wire format: a command line may be at most 1024
// bytes including its LF, and the header block (all field lines plus the
// blank separator) may be at most 1,024,000 bytes.
const (
	DefaultMaxCommandLine = 1024
	DefaultMaxHeaderBlock = 1024000
)

// Options configures a FrameReader's bounded-size guards and drain policy.
type Options struct {
	// MaxCommandLine caps the command line, including its terminating LF.
	MaxCommandLine int

	// MaxHeaderBlock caps the total bytes of the header block, including
	// the blank separator line.
	MaxHeaderBlock int

	// MaxBody caps the body size in bytes. Zero means unlimited, matching
	// the wire format's own lack of a codec-level body size limit; set it
	// to bound memory/time spent on a single frame's body regardless of
	// framing rule.
	MaxBody int64

	// NonblockDrain makes Body.Close return iox.ErrWouldBlock, with the
	// latch still held, when the underlying source reports it during a
	// forced drain. When false, iox.ErrWouldBlock is treated like any other
	// drain error: the drain stops and the latch is released. Leave false
	// for ordinary blocking transports.
	NonblockDrain bool
}

var defaultOptions = Options{
	MaxCommandLine: DefaultMaxCommandLine,
	MaxHeaderBlock: DefaultMaxHeaderBlock,
	MaxBody:        0,
	NonblockDrain:  false,
}

// Option configures a FrameReader at construction time.
type Option func(*Options)

// WithMaxCommandLine overrides the command-line byte budget.
func WithMaxCommandLine(n int) Option {
	return func(o *Options) { o.MaxCommandLine = n }
}

// WithMaxHeaderBlock overrides the header-block byte budget.
func WithMaxHeaderBlock(n int) Option {
	return func(o *Options) { o.MaxHeaderBlock = n }
}

// WithMaxBody caps body size in bytes; zero (the default) leaves it
// unbounded at the codec level.
func WithMaxBody(n int64) Option {
	return func(o *Options) { o.MaxBody = n }
}

// WithNonblockDrain opts a FrameReader's bodies into returning
// iox.ErrWouldBlock from Close, without releasing the latch, when a
// force-drain hits a non-blocking upstream, instead of abandoning the drain.
func WithNonblockDrain() Option {
	return func(o *Options) { o.NonblockDrain = true }
}
