// Package protocol implements HLX wire framing and the static command
// catalog: byte-level extraction of bracketed `(...)` messages and the
// pattern table used to recognize and render them.
package protocol

import (
	"bytes"
	"errors"
)

// MaxFrameSize bounds how many bytes may accumulate waiting for a closing
// ')' before the accumulator gives up and resyncs, per spec §4.1.
const MaxFrameSize = 1024

// ErrUnmatchedClose is reported once per ')' encountered with no preceding
// open '(' in the stream.
var ErrUnmatchedClose = errors.New("protocol: unmatched ')' in stream")

// ErrFrameTooLarge is reported when an opened frame exceeds MaxFrameSize
// without a closing ')'; the accumulator discards it and resyncs.
var ErrFrameTooLarge = errors.New("protocol: frame exceeded maximum size without closing ')'")

// Framer extracts complete bracketed frames from an accumulating byte
// stream. It holds the residual buffer between calls and is not safe for
// concurrent use — each connection owns exactly one.
type Framer struct {
	buf []byte
}

// Feed appends data to the internal buffer and extracts every complete
// frame now available, in stream order. A frame's returned bytes are the
// body between '(' and ')', brackets excluded. Bytes before the first '('
// are discarded as protocol noise; a bare ')' within that noise is
// reported once per occurrence in errs.
func (f *Framer) Feed(data []byte) (frames [][]byte, errs []error) {
	f.buf = append(f.buf, data...)

	for {
		open := bytes.IndexByte(f.buf, '(')
		if open < 0 {
			errs = append(errs, unmatchedCloses(f.buf)...)
			f.buf = nil
			return frames, errs
		}
		if open > 0 {
			errs = append(errs, unmatchedCloses(f.buf[:open])...)
			f.buf = f.buf[open:]
		}

		closeIdx := bytes.IndexByte(f.buf, ')')
		if closeIdx < 0 {
			if len(f.buf) > MaxFrameSize {
				errs = append(errs, ErrFrameTooLarge)
				f.buf = nil
			}
			return frames, errs
		}

		body := make([]byte, closeIdx-1)
		copy(body, f.buf[1:closeIdx])
		frames = append(frames, body)
		f.buf = f.buf[closeIdx+1:]
	}
}

func unmatchedCloses(b []byte) []error {
	n := bytes.Count(b, []byte(")"))
	if n == 0 {
		return nil
	}
	errs := make([]error, n)
	for i := range errs {
		errs[i] = ErrUnmatchedClose
	}
	return errs
}

// Wrap brackets a rendered body, producing the bytes actually written to
// the wire.
func Wrap(body []byte) []byte {
	out := make([]byte, 0, len(body)+2)
	out = append(out, '(')
	out = append(out, body...)
	out = append(out, ')')
	return out
}

// ErrorBody is the universal failure response body, bracketed by Wrap
// before it goes on the wire.
const ErrorBody = "ERROR"

// RenderError returns the bracketed (ERROR) frame.
func RenderError() []byte { return Wrap([]byte(ErrorBody)) }
