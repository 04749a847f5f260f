package vm

import (
	"bufio"
	"io"
)

// ByteSource supplies input bytes one at a time. ReadByte blocks
// until a byte is available and returns io.EOF when the stream is
// exhausted. Both a real blocking read and a host-supplied queued
// read fit this contract.
type ByteSource interface {
	ReadByte() (byte, error)
}

// ByteSink receives output bytes. Writes are fire-and-forget; an
// error from the sink is fatal to the machine.
type ByteSink interface {
	WriteByte(b byte) error
}

// NewReaderSource wraps an io.Reader as a buffered ByteSource
func NewReaderSource(r io.Reader) ByteSource {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) WriteByte(b byte) error {
	_, err := s.w.Write([]byte{b})
	return err
}

// NewWriterSink wraps an io.Writer as a ByteSink
func NewWriterSink(w io.Writer) ByteSink {
	return writerSink{w: w}
}
