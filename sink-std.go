//go:build !tinygo

package mculog

import (
	"io"
	"os"
)

// WriterSink adapts any io.Writer (a terminal, a file, an already opened
// serial port) into a Sink. Lines are terminated with "\n".
type WriterSink struct {
	W io.Writer
}

// WriteLine writes p followed by a newline.
func (s *WriterSink) WriteLine(p []byte) error {
	if _, err := s.W.Write(p); err != nil {
		return err
	}
	_, err := s.W.Write([]byte("\n"))
	return err
}

// StdoutSink returns a sink that writes to standard output.
func StdoutSink() *WriterSink {
	return &WriterSink{W: os.Stdout}
}
