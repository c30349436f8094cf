//go:build tinygo

package mculog

import (
	"machine"
)

// SerialSink writes log lines to machine.Serial, the board's default USB or
// UART console. machine.Serial is used directly to avoid the memory overhead
// of buffering layers on microcontrollers. Lines are terminated with "\r\n".
type SerialSink struct{}

// WriteLine writes p followed by "\r\n".
func (s *SerialSink) WriteLine(p []byte) error {
	machine.Serial.Write(p)
	machine.Serial.Write([]byte("\r\n"))
	return nil
}
