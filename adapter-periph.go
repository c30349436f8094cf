//go:build !tinygo

package mculog

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"
	"periph.io/x/host/v3"
)

// UARTConfig holds the configuration for the Linux/periph.io serial sink.
type UARTConfig struct {
	// PortPath is the registry name or path of the UART port
	// (e.g., "/dev/ttyS0").
	// Defaults to the first available port if not provided.
	PortPath string
	// BaudRate is the serial speed in bauds.
	// Defaults to 115200 if not provided.
	BaudRate int
}

// UARTSink writes log lines to a serial port opened through periph.io.
// Lines are terminated with "\r\n".
type UARTSink struct {
	port uart.PortCloser
	conn conn.Conn
}

// NewUARTSink initializes the periph.io host, opens the UART port and
// configures it for 8N1 framing with no flow control.
// The returned sink must be closed by the caller once the Logger no longer
// uses it.
func NewUARTSink(c UARTConfig) (*UARTSink, error) {
	// 1. Initialize periph.io host (required before using the registries)
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	// 2. Default baud rate
	if c.BaudRate == 0 {
		c.BaudRate = 115200
	}

	// 3. Open the UART port
	p, err := uartreg.Open(c.PortPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open UART port: %w", err)
	}

	// 4. Configure the connection (8N1, no flow control)
	cc, err := p.Connect(physic.Frequency(c.BaudRate)*physic.Hertz, uart.One, uart.NoParity, uart.NoFlow, 8)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to configure UART port: %w", err)
	}

	return &UARTSink{port: p, conn: cc}, nil
}

// WriteLine writes p followed by "\r\n".
func (s *UARTSink) WriteLine(p []byte) error {
	if err := s.conn.Tx(p, nil); err != nil {
		return err
	}
	return s.conn.Tx([]byte("\r\n"), nil)
}

// Close releases the underlying UART port.
func (s *UARTSink) Close() error {
	return s.port.Close()
}
