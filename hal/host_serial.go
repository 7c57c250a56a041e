//go:build !tinygo

package hal

import (
	"fmt"
	"io"

	"go.bug.st/serial"
)

// OpenSerial opens a serial port for line input and terminal output, 8N1.
func OpenSerial(name string, baud int) (io.ReadWriteCloser, error) {
	if name == "" {
		return nil, fmt.Errorf("serial: empty port name")
	}
	if baud <= 0 {
		baud = 115200
	}
	port, err := serial.Open(name, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", name, err)
	}
	return port, nil
}
