package link

import (
	"go.bug.st/serial"
)

// OpenSerial opens the serial device at path with the common 8N1
// framing and wraps it in a Stream.
func OpenSerial(path string, baud int) (*Stream, error) {
	port, err := serial.Open(path, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, err
	}
	return NewStream(port), nil
}
