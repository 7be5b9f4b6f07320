//go:build tinygo

package pico

import (
	"context"
	"machine"

	"github.com/bft-labs/tinymorse/internal/ports"
)

// Serial reads whatever the USB CDC port has buffered. It never blocks:
// an empty poll returns zero bytes and the host waits its poll interval.
type Serial struct {
	port machine.Serialer
}

// NewSerial wraps port, usually machine.Serial.
func NewSerial(port machine.Serialer) *Serial {
	return &Serial{port: port}
}

// Poll copies up to len(buf) buffered bytes. Read errors end the poll early
// and are otherwise ignored; there is nothing useful to do with them on the
// device.
func (s *Serial) Poll(ctx context.Context, buf []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n := 0
	for n < len(buf) && s.port.Buffered() > 0 {
		b, err := s.port.ReadByte()
		if err != nil {
			break
		}
		buf[n] = b
		n++
	}
	return n, nil
}

// Write sends p to the host computer.
func (s *Serial) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

// Close is a no-op; the USB port lives as long as the device.
func (s *Serial) Close() error { return nil }

var _ ports.Transport = (*Serial)(nil)
