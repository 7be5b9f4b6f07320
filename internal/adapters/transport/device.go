package transport

import (
	"fmt"
	"os"
)

// Stdio returns a Stream reading stdin and writing stdout.
func Stdio(opts ...StreamOption) *Stream {
	return NewStream(os.Stdin, os.Stdout, opts...)
}

// OpenDevice opens a character device such as a USB serial port
// (/dev/ttyACM0) for reading and writing. Line settings are left as the
// system configured them.
func OpenDevice(path string, opts ...StreamOption) (*Stream, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open device %s: %w", path, err)
	}
	opts = append(opts, WithCloser(f))
	return NewStream(f, f, opts...), nil
}
