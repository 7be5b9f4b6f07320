package ports

import (
	"context"

	"github.com/bft-labs/tinymorse/internal/domain"
)

// Transport is the byte-stream link the text arrives on.
type Transport interface {
	// Poll copies the bytes received since the last call into buf and returns
	// how many were written. Zero bytes with a nil error means nothing arrived
	// this cycle. Once the input is exhausted for good, Poll returns
	// ErrTransportClosed.
	Poll(ctx context.Context, buf []byte) (int, error)

	// Write sends bytes back to the peer (greeting, prompts).
	Write(p []byte) (int, error)

	// Close releases the underlying device.
	Close() error
}

// ErrTransportClosed is returned by Poll when no more input will arrive.
var ErrTransportClosed = domain.ErrTransportClosed
