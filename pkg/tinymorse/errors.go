package tinymorse

import "github.com/bft-labs/tinymorse/internal/domain"

// Errors returned by the public API. Check them with errors.Is.
var (
	ErrAlreadyRunning  = domain.ErrAlreadyRunning
	ErrNotRunning      = domain.ErrNotRunning
	ErrShutdownTimeout = domain.ErrShutdownTimeout
	ErrInvalidConfig   = domain.ErrInvalidConfig
	ErrNoTransport     = domain.ErrNoTransport
	ErrTransportClosed = domain.ErrTransportClosed
)
