package domain

import "errors"

// Domain errors represent error conditions in the tinymorse host.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrAlreadyRunning is returned when Start() is called on a running instance.
	ErrAlreadyRunning = errors.New("tinymorse: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped instance.
	ErrNotRunning = errors.New("tinymorse: not running")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("tinymorse: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("tinymorse: invalid configuration")

	// ErrNoTransport is returned when no input transport was provided.
	ErrNoTransport = errors.New("tinymorse: no transport")

	// ErrTransportClosed is returned by a transport once its input is exhausted
	// for good (EOF on a pipe, closed connection).
	ErrTransportClosed = errors.New("tinymorse: transport closed")
)
