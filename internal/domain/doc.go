// Package domain contains the core entities and error values shared by the
// tinymorse host.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (transport, audio, logging).
//
// # Entities
//
//   - [Cycle]: accounting for one polling cycle's buffer
//
// The morse alphabet and playback state machine live in pkg/morse; this
// package only describes what the host does around them.
package domain
