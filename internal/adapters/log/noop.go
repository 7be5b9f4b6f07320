package log

import "github.com/bft-labs/tinymorse/internal/ports"

// Noop drops every message. It is the logger a library Player gets when the
// caller does not supply one.
type Noop struct{}

// NewNoopLogger returns a Noop.
func NewNoopLogger() Noop { return Noop{} }

func (Noop) Debug(string, ...ports.Field) {}
func (Noop) Info(string, ...ports.Field)  {}
func (Noop) Warn(string, ...ports.Field)  {}
func (Noop) Error(string, ...ports.Field) {}

var _ ports.Logger = Noop{}
