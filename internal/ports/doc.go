// Package ports defines the interfaces (ports) that connect the host loop to
// infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the host needs from hardware and I/O without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [Transport]: delivers received bytes per polling cycle and accepts writes
//   - [ToneOutput]: switches the tone on and off
//   - [Delayer]: blocks for a number of milliseconds
//   - [Logger]: structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// devices: stdin, files, TCP, speakers, terminals, zerolog.
package ports
