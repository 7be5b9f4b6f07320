// Package tone provides ToneOutput implementations for the host: a sine tone
// on the system speaker, a styled terminal rendering, and a logging backend
// for dry runs.
package tone
